// Package weights provides the parameter weight editor used by the agent
// configuration form. An Editor owns an ordered collection of named,
// weighted parameters and reports whether their weights add up to 100.
// Intermediate unbalanced states are allowed; callers decide what to block.
package weights

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

const (
	// MinWeight and MaxWeight bound every parameter weight.
	MinWeight = 0
	MaxWeight = 100

	// DefaultWeight is assigned to parameters created with Add.
	DefaultWeight = 0

	// TargetTotal is the weight total a balanced configuration must reach.
	TargetTotal = 100
)

// Parameter is a named criterion carrying a percentage weight.
type Parameter struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Value  string `yaml:"value" json:"value"`
	Weight int    `yaml:"weight" json:"weight"`
}

// Editor is an ordered, mutable collection of parameters. It is not safe
// for concurrent use; it lives for the duration of one editing session.
type Editor struct {
	params []Parameter
	newID  func() string
}

// NewEditor creates an editor seeded with params. Parameters without an ID
// receive a fresh one and out-of-range weights are clamped.
func NewEditor(params ...Parameter) *Editor {
	e := &Editor{newID: uuid.NewString}

	for _, p := range params {
		if p.ID == "" {
			p.ID = e.newID()
		}
		p.Weight = Clamp(p.Weight)
		e.params = append(e.params, p)
	}

	return e
}

// Clamp bounds w to [MinWeight, MaxWeight].
func Clamp(w int) int {
	return min(max(w, MinWeight), MaxWeight)
}

// Add appends a new parameter with DefaultWeight and a fresh ID.
func (e *Editor) Add() Parameter {
	p := Parameter{ID: e.newID(), Weight: DefaultWeight}
	e.params = append(e.params, p)

	return p
}

// Remove deletes the parameter with the given ID. Unknown IDs are ignored.
func (e *Editor) Remove(id string) {
	e.params = slices.DeleteFunc(e.params, func(p Parameter) bool {
		return p.ID == id
	})
}

// SetWeight stores w, clamped to [0,100], on the matching parameter.
func (e *Editor) SetWeight(id string, w int) {
	if p := e.find(id); p != nil {
		p.Weight = Clamp(w)
	}
}

// SetName replaces the display name of the matching parameter.
func (e *Editor) SetName(id, name string) {
	if p := e.find(id); p != nil {
		p.Name = name
	}
}

// SetValue replaces the expected value of the matching parameter.
func (e *Editor) SetValue(id, value string) {
	if p := e.find(id); p != nil {
		p.Value = value
	}
}

// Get returns the parameter with the given ID.
func (e *Editor) Get(id string) (Parameter, bool) {
	if p := e.find(id); p != nil {
		return *p, true
	}

	return Parameter{}, false
}

// Parameters returns a copy of the collection in insertion order.
func (e *Editor) Parameters() []Parameter {
	return slices.Clone(e.params)
}

// Len returns the number of parameters.
func (e *Editor) Len() int { return len(e.params) }

// Total returns the sum of all current weights.
func (e *Editor) Total() int {
	total := 0
	for _, p := range e.params {
		total += p.Weight
	}

	return total
}

// Balanced reports whether the weights add up to exactly TargetTotal.
func (e *Editor) Balanced() bool {
	return e.Total() == TargetTotal
}

// Warning returns the inline message shown while the total is off target,
// or "" when the weights are balanced.
func (e *Editor) Warning() string {
	if e.Balanced() {
		return ""
	}

	return fmt.Sprintf("Total weight must equal %d%% (currently %d%%)", TargetTotal, e.Total())
}

func (e *Editor) find(id string) *Parameter {
	for i := range e.params {
		if e.params[i].ID == id {
			return &e.params[i]
		}
	}

	return nil
}
