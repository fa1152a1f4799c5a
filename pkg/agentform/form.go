// Package agentform holds the editable state of an agent configuration: the
// required text fields plus a weights.Editor for its screening parameters.
// A Form only hands its result to the caller's save callback once every
// required field is filled and the parameter weights total 100.
package agentform

import (
	"fmt"
	"strings"

	"github.com/germanamz/agentdesk/pkg/weights"
)

// Agent is the record consumed and produced by a Form.
type Agent struct {
	ID          string              `yaml:"id" json:"id"`
	Name        string              `yaml:"name" json:"name"`
	Role        string              `yaml:"role" json:"role"`
	Description string              `yaml:"description" json:"description"`
	Avatar      string              `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Model       string              `yaml:"model" json:"model"`
	Parameters  []weights.Parameter `yaml:"parameters" json:"parameters"`
}

// SaveFunc receives the finalized agent. It is owned by the caller.
type SaveFunc func(Agent) error

// Form is the editing session for one agent. A zero Form is an empty form;
// its Weights editor is created on first use.
type Form struct {
	ID          string
	Name        string
	Role        string
	Description string
	Avatar      string
	Model       string

	Weights *weights.Editor
}

// New creates a form pre-filled from initial.
func New(initial Agent) *Form {
	return &Form{
		ID:          initial.ID,
		Name:        initial.Name,
		Role:        initial.Role,
		Description: initial.Description,
		Avatar:      initial.Avatar,
		Model:       initial.Model,
		Weights:     weights.NewEditor(initial.Parameters...),
	}
}

// Problems lists the inline validation messages. It is empty iff Valid.
func (f *Form) Problems() []string {
	var out []string

	for _, field := range []struct {
		label string
		value string
	}{
		{"Name", f.Name},
		{"Role", f.Role},
		{"Description", f.Description},
		{"Model", f.Model},
	} {
		if strings.TrimSpace(field.value) == "" {
			out = append(out, fmt.Sprintf("%s is required", field.label))
		}
	}

	if w := f.editor().Warning(); w != "" {
		out = append(out, w)
	}

	return out
}

// Valid reports whether the weights total 100 and all required fields are set.
func (f *Form) Valid() bool {
	return len(f.Problems()) == 0
}

// Snapshot returns the agent record as it would be saved.
func (f *Form) Snapshot() Agent {
	return Agent{
		ID:          f.ID,
		Name:        strings.TrimSpace(f.Name),
		Role:        strings.TrimSpace(f.Role),
		Description: strings.TrimSpace(f.Description),
		Avatar:      f.Avatar,
		Model:       f.Model,
		Parameters:  f.editor().Parameters(),
	}
}

// Save hands the finalized agent to onSave. While the form is invalid it
// returns false without calling onSave.
func (f *Form) Save(onSave SaveFunc) (bool, error) {
	if !f.Valid() {
		return false, nil
	}

	if err := onSave(f.Snapshot()); err != nil {
		return false, fmt.Errorf("agentform: save: %w", err)
	}

	return true, nil
}

// editor returns the weights editor, creating an empty one for a zero Form.
func (f *Form) editor() *weights.Editor {
	if f.Weights == nil {
		f.Weights = weights.NewEditor()
	}

	return f.Weights
}
