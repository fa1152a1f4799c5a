// Package catalog holds the desk's agent and project records. The data is
// mock data: a static table from Default, optionally replaced by the agents
// and projects listed in the config file. Catalog is the stand-in for a
// persistence layer; PutAgent is what the agent form saves into.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/germanamz/agentdesk/pkg/agentform"
	"github.com/germanamz/agentdesk/pkg/weights"
)

// ErrNotFound is returned when a record ID is unknown.
var ErrNotFound = errors.New("not found")

// AgentStatus is the lifecycle state shown next to an agent.
type AgentStatus string

const (
	AgentActive   AgentStatus = "active"
	AgentInactive AgentStatus = "inactive"
	AgentDraft    AgentStatus = "draft"
)

// ProjectStatus is the lifecycle state shown next to a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on_hold"
)

// Agent is a display record for an automated assistant.
type Agent struct {
	agentform.Agent `yaml:",inline" json:",inline"`

	Status         AgentStatus `yaml:"status" json:"status"`
	TasksCompleted int         `yaml:"tasks_completed" json:"tasks_completed"`
}

// SearchText implements Searchable.
func (a Agent) SearchText() []string {
	return []string{a.Name, a.Role, a.Description, a.Model}
}

// File is an uploaded document attached to a project.
type File struct {
	Name     string `yaml:"name" json:"name"`
	Kind     string `yaml:"kind" json:"kind"`
	SizeKB   int    `yaml:"size_kb" json:"size_kb"`
	Uploaded string `yaml:"uploaded" json:"uploaded"`
}

// SearchText implements Searchable.
func (f File) SearchText() []string {
	return []string{f.Name, f.Kind}
}

// Project groups files and the agents working on them.
type Project struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description" json:"description"`
	Status      ProjectStatus `yaml:"status" json:"status"`
	AgentIDs    []string      `yaml:"agents,omitempty" json:"agents,omitempty"`
	Files       []File        `yaml:"files,omitempty" json:"files,omitempty"`
}

// SearchText implements Searchable.
func (p Project) SearchText() []string {
	return []string{p.Name, p.Description}
}

// Catalog is a thread-safe, ordered collection of agents and projects.
type Catalog struct {
	mu       sync.RWMutex
	agents   []Agent
	projects []Project
}

// New creates a catalog over copies of agents and projects.
func New(agents []Agent, projects []Project) *Catalog {
	c := &Catalog{}

	for _, a := range agents {
		c.agents = append(c.agents, copyAgent(a))
	}

	for _, p := range projects {
		c.projects = append(c.projects, copyProject(p))
	}

	return c
}

// Agents returns the agents matching every predicate, in catalog order.
func (c *Catalog) Agents(preds ...Predicate[Agent]) []Agent {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := Filter(c.agents, preds...)
	for i := range out {
		out[i] = copyAgent(out[i])
	}

	return out
}

// Agent returns the agent with the given ID.
func (c *Catalog) Agent(id string) (Agent, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.agentIndex(id)
	if i < 0 {
		return Agent{}, fmt.Errorf("catalog: agent %q: %w", id, ErrNotFound)
	}

	return copyAgent(c.agents[i]), nil
}

// PutAgent stores a saved agent form. An existing agent keeps its status
// and counters; a new agent is added as a draft. Agents without an ID get
// one derived from their name. The stored record is returned.
func (c *Catalog) PutAgent(a agentform.Agent) (Agent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, err := c.recordLocked(a)
	if err != nil {
		return Agent{}, err
	}

	c.putLocked(rec)

	return copyAgent(rec), nil
}

// Record returns the record PutAgent would store for a, without storing it.
// Callers that persist elsewhere first use it together with Put.
func (c *Catalog) Record(a agentform.Agent) (Agent, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.recordLocked(a)
}

// Put stores rec, replacing the agent with the same ID.
func (c *Catalog) Put(rec Agent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.putLocked(copyAgent(rec))
}

func (c *Catalog) recordLocked(a agentform.Agent) (Agent, error) {
	if strings.TrimSpace(a.Name) == "" {
		return Agent{}, fmt.Errorf("catalog: agent name is required")
	}

	if a.ID == "" {
		a.ID = c.uniqueIDLocked(Slug(a.Name))
	}

	a.Parameters = slices.Clone(a.Parameters)

	if i := c.agentIndex(a.ID); i >= 0 {
		rec := c.agents[i]
		rec.Agent = a
		return rec, nil
	}

	return Agent{Agent: a, Status: AgentDraft}, nil
}

func (c *Catalog) putLocked(rec Agent) {
	if i := c.agentIndex(rec.ID); i >= 0 {
		c.agents[i] = rec
		return
	}

	c.agents = append(c.agents, rec)
}

// Projects returns the projects matching every predicate, in catalog order.
func (c *Catalog) Projects(preds ...Predicate[Project]) []Project {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := Filter(c.projects, preds...)
	for i := range out {
		out[i] = copyProject(out[i])
	}

	return out
}

// Project returns the project with the given ID.
func (c *Catalog) Project(id string) (Project, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.projects {
		if p.ID == id {
			return copyProject(p), nil
		}
	}

	return Project{}, fmt.Errorf("catalog: project %q: %w", id, ErrNotFound)
}

// Files returns the files of a project matching every predicate.
func (c *Catalog) Files(projectID string, preds ...Predicate[File]) ([]File, error) {
	p, err := c.Project(projectID)
	if err != nil {
		return nil, err
	}

	return Filter(p.Files, preds...), nil
}

func (c *Catalog) agentIndex(id string) int {
	return slices.IndexFunc(c.agents, func(a Agent) bool { return a.ID == id })
}

func (c *Catalog) uniqueIDLocked(base string) string {
	if base == "" {
		base = "agent"
	}

	id := base
	for n := 2; c.agentIndex(id) >= 0; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}

	return id
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases name and joins its alphanumeric runs with dashes.
func Slug(name string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

func copyAgent(a Agent) Agent {
	a.Parameters = slices.Clone(a.Parameters)
	return a
}

func copyProject(p Project) Project {
	p.AgentIDs = slices.Clone(p.AgentIDs)
	p.Files = slices.Clone(p.Files)
	return p
}

// TotalWeight sums the parameter weights of a. It mirrors weights.Editor.Total
// for records that are not being edited.
func TotalWeight(a Agent) int {
	return weights.NewEditor(a.Parameters...).Total()
}
