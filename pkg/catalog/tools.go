package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/germanamz/agentdesk/pkg/tools/toolbox"
)

// Tools returns a read-only ToolBox over the catalog: agents_list,
// agents_get, projects_list and project_files. Results are JSON.
func (c *Catalog) Tools() *toolbox.ToolBox {
	tb := toolbox.New()

	tb.Register(
		toolbox.Tool{
			Name:        "agents_list",
			Description: "List agents, optionally filtered by a case-insensitive text query and status (active, inactive, draft).",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"query":{"type":"string"},"status":{"type":"string","enum":["active","inactive","draft"]}}}`),
			Handler:     c.handleAgentsList,
		},
		toolbox.Tool{
			Name:        "agents_get",
			Description: "Get one agent, including its weighted parameters, by ID.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"id":{"type":"string"}},"required":["id"]}`),
			Handler:     c.handleAgentsGet,
		},
		toolbox.Tool{
			Name:        "projects_list",
			Description: "List projects, optionally filtered by a text query, status (active, completed, on_hold) and assigned agent ID.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"query":{"type":"string"},"status":{"type":"string","enum":["active","completed","on_hold"]},"agent_id":{"type":"string"}}}`),
			Handler:     c.handleProjectsList,
		},
		toolbox.Tool{
			Name:        "project_files",
			Description: "List the files of a project, optionally filtered by a text query and file kind.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"project_id":{"type":"string"},"query":{"type":"string"},"kind":{"type":"string"}},"required":["project_id"]}`),
			Handler:     c.handleProjectFiles,
		},
	)

	return tb
}

type listInput struct {
	Query   string `json:"query"`
	Status  string `json:"status"`
	AgentID string `json:"agent_id"`
}

type idInput struct {
	ID string `json:"id"`
}

type filesInput struct {
	ProjectID string `json:"project_id"`
	Query     string `json:"query"`
	Kind      string `json:"kind"`
}

func (c *Catalog) handleAgentsList(_ context.Context, input json.RawMessage) (string, error) {
	var in listInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("agents_list: invalid input: %w", err)
	}

	return encode(c.Agents(MatchText[Agent](in.Query), AgentStatusIs(AgentStatus(in.Status))))
}

func (c *Catalog) handleAgentsGet(_ context.Context, input json.RawMessage) (string, error) {
	var in idInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("agents_get: invalid input: %w", err)
	}

	if in.ID == "" {
		return "", fmt.Errorf("agents_get: id is required")
	}

	a, err := c.Agent(in.ID)
	if err != nil {
		return "", err
	}

	return encode(a)
}

func (c *Catalog) handleProjectsList(_ context.Context, input json.RawMessage) (string, error) {
	var in listInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("projects_list: invalid input: %w", err)
	}

	preds := []Predicate[Project]{
		MatchText[Project](in.Query),
		ProjectStatusIs(ProjectStatus(in.Status)),
	}
	if in.AgentID != "" {
		preds = append(preds, UsesAgent(in.AgentID))
	}

	return encode(c.Projects(preds...))
}

func (c *Catalog) handleProjectFiles(_ context.Context, input json.RawMessage) (string, error) {
	var in filesInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("project_files: invalid input: %w", err)
	}

	if in.ProjectID == "" {
		return "", fmt.Errorf("project_files: project_id is required")
	}

	files, err := c.Files(in.ProjectID, MatchText[File](in.Query), FileKindIs(in.Kind))
	if err != nil {
		return "", err
	}

	return encode(files)
}

func encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}

	return string(b), nil
}
