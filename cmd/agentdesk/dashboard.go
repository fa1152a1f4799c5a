package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/germanamz/agentdesk/pkg/catalog"
)

type dashTab int

const (
	tabAgents dashTab = iota
	tabProjects
)

func (t dashTab) String() string {
	if t == tabProjects {
		return "Projects"
	}
	return "Agents"
}

type dashKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Tab    key.Binding
	Search key.Binding
	Detail key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var dashKeys = dashKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Tab:    key.NewBinding(key.WithKeys("tab")),
	Search: key.NewBinding(key.WithKeys("/")),
	Detail: key.NewBinding(key.WithKeys("enter")),
	Back:   key.NewBinding(key.WithKeys("esc")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

// markdownFunc renders the detail pane. Tests inject a plain pass-through.
type markdownFunc func(md string, width int) string

// dashboardModel lists agents and projects with a live search filter.
type dashboardModel struct {
	catalog    *catalog.Catalog
	render     markdownFunc
	tab        dashTab
	search     textinput.Model
	cursor     int
	showDetail bool
	width      int
}

func newDashboardModel(c *catalog.Catalog, render markdownFunc) dashboardModel {
	ti := textinput.New()
	ti.Placeholder = "Search…"
	ti.Prompt = "/ "
	ti.CharLimit = 80

	return dashboardModel{
		catalog: c,
		render:  render,
		search:  ti,
		width:   100,
	}
}

func (m dashboardModel) Init() tea.Cmd { return nil }

func (m dashboardModel) agents() []catalog.Agent {
	return m.catalog.Agents(catalog.MatchText[catalog.Agent](m.search.Value()))
}

func (m dashboardModel) projects() []catalog.Project {
	return m.catalog.Projects(catalog.MatchText[catalog.Project](m.search.Value()))
}

func (m dashboardModel) count() int {
	if m.tab == tabProjects {
		return len(m.projects())
	}
	return len(m.agents())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m dashboardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.search.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	m.showDetail = false

	return m, cmd
}

func (m dashboardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, dashKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, dashKeys.Search):
		m.showDetail = false
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, dashKeys.Tab):
		m.tab = (m.tab + 1) % 2
		m.cursor = 0
		m.showDetail = false
	case key.Matches(msg, dashKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, dashKeys.Down):
		if m.cursor < m.count()-1 {
			m.cursor++
		}
	case key.Matches(msg, dashKeys.Detail):
		m.showDetail = !m.showDetail && m.count() > 0
	case key.Matches(msg, dashKeys.Back):
		if m.showDetail {
			m.showDetail = false
		} else {
			m.search.SetValue("")
			m.cursor = 0
		}
	}

	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("agentdesk") + "  ")
	for _, t := range []dashTab{tabAgents, tabProjects} {
		style := tabInactive
		if t == m.tab {
			style = tabActive
		}
		b.WriteString(style.Render(t.String()) + "  ")
	}
	b.WriteString("\n")

	box := idleBorder
	if m.search.Focused() {
		box = searchBorder
	}
	b.WriteString(box.Render(m.search.View()) + "\n")

	if m.tab == tabProjects {
		m.viewProjects(&b)
	} else {
		m.viewAgents(&b)
	}

	b.WriteString(dimStyle.Render("tab switch · / search · ↑↓ move · enter details · esc back · q quit"))

	return b.String()
}

func (m dashboardModel) viewAgents(b *strings.Builder) {
	agents := m.agents()
	if len(agents) == 0 {
		b.WriteString(dimStyle.Render("No agents match.") + "\n")
		return
	}

	for i, a := range agents {
		line := fmt.Sprintf("%s %s %s", cell(a.Name, colName), cell(a.Role, colRole),
			statusStyle(string(a.Status)).Render(string(a.Status)))
		b.WriteString(m.cursorLine(i, line))
	}

	if m.showDetail && m.cursor < len(agents) {
		b.WriteString(detailBorder.Render(m.render(agentMarkdown(agents[m.cursor]), m.width-4)) + "\n")
	}
}

func (m dashboardModel) viewProjects(b *strings.Builder) {
	projects := m.projects()
	if len(projects) == 0 {
		b.WriteString(dimStyle.Render("No projects match.") + "\n")
		return
	}

	for i, p := range projects {
		line := fmt.Sprintf("%s %s %s", cell(p.Name, colName), cell(pluralize(len(p.Files), "file"), colNum),
			statusStyle(string(p.Status)).Render(string(p.Status)))
		b.WriteString(m.cursorLine(i, line))
	}

	if m.showDetail && m.cursor < len(projects) {
		b.WriteString(detailBorder.Render(m.render(projectMarkdown(projects[m.cursor]), m.width-4)) + "\n")
	}
}

func (m dashboardModel) cursorLine(i int, line string) string {
	if i == m.cursor {
		return selectedStyle.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

// agentMarkdown describes an agent for the detail pane.
func agentMarkdown(a catalog.Agent) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s %s\n\n", a.Avatar, a.Name)
	fmt.Fprintf(&b, "**%s** · `%s` · %s · %d tasks completed\n\n", a.Role, a.Model, a.Status, a.TasksCompleted)
	fmt.Fprintf(&b, "%s\n\n", a.Description)

	b.WriteString("| Parameter | Value | Weight |\n|---|---|---|\n")
	for _, p := range a.Parameters {
		fmt.Fprintf(&b, "| %s | %s | %d%% |\n", p.Name, p.Value, p.Weight)
	}

	total := catalog.TotalWeight(a)
	fmt.Fprintf(&b, "\nTotal weight: **%d%%**\n", total)
	if total != 100 {
		b.WriteString("\n> Total weight must equal 100%\n")
	}

	return b.String()
}

// projectMarkdown describes a project for the detail pane.
func projectMarkdown(p catalog.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n_%s_\n\n%s\n\n", p.Name, p.Status, p.Description)

	if len(p.AgentIDs) > 0 {
		b.WriteString("## Agents\n\n")
		for _, id := range p.AgentIDs {
			fmt.Fprintf(&b, "- `%s`\n", id)
		}
		b.WriteString("\n")
	}

	if len(p.Files) > 0 {
		b.WriteString("## Files\n\n| Name | Kind | Size | Uploaded |\n|---|---|---|---|\n")
		for _, f := range p.Files {
			fmt.Fprintf(&b, "| %s | %s | %d KB | %s |\n", f.Name, f.Kind, f.SizeKB, f.Uploaded)
		}
	}

	return b.String()
}

// renderMarkdown renders md with glamour's light style, falling back to the
// raw text if rendering fails. The style is fixed because auto-detection
// queries the terminal while bubbletea owns it.
func renderMarkdown(md string, width int) string {
	if width <= 20 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(glamourstyles.LightStyleConfig),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}

	return strings.TrimRight(out, "\n")
}
