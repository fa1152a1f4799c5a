package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/germanamz/agentdesk/pkg/catalog"
)

// Column widths in terminal cells.
const (
	colID     = 22
	colName   = 24
	colRole   = 26
	colModel  = 18
	colStatus = 10
	colNum    = 8
	colDesc   = 40
	colKind   = 6
)

func row(cols ...string) string {
	return strings.Join(cols, "  ")
}

// renderAgents writes the agents table.
func renderAgents(w io.Writer, agents []catalog.Agent) {
	if len(agents) == 0 {
		_, _ = fmt.Fprintln(w, dimStyle.Render("No agents match."))
		return
	}

	_, _ = fmt.Fprintln(w, headerStyle.Render(row(
		cell("ID", colID), cell("NAME", colName), cell("ROLE", colRole),
		cell("MODEL", colModel), cell("STATUS", colStatus), cell("WEIGHT", colNum), "TASKS",
	)))

	for _, a := range agents {
		name := a.Name
		if a.Avatar != "" {
			name = a.Avatar + " " + name
		}

		total := catalog.TotalWeight(a)
		weight := cell(fmt.Sprintf("%d%%", total), colNum)
		if total != 100 {
			weight = warningStyle.Render(weight)
		}

		_, _ = fmt.Fprintln(w, row(
			cell(a.ID, colID), cell(name, colName), cell(a.Role, colRole),
			cell(a.Model, colModel),
			statusStyle(string(a.Status)).Render(cell(string(a.Status), colStatus)),
			weight, strconv.Itoa(a.TasksCompleted),
		))
	}

	_, _ = fmt.Fprintln(w, dimStyle.Render(pluralize(len(agents), "agent")))
}

// renderProjects writes the projects table.
func renderProjects(w io.Writer, projects []catalog.Project) {
	if len(projects) == 0 {
		_, _ = fmt.Fprintln(w, dimStyle.Render("No projects match."))
		return
	}

	_, _ = fmt.Fprintln(w, headerStyle.Render(row(
		cell("ID", colID), cell("NAME", colName), cell("STATUS", colStatus),
		cell("AGENTS", colNum), cell("FILES", colNum), "DESCRIPTION",
	)))

	for _, p := range projects {
		_, _ = fmt.Fprintln(w, row(
			cell(p.ID, colID), cell(p.Name, colName),
			statusStyle(string(p.Status)).Render(cell(string(p.Status), colStatus)),
			cell(strconv.Itoa(len(p.AgentIDs)), colNum),
			cell(strconv.Itoa(len(p.Files)), colNum),
			truncate(p.Description, colDesc),
		))
	}

	_, _ = fmt.Fprintln(w, dimStyle.Render(pluralize(len(projects), "project")))
}

// renderFiles writes the files table for one project.
func renderFiles(w io.Writer, files []catalog.File) {
	if len(files) == 0 {
		_, _ = fmt.Fprintln(w, dimStyle.Render("No files match."))
		return
	}

	_, _ = fmt.Fprintln(w, headerStyle.Render(row(
		cell("NAME", colName+colRole), cell("KIND", colKind), cell("SIZE", colNum), "UPLOADED",
	)))

	for _, f := range files {
		_, _ = fmt.Fprintln(w, row(
			cell(f.Name, colName+colRole), cell(f.Kind, colKind),
			cell(fmt.Sprintf("%d KB", f.SizeKB), colNum), f.Uploaded,
		))
	}

	_, _ = fmt.Fprintln(w, dimStyle.Render(pluralize(len(files), "file")))
}
