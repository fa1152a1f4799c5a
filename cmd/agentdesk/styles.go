package main

import "github.com/charmbracelet/lipgloss"

// GitHub terminal light theme palette.
var (
	colorFg      = lipgloss.Color("#24292f")
	colorMuted   = lipgloss.Color("#656d76")
	colorAccent  = lipgloss.Color("#0969da")
	colorError   = lipgloss.Color("#cf222e")
	colorSuccess = lipgloss.Color("#1a7f37")
	colorWarning = lipgloss.Color("#9a6700")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorFg)
	dimStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	tabActive     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true)
	tabInactive   = lipgloss.NewStyle().Foreground(colorMuted)

	searchBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	idleBorder   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
	detailBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
)

// statusStyle colours a record status for display.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "active":
		return successStyle
	case "draft", "on_hold":
		return warningStyle
	default:
		return dimStyle
	}
}
