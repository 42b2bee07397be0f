package tui

import (
	"github.com/charmbracelet/lipgloss"

	"todo-tracker/internal/config"
)

type styles struct {
	app       lipgloss.Style
	title     lipgloss.Style
	dayHeader lipgloss.Style
	selected  lipgloss.Style
	complete  lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	label     lipgloss.Style
	status    lipgloss.Style
	err       lipgloss.Style
}

func newStyles(c config.Colors) styles {
	return styles{
		app:       lipgloss.NewStyle().Padding(1, 2),
		title:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Primary)).Bold(true),
		dayHeader: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Secondary)).Bold(true),
		selected:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)).Bold(true),
		complete:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241")),
		activeTab: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(c.Primary)).Underline(true),
		label:     lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color(c.Secondary)),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		err:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
