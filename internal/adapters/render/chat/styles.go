package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	pending   lipgloss.Style
	help      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		user:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		assistant: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		help:      lipgloss.NewStyle().Faint(true),
	}
}
