package session

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	name     lipgloss.Style
	detail   lipgloss.Style
	role     lipgloss.Style
	navPath  lipgloss.Style
	navTitle lipgloss.Style
	empty    lipgloss.Style
	section  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		name:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		role:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		navPath:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		navTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:    lipgloss.NewStyle().Faint(true),
		section:  lipgloss.NewStyle().MarginTop(1),
	}
}
