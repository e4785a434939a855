package session

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nhileteam/nlt-cli/internal/authz"
	"github.com/nhileteam/nlt-cli/internal/domain"
)

func renderView(session domain.Session, nav []authz.ResourceRule, s styles) string {
	lines := []string{
		s.title.Render("NLT System"),
	}

	if !session.Authenticated() {
		lines = append(lines, s.empty.Render("Not logged in."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.section.Render(renderIdentity(*session.Identity, s)))

	if nav != nil {
		lines = append(lines, s.section.Render(renderNav(nav, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderIdentity(identity domain.Identity, s styles) string {
	parts := []string{
		s.name.Render(fmt.Sprintf("%s (%s)", identity.Name, identity.ID)),
		s.detail.Render(identity.Email),
		s.role.Render(fmt.Sprintf("role: %s", identity.Role)),
	}

	if identity.TeamID != "" {
		parts = append(parts, s.detail.Render(fmt.Sprintf("team: %s", identity.TeamID)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderNav(nav []authz.ResourceRule, s styles) string {
	if len(nav) == 0 {
		return s.empty.Render("No visible resources.")
	}

	parts := make([]string, 0, len(nav))
	for _, rule := range nav {
		parts = append(parts, fmt.Sprintf("%s  %s",
			s.navPath.Render(fmt.Sprintf("%-12s", rule.Path)),
			s.navTitle.Render(rule.Title)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
