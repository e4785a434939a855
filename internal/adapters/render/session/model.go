package session

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nhileteam/nlt-cli/internal/authz"
	"github.com/nhileteam/nlt-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	session domain.Session
	nav     []authz.ResourceRule
	styles  styles
	output  string
}

func newModel(session domain.Session, nav []authz.ResourceRule) model {
	return model{
		session: session,
		nav:     nav,
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.session, m.nav, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render produces the whoami/nav output for a session. The nav slice may be
// nil to render the identity card alone.
func Render(session domain.Session, nav []authz.ResourceRule) (string, error) {
	p := tea.NewProgram(
		newModel(session, nav),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
