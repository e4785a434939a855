// Package chat is the interactive terminal widget for the NLT assistant.
package chat

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nhileteam/nlt-cli/internal/application"
	"github.com/nhileteam/nlt-cli/internal/domain"
)

type replyMsg struct {
	err error
}

type model struct {
	svc     *application.AssistantService
	input   textarea.Model
	spin    spinner.Model
	styles  styles
	pending bool
	err     error
}

func newChatModel(svc *application.AssistantService) model {
	input := textarea.New()
	input.Placeholder = "Ask me anything..."
	input.SetHeight(2)
	input.ShowLineNumbers = false
	input.Focus()

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return model{
		svc:    svc,
		input:  input,
		spin:   spin,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spin.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			// One turn in flight at a time; input stays disabled
			// until the reply lands.
			if m.pending {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			if _, err := m.svc.Submit(text); err != nil {
				m.err = err
				return m, nil
			}
			m.input.Reset()
			m.pending = true
			return m, replyCmd(m.svc)
		}
	case replyMsg:
		m.pending = false
		m.err = msg.err
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if m.pending {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	lines := []string{m.styles.title.Render("NLT Assistant"), ""}

	for _, message := range m.svc.Transcript() {
		lines = append(lines, renderMessage(message, m.styles))
	}

	if m.pending {
		lines = append(lines, m.styles.pending.Render(fmt.Sprintf("%s thinking...", m.spin.View())))
	}

	if m.err != nil {
		lines = append(lines, m.styles.help.Render(m.err.Error()))
	}

	lines = append(lines, "", m.input.View(), m.styles.help.Render("enter to send, esc to quit"))
	return strings.Join(lines, "\n")
}

func renderMessage(message domain.Message, s styles) string {
	switch message.Sender {
	case domain.SenderUser:
		return s.user.Render("you> ") + message.Content
	default:
		return s.assistant.Render("nlt> ") + message.Content
	}
}

// replyCmd resolves the pending turn off the UI goroutine. If the program
// quits first, bubbletea discards the resulting message.
func replyCmd(svc *application.AssistantService) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.Reply()
		return replyMsg{err: err}
	}
}

// Run drives the interactive widget until the user quits.
func Run(ctx context.Context, svc *application.AssistantService, output io.Writer) error {
	svc.Greet()

	p := tea.NewProgram(
		newChatModel(svc),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run chat widget: %w", err)
	}

	return nil
}
