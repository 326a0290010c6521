package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var confirmKeys = struct {
	accept, reject, toggle, submit key.Binding
}{
	accept: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	reject: key.NewBinding(key.WithKeys("n", "N", "esc", "q"), key.WithHelp("n/esc", "no")),
	toggle: key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab", "switch")),
	submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
}

// ConfirmModel asks a yes/no question before a destructive action.
// It starts on "No" and ends on the first y, n, esc or enter.
type ConfirmModel struct {
	theme    *Theme
	question string
	detail   string
	yes      bool
	answered bool
}

// NewConfirm creates a dialog for question. Optional detail lines are shown
// below it in muted text.
func NewConfirm(theme *Theme, question string, detail ...string) ConfirmModel {
	return ConfirmModel{theme: theme, question: question, detail: strings.Join(detail, "\n")}
}

// Update consumes key messages; other messages are ignored.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.answered {
		return m, nil
	}
	switch {
	case key.Matches(kmsg, confirmKeys.accept):
		m.yes, m.answered = true, true
	case key.Matches(kmsg, confirmKeys.reject):
		m.yes, m.answered = false, true
	case key.Matches(kmsg, confirmKeys.toggle):
		m.yes = !m.yes
	case key.Matches(kmsg, confirmKeys.submit):
		m.answered = true
	}
	return m, nil
}

// View renders the question, the two choices and a key hint.
func (m ConfirmModel) View() string {
	t := m.theme
	no, yes := t.ButtonActive, t.Button
	if m.yes {
		no, yes = t.Button, t.ButtonActive
	}

	rows := []string{t.Title.Render(m.question)}
	if m.detail != "" {
		rows = append(rows, t.Subtle.Render(m.detail))
	}
	rows = append(rows,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, no.Render(" No "), "  ", yes.Render(" Yes ")),
		"",
		t.Subtle.Render(confirmHint()),
	)
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func confirmHint() string {
	bindings := []key.Binding{confirmKeys.accept, confirmKeys.reject, confirmKeys.toggle, confirmKeys.submit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// Done reports whether the user has answered.
func (m ConfirmModel) Done() bool { return m.answered }

// Result reports whether the answer was yes.
func (m ConfirmModel) Result() bool { return m.answered && m.yes }
