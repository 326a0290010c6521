package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	ApplyInputTheme(&ti, theme)
	return ti
}

// NewSearchInput creates a search-specific input.
func NewSearchInput(theme *Theme) textinput.Model {
	ti := NewStyledInput(theme, "Search apps...")
	ti.Prompt = IconSearch + " "
	ti.CharLimit = 256
	return ti
}

// ApplyInputTheme restyles an existing input for theme.
func ApplyInputTheme(ti *textinput.Model, theme *Theme) {
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
}

// InputBox wraps a text input in a styled box.
func (t *Theme) InputBox(input string, focused bool) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	return style.Render(input)
}
