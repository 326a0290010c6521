package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// LauncherKeyMap defines keybindings for the launcher.
// Letters go to the search box, so actions sit on control keys.
type LauncherKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Delete key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var _ KeyMap = LauncherKeyMap{}

// ShortHelp returns keybindings to show in compact help.
func (k LauncherKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Delete, k.Theme, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k LauncherKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Delete, k.Theme},
		{k.Help, k.Quit},
	}
}

// DefaultLauncherKeyMap returns the default launcher keybindings.
func DefaultLauncherKeyMap() LauncherKeyMap {
	return LauncherKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "delete"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("C-g", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	ApplyHelpTheme(&h, theme)
	return h
}

// ApplyHelpTheme restyles an existing help model for theme.
func ApplyHelpTheme(h *help.Model, theme *Theme) {
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
}
