// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webdeck/internal/domain/entity"
)

// Palette is the set of base colors a theme is derived from.
type Palette struct {
	Background     string
	Surface        string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string
	Border         string
	Error          string
	Warning        string
}

var palettes = map[entity.ThemeMode]Palette{
	entity.ThemeLight: {
		Background:     "#fafafa",
		Surface:        "#f0f0f0",
		SurfaceVariant: "#e0e0e0",
		Text:           "#1a1a1b",
		Muted:          "#6b6b6b",
		Accent:         "#16a34a",
		Border:         "#cccccc",
		Error:          "#dc2626",
		Warning:        "#d97706",
	},
	entity.ThemeDark: {
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
		Error:          "#ef4444",
		Warning:        "#f59e0b",
	},
	entity.ThemeDim: {
		Background:     "#22272e",
		Surface:        "#2d333b",
		SurfaceVariant: "#373e47",
		Text:           "#adbac7",
		Muted:          "#768390",
		Accent:         "#6cb6ff",
		Border:         "#444c56",
		Error:          "#e5534b",
		Warning:        "#c69026",
	},
}

// PaletteFor returns the palette for mode. Unknown modes use dark.
func PaletteFor(mode entity.ThemeMode) Palette {
	if p, ok := palettes[mode]; ok {
		return p
	}
	return palettes[entity.ThemeDark]
}

// Theme holds lipgloss colors and styles for one ThemeMode.
type Theme struct {
	Mode entity.ThemeMode

	// Base colors
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemTitle    lipgloss.Style
	ListItemDesc     lipgloss.Style

	// Tiles in front of each launcher row.
	TileImage lipgloss.Style
	TileGlyph lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// NewTheme builds the theme for mode. Each call returns a fresh value.
func NewTheme(mode entity.ThemeMode) *Theme {
	if !mode.Valid() {
		mode = entity.ThemeDark
	}
	return NewThemeFromPalette(mode, PaletteFor(mode))
}

// NewThemeFromPalette creates a Theme from an explicit palette.
func NewThemeFromPalette(mode entity.ThemeMode, p Palette) *Theme {
	t := &Theme{
		Mode:           mode,
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          lipgloss.Color(p.Error),
		Warning:        lipgloss.Color(p.Warning),
		Success:        lipgloss.Color(p.Accent),
	}

	t.buildStyles()
	return t
}

// Toggle returns the theme for the next mode in the cycle.
func (t *Theme) Toggle() *Theme {
	return NewTheme(t.Mode.Next())
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	// Text styles
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	// Dialog buttons
	t.ButtonActive = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)

	t.Button = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 2)

	// List item styles
	t.ListItem = lipgloss.NewStyle().
		Foreground(t.Text).
		PaddingLeft(2)

	t.ListItemSelected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceVariant).
		PaddingLeft(2).
		Bold(true)

	t.ListItemTitle = lipgloss.NewStyle().
		Foreground(t.Text)

	t.ListItemDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.TileImage = lipgloss.NewStyle().
		Foreground(t.Accent).
		Width(3).
		Align(lipgloss.Center)

	t.TileGlyph = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Muted).
		Width(3).
		Align(lipgloss.Center).
		Bold(true)

	// Badge styles
	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	// Input styles
	t.Input = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.InputFocused = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	// Help styles
	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	// Box/container styles
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}
