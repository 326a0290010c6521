package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file and the active storage.
func (r *ConfigRenderer) RenderConfigInfo(path, backend, storagePath string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config  %s\n  %s Storage %s %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		iconStyle.Render(IconDatabase),
		r.theme.MutedBadge(backend),
		pathStyle.Render(storagePath),
	)
}

// RenderOpening renders the "opening in editor" message.
func (r *ConfigRenderer) RenderOpening(path, editor string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Opening %s with %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Highlight.Render(editor),
	)
}

// RenderThemeSaved renders the confirmation after a theme change.
func (r *ConfigRenderer) RenderThemeSaved(mode string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Theme set to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(mode),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		r.theme.Subtle.Render("Config file will be created on first run with all defaults."),
	)
}
