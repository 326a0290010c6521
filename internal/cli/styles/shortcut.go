package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webdeck/internal/domain/entity"
)

// ShortcutRenderer renders the results of shortcut commands.
type ShortcutRenderer struct {
	theme *Theme
}

// NewShortcutRenderer creates a new shortcut renderer with the given theme.
func NewShortcutRenderer(theme *Theme) *ShortcutRenderer {
	return &ShortcutRenderer{theme: theme}
}

func (r *ShortcutRenderer) ok(icon, verb string, s *entity.Shortcut) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"%s %s %s %s %s",
		iconStyle.Render(icon),
		verb,
		r.theme.Highlight.Render(s.Name),
		r.theme.MutedBadge(fmt.Sprintf("#%d", s.ID)),
		r.theme.Subtle.Render(s.URL),
	)
}

// RenderAdded renders a newly created shortcut.
func (r *ShortcutRenderer) RenderAdded(s *entity.Shortcut) string {
	return r.ok(IconCheck, "Added", s)
}

// RenderUpdated renders an edited shortcut.
func (r *ShortcutRenderer) RenderUpdated(s *entity.Shortcut) string {
	return r.ok(IconCheck, "Updated", s)
}

// RenderRemoved renders a deleted shortcut.
func (r *ShortcutRenderer) RenderRemoved(s *entity.Shortcut) string {
	return r.ok(IconTrash, "Removed", s)
}

// RenderMoved renders a reordered shortcut.
func (r *ShortcutRenderer) RenderMoved(s *entity.Shortcut, index int) string {
	return fmt.Sprintf("%s %s", r.ok(IconArrow, "Moved", s), r.theme.AccentBadge(fmt.Sprintf("-> %d", index)))
}

// RenderOpened renders the window a shortcut was opened in.
func (r *ShortcutRenderer) RenderOpened(label, url string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf(
		"%s Opened %s %s",
		iconStyle.Render(IconGlobe),
		r.theme.Highlight.Render(url),
		r.theme.MutedBadge(label),
	)
}

// RenderImported renders an import summary.
func (r *ShortcutRenderer) RenderImported(added, skipped, removed int, source string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	out := fmt.Sprintf(
		"%s Imported %s shortcuts from %s",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", added)),
		r.theme.Subtle.Render(source),
	)
	if removed > 0 {
		out += " " + r.theme.MutedBadge(fmt.Sprintf("replaced %d", removed))
	}
	if skipped > 0 {
		out += " " + r.theme.WarningStyle.Render(fmt.Sprintf("(%d skipped)", skipped))
	}
	return out
}

// RenderExported renders an export summary.
func (r *ShortcutRenderer) RenderExported(count int, format, dest string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"%s Exported %s shortcuts as %s to %s",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
		r.theme.MutedBadge(format),
		r.theme.Subtle.Render(dest),
	)
}

// RenderDesktopInstalled renders the path of a written desktop entry.
func (r *ShortcutRenderer) RenderDesktopInstalled(s *entity.Shortcut, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"%s Desktop entry for %s written to %s",
		iconStyle.Render(IconDesktop),
		r.theme.Highlight.Render(s.Name),
		r.theme.Subtle.Render(path),
	)
}

// RenderDesktopRemoved renders the removal of a desktop entry.
func (r *ShortcutRenderer) RenderDesktopRemoved(id entity.ShortcutID) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("%s Desktop entry for #%d removed", iconStyle.Render(IconTrash), id)
}

// RenderPersistWarning renders a failed background save.
func (r *ShortcutRenderer) RenderPersistWarning(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf(
		"%s %s %v",
		iconStyle.Render(IconWarning),
		r.theme.WarningStyle.Render("Changes are kept in memory but could not be saved:"),
		err,
	)
}
