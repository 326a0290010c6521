package styles

import (
	"fmt"

	"github.com/bnema/webdeck/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// ModeBadge shows the active theme mode.
func (t *Theme) ModeBadge() string {
	return t.BadgeMuted.Render(fmt.Sprintf("%s %s", IconTheme, t.Mode))
}

// CountBadge renders "n/total" for a filtered list.
func (t *Theme) CountBadge(n, total int) string {
	if n == total {
		return t.BadgeMuted.Render(fmt.Sprintf("%d apps", total))
	}
	return t.Badge.Render(fmt.Sprintf("%d/%d", n, total))
}

// IconKindBadge tells whether a shortcut shows a favicon or a glyph.
func (t *Theme) IconKindBadge(s *entity.Shortcut) string {
	if s != nil && s.HasImageIcon() {
		return t.BadgeMuted.Render("favicon")
	}
	return t.BadgeMuted.Render("glyph")
}
