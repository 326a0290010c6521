package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webdeck/internal/domain/entity"
	domainurl "github.com/bnema/webdeck/internal/domain/url"
)

// ShortcutItem is a launcher row backed by a shortcut.
type ShortcutItem struct {
	Shortcut *entity.Shortcut
	Score    float64 // zero when the list is unranked
}

// FilterValue implements list.Item.
func (i ShortcutItem) FilterValue() string {
	if i.Shortcut == nil {
		return ""
	}
	return i.Shortcut.Name + " " + i.Shortcut.URL
}

// Tile returns the text shown in the icon tile: an image marker for
// favicon icons, the glyph itself otherwise.
func (i ShortcutItem) Tile() string {
	if i.Shortcut == nil {
		return ""
	}
	if i.Shortcut.HasImageIcon() {
		return IconGlobe
	}
	return i.Shortcut.Icon
}

// ShortcutItems wraps shortcuts as list items.
func ShortcutItems(shortcuts []*entity.Shortcut) []list.Item {
	items := make([]list.Item, 0, len(shortcuts))
	for _, s := range shortcuts {
		if s == nil {
			continue
		}
		items = append(items, ShortcutItem{Shortcut: s})
	}
	return items
}

// ShortcutDelegate renders shortcut rows with theme styling.
type ShortcutDelegate struct {
	Theme *Theme
}

// NewShortcutDelegate creates a themed shortcut list delegate.
func NewShortcutDelegate(theme *Theme) ShortcutDelegate {
	return ShortcutDelegate{Theme: theme}
}

// Height returns the height of each item.
func (d ShortcutDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d ShortcutDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d ShortcutDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d ShortcutDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(ShortcutItem)
	if !ok || si.Shortcut == nil {
		return
	}

	t := d.Theme
	isSelected := index == m.Index()
	const (
		maxNameLength = 48
		maxURLLength  = 60
	)

	tileStyle := t.TileGlyph
	if si.Shortcut.HasImageIcon() {
		tileStyle = t.TileImage
	}

	cursor := cursorEmpty
	if isSelected {
		cursor = cursorSelected
	}

	nameStyle := t.ListItemTitle
	urlStyle := t.ListItemDesc
	if isSelected {
		nameStyle = nameStyle.Foreground(t.Accent).Bold(true)
		urlStyle = urlStyle.Foreground(t.Text)
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		tileStyle.Render(si.Tile()),
		" ",
		nameStyle.Render(Truncate(si.Shortcut.Name, maxNameLength)),
	)

	host := si.Shortcut.URL
	if h, err := domainurl.Hostname(si.Shortcut.URL); err == nil {
		host = h
	}
	line2 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		strings.Repeat(" ", 6), // under the name
		urlStyle.Render(Truncate(host, maxURLLength)),
		" ",
		t.MutedBadge(fmt.Sprintf("#%d", si.Shortcut.ID)),
	)

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewShortcutList creates a themed list for the launcher.
func NewShortcutList(theme *Theme, shortcuts []*entity.Shortcut, width, height int) list.Model {
	l := list.New(ShortcutItems(shortcuts), NewShortcutDelegate(theme), width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	ApplyListTheme(&l, theme)
	return l
}

// ApplyListTheme restyles an existing list for theme.
func ApplyListTheme(l *list.Model, theme *Theme) {
	l.SetDelegate(NewShortcutDelegate(theme))
	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.NoItems = theme.Subtle.PaddingLeft(2)
}

// Truncate shortens s to max runes, ending with "...".
func Truncate(s string, limit int) string {
	const ellipsis = "..."
	r := []rune(s)
	if limit <= len(ellipsis) || len(r) <= limit {
		return s
	}
	return string(r[:limit-len(ellipsis)]) + ellipsis
}
