package styles

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/domain/search"
)

const (
	maxTableName = 32
	maxTableURL  = 48
)

// NewStyledTable creates a themed static table.
func NewStyledTable(theme *Theme, headers ...string) *table.Table {
	header := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	muted := cell.Foreground(theme.Muted)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return muted
			default:
				return cell
			}
		})
}

// RenderShortcutTable renders shortcuts in storage order.
func RenderShortcutTable(theme *Theme, shortcuts []*entity.Shortcut) string {
	if len(shortcuts) == 0 {
		return theme.Subtle.Render("No shortcuts")
	}

	t := NewStyledTable(theme, "#", "ID", "Name", "URL", "Icon")
	for i, s := range shortcuts {
		t.Row(
			strconv.Itoa(i),
			strconv.FormatInt(int64(s.ID), 10),
			Truncate(s.Name, maxTableName),
			Truncate(s.URL, maxTableURL),
			iconCell(s),
		)
	}
	return t.Render()
}

// RenderMatchTable renders ranked search results with their score.
func RenderMatchTable(theme *Theme, matches []search.Match) string {
	if len(matches) == 0 {
		return theme.Subtle.Render("No matches")
	}

	t := NewStyledTable(theme, "Score", "ID", "Name", "URL")
	for _, m := range matches {
		t.Row(
			strconv.FormatFloat(m.Score, 'f', 2, 64),
			strconv.FormatInt(int64(m.Shortcut.ID), 10),
			Truncate(m.Shortcut.Name, maxTableName),
			Truncate(m.Shortcut.URL, maxTableURL),
		)
	}
	return t.Render()
}

func iconCell(s *entity.Shortcut) string {
	if s.HasImageIcon() {
		return "favicon"
	}
	return s.Icon
}
