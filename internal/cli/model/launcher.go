// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/application/usecase"
	"github.com/bnema/webdeck/internal/cli/styles"
	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/logging"
)

// ShortcutRemover is the part of the store the launcher mutates.
type ShortcutRemover interface {
	Remove(ctx context.Context, id entity.ShortcutID) bool
}

// ShortcutSearcher ranks the collection for a query.
type ShortcutSearcher interface {
	Search(ctx context.Context, input usecase.SearchShortcutsInput) *usecase.SearchShortcutsOutput
}

// ShortcutOpener opens a shortcut in its app window.
type ShortcutOpener interface {
	Open(ctx context.Context, id entity.ShortcutID) (port.AppWindow, error)
}

// ThemeSaver persists the chosen theme mode. It may be nil.
type ThemeSaver func(mode entity.ThemeMode) error

// LauncherDeps groups the launcher collaborators.
type LauncherDeps struct {
	Store     ShortcutRemover
	Search    ShortcutSearcher
	Open      ShortcutOpener
	SaveTheme ThemeSaver
}

// ConfigChangedMsg carries a reloaded configuration into a running launcher.
type ConfigChangedMsg struct {
	Theme entity.ThemeMode
}

// shortcutOpenedMsg is sent when an open request completes.
type shortcutOpenedMsg struct {
	name  string
	label string
	err   error
}

// themeSavedMsg is sent when the theme has been written to the config.
type themeSavedMsg struct {
	mode entity.ThemeMode
	err  error
}

// LauncherModel is the interactive shortcut launcher.
type LauncherModel struct {
	// UI components
	list   list.Model
	search textinput.Model
	help   help.Model
	keys   styles.LauncherKeyMap

	// State
	theme    *styles.Theme
	query    string
	total    int
	status   string
	statusOK bool
	showHelp bool
	width    int
	height   int

	// Dependencies
	ctx  context.Context
	deps LauncherDeps
}

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 7 // title, search box, status and help lines
)

// NewLauncherModel creates the launcher with mode as the initial theme.
func NewLauncherModel(ctx context.Context, mode entity.ThemeMode, deps LauncherDeps) LauncherModel {
	log := logging.FromContext(ctx)
	log.Debug().Str("theme", string(mode)).Msg("creating launcher model")

	theme := styles.NewTheme(mode)
	search := styles.NewSearchInput(theme)
	search.Focus()

	m := LauncherModel{
		list:   styles.NewShortcutList(theme, nil, defaultWidth, defaultHeight-chromeHeight),
		search: search,
		help:   styles.NewStyledHelp(theme),
		keys:   styles.DefaultLauncherKeyMap(),
		theme:  theme,
		width:  defaultWidth,
		height: defaultHeight,
		ctx:    ctx,
		deps:   deps,
	}
	m.refresh()
	return m
}

// Theme returns the active theme.
func (m LauncherModel) Theme() *styles.Theme { return m.theme }

// Query returns the current search text.
func (m LauncherModel) Query() string { return m.query }

// Status returns the last status line.
func (m LauncherModel) Status() string { return m.status }

// Visible returns the shortcuts currently listed, in display order.
func (m LauncherModel) Visible() []*entity.Shortcut {
	items := m.list.Items()
	out := make([]*entity.Shortcut, 0, len(items))
	for _, it := range items {
		if si, ok := it.(styles.ShortcutItem); ok {
			out = append(out, si.Shortcut)
		}
	}
	return out
}

// Selected returns the highlighted shortcut, if any.
func (m LauncherModel) Selected() (*entity.Shortcut, bool) {
	si, ok := m.list.SelectedItem().(styles.ShortcutItem)
	if !ok || si.Shortcut == nil {
		return nil, false
	}
	return si.Shortcut, true
}

// Init implements tea.Model.
func (m LauncherModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m LauncherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case shortcutOpenedMsg:
		return m.handleOpened(msg)
	case themeSavedMsg:
		return m.handleThemeSaved(msg)
	case ConfigChangedMsg:
		return m.handleConfigChanged(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m LauncherModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.list.SetSize(msg.Width, max(msg.Height-chromeHeight, 2))
	m.help.Width = msg.Width
	return m, nil
}

func (m LauncherModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.list.CursorUp()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.list.CursorDown()
		return m, nil
	case key.Matches(msg, m.keys.Open):
		return m, m.openSelected()
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.query {
		m.query = v
		m.refresh()
	}
	return m, cmd
}

// refresh re-runs the search and keeps the cursor in range.
func (m *LauncherModel) refresh() {
	if m.deps.Search == nil {
		return
	}
	out := m.deps.Search.Search(m.ctx, usecase.SearchShortcutsInput{Query: m.query})
	items := make([]list.Item, 0, len(out.Matches))
	for _, match := range out.Matches {
		items = append(items, styles.ShortcutItem{Shortcut: match.Shortcut, Score: match.Score})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	m.total = out.Total
	switch {
	case len(items) == 0:
		m.list.ResetSelected()
	case idx >= len(items):
		m.list.Select(len(items) - 1)
	case m.query != "":
		// best match first
		m.list.Select(0)
	}
}

func (m LauncherModel) openSelected() tea.Cmd {
	s, ok := m.Selected()
	if !ok || m.deps.Open == nil {
		return nil
	}
	ctx := m.ctx
	opener := m.deps.Open
	id, name := s.ID, s.Name
	return func() tea.Msg {
		win, err := opener.Open(ctx, id)
		if err != nil {
			return shortcutOpenedMsg{name: name, err: err}
		}
		return shortcutOpenedMsg{name: name, label: win.Label()}
	}
}

func (m LauncherModel) deleteSelected() (tea.Model, tea.Cmd) {
	s, ok := m.Selected()
	if !ok || m.deps.Store == nil {
		return m, nil
	}
	// Unknown ids are a silent no-op here.
	if m.deps.Store.Remove(m.ctx, s.ID) {
		m.setStatus(fmt.Sprintf("Removed %s", s.Name), true)
	}
	m.refresh()
	return m, nil
}

func (m LauncherModel) toggleTheme() (tea.Model, tea.Cmd) {
	m.applyTheme(m.theme.Toggle())
	m.setStatus(fmt.Sprintf("Theme: %s", m.theme.Mode), true)

	save := m.deps.SaveTheme
	if save == nil {
		return m, nil
	}
	mode := m.theme.Mode
	return m, func() tea.Msg {
		return themeSavedMsg{mode: mode, err: save(mode)}
	}
}

func (m LauncherModel) handleOpened(msg shortcutOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logging.FromContext(m.ctx).Warn().Err(msg.err).Str("shortcut", msg.name).Msg("launcher open failed")
		m.setStatus(openErrorText(msg.name, msg.err), false)
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Opened %s (%s)", msg.name, msg.label), true)
	return m, nil
}

func openErrorText(name string, err error) string {
	if errors.Is(err, entity.ErrShortcutNotFound) {
		return fmt.Sprintf("%s no longer exists", name)
	}
	return fmt.Sprintf("Could not open %s: %v", name, err)
}

func (m LauncherModel) handleThemeSaved(msg themeSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logging.FromContext(m.ctx).Warn().Err(msg.err).Str("theme", string(msg.mode)).Msg("failed to save theme")
	}
	return m, nil
}

func (m LauncherModel) handleConfigChanged(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	mode := entity.ParseThemeMode(string(msg.Theme))
	if mode != m.theme.Mode {
		m.applyTheme(styles.NewTheme(mode))
	}
	return m, nil
}

// applyTheme swaps the theme and restyles every component.
func (m *LauncherModel) applyTheme(theme *styles.Theme) {
	m.theme = theme
	styles.ApplyListTheme(&m.list, theme)
	styles.ApplyInputTheme(&m.search, theme)
	styles.ApplyHelpTheme(&m.help, theme)
}

func (m *LauncherModel) setStatus(text string, ok bool) {
	m.status = text
	m.statusOK = ok
}

// View implements tea.Model.
func (m LauncherModel) View() string {
	t := m.theme

	title := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Title.Render("webdeck"),
		" ",
		t.CountBadge(len(m.list.Items()), m.total),
		" ",
		t.ModeBadge(),
	)

	searchBox := t.InputBox(m.search.View(), true)

	status := ""
	if m.status != "" {
		if m.statusOK {
			status = t.SuccessStyle.Render(m.status)
		} else {
			status = t.ErrorStyle.Render(m.status)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		searchBox,
		m.list.View(),
		status,
		m.help.View(m.keys),
	)
}
