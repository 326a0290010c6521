package model

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/application/port/mocks"
	"github.com/bnema/webdeck/internal/application/usecase"
	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/domain/search"
	"github.com/bnema/webdeck/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fakeWindow struct {
	port.AppWindow
	label string
}

func (w *fakeWindow) Label() string { return w.label }

type launcherFixture struct {
	store   *usecase.ManageShortcutsUseCase
	windows *mocks.MockWindowManager
	saved   []entity.ThemeMode
}

func newLauncher(t *testing.T, mode entity.ThemeMode) (LauncherModel, *launcherFixture) {
	t.Helper()
	ctx := testContext()

	f := &launcherFixture{
		store:   usecase.NewManageShortcutsUseCase(nil, nil),
		windows: mocks.NewMockWindowManager(t),
	}
	deps := LauncherDeps{
		Store:  f.store,
		Search: usecase.NewSearchShortcutsUseCase(f.store, search.DefaultConfig()),
		Open:   usecase.NewOpenShortcutUseCase(f.store, f.windows, 0, 0),
		SaveTheme: func(mode entity.ThemeMode) error {
			f.saved = append(f.saved, mode)
			return nil
		},
	}
	return NewLauncherModel(ctx, mode, deps), f
}

func send(t *testing.T, m LauncherModel, msg tea.Msg) (LauncherModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	lm, ok := next.(LauncherModel)
	require.True(t, ok)
	return lm, cmd
}

func typeText(t *testing.T, m LauncherModel, text string) LauncherModel {
	t.Helper()
	for _, r := range text {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func names(shortcuts []*entity.Shortcut) []string {
	out := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		out = append(out, s.Name)
	}
	return out
}

func TestLauncher_StartsWithFullCollectionInOrder(t *testing.T) {
	m, _ := newLauncher(t, entity.ThemeDark)

	assert.Equal(t, []string{"Google", "YouTube", "ChatGPT"}, names(m.Visible()))
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Google", sel.Name)
	assert.Equal(t, entity.ThemeDark, m.Theme().Mode)
}

func TestLauncher_TypingFilters(t *testing.T) {
	m, _ := newLauncher(t, entity.ThemeDark)

	m = typeText(t, m, "you")

	assert.Equal(t, "you", m.Query())
	assert.Equal(t, []string{"YouTube"}, names(m.Visible()))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Empty(t, m.Query())
	assert.Len(t, m.Visible(), 3)
}

func TestLauncher_NoMatchesLeavesNothingSelected(t *testing.T) {
	m, _ := newLauncher(t, entity.ThemeDark)

	m = typeText(t, m, "zzzzqqqq")

	assert.Empty(t, m.Visible())
	_, ok := m.Selected()
	assert.False(t, ok)

	// enter with nothing selected does nothing
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestLauncher_CursorMovesDown(t *testing.T) {
	m, _ := newLauncher(t, entity.ThemeDark)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "YouTube", sel.Name)
}

func TestLauncher_EnterOpensSelectedShortcut(t *testing.T) {
	m, f := newLauncher(t, entity.ThemeDark)
	m = typeText(t, m, "chat")

	f.windows.EXPECT().
		Open(mock.Anything, mock.MatchedBy(func(spec port.WindowSpec) bool {
			return spec.Label == "app-3" && spec.Title == "ChatGPT"
		})).
		Return(&fakeWindow{label: "app-3"}, nil).
		Once()

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.Contains(t, m.Status(), "Opened ChatGPT")
	assert.Contains(t, m.Status(), "app-3")
}

func TestLauncher_OpenFailureIsShownNotFatal(t *testing.T) {
	m, f := newLauncher(t, entity.ThemeDark)

	f.windows.EXPECT().
		Open(mock.Anything, mock.Anything).
		Return(nil, errors.New("display unavailable")).
		Once()

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, next := send(t, m, cmd())
	assert.Nil(t, next)
	assert.Contains(t, m.Status(), "Could not open Google")
	assert.Contains(t, m.Status(), "display unavailable")
}

func TestLauncher_CtrlDRemovesSelected(t *testing.T) {
	m, f := newLauncher(t, entity.ThemeDark)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})

	assert.Equal(t, []string{"Google", "ChatGPT"}, names(m.Visible()))
	assert.Equal(t, []string{"Google", "ChatGPT"}, names(f.store.List(testContext())))
	assert.Contains(t, m.Status(), "Removed YouTube")
}

func TestLauncher_CtrlDOnLastRowKeepsCursorInRange(t *testing.T) {
	m, _ := newLauncher(t, entity.ThemeDark)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "YouTube", sel.Name)
}

func TestLauncher_CtrlTTogglesAndSavesTheme(t *testing.T) {
	m, f := newLauncher(t, entity.ThemeLight)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)
	assert.Equal(t, entity.ThemeDark, m.Theme().Mode)

	m, _ = send(t, m, cmd())
	assert.Equal(t, []entity.ThemeMode{entity.ThemeDark}, f.saved)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, entity.ThemeDim, m.Theme().Mode)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, entity.ThemeLight, m.Theme().Mode)
}

func TestLauncher_ConfigChangeRethemes(t *testing.T) {
	m, f := newLauncher(t, entity.ThemeDark)

	m, cmd := send(t, m, ConfigChangedMsg{Theme: entity.ThemeDim})

	assert.Nil(t, cmd)
	assert.Equal(t, entity.ThemeDim, m.Theme().Mode)
	assert.Empty(t, f.saved, "external changes are not written back")
}

func TestLauncher_EscQuits(t *testing.T) {
	m, _ := newLauncher(t, entity.ThemeDark)

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestLauncher_ViewShowsModeAndCount(t *testing.T) {
	m, _ := newLauncher(t, entity.ThemeDim)

	view := m.View()
	assert.Contains(t, view, "webdeck")
	assert.Contains(t, view, "3 apps")
	assert.Contains(t, view, "dim")
}
