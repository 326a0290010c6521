package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/webdeck/internal/cli/styles"
	"github.com/bnema/webdeck/internal/domain/entity"
)

func TestNewTheme_UsesPaletteForMode(t *testing.T) {
	for _, mode := range entity.ThemeModes() {
		t.Run(string(mode), func(t *testing.T) {
			theme := styles.NewTheme(mode)
			p := styles.PaletteFor(mode)

			assert.Equal(t, mode, theme.Mode)
			assert.Equal(t, p.Background, string(theme.Background))
			assert.Equal(t, p.Accent, string(theme.Accent))
			assert.Equal(t, theme.Accent, theme.Success)
		})
	}
}

func TestNewTheme_PalettesDiffer(t *testing.T) {
	light := styles.NewTheme(entity.ThemeLight)
	dark := styles.NewTheme(entity.ThemeDark)
	dim := styles.NewTheme(entity.ThemeDim)

	assert.NotEqual(t, light.Background, dark.Background)
	assert.NotEqual(t, dark.Background, dim.Background)
	assert.NotEqual(t, light.Background, dim.Background)
}

func TestNewTheme_InvalidModeFallsBackToDark(t *testing.T) {
	theme := styles.NewTheme(entity.ThemeMode("solarized"))

	assert.Equal(t, entity.ThemeDark, theme.Mode)
	assert.Equal(t, styles.PaletteFor(entity.ThemeDark).Background, string(theme.Background))
}

func TestTheme_ToggleCyclesWithoutMutating(t *testing.T) {
	light := styles.NewTheme(entity.ThemeLight)

	dark := light.Toggle()
	dim := dark.Toggle()
	back := dim.Toggle()

	assert.Equal(t, entity.ThemeLight, light.Mode)
	assert.Equal(t, entity.ThemeDark, dark.Mode)
	assert.Equal(t, entity.ThemeDim, dim.Mode)
	assert.Equal(t, entity.ThemeLight, back.Mode)
	assert.Equal(t, light.Background, back.Background)
}
