package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webdeck/internal/cli/styles"
	"github.com/bnema/webdeck/internal/domain/entity"
)

func TestShortcutItem_Tile(t *testing.T) {
	image := styles.ShortcutItem{Shortcut: &entity.Shortcut{
		ID: 1, Name: "Google", URL: "https://google.com",
		Icon: "https://www.google.com/s2/favicons?domain=google.com&sz=128",
	}}
	glyph := styles.ShortcutItem{Shortcut: &entity.Shortcut{ID: 2, Name: "notes", URL: "https://notes", Icon: "N"}}

	assert.Equal(t, styles.IconGlobe, image.Tile())
	assert.Equal(t, "N", glyph.Tile())
	assert.Empty(t, styles.ShortcutItem{}.Tile())
}

func TestShortcutItems_SkipsNil(t *testing.T) {
	items := styles.ShortcutItems([]*entity.Shortcut{
		{ID: 1, Name: "a", URL: "https://a", Icon: "A"},
		nil,
		{ID: 2, Name: "b", URL: "https://b", Icon: "B"},
	})

	require.Len(t, items, 2)
	assert.Equal(t, "a https://a", items[0].FilterValue())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"ééééééé", 6, "ééé..."},
		{"tiny", 2, "tiny"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, styles.Truncate(tt.in, tt.limit), tt.in)
	}
}

func TestRenderShortcutTable(t *testing.T) {
	theme := styles.NewTheme(entity.ThemeDark)

	out := styles.RenderShortcutTable(theme, entity.SeedShortcuts())
	assert.Contains(t, out, "Google")
	assert.Contains(t, out, "YouTube")
	assert.Contains(t, out, "ChatGPT")
	assert.Contains(t, out, "favicon")

	assert.Contains(t, styles.RenderShortcutTable(theme, nil), "No shortcuts")
}
