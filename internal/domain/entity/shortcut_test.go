package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortcut_WindowLabel(t *testing.T) {
	s := &Shortcut{ID: 1712345678901}
	assert.Equal(t, "app-1712345678901", s.WindowLabel())
	assert.Equal(t, s.WindowLabel(), s.WindowLabel())
}

func TestShortcut_HasImageIcon(t *testing.T) {
	assert.True(t, (&Shortcut{Icon: "https://x/y.png"}).HasImageIcon())
	assert.False(t, (&Shortcut{Icon: "N"}).HasImageIcon())
}

func TestCloneShortcuts_IsDeep(t *testing.T) {
	in := []*Shortcut{{ID: 1, Name: "a"}, nil, {ID: 2, Name: "b"}}
	out := CloneShortcuts(in)

	require.Len(t, out, 2)
	out[0].Name = "changed"
	assert.Equal(t, "a", in[0].Name)
}

func TestSeedShortcuts(t *testing.T) {
	seeds := SeedShortcuts()
	require.Len(t, seeds, 3)
	assert.Equal(t, []string{"Google", "YouTube", "ChatGPT"},
		[]string{seeds[0].Name, seeds[1].Name, seeds[2].Name})
	for _, s := range seeds {
		assert.True(t, s.HasImageIcon(), s.Name)
	}

	seeds[0].Name = "mutated"
	assert.Equal(t, "Google", SeedShortcuts()[0].Name)
}

func TestParseShortcutID(t *testing.T) {
	id, err := ParseShortcutID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, ShortcutID(42), id)

	_, err = ParseShortcutID("abc")
	assert.Error(t, err)
}

func TestThemeMode(t *testing.T) {
	tests := []struct {
		in   string
		want ThemeMode
		next ThemeMode
	}{
		{"light", ThemeLight, ThemeDark},
		{"DARK", ThemeDark, ThemeDim},
		{"dim", ThemeDim, ThemeLight},
		{"solarized", ThemeDark, ThemeDim},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseThemeMode(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
			assert.Equal(t, tt.next, got.Next())
		})
	}
	assert.False(t, ThemeMode("neon").Valid())
}
