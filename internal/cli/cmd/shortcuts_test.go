package cmd

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webdeck/internal/application/usecase"
	"github.com/bnema/webdeck/internal/domain/entity"
	domainurl "github.com/bnema/webdeck/internal/domain/url"
)

func newEditFlags(t *testing.T, set map[string]string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "edit"}
	c.Flags().StringP("name", "n", "", "")
	c.Flags().StringP("url", "u", "", "")
	c.Flags().StringP("icon", "i", "", "")
	for k, v := range set {
		require.NoError(t, c.Flags().Set(k, v))
	}
	return c
}

func TestBuildEditInput(t *testing.T) {
	googleIcon := domainurl.FaviconServiceURL("www.google.com", domainurl.DefaultFaviconSize)
	google := &entity.Shortcut{ID: 1, Name: "Google", URL: "https://www.google.com", Icon: googleIcon}
	custom := &entity.Shortcut{ID: 2, Name: "Notes", URL: "https://notes.example.com", Icon: "https://cdn.example.com/n.png"}
	glyph := &entity.Shortcut{ID: 3, Name: "Intranet", URL: "https://", Icon: "I"}

	tests := []struct {
		name     string
		current  *entity.Shortcut
		set      map[string]string
		wantIcon string
	}{
		{"no flags keeps icon", google, nil, googleIcon},
		{"url change clears derived favicon", google, map[string]string{"url": "github.com"}, ""},
		{"name change re-derives favicon", google, map[string]string{"name": "Search"}, ""},
		{"url change keeps custom icon", custom, map[string]string{"url": "docs.example.com"}, custom.Icon},
		{"explicit icon wins", google, map[string]string{"url": "github.com", "icon": "G"}, "G"},
		{"name change clears derived glyph", glyph, map[string]string{"name": "Wiki"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := buildEditInput(tt.current, newEditFlags(t, tt.set))
			assert.Equal(t, tt.wantIcon, input.Icon)
		})
	}
}

func TestBuildEditInput_URLChangeRederivesFavicon(t *testing.T) {
	ctx := context.Background()
	store := usecase.NewManageShortcutsUseCase(nil, nil)

	current, err := store.Get(ctx, 1)
	require.NoError(t, err)
	require.Contains(t, current.Icon, "google.com")

	updated, err := store.Edit(ctx, 1, buildEditInput(current, newEditFlags(t, map[string]string{"url": "github.com"})))
	require.NoError(t, err)

	assert.Equal(t, "https://github.com", updated.URL)
	assert.Equal(t, domainurl.FaviconServiceURL("github.com", domainurl.DefaultFaviconSize), updated.Icon)
	assert.Equal(t, "Google", updated.Name)
}
