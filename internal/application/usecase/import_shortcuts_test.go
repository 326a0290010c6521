package usecase_test

import (
	"testing"

	"github.com/bnema/webdeck/internal/application/usecase"
	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportShortcutsUseCase_Import(t *testing.T) {
	records := []*entity.Shortcut{
		{ID: 500, Name: "Notion", URL: "notion.so"},
		{Name: "", URL: "blank.example.com"},
		nil,
		{Name: "Docs", URL: "https://docs.example.com", Icon: "D"},
	}

	tests := []struct {
		name        string
		replace     bool
		wantLen     int
		wantRemoved int
	}{
		{name: "merge", replace: false, wantLen: 5},
		{name: "replace", replace: true, wantLen: 2, wantRemoved: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			store := usecase.NewManageShortcutsUseCase(nil, nil)
			uc := usecase.NewImportShortcutsUseCase(store)

			out, err := uc.Import(ctx, usecase.ImportShortcutsInput{Records: records, Replace: tt.replace})
			require.NoError(t, err)

			assert.Len(t, out.Added, 2)
			assert.Equal(t, 2, out.Skipped)
			assert.Equal(t, tt.wantRemoved, out.Removed)

			list := store.List(ctx)
			require.Len(t, list, tt.wantLen)

			notion := out.Added[0]
			assert.NotEqual(t, entity.ShortcutID(500), notion.ID)
			assert.Equal(t, "https://notion.so", notion.URL)
			assert.Equal(t, "https://www.google.com/s2/favicons?domain=notion.so&sz=128", notion.Icon)
			assert.Equal(t, "D", out.Added[1].Icon)
		})
	}
}
