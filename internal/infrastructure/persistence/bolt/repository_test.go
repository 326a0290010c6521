package bolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/infrastructure/persistence/bolt"
	"github.com/bnema/webdeck/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestRepository_RoundTrip(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "data", "webdeck.db")

	repo, err := bolt.Open(ctx, path)
	require.NoError(t, err)

	empty, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// More than ten records so lexical and numeric key order would differ
	// if keys were not fixed-width.
	var want []*entity.Shortcut
	for i := range 12 {
		want = append(want, &entity.Shortcut{
			ID:   entity.ShortcutID(100 - i),
			Name: "App",
			URL:  "https://example.com",
			Icon: "A",
		})
	}
	require.NoError(t, repo.SaveAll(ctx, want))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, repo.SaveAll(ctx, want[:2]))
	got, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want[:2], got)

	require.NoError(t, repo.Close())

	reopened, err := bolt.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err = reopened.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want[:2], got)
}

func TestRepository_SaveEmpty(t *testing.T) {
	ctx := testCtx()
	repo, err := bolt.Open(ctx, filepath.Join(t.TempDir(), "webdeck.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	require.NoError(t, repo.SaveAll(ctx, entity.SeedShortcuts()))
	require.NoError(t, repo.SaveAll(ctx, nil))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
