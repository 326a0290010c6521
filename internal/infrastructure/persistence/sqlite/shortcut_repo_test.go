package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/webdeck/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestShortcutRepository_SaveAllLoadAll(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "webdeck.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewShortcutRepository(db)

	empty, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// Stored order is display order, not id order.
	want := []*entity.Shortcut{
		{ID: 3, Name: "ChatGPT", URL: "https://chat.openai.com", Icon: "https://www.google.com/s2/favicons?domain=openai.com&sz=128"},
		{ID: 1, Name: "Google", URL: "https://google.com", Icon: "G"},
		{ID: 1700000000000, Name: "Notion", URL: "https://notion.so", Icon: "N"},
	}
	require.NoError(t, repo.SaveAll(ctx, want))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// SaveAll replaces the whole collection.
	require.NoError(t, repo.SaveAll(ctx, want[1:2]))
	got, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want[1:2], got)

	require.NoError(t, repo.SaveAll(ctx, nil))
	got, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestShortcutRepository_DuplicateIDRollsBack(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "webdeck.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewShortcutRepository(db)
	require.NoError(t, repo.SaveAll(ctx, entity.SeedShortcuts()))

	dup := []*entity.Shortcut{
		{ID: 9, Name: "A", URL: "https://a.example", Icon: "A"},
		{ID: 9, Name: "B", URL: "https://b.example", Icon: "B"},
	}
	require.Error(t, repo.SaveAll(ctx, dup))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.SeedShortcuts(), got)
}

func TestShortcutRepository_PersistsAcrossConnections(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "nested", "webdeck.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewShortcutRepository(db).SaveAll(ctx, entity.SeedShortcuts()))
	require.NoError(t, sqlite.Close(db))

	db2, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	version, err := sqlite.GetMigrationStatus(ctx, db2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	got, err := sqlite.NewShortcutRepository(db2).LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	require.Error(t, err)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "webdeck.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlite.RunMigrations(ctx, db))

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
