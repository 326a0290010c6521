package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/domain/repository"
	"github.com/bnema/webdeck/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/webdeck/internal/logging"
)

type shortcutRepo struct {
	db      *sql.DB
	queries *sqlc.Queries
}

// NewShortcutRepository creates a new SQLite-backed shortcut repository.
func NewShortcutRepository(db *sql.DB) repository.ShortcutRepository {
	return &shortcutRepo{db: db, queries: sqlc.New(db)}
}

func (r *shortcutRepo) LoadAll(ctx context.Context) ([]*entity.Shortcut, error) {
	rows, err := r.queries.ListShortcuts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortcuts: %w", err)
	}
	return shortcutsFromRows(rows), nil
}

// SaveAll replaces the table contents in one transaction.
func (r *shortcutRepo) SaveAll(ctx context.Context, shortcuts []*entity.Shortcut) error {
	log := logging.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := r.queries.WithTx(tx)
	if err := q.DeleteAllShortcuts(ctx); err != nil {
		return fmt.Errorf("failed to clear shortcuts: %w", err)
	}

	now := time.Now().UnixMilli()
	position := int64(0)
	for _, s := range shortcuts {
		if s == nil {
			continue
		}
		if err := q.InsertShortcut(ctx, sqlc.InsertShortcutParams{
			ID:        int64(s.ID),
			Name:      s.Name,
			Url:       s.URL,
			Icon:      s.Icon,
			Position:  position,
			UpdatedAt: now,
		}); err != nil {
			return fmt.Errorf("failed to insert shortcut %d: %w", s.ID, err)
		}
		position++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit shortcuts: %w", err)
	}

	log.Debug().Int64("count", position).Msg("shortcuts saved to sqlite")
	return nil
}

func shortcutsFromRows(rows []sqlc.Shortcut) []*entity.Shortcut {
	out := make([]*entity.Shortcut, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.Shortcut{
			ID:   entity.ShortcutID(row.ID),
			Name: row.Name,
			URL:  row.Url,
			Icon: row.Icon,
		})
	}
	return out
}
