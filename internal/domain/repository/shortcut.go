// Package repository defines the persistence ports for domain entities.
package repository

import (
	"context"

	"github.com/bnema/webdeck/internal/domain/entity"
)

// ShortcutRepository defines wholesale persistence of the shortcut collection.
// Implementations never apply partial updates: the collection is read and
// written as a single ordered list.
type ShortcutRepository interface {
	// LoadAll returns the stored collection in display order.
	// An empty store yields an empty slice and no error.
	LoadAll(ctx context.Context) ([]*entity.Shortcut, error)

	// SaveAll replaces the entire stored collection.
	SaveAll(ctx context.Context, shortcuts []*entity.Shortcut) error
}
