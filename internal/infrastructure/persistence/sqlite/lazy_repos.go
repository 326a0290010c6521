package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/domain/repository"
)

// LazyShortcutRepository wraps the shortcut repository with lazy database
// initialization. It is a drop-in replacement for NewShortcutRepository.
type LazyShortcutRepository struct {
	provider port.DatabaseProvider
	repo     repository.ShortcutRepository
	once     sync.Once
	initErr  error
}

var _ repository.ShortcutRepository = (*LazyShortcutRepository)(nil)

// NewLazyShortcutRepository creates a lazy-loading shortcut repository.
func NewLazyShortcutRepository(provider port.DatabaseProvider) *LazyShortcutRepository {
	return &LazyShortcutRepository{provider: provider}
}

func (r *LazyShortcutRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewShortcutRepository(db)
	})
	return r.initErr
}

func (r *LazyShortcutRepository) LoadAll(ctx context.Context) ([]*entity.Shortcut, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.LoadAll(ctx)
}

func (r *LazyShortcutRepository) SaveAll(ctx context.Context, shortcuts []*entity.Shortcut) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SaveAll(ctx, shortcuts)
}
