package port

import (
	"context"

	"github.com/bnema/webdeck/internal/domain/entity"
)

// ShortcutPersister accepts write intents for the shortcut collection.
// Persist must not block the caller on durable storage. Pending reports
// whether the newest intent has not yet been written.
type ShortcutPersister interface {
	// Persist records a full snapshot to be written.
	Persist(ctx context.Context, snapshot []*entity.Shortcut)

	// Pending is true while an intent has not reached storage.
	Pending() bool

	// Flush blocks until no intent is pending or ctx is done.
	Flush(ctx context.Context) error

	// LastError returns the error of the most recent failed write,
	// or nil once a later write succeeds.
	LastError() error
}
