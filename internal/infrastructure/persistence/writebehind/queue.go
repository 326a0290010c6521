// Package writebehind persists shortcut snapshots off the caller's goroutine.
package writebehind

import (
	"context"
	"sync"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/domain/repository"
	"github.com/bnema/webdeck/internal/logging"
)

// Queue implements port.ShortcutPersister with a single writer goroutine.
// Only the newest snapshot is kept: a burst of Persist calls results in one
// write of the final state.
type Queue struct {
	repo repository.ShortcutRepository
	ctx  context.Context

	mu      sync.Mutex
	latest  []*entity.Shortcut
	queued  bool          // latest holds an unwritten snapshot
	pending bool          // an intent has not reached storage
	idle    chan struct{} // closed when pending drops to false
	lastErr error
	closed  bool

	syncMu sync.Mutex // orders saves made after Close

	signal    chan struct{}
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

var _ port.ShortcutPersister = (*Queue)(nil)

// New starts the writer. ctx carries the logger used for save reports;
// its cancellation does not abort writes.
func New(ctx context.Context, repo repository.ShortcutRepository) *Queue {
	q := &Queue{
		repo:   repo,
		ctx:    context.WithoutCancel(ctx),
		signal: make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

// Persist records snapshot as the newest intent and returns immediately.
// After Close it saves synchronously, once the final drain has finished.
func (q *Queue) Persist(ctx context.Context, snapshot []*entity.Shortcut) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		logging.FromContext(ctx).Debug().Msg("write-behind queue closed, saving synchronously")
		<-q.done
		q.syncMu.Lock()
		q.save(snapshot)
		q.syncMu.Unlock()
		return
	}

	q.latest = snapshot
	q.queued = true
	if !q.pending {
		q.pending = true
		q.idle = make(chan struct{})
	}
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default: // writer already signalled
	}
}

// Pending reports whether the newest intent has not been written yet.
func (q *Queue) Pending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending
}

// LastError returns the most recent save failure, cleared by a later success.
func (q *Queue) LastError() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lastErr
}

// Flush waits until no intent is pending or ctx is done.
func (q *Queue) Flush(ctx context.Context) error {
	q.mu.Lock()
	if !q.pending {
		q.mu.Unlock()
		return nil
	}
	idle := q.idle
	q.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close writes anything outstanding and stops the writer.
func (q *Queue) Close(ctx context.Context) error {
	q.closeOnce.Do(func() {
		close(q.stop)
	})

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) run() {
	defer close(q.done)
	for {
		select {
		case <-q.signal:
			q.drain()
		case <-q.stop:
			q.mu.Lock()
			q.closed = true
			q.mu.Unlock()
			q.drain()
			return
		}
	}
}

// drain writes until no newer snapshot arrived during the last write.
func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if !q.queued {
			if q.pending {
				q.pending = false
				close(q.idle)
			}
			q.mu.Unlock()
			return
		}
		snapshot := q.latest
		q.latest = nil
		q.queued = false
		q.mu.Unlock()

		q.save(snapshot)
	}
}

func (q *Queue) save(snapshot []*entity.Shortcut) {
	log := logging.FromContext(q.ctx)

	err := q.repo.SaveAll(q.ctx, snapshot)

	q.mu.Lock()
	q.lastErr = err
	q.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Int("count", len(snapshot)).Msg("failed to save shortcuts")
		return
	}
	log.Debug().Int("count", len(snapshot)).Msg("shortcuts saved")
}
