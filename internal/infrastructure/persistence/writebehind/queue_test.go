package writebehind_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/domain/repository/mocks"
	"github.com/bnema/webdeck/internal/infrastructure/persistence/writebehind"
	"github.com/bnema/webdeck/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func snapshot(names ...string) []*entity.Shortcut {
	out := make([]*entity.Shortcut, 0, len(names))
	for i, n := range names {
		out = append(out, &entity.Shortcut{ID: entity.ShortcutID(i + 1), Name: n, URL: "https://" + n, Icon: "X"})
	}
	return out
}

// gatedRepo blocks every SaveAll until release is closed.
type gatedRepo struct {
	mu      sync.Mutex
	saved   [][]*entity.Shortcut
	started chan struct{}
	release chan struct{}
}

func newGatedRepo() *gatedRepo {
	return &gatedRepo{started: make(chan struct{}, 8), release: make(chan struct{})}
}

func (r *gatedRepo) LoadAll(context.Context) ([]*entity.Shortcut, error) { return nil, nil }

func (r *gatedRepo) SaveAll(_ context.Context, s []*entity.Shortcut) error {
	r.started <- struct{}{}
	<-r.release
	r.mu.Lock()
	r.saved = append(r.saved, s)
	r.mu.Unlock()
	return nil
}

func (r *gatedRepo) writes() [][]*entity.Shortcut {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]*entity.Shortcut(nil), r.saved...)
}

func TestQueue_CoalescesBurstToNewestSnapshot(t *testing.T) {
	ctx := testCtx()
	repo := newGatedRepo()
	q := writebehind.New(ctx, repo)

	q.Persist(ctx, snapshot("a"))
	<-repo.started // first write in flight

	q.Persist(ctx, snapshot("a", "b"))
	q.Persist(ctx, snapshot("a", "b", "c"))
	assert.True(t, q.Pending())

	close(repo.release)
	require.NoError(t, q.Flush(ctx))
	assert.False(t, q.Pending())

	writes := repo.writes()
	require.Len(t, writes, 2)
	assert.Len(t, writes[0], 1)
	assert.Len(t, writes[1], 3, "intermediate snapshot is skipped")
	require.NoError(t, q.Close(ctx))
}

func TestQueue_PersistDoesNotBlock(t *testing.T) {
	ctx := testCtx()
	repo := newGatedRepo()
	q := writebehind.New(ctx, repo)

	done := make(chan struct{})
	go func() {
		for range 100 {
			q.Persist(ctx, snapshot("a"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Persist blocked on a slow save")
	}

	close(repo.release)
	require.NoError(t, q.Close(ctx))
}

func TestQueue_FlushHonorsContext(t *testing.T) {
	ctx := testCtx()
	repo := newGatedRepo()
	q := writebehind.New(ctx, repo)

	q.Persist(ctx, snapshot("a"))
	<-repo.started

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, q.Flush(short), context.DeadlineExceeded)
	assert.True(t, q.Pending())

	close(repo.release)
	require.NoError(t, q.Close(ctx))
}

func TestQueue_FlushWithNothingPending(t *testing.T) {
	ctx := testCtx()
	q := writebehind.New(ctx, mocks.NewMockShortcutRepository(t))

	assert.False(t, q.Pending())
	assert.NoError(t, q.Flush(ctx))
	assert.NoError(t, q.LastError())
	require.NoError(t, q.Close(ctx))
}

func TestQueue_LastErrorClearedBySuccess(t *testing.T) {
	ctx := testCtx()
	repo := mocks.NewMockShortcutRepository(t)
	diskFull := errors.New("disk full")

	repo.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(diskFull).Once()
	repo.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(nil).Once()

	q := writebehind.New(ctx, repo)

	q.Persist(ctx, snapshot("a"))
	require.NoError(t, q.Flush(ctx))
	assert.ErrorIs(t, q.LastError(), diskFull)

	q.Persist(ctx, snapshot("a", "b"))
	require.NoError(t, q.Flush(ctx))
	assert.NoError(t, q.LastError())

	require.NoError(t, q.Close(ctx))
}

func TestQueue_CloseWritesOutstandingIntent(t *testing.T) {
	ctx := testCtx()
	repo := mocks.NewMockShortcutRepository(t)

	var got []*entity.Shortcut
	repo.EXPECT().SaveAll(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, s []*entity.Shortcut) error {
			got = s
			return nil
		}).Once()

	q := writebehind.New(ctx, repo)
	q.Persist(ctx, snapshot("a", "b"))
	require.NoError(t, q.Close(ctx))

	assert.Len(t, got, 2)
	assert.False(t, q.Pending())
}

func TestQueue_PersistAfterCloseSavesSynchronously(t *testing.T) {
	ctx := testCtx()
	repo := mocks.NewMockShortcutRepository(t)
	repo.EXPECT().SaveAll(mock.Anything, mock.Anything).Return(nil).Once()

	q := writebehind.New(ctx, repo)
	require.NoError(t, q.Close(ctx))

	q.Persist(ctx, snapshot("late"))
	assert.False(t, q.Pending())
}

// slowFirstRepo delays its first SaveAll so later saves overlap with it.
type slowFirstRepo struct {
	mu    sync.Mutex
	saved [][]*entity.Shortcut
	calls int
}

func (r *slowFirstRepo) LoadAll(context.Context) ([]*entity.Shortcut, error) { return nil, nil }

func (r *slowFirstRepo) SaveAll(_ context.Context, s []*entity.Shortcut) error {
	r.mu.Lock()
	r.calls++
	first := r.calls == 1
	r.mu.Unlock()
	if first {
		time.Sleep(5 * time.Millisecond)
	}
	r.mu.Lock()
	r.saved = append(r.saved, s)
	r.mu.Unlock()
	return nil
}

func TestQueue_PersistDuringCloseKeepsNewestSnapshot(t *testing.T) {
	ctx := testCtx()
	for i := 0; i < 20; i++ {
		repo := &slowFirstRepo{}
		q := writebehind.New(ctx, repo)

		q.Persist(ctx, snapshot("old"))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, q.Close(ctx))
		}()
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
			q.Persist(ctx, snapshot("old", "new"))
		}()
		wg.Wait()

		repo.mu.Lock()
		saved := repo.saved
		repo.mu.Unlock()
		require.NotEmpty(t, saved)
		assert.Len(t, saved[len(saved)-1], 2, "newest snapshot must be written last")
	}
}
