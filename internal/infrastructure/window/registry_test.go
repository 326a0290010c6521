package window

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// fakeHost records created windows. Create can be slowed with delay.
type fakeHost struct {
	created atomic.Int32
	delay   time.Duration
	err     error

	mu      sync.Mutex
	windows []*browserWindow
	opened  []string
}

func (h *fakeHost) open(url string) error {
	h.mu.Lock()
	h.opened = append(h.opened, url)
	h.mu.Unlock()
	return nil
}

func (h *fakeHost) Create(_ context.Context, spec port.WindowSpec) (port.AppWindow, error) {
	if h.err != nil {
		return nil, h.err
	}
	time.Sleep(h.delay)
	h.created.Add(1)
	w := &browserWindow{label: spec.Label, url: spec.URL, open: h.open, done: make(chan struct{})}
	h.mu.Lock()
	h.windows = append(h.windows, w)
	h.mu.Unlock()
	return w, nil
}

func (h *fakeHost) openedURLs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.opened...)
}

func TestRegistry_OpenCreatesThenReuses(t *testing.T) {
	ctx := testCtx()
	host := &fakeHost{}
	r := NewRegistry(host)

	spec := port.WindowSpec{Label: "app-1", URL: "https://a.example", Title: "A"}
	first, err := r.Open(ctx, spec)
	require.NoError(t, err)

	second, err := r.Open(ctx, spec)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), host.created.Load())
	assert.Equal(t, []string{"https://a.example"}, host.openedURLs(), "reuse focuses")
	assert.Equal(t, []string{"app-1"}, r.Labels())
}

func TestRegistry_ReuseNavigatesToNewURL(t *testing.T) {
	ctx := testCtx()
	host := &fakeHost{}
	r := NewRegistry(host)

	w, err := r.Open(ctx, port.WindowSpec{Label: "app-1", URL: "https://a.example"})
	require.NoError(t, err)

	_, err = r.Open(ctx, port.WindowSpec{Label: "app-1", URL: "https://b.example"})
	require.NoError(t, err)

	assert.Equal(t, "https://b.example", w.URL())
	assert.Equal(t, []string{"https://b.example"}, host.openedURLs())
}

func TestRegistry_ClosedWindowIsRecreated(t *testing.T) {
	ctx := testCtx()
	host := &fakeHost{}
	r := NewRegistry(host)

	spec := port.WindowSpec{Label: "app-1", URL: "https://a.example"}
	first, err := r.Open(ctx, spec)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	assert.Eventually(t, func() bool {
		_, ok := r.Lookup("app-1")
		return !ok
	}, time.Second, 5*time.Millisecond)

	second, err := r.Open(ctx, spec)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, int32(2), host.created.Load())
}

func TestRegistry_ConcurrentOpenCreatesOnce(t *testing.T) {
	ctx := testCtx()
	host := &fakeHost{delay: 20 * time.Millisecond}
	r := NewRegistry(host)

	spec := port.WindowSpec{Label: "app-7", URL: "https://a.example"}

	var wg sync.WaitGroup
	results := make([]port.AppWindow, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w, err := r.Open(ctx, spec)
			assert.NoError(t, err)
			results[i] = w
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), host.created.Load())
	for _, w := range results {
		assert.Same(t, results[0], w)
	}
}

func TestRegistry_OpenErrors(t *testing.T) {
	ctx := testCtx()

	_, err := NewRegistry(&fakeHost{}).Open(ctx, port.WindowSpec{URL: "https://a.example"})
	assert.EqualError(t, err, "window label is required")

	boom := errors.New("no display")
	r := NewRegistry(&fakeHost{err: boom})
	_, err = r.Open(ctx, port.WindowSpec{Label: "app-1", URL: "https://a.example"})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, r.Labels())
}

func TestRegistry_CloseAll(t *testing.T) {
	ctx := testCtx()
	host := &fakeHost{}
	r := NewRegistry(host)

	for _, label := range []string{"app-2", "app-1"} {
		_, err := r.Open(ctx, port.WindowSpec{Label: label, URL: "https://x.example"})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"app-1", "app-2"}, r.Labels())

	require.NoError(t, r.CloseAll())
	assert.Eventually(t, func() bool { return len(r.Labels()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestBrowserHost_Window(t *testing.T) {
	ctx := testCtx()
	host := &fakeHost{}
	bh := &BrowserHost{open: host.open}

	w, err := bh.Create(ctx, port.WindowSpec{Label: "app-1", URL: "https://a.example"})
	require.NoError(t, err)
	assert.Equal(t, "app-1", w.Label())

	assert.ErrorIs(t, w.Minimize(), port.ErrWindowUnsupported)
	assert.ErrorIs(t, w.Back(), port.ErrWindowUnsupported)
	assert.False(t, w.IsMaximized())

	require.NoError(t, w.NavigateTo("https://b.example"))
	require.NoError(t, w.Focus())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, host.openedURLs())

	require.NoError(t, w.Close())
	select {
	case <-w.Done():
	default:
		t.Fatal("Done not closed")
	}
	assert.ErrorIs(t, w.Close(), port.ErrWindowClosed)
	assert.ErrorIs(t, w.Focus(), port.ErrWindowClosed)
	assert.ErrorIs(t, w.Reload(), port.ErrWindowClosed)
}
