package window

import (
	"context"
	"fmt"
	"sync"

	"github.com/cli/browser"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/logging"
)

// BrowserHost opens app windows in the system browser. The handles are
// logical: the browser owns the real window, so only focus and navigation
// can be expressed.
type BrowserHost struct {
	open func(url string) error
}

var _ port.WindowHost = (*BrowserHost)(nil)

// NewBrowserHost returns a host backed by the desktop's default browser.
func NewBrowserHost() *BrowserHost {
	return &BrowserHost{open: browser.OpenURL}
}

// Create opens spec.URL and returns a logical handle for it.
func (h *BrowserHost) Create(ctx context.Context, spec port.WindowSpec) (port.AppWindow, error) {
	if err := h.open(spec.URL); err != nil {
		return nil, fmt.Errorf("failed to open browser: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("label", spec.Label).Str("url", spec.URL).Msg("opened in system browser")

	return &browserWindow{
		label: spec.Label,
		url:   spec.URL,
		open:  h.open,
		done:  make(chan struct{}),
	}, nil
}

type browserWindow struct {
	label string
	open  func(url string) error

	mu     sync.Mutex
	url    string
	closed bool
	done   chan struct{}
}

func (w *browserWindow) Label() string { return w.label }

func (w *browserWindow) URL() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.url
}

func (w *browserWindow) alive() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return port.ErrWindowClosed
	}
	return nil
}

func (w *browserWindow) unsupported() error {
	if err := w.alive(); err != nil {
		return err
	}
	return port.ErrWindowUnsupported
}

func (w *browserWindow) Minimize() error       { return w.unsupported() }
func (w *browserWindow) ToggleMaximize() error { return w.unsupported() }
func (w *browserWindow) IsMaximized() bool     { return false }
func (w *browserWindow) Back() error           { return w.unsupported() }
func (w *browserWindow) Forward() error        { return w.unsupported() }
func (w *browserWindow) Reload() error         { return w.unsupported() }

func (w *browserWindow) OnResized(func(width, height int)) {}

// Focus re-opens the current URL, which raises the browser.
func (w *browserWindow) Focus() error {
	if err := w.alive(); err != nil {
		return err
	}
	return w.open(w.URL())
}

// NavigateTo records url; the browser shows it on the next Focus.
func (w *browserWindow) NavigateTo(url string) error {
	if err := w.alive(); err != nil {
		return err
	}
	w.mu.Lock()
	w.url = url
	w.mu.Unlock()
	return nil
}

func (w *browserWindow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return port.ErrWindowClosed
	}
	w.closed = true
	close(w.done)
	return nil
}

func (w *browserWindow) Done() <-chan struct{} { return w.done }
