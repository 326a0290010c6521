//go:build webkit_cgo

package webkit

import (
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/webdeck/internal/application/port"
)

// appWindow is the port.AppWindow handle for one GTK window. Every call is
// marshalled onto the main loop; state read from other goroutines is
// mirrored under mu by signal handlers.
type appWindow struct {
	label string
	win   *gtk.ApplicationWindow
	view  *webkit.WebView

	mu        sync.Mutex
	url       string
	maximized bool
	closed    bool
	resized   []func(width, height int)
	done      chan struct{}
}

var _ port.AppWindow = (*appWindow)(nil)

func newAppWindow(spec port.WindowSpec, win *gtk.ApplicationWindow, view *webkit.WebView) *appWindow {
	return &appWindow{
		label: spec.Label,
		win:   win,
		view:  view,
		url:   spec.URL,
		done:  make(chan struct{}),
	}
}

func (w *appWindow) Label() string { return w.label }

func (w *appWindow) URL() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.url
}

func (w *appWindow) IsMaximized() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.maximized
}

func (w *appWindow) Done() <-chan struct{} { return w.done }

// OnResized registers fn; it runs on the GTK main thread.
func (w *appWindow) OnResized(fn func(width, height int)) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	w.resized = append(w.resized, fn)
	w.mu.Unlock()
}

// dispatch runs fn on the main loop unless the window is gone.
func (w *appWindow) dispatch(fn func()) error {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return port.ErrWindowClosed
	}
	invoke(fn)
	return nil
}

func (w *appWindow) Minimize() error { return w.dispatch(w.win.Minimize) }

func (w *appWindow) ToggleMaximize() error {
	return w.dispatch(func() {
		if w.win.IsMaximized() {
			w.win.Unmaximize()
		} else {
			w.win.Maximize()
		}
	})
}

func (w *appWindow) Close() error   { return w.dispatch(w.win.Close) }
func (w *appWindow) Focus() error   { return w.dispatch(w.win.Present) }
func (w *appWindow) Back() error    { return w.dispatch(w.view.GoBack) }
func (w *appWindow) Forward() error { return w.dispatch(w.view.GoForward) }
func (w *appWindow) Reload() error  { return w.dispatch(w.view.Reload) }

func (w *appWindow) NavigateTo(url string) error {
	if err := w.dispatch(func() { w.view.LoadURI(url) }); err != nil {
		return err
	}
	w.setURL(url)
	return nil
}

func (w *appWindow) setURL(url string) {
	w.mu.Lock()
	w.url = url
	w.mu.Unlock()
}

func (w *appWindow) setMaximized(v bool) {
	w.mu.Lock()
	w.maximized = v
	w.mu.Unlock()
}

// emitResized runs on the main thread from the default-size notifications.
func (w *appWindow) emitResized() {
	width, height := w.win.DefaultSize()

	w.mu.Lock()
	callbacks := append([]func(int, int)(nil), w.resized...)
	w.mu.Unlock()

	for _, fn := range callbacks {
		fn(width, height)
	}
}

func (w *appWindow) markClosed() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	close(w.done)
}
