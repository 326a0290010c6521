//go:build webkit_cgo

package webkit

/*
#cgo pkg-config: webkitgtk-6.0 gtk4
#include <webkit/webkit.h>

// network-session is construct-only, so it has to go through g_object_new.
static inline WebKitWebView* new_web_view_with_session(WebKitNetworkSession* session) {
	return WEBKIT_WEB_VIEW(g_object_new(
		WEBKIT_TYPE_WEB_VIEW,
		"network-session", session,
		NULL
	));
}
*/
import "C"

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"unsafe"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/webdeck/internal/application/port"
	domainurl "github.com/bnema/webdeck/internal/domain/url"
	"github.com/bnema/webdeck/internal/logging"
)

const profileDirPerm = 0700

// Available reports whether the GTK host is compiled in.
func Available() bool { return true }

// GTKHost creates app windows inside one GTK application.
// Create may be called from any goroutine except the GTK main thread.
type GTKHost struct {
	paths port.XDGPaths
	opts  HostOptions

	app   *gtk.Application
	ready chan struct{}

	mu       sync.Mutex
	sessions map[string]*webkit.NetworkSession
}

var _ port.WindowHost = (*GTKHost)(nil)

// NewGTKHost prepares a host. Windows can be created once Run is active.
func NewGTKHost(paths port.XDGPaths, opts HostOptions) (*GTKHost, error) {
	if paths == nil {
		return nil, errors.New("webkit: xdg paths are required")
	}
	if opts.ToolbarHeight <= 0 {
		opts.ToolbarHeight = port.DefaultToolbarHeight
	}
	return &GTKHost{
		paths:    paths,
		opts:     opts,
		ready:    make(chan struct{}),
		sessions: make(map[string]*webkit.NetworkSession),
	}, nil
}

// Run drives the GTK main loop on the calling goroutine, which must be the
// program's main goroutine. fn runs on its own goroutine once the
// application is active; the loop exits when fn has returned and the last
// window is closed, or when ctx is done.
func (h *GTKHost) Run(ctx context.Context, fn func(context.Context) error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := logging.FromContext(ctx)
	errCh := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)

	h.app = gtk.NewApplication(applicationID, gio.ApplicationNonUnique)
	h.app.ConnectActivate(func() {
		h.app.Hold()
		close(h.ready)
		log.Debug().Msg("gtk application active")

		go func() {
			errCh <- fn(ctx)
			invoke(h.app.Release)
		}()
	})

	go func() {
		select {
		case <-ctx.Done():
			invoke(h.app.Quit)
		case <-stop:
		}
	}()

	if code := h.app.Run([]string{os.Args[0]}); code != 0 {
		return fmt.Errorf("gtk application exited with status %d", code)
	}

	select {
	case err := <-errCh:
		return err
	default:
		return ctx.Err()
	}
}

// Create builds a window with its own WebKit network session stored under
// the label's profile directory.
func (h *GTKHost) Create(ctx context.Context, spec port.WindowSpec) (port.AppWindow, error) {
	select {
	case <-h.ready:
	default:
		return nil, errors.New("webkit: host is not running")
	}

	spec = spec.WithDefaults()

	dataDir, err := h.paths.ProfileDir(spec.Label)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile dir: %w", err)
	}
	cacheDir := filepath.Join(dataDir, "cache")
	if err := os.MkdirAll(cacheDir, profileDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create profile dir: %w", err)
	}

	type result struct {
		win *appWindow
		err error
	}
	res := invokeSync(func() result {
		w, err := h.buildWindow(spec, dataDir, cacheDir)
		return result{w, err}
	})
	if res.err != nil {
		return nil, res.err
	}

	logging.FromContext(ctx).Debug().
		Str("label", spec.Label).
		Str("profile", dataDir).
		Msg("gtk window created")
	return res.win, nil
}

// sessionFor returns the label's network session, creating it on first use.
// Must run on the main thread.
func (h *GTKHost) sessionFor(label, dataDir, cacheDir string) (*webkit.NetworkSession, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.sessions[label]; ok {
		return s, nil
	}

	session := webkit.NewNetworkSession(dataDir, cacheDir)
	if session == nil {
		return nil, fmt.Errorf("webkit: failed to create network session for %s", label)
	}
	if cookies := session.CookieManager(); cookies != nil {
		cookies.SetPersistentStorage(filepath.Join(dataDir, "cookies.db"), webkit.CookiePersistentStorageSqlite)
		cookies.SetAcceptPolicy(webkit.CookiePolicyAcceptNoThirdParty)
	}
	session.SetPersistentCredentialStorageEnabled(true)

	// Sessions live as long as the host; a collected session would
	// silently fall back to ephemeral storage.
	h.sessions[label] = session
	return session, nil
}

func (h *GTKHost) buildWindow(spec port.WindowSpec, dataDir, cacheDir string) (*appWindow, error) {
	session, err := h.sessionFor(spec.Label, dataDir, cacheDir)
	if err != nil {
		return nil, err
	}

	view := newWebViewWithSession(session)
	if view == nil {
		return nil, errors.New("webkit: failed to create web view")
	}
	view.SetHExpand(true)
	view.SetVExpand(true)

	back := gtk.NewButtonFromIconName(iconBack)
	forward := gtk.NewButtonFromIconName(iconForward)
	reload := gtk.NewButtonFromIconName(iconReload)
	address := gtk.NewEntry()
	address.SetHExpand(true)
	address.SetText(spec.URL)

	toolbar := gtk.NewBox(gtk.OrientationHorizontal, 4)
	toolbar.SetSizeRequest(-1, h.opts.ToolbarHeight)
	toolbar.Append(back)
	toolbar.Append(forward)
	toolbar.Append(reload)
	toolbar.Append(address)

	content := gtk.NewBox(gtk.OrientationVertical, 0)
	content.Append(toolbar)
	content.Append(view)

	win := gtk.NewApplicationWindow(h.app)
	win.SetTitle(spec.Title)
	win.SetDefaultSize(spec.Width, spec.Height)
	win.SetChild(content)

	w := newAppWindow(spec, win, view)

	back.ConnectClicked(func() { view.GoBack() })
	forward.ConnectClicked(func() { view.GoForward() })
	reload.ConnectClicked(func() { view.Reload() })
	address.ConnectActivate(func() {
		target := domainurl.Normalize(strings.TrimSpace(address.Text()))
		if target != "" {
			view.LoadURI(target)
		}
	})

	view.Connect("notify::uri", func() {
		uri := view.URI()
		address.SetText(uri)
		w.setURL(uri)
	})
	win.Connect("notify::default-width", w.emitResized)
	win.Connect("notify::default-height", w.emitResized)
	win.Connect("notify::maximized", func() { w.setMaximized(win.IsMaximized()) })
	win.ConnectCloseRequest(func() bool {
		w.markClosed()
		return false
	})
	win.ConnectDestroy(w.markClosed)

	view.LoadURI(spec.URL)
	win.Present()
	return w, nil
}

// newWebViewWithSession wraps a C-constructed WebView in the gotk4 type
// hierarchy, since the generated constructor cannot set construct-only
// properties.
func newWebViewWithSession(session *webkit.NetworkSession) *webkit.WebView {
	sessionObj := coreglib.InternObject(session)
	native := C.new_web_view_with_session((*C.WebKitNetworkSession)(unsafe.Pointer(sessionObj.Native())))
	runtime.KeepAlive(session)
	if native == nil {
		return nil
	}

	obj := coreglib.Take(unsafe.Pointer(native))
	widget := gtk.Widget{
		InitiallyUnowned: coreglib.InitiallyUnowned{Object: obj},
		Object:           obj,
		Accessible:       gtk.Accessible{Object: obj},
		Buildable:        gtk.Buildable{Object: obj},
		ConstraintTarget: gtk.ConstraintTarget{Object: obj},
	}
	return &webkit.WebView{WebViewBase: webkit.WebViewBase{Widget: widget}}
}

// invoke schedules fn on the GTK main loop.
func invoke(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

// invokeSync runs fn on the GTK main loop and waits for its result.
// Calling it from the main thread deadlocks.
func invokeSync[T any](fn func() T) T {
	ch := make(chan T, 1)
	invoke(func() { ch <- fn() })
	return <-ch
}
