// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, the system browser).
package port

import (
	"context"
	"errors"
)

var (
	// ErrWindowUnsupported is returned when a host cannot perform a window operation.
	ErrWindowUnsupported = errors.New("window operation not supported by host")
	// ErrWindowClosed is returned when operating on a window that has been closed.
	ErrWindowClosed = errors.New("window closed")
)

// Default geometry for app windows.
const (
	DefaultWindowWidth   = 1200
	DefaultWindowHeight  = 800
	DefaultToolbarHeight = 50
)

// WindowSpec describes a window to open.
type WindowSpec struct {
	Label  string
	URL    string
	Title  string
	Width  int
	Height int
}

// WithDefaults fills zero geometry with the default window size.
func (s WindowSpec) WithDefaults() WindowSpec {
	if s.Width <= 0 {
		s.Width = DefaultWindowWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultWindowHeight
	}
	if s.Title == "" {
		s.Title = s.Label
	}
	return s
}

// AppWindow is a handle to one host-managed app window.
type AppWindow interface {
	Label() string
	URL() string

	// Window chrome.
	Minimize() error
	ToggleMaximize() error
	IsMaximized() bool
	Close() error
	Focus() error

	// Navigation inside the app window.
	Back() error
	Forward() error
	Reload() error
	NavigateTo(url string) error

	// OnResized registers a callback invoked with the new window size.
	OnResized(fn func(width, height int))

	// Done is closed once the window is gone.
	Done() <-chan struct{}
}

// WindowHost creates real windows.
type WindowHost interface {
	Create(ctx context.Context, spec WindowSpec) (AppWindow, error)
}

// WindowManager opens app windows by label. Open is an idempotent
// lookup-or-create: a live window with the same label is focused and reused.
type WindowManager interface {
	Open(ctx context.Context, spec WindowSpec) (AppWindow, error)
	Lookup(label string) (AppWindow, bool)
	Labels() []string
	CloseAll() error
}
