//go:build !webkit_cgo

package webkit

import (
	"context"

	"github.com/bnema/webdeck/internal/application/port"
)

// Available reports whether the GTK host is compiled in.
func Available() bool { return false }

// GTKHost is unavailable in this build.
type GTKHost struct{}

var _ port.WindowHost = (*GTKHost)(nil)

// NewGTKHost always fails with ErrUnavailable.
func NewGTKHost(port.XDGPaths, HostOptions) (*GTKHost, error) {
	return nil, ErrUnavailable
}

// Create always fails with ErrUnavailable.
func (h *GTKHost) Create(context.Context, port.WindowSpec) (port.AppWindow, error) {
	return nil, ErrUnavailable
}

// Run calls fn directly; there is no main loop to drive.
func (h *GTKHost) Run(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
