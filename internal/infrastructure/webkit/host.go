// Package webkit hosts app windows in GTK4 with a WebKitGTK 6 content view.
// The real host needs the webkit_cgo build tag; other builds get a stub
// that reports ErrUnavailable so callers can fall back to the system browser.
package webkit

import "errors"

// ErrUnavailable is returned when the binary was built without GTK support.
var ErrUnavailable = errors.New("webkit: built without the webkit_cgo tag")

const applicationID = "io.github.bnema.webdeck"

// Toolbar icons.
const (
	iconBack    = "go-previous-symbolic"
	iconForward = "go-next-symbolic"
	iconReload  = "view-refresh-symbolic"
)

// HostOptions configures a GTK host.
type HostOptions struct {
	ToolbarHeight int
}
