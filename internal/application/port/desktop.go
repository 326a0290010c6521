package port

import "context"

// DesktopEntry describes a launcher entry for a single shortcut.
type DesktopEntry struct {
	ID       string
	Name     string
	URL      string
	IconPath string // local icon file; empty uses a generic icon
}

// DesktopIntegration installs per-shortcut desktop launchers.
type DesktopIntegration interface {
	// InstallShortcutEntry writes the entry and returns its path.
	// Idempotent: an existing entry is overwritten.
	InstallShortcutEntry(ctx context.Context, entry DesktopEntry) (string, error)

	// RemoveShortcutEntry deletes the entry for id.
	// Idempotent: returns nil if it does not exist.
	RemoveShortcutEntry(ctx context.Context, id string) error
}
