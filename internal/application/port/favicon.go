package port

import "context"

// IconStore resolves a local image file for a site's favicon.
type IconStore interface {
	// IconPath returns a local PNG path for host, downloading it if needed.
	// It returns "" when no icon could be obtained.
	IconPath(ctx context.Context, host string) (string, error)
}
