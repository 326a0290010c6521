package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	CacheDir() (string, error)

	// ProfileDir is the per-window web data directory for label.
	ProfileDir(label string) (string, error)

	// ApplicationsDir is where desktop entries are installed.
	ApplicationsDir() (string, error)
}
