package config

import (
	"os"
	"path/filepath"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

const (
	appName        = "webdeck"
	configFileName = "config.toml"
	schemaFileName = "config.schema.json"

	sqliteFileName = "webdeck.sqlite"
	jsonFileName   = "apps.json"
	boltFileName   = "webdeck.db"
	logFileName    = "webdeck.log"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	CacheHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for webdeck.
// It follows the XDG Base Directory specification:
// - $XDG_CONFIG_HOME/webdeck (default: ~/.config/webdeck)
// - $XDG_DATA_HOME/webdeck (default: ~/.local/share/webdeck)
// - $XDG_CACHE_HOME/webdeck (default: ~/.cache/webdeck)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			CacheHome:  filepath.Join(devDir, "cache"),
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: xdgDir("XDG_CONFIG_HOME", homeDir, ".config"),
		DataHome:   xdgDir("XDG_DATA_HOME", homeDir, ".local", "share"),
		CacheHome:  xdgDir("XDG_CACHE_HOME", homeDir, ".cache"),
	}, nil
}

func xdgDir(env, homeDir string, fallback ...string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(append([]string{homeDir}, fallback...)...)
	}
	return filepath.Join(base, appName)
}

// GetConfigDir returns the XDG config directory for webdeck.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory for webdeck.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetCacheDir returns the XDG cache directory for webdeck.
func GetCacheDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.CacheHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

// GetStorageFile returns the default data file for a storage backend.
func GetStorageFile(backend StorageBackend) (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	switch backend {
	case StorageJSON:
		return filepath.Join(dataDir, jsonFileName), nil
	case StorageBolt:
		return filepath.Join(dataDir, boltFileName), nil
	default:
		return filepath.Join(dataDir, sqliteFileName), nil
	}
}

// GetProfilesDir returns the parent of the per-window web data directories.
func GetProfilesDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "profiles"), nil
}

// GetFaviconCacheDir returns the on-disk favicon cache directory.
func GetFaviconCacheDir() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "favicons"), nil
}

// GetLogFile returns the log file used when stderr is taken by the launcher UI.
func GetLogFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "logs", logFileName), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.CacheHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
