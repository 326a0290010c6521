package xdg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/webdeck/internal/application/port"
	"github.com/bnema/webdeck/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) CacheDir() (string, error) {
	return config.GetCacheDir()
}

// ProfileDir returns <data>/profiles/<label>. Labels are single path
// elements; anything that could escape the profiles dir is rejected.
func (a *Adapter) ProfileDir(label string) (string, error) {
	if label == "" || label == "." || label == ".." || strings.ContainsAny(label, `/\`) {
		return "", fmt.Errorf("invalid window label %q", label)
	}
	profiles, err := config.GetProfilesDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(profiles, label), nil
}

// ApplicationsDir is where desktop entries are installed.
// Entries go to the shared XDG_DATA_HOME/applications, not the webdeck data dir,
// so launchers pick them up without extra configuration.
func (a *Adapter) ApplicationsDir() (string, error) {
	if os.Getenv("ENV") == "dev" {
		dataDir, err := a.DataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dataDir, "applications"), nil
	}

	dataHome, err := sharedDataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataHome, "applications"), nil
}

// ManDir is where generated man pages are installed.
func (a *Adapter) ManDir() (string, error) {
	dataHome, err := sharedDataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataHome, "man", "man1"), nil
}

func sharedDataHome() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return dataHome, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

var _ port.XDGPaths = (*Adapter)(nil)
