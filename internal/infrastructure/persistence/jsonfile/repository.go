// Package jsonfile stores the shortcut collection as a JSON array on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/domain/repository"
	"github.com/bnema/webdeck/internal/logging"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// Repository reads and writes apps.json. The file holds
// [{"id":..,"name":..,"url":..,"icon":..}] in display order.
// A sibling .lock file serializes writers across processes.
type Repository struct {
	path string
}

var _ repository.ShortcutRepository = (*Repository)(nil)

// NewRepository creates a repository backed by the file at path.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Path returns the data file location.
func (r *Repository) Path() string {
	return r.path
}

// LoadAll returns the stored collection. A missing file is an empty collection.
func (r *Repository) LoadAll(ctx context.Context) ([]*entity.Shortcut, error) {
	unlock, err := r.lock(unix.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		logging.FromContext(ctx).Debug().Str("path", r.path).Msg("no shortcuts file yet")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	var shortcuts []*entity.Shortcut
	if err := json.Unmarshal(data, &shortcuts); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	return shortcuts, nil
}

// SaveAll replaces the file atomically.
func (r *Repository) SaveAll(ctx context.Context, shortcuts []*entity.Shortcut) error {
	unlock, err := r.lock(unix.LOCK_EX)
	if err != nil {
		return err
	}
	defer unlock()

	records := entity.CloneShortcuts(shortcuts)
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode shortcuts: %w", err)
	}

	if err := writeFileAtomic(r.path, data); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Int("count", len(records)).Str("path", r.path).Msg("shortcuts saved to json")
	return nil
}

func (r *Repository) lock(how int) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(r.path), dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.OpenFile(r.path+".lock", os.O_CREATE|os.O_RDWR, filePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), how); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", r.path, err)
	}

	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".apps-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
