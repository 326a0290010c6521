// Package bolt stores the shortcut collection in a bbolt file.
package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"
	bolterrors "go.etcd.io/bbolt/errors"

	"github.com/bnema/webdeck/internal/domain/entity"
	"github.com/bnema/webdeck/internal/domain/repository"
	"github.com/bnema/webdeck/internal/logging"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600

	openTimeout = time.Second
)

var shortcutsBucket = []byte("shortcuts")

// Repository keeps one record per key. Keys are big-endian positions so a
// cursor walk returns display order; values are JSON records.
type Repository struct {
	db *bbolt.DB
}

var _ repository.ShortcutRepository = (*Repository)(nil)

// Open opens (or creates) the bolt file at path.
func Open(ctx context.Context, path string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := bbolt.Open(path, filePerm, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database %s: %w", path, err)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Msg("bolt database opened")
	return &Repository{db: db}, nil
}

// Close releases the file lock.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) LoadAll(_ context.Context) ([]*entity.Shortcut, error) {
	var out []*entity.Shortcut

	err := r.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(shortcutsBucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var s entity.Shortcut
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("failed to decode record %x: %w", k, err)
			}
			out = append(out, &s)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SaveAll recreates the bucket in a single update transaction.
func (r *Repository) SaveAll(ctx context.Context, shortcuts []*entity.Shortcut) error {
	count := 0
	err := r.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(shortcutsBucket); err != nil && !errors.Is(err, bolterrors.ErrBucketNotFound) {
			return fmt.Errorf("failed to clear shortcuts: %w", err)
		}
		b, err := tx.CreateBucket(shortcutsBucket)
		if err != nil {
			return fmt.Errorf("failed to create shortcuts bucket: %w", err)
		}

		for _, s := range shortcuts {
			if s == nil {
				continue
			}
			v, err := json.Marshal(s)
			if err != nil {
				return fmt.Errorf("failed to encode shortcut %d: %w", s.ID, err)
			}
			if err := b.Put(positionKey(count), v); err != nil {
				return fmt.Errorf("failed to store shortcut %d: %w", s.ID, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Int("count", count).Msg("shortcuts saved to bolt")
	return nil
}

func positionKey(i int) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(i))
	return k
}
