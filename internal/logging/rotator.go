package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const (
	logFilePerm = 0o600
	logDirPerm  = 0o750
)

// RotatingFile is an io.Writer over a log file that rolls over once it
// grows past a size limit. Old files are kept gzipped as name.1.gz through
// name.N.gz, newest first.
//
// The launcher logs here because stderr belongs to its terminal UI.
type RotatingFile struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxBackups int

	file *os.File
	size int64
}

var _ io.WriteCloser = (*RotatingFile)(nil)

// OpenRotatingFile opens or creates path for appending. maxSizeMB below 1
// means 1; maxBackups below 0 means 0.
func OpenRotatingFile(path string, maxSizeMB, maxBackups int) (*RotatingFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	r := &RotatingFile{
		path:       path,
		maxSize:    int64(max(maxSizeMB, 1)) << 20,
		maxBackups: max(maxBackups, 0),
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RotatingFile) open() error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

// Write appends p, rotating first when p would push the file over the limit.
// A single write larger than the limit still goes to a fresh file whole.
func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate shifts the backups up by one, compresses the current file into
// slot 1 and starts an empty file.
func (r *RotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	r.file = nil

	if r.maxBackups == 0 {
		if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to drop log file: %w", err)
		}
		return r.open()
	}

	_ = os.Remove(r.backupPath(r.maxBackups))
	for i := r.maxBackups - 1; i >= 1; i-- {
		if err := os.Rename(r.backupPath(i), r.backupPath(i+1)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to shift log backup: %w", err)
		}
	}
	if err := compressTo(r.path, r.backupPath(1)); err != nil {
		return err
	}
	if err := os.Remove(r.path); err != nil {
		return fmt.Errorf("failed to drop rotated log file: %w", err)
	}
	return r.open()
}

func (r *RotatingFile) backupPath(n int) string {
	return fmt.Sprintf("%s.%d.gz", r.path, n)
}

func compressTo(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open log for compression: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to create log backup: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		return fmt.Errorf("failed to compress log backup: %w", err)
	}
	return zw.Close()
}

// Close closes the current file.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
