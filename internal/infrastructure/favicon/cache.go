package favicon

import (
	"os"
	"path/filepath"

	domainurl "github.com/bnema/webdeck/internal/domain/url"
	"github.com/bnema/webdeck/internal/infrastructure/cache"
)

// File permissions for favicon cache.
const (
	diskCacheDirPerm  = 0750
	diskCacheFilePerm = 0600
)

// memoryBudget bounds the in-memory tier, in bytes of PNG data.
const memoryBudget = 4 << 20

// Cache provides two-tier favicon caching (memory + disk).
// Disk entries are PNG files named after the host.
type Cache struct {
	mem     *cache.LRU[string, []byte]
	diskDir string
}

// NewCache creates a new favicon cache.
// If diskDir is empty, only in-memory caching is used.
func NewCache(diskDir string) *Cache {
	return &Cache{
		mem:     cache.NewBytesLRU[string](memoryBudget),
		diskDir: diskDir,
	}
}

// Get retrieves favicon bytes for a host.
// Checks memory cache first, then disk cache.
func (c *Cache) Get(host string) ([]byte, bool) {
	if host == "" {
		return nil, false
	}

	if data, ok := c.mem.Get(host); ok {
		return data, true
	}

	if data := c.loadFromDisk(host); data != nil {
		c.mem.Set(host, data)
		return data, true
	}

	return nil, false
}

// Set stores PNG bytes for a host in memory and on disk.
func (c *Cache) Set(host string, data []byte) error {
	if host == "" || len(data) == 0 {
		return nil
	}

	c.mem.Set(host, data)
	return c.writeToDisk(host, data)
}

// DiskPath returns the filesystem path for a host's cached PNG.
// Returns empty string if disk caching is disabled or host is empty.
func (c *Cache) DiskPath(host string) string {
	if c.diskDir == "" || host == "" {
		return ""
	}
	return filepath.Join(c.diskDir, domainurl.SanitizeDomainForPNG(host))
}

// HasOnDisk checks if a favicon exists on disk for the given host.
func (c *Cache) HasOnDisk(host string) bool {
	path := c.DiskPath(host)
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Size returns the number of entries in the in-memory cache.
func (c *Cache) Size() int {
	return c.mem.Len()
}

func (c *Cache) loadFromDisk(host string) []byte {
	path := c.DiskPath(host)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil
	}
	return data
}

// writeToDisk atomically writes favicon data to disk.
func (c *Cache) writeToDisk(host string, data []byte) error {
	if c.diskDir == "" {
		return nil
	}

	if err := os.MkdirAll(c.diskDir, diskCacheDirPerm); err != nil {
		return err
	}

	finalPath := c.DiskPath(host)
	tmp, err := os.CreateTemp(c.diskDir, filepath.Base(finalPath)+".*.tmp")
	if err != nil {
		return err
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tempPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return err
	}
	if err := os.Chmod(tempPath, diskCacheFilePerm); err != nil {
		_ = os.Remove(tempPath)
		return err
	}

	if err := os.Rename(tempPath, finalPath); err != nil {
		_ = os.Remove(tempPath)
		return err
	}
	return nil
}
