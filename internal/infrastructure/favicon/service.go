package favicon

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/webdeck/internal/application/port"
	domainurl "github.com/bnema/webdeck/internal/domain/url"
	"github.com/bnema/webdeck/internal/logging"
)

// prefetchLimit caps concurrent downloads during Prefetch.
const prefetchLimit = 4

// Service implements port.IconStore.
// It coordinates between the cache and fetcher components.
type Service struct {
	cache   *Cache
	fetcher *Fetcher
	size    int

	// inflight collapses concurrent downloads of the same host.
	mu       sync.Mutex
	inflight map[string]chan struct{}
}

var _ port.IconStore = (*Service)(nil)

// NewService creates a new favicon service.
// cacheDir is the directory for disk caching; empty string disables disk caching.
func NewService(cacheDir string, size int) *Service {
	if size <= 0 {
		size = domainurl.DefaultFaviconSize
	}
	return &Service{
		cache:    NewCache(cacheDir),
		fetcher:  NewFetcher(),
		size:     size,
		inflight: make(map[string]chan struct{}),
	}
}

// Get returns PNG bytes for host, fetching and normalizing on a cache miss.
// A host the service has no icon for yields nil bytes and no error.
func (s *Service) Get(ctx context.Context, host string) ([]byte, error) {
	if host == "" {
		return nil, nil
	}

	if data, ok := s.cache.Get(host); ok {
		return data, nil
	}

	// Wait for a concurrent fetch of the same host, then re-check the cache.
	s.mu.Lock()
	if wait, busy := s.inflight[host]; busy {
		s.mu.Unlock()
		select {
		case <-wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		data, _ := s.cache.Get(host)
		return data, nil
	}
	done := make(chan struct{})
	s.inflight[host] = done
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, host)
		s.mu.Unlock()
		close(done)
	}()

	raw, err := s.fetcher.Fetch(ctx, host, s.size)
	if err != nil || len(raw) == 0 {
		return nil, err
	}

	data, err := NormalizePNG(raw, s.size)
	if err != nil {
		return nil, fmt.Errorf("favicon for %s: %w", host, err)
	}

	if err := s.cache.Set(host, data); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("host", host).Msg("failed to write favicon cache")
	}
	return data, nil
}

// IconPath returns the on-disk PNG for host, downloading it if needed.
func (s *Service) IconPath(ctx context.Context, host string) (string, error) {
	if s.cache.DiskPath(host) == "" {
		return "", nil
	}

	if !s.cache.HasOnDisk(host) {
		data, err := s.Get(ctx, host)
		if err != nil {
			return "", err
		}
		if len(data) == 0 || !s.cache.HasOnDisk(host) {
			return "", nil
		}
	}
	return s.cache.DiskPath(host), nil
}

// Prefetch downloads icons for hosts concurrently. Failures are logged
// and never abort the other downloads.
func (s *Service) Prefetch(ctx context.Context, hosts []string) {
	log := logging.FromContext(ctx)

	seen := make(map[string]struct{}, len(hosts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchLimit)

	for _, host := range hosts {
		if host == "" {
			continue
		}
		if _, dup := seen[host]; dup {
			continue
		}
		seen[host] = struct{}{}

		g.Go(func() error {
			if _, err := s.Get(gctx, host); err != nil {
				log.Debug().Err(err).Str("host", host).Msg("favicon prefetch failed")
			}
			return nil
		})
	}

	_ = g.Wait()
	log.Debug().Int("hosts", len(seen)).Msg("favicon prefetch done")
}

// Cached reports the number of icons held in memory.
func (s *Service) Cached() int {
	return s.cache.Size()
}
