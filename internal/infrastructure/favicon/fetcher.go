// Package favicon provides favicon fetching and caching infrastructure.
package favicon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	domainurl "github.com/bnema/webdeck/internal/domain/url"
	"github.com/bnema/webdeck/internal/logging"
)

const (
	// HTTP client timeout for favicon fetch.
	fetchTimeout = 5 * time.Second
	// Upper bound on a favicon body.
	maxIconBytes = 1 << 20
)

// Fetcher retrieves favicons from the favicon service.
type Fetcher struct {
	client *http.Client
	// endpoint overrides the service URL; it must accept the same
	// domain and sz query parameters.
	endpoint string
}

// NewFetcher creates a new Fetcher with default HTTP client settings.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

func (f *Fetcher) serviceURL(host string, size int) string {
	if f.endpoint == "" {
		return domainurl.FaviconServiceURL(host, size)
	}
	q := url.Values{}
	q.Set("domain", host)
	q.Set("sz", fmt.Sprint(size))
	return f.endpoint + "?" + q.Encode()
}

// Fetch retrieves favicon bytes for host at the requested size.
// Returns nil bytes if the service has no icon for the host.
func (f *Fetcher) Fetch(ctx context.Context, host string, size int) ([]byte, error) {
	if host == "" {
		return nil, nil
	}

	log := logging.FromContext(ctx)
	faviconURL := f.serviceURL(host, size)

	log.Debug().Str("url", faviconURL).Msg("fetching favicon")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, faviconURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create favicon request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favicon for %s: %w", host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Str("host", host).Msg("favicon service returned non-OK status")
		return nil, nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read favicon response: %w", err)
	}

	if len(data) == 0 {
		log.Debug().Str("host", host).Msg("empty favicon response")
		return nil, nil
	}

	log.Debug().Str("host", host).Int("bytes", len(data)).Msg("favicon fetched")
	return data, nil
}
