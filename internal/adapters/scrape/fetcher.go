package scrape

import (
	"context"
	"fmt"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"yt2reader/internal/ports"
)

// Pretend to be a regular browser; YouTube serves a stripped page to
// unknown agents.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

// pageCacheSize bounds the per-session cache of parsed pages.
const pageCacheSize = 16

// Fetcher retrieves pages over HTTP and caches parsed documents for the
// session, so repeated extract runs against the same page don't refetch.
type Fetcher struct {
	client *http.Client
	cache  *lru.Cache[string, ports.Document]
}

// NewFetcher creates a page fetcher.
func NewFetcher() (*Fetcher, error) {
	cache, err := lru.New[string, ports.Document](pageCacheSize)
	if err != nil {
		return nil, err
	}
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
		cache:  cache,
	}, nil
}

// FetchDocument returns the parsed page, from cache when available.
func (f *Fetcher) FetchDocument(ctx context.Context, pageURL string) (ports.Document, error) {
	if doc, ok := f.cache.Get(pageURL); ok {
		return doc, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", pageURL, resp.StatusCode)
	}

	doc, err := NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	f.cache.Add(pageURL, doc)
	return doc, nil
}
