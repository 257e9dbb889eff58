// Package http provides HTTP-backed implementations of docview.Fetcher and
// docview.IndexLoader for documentation trees served as static files.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/docview"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRequestsPerSecond is the default request rate against the source
// host. Static documentation hosts are cheap to serve; the limit mostly
// protects against pathological navigation loops.
const DefaultRequestsPerSecond = 20.0

// Ensure Fetcher implements docview.Fetcher at compile time.
var _ docview.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents over HTTP relative to a base URL. Concurrent
// fetches of the same path are collapsed into a single request.
type Fetcher struct {
	base    string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
	group   singleflight.Group
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit sets the maximum request rate in requests per second.
// Defaults to DefaultRequestsPerSecond if not specified.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher rooted at base.
func NewFetcher(base string, opts ...Option) *Fetcher {
	f := &Fetcher{
		base:    strings.TrimSuffix(base, "/"),
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.limiter == nil {
		f.limiter = rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1)
	}
	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the document at path, relative to the base URL.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	v, err, _ := f.group.Do(path, func() (interface{}, error) {
		return f.fetch(ctx, path)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (f *Fetcher) fetch(ctx context.Context, path string) (string, error) {
	url := f.base + "/" + strings.TrimPrefix(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
