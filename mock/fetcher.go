// Package mock provides function-field mock implementations of the docview
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/docview"
)

var _ docview.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docview.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, path string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	return f.FetchFn(ctx, path)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
