// Package slog provides logging decorators for docview interfaces using
// the standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docview"
)

// Ensure Fetcher implements docview.Fetcher at compile time.
var _ docview.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a docview.Fetcher with timing and outcome logs.
type Fetcher struct {
	next   docview.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a logging Fetcher around next.
func NewFetcher(next docview.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	begin := time.Now()
	content, err := f.next.Fetch(ctx, path)
	if err != nil {
		f.logger.Error("document fetch",
			"path", path,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Info("document fetch",
		"path", path,
		"bytes", len(content),
		"duration", time.Since(begin),
	)
	return content, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
