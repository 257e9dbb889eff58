package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docview"
)

// Ensure DocumentLoader implements docview.DocumentLoader at compile time.
var _ docview.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader wraps a docview.DocumentLoader with timing and outcome
// logs.
type DocumentLoader struct {
	next   docview.DocumentLoader
	logger *slog.Logger
}

// NewDocumentLoader creates a logging DocumentLoader around next.
func NewDocumentLoader(next docview.DocumentLoader, logger *slog.Logger) *DocumentLoader {
	return &DocumentLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the outcome.
func (l *DocumentLoader) Load(ctx context.Context, path string) (*docview.LoadedDocument, error) {
	begin := time.Now()
	doc, err := l.next.Load(ctx, path)
	if err != nil {
		l.logger.Error("document load",
			"path", path,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	l.logger.Info("document load",
		"path", path,
		"title", doc.Title,
		"duration", time.Since(begin),
	)
	return doc, nil
}
