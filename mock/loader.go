package mock

import (
	"context"

	"github.com/fwojciec/docview"
)

var _ docview.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of docview.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(ctx context.Context, path string) (*docview.LoadedDocument, error)
}

func (l *DocumentLoader) Load(ctx context.Context, path string) (*docview.LoadedDocument, error) {
	return l.LoadFn(ctx, path)
}
