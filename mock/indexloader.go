package mock

import (
	"context"

	"github.com/fwojciec/docview"
)

var _ docview.IndexLoader = (*IndexLoader)(nil)

// IndexLoader is a mock implementation of docview.IndexLoader.
type IndexLoader struct {
	LoadFn func(ctx context.Context) (*docview.Index, error)
}

func (l *IndexLoader) Load(ctx context.Context) (*docview.Index, error) {
	return l.LoadFn(ctx)
}
