package mock

import (
	"context"

	"github.com/fwojciec/docview"
)

var _ docview.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docview.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, markdown, title string) (string, error)
}

func (r *Renderer) Render(ctx context.Context, markdown, title string) (string, error) {
	return r.RenderFn(ctx, markdown, title)
}

var _ docview.OutlineBuilder = (*OutlineBuilder)(nil)

// OutlineBuilder is a mock implementation of docview.OutlineBuilder.
type OutlineBuilder struct {
	OutlineFn func(markup string) ([]docview.OutlineEntry, error)
}

func (b *OutlineBuilder) Outline(markup string) ([]docview.OutlineEntry, error) {
	return b.OutlineFn(markup)
}
