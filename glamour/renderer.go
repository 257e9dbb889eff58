// Package glamour renders markdown for terminal output.
package glamour

import (
	"context"

	"github.com/charmbracelet/glamour"
	"github.com/fwojciec/docview"
)

// DefaultWordWrap is the wrap width used when none is configured.
const DefaultWordWrap = 100

// Renderer renders markdown as styled terminal text.
type Renderer struct {
	tr *glamour.TermRenderer
}

var _ docview.Renderer = (*Renderer)(nil)

type options struct {
	style    string
	wordWrap int
}

// Option configures a Renderer.
type Option func(*options)

// WithStyle sets a standard glamour style by name (e.g. "dark", "notty").
// When unset, the style is auto-detected from the terminal.
func WithStyle(style string) Option {
	return func(o *options) {
		o.style = style
	}
}

// WithWordWrap sets the wrap width. Defaults to DefaultWordWrap.
func WithWordWrap(width int) Option {
	return func(o *options) {
		o.wordWrap = width
	}
}

// NewRenderer returns a terminal renderer.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := options{wordWrap: DefaultWordWrap}
	for _, opt := range opts {
		opt(&o)
	}

	gopts := []glamour.TermRendererOption{glamour.WithWordWrap(o.wordWrap)}
	if o.style != "" {
		gopts = append(gopts, glamour.WithStandardStyle(o.style))
	} else {
		gopts = append(gopts, glamour.WithAutoStyle())
	}

	tr, err := glamour.NewTermRenderer(gopts...)
	if err != nil {
		return nil, docview.Errorf(docview.EINTERNAL, "terminal renderer init failed: %v", err)
	}
	return &Renderer{tr: tr}, nil
}

// Render converts markdown to styled terminal text. The title is already
// present as the document's leading heading, so it is not used here.
func (r *Renderer) Render(ctx context.Context, markdown, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := r.tr.Render(markdown)
	if err != nil {
		return "", docview.Errorf(docview.EINTERNAL, "terminal render failed: %v", err)
	}
	return out, nil
}
