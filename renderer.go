package docview

import "context"

// Renderer converts final markdown into rendered markup. Code blocks are
// expected to be syntax-highlighted by language hint when recognized,
// otherwise auto-detected.
type Renderer interface {
	Render(ctx context.Context, markdown, title string) (string, error)
}

// OutlineEntry is one heading of a rendered document's outline.
type OutlineEntry struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// OutlineBuilder extracts the in-page outline from rendered markup.
type OutlineBuilder interface {
	Outline(markup string) ([]OutlineEntry, error)
}
