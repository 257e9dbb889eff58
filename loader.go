package docview

import "context"

// LoadedDocument is a fetched and transformed document, ready for a
// Renderer. Content is markdown with wiki-links and embeds rewritten and
// exactly one leading title heading.
type LoadedDocument struct {
	Content     string    `json:"content"`
	Title       string    `json:"title"`
	Metadata    Metadata  `json:"metadata"`
	Sections    []Section `json:"sections,omitempty"`
	ContentHash uint64    `json:"contentHash"`
}

// DocumentLoader fetches and transforms a document by path.
// Failures collapse into a generic ELOADFAILED error; network and parse
// causes are deliberately not distinguished.
type DocumentLoader interface {
	Load(ctx context.Context, path string) (*LoadedDocument, error)
}
