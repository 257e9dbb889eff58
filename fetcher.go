package docview

import "context"

// Fetcher retrieves raw document content by path.
// Implementations hide the transport (HTTP vs local filesystem).
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
	Close() error
}

// IndexLoader loads the bootstrap document index. A failure here is fatal
// to the whole session.
type IndexLoader interface {
	Load(ctx context.Context) (*Index, error)
}
