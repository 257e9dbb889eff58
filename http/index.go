package http

import (
	"context"

	"github.com/fwojciec/docview"
)

// DefaultIndexPath is where a documentation site publishes its index.
const DefaultIndexPath = "index.json"

// Ensure IndexLoader implements docview.IndexLoader at compile time.
var _ docview.IndexLoader = (*IndexLoader)(nil)

// IndexLoader fetches and parses the bootstrap index document.
type IndexLoader struct {
	fetcher docview.Fetcher
	path    string
}

// NewIndexLoader creates an IndexLoader reading path through fetcher.
// An empty path falls back to DefaultIndexPath.
func NewIndexLoader(fetcher docview.Fetcher, path string) *IndexLoader {
	if path == "" {
		path = DefaultIndexPath
	}
	return &IndexLoader{fetcher: fetcher, path: path}
}

// Load fetches and parses the index. Fetch failures surface as ELOADFAILED;
// parse failures keep their EINVALID code from docview.ParseIndex.
func (l *IndexLoader) Load(ctx context.Context) (*docview.Index, error) {
	data, err := l.fetcher.Fetch(ctx, l.path)
	if err != nil {
		return nil, docview.Errorf(docview.ELOADFAILED, "failed to load documentation index %q", l.path)
	}
	return docview.ParseIndex([]byte(data))
}
