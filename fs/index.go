package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/docview"
)

// DefaultIndexName is the index file name inside a documentation directory.
const DefaultIndexName = "index.json"

// Ensure IndexLoader implements docview.IndexLoader at compile time.
var _ docview.IndexLoader = (*IndexLoader)(nil)

// IndexLoader reads and parses the bootstrap index from a directory.
type IndexLoader struct {
	dir  string
	name string
}

// NewIndexLoader creates an IndexLoader for dir. An empty name falls back
// to DefaultIndexName.
func NewIndexLoader(dir, name string) *IndexLoader {
	if name == "" {
		name = DefaultIndexName
	}
	return &IndexLoader{dir: dir, name: name}
}

// Load reads and parses the index. Read failures surface as ELOADFAILED;
// parse failures keep their EINVALID code from docview.ParseIndex.
func (l *IndexLoader) Load(ctx context.Context) (*docview.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(l.dir, l.name))
	if err != nil {
		return nil, docview.Errorf(docview.ELOADFAILED, "failed to load documentation index %q", l.name)
	}
	return docview.ParseIndex(data)
}
