// Package fs provides filesystem-backed implementations of docview.Fetcher
// and docview.IndexLoader for viewing a documentation tree on local disk.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docview"
)

// Ensure Fetcher implements docview.Fetcher at compile time.
var _ docview.Fetcher = (*Fetcher)(nil)

// Fetcher reads documents from a root directory. Paths use forward slashes
// as they appear in the index, independent of the host OS.
type Fetcher struct {
	root string
}

// NewFetcher creates a Fetcher rooted at dir.
func NewFetcher(dir string) *Fetcher {
	return &Fetcher{root: dir}
}

// Fetch reads the document at path relative to the root directory.
// Paths escaping the root are rejected with EINVALID; missing files return
// ENOTFOUND.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean := filepath.Clean(filepath.FromSlash(path))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", docview.Errorf(docview.EINVALID, "path %q escapes the documentation root", path)
	}

	data, err := os.ReadFile(filepath.Join(f.root, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return "", docview.Errorf(docview.ENOTFOUND, "document %q not found", path)
		}
		return "", err
	}
	return string(data), nil
}

// Close releases resources. For the filesystem fetcher this is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
