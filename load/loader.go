// Package load implements the document loading and transformation pipeline:
// front-matter extraction, wiki-link and media-embed rewriting, and title
// synthesis. The output is markdown ready for a docview.Renderer.
package load

import (
	"context"
	"path"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docview"
)

// DefaultMediaDir is the base directory for ![[..]] media embeds.
const DefaultMediaDir = "./docs/images"

// Ensure Loader implements docview.DocumentLoader at compile time.
var _ docview.DocumentLoader = (*Loader)(nil)

// Loader fetches documents and transforms them against a loaded index.
// Wiki-link targets resolve through the index's document tree.
type Loader struct {
	fetcher  docview.Fetcher
	index    *docview.Index
	mediaDir string
}

// Option configures a Loader.
type Option func(*Loader)

// WithMediaDir sets the base directory for media embeds.
// Defaults to DefaultMediaDir if not specified.
func WithMediaDir(dir string) Option {
	return func(l *Loader) {
		l.mediaDir = strings.TrimSuffix(dir, "/")
	}
}

// NewLoader creates a Loader reading through fetcher and resolving
// wiki-links against index.
func NewLoader(fetcher docview.Fetcher, index *docview.Index, opts ...Option) *Loader {
	l := &Loader{
		fetcher:  fetcher,
		index:    index,
		mediaDir: DefaultMediaDir,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the document at p and applies the transformation pipeline.
// All failures collapse into a generic ELOADFAILED error; the underlying
// cause is deliberately not distinguished.
func (l *Loader) Load(ctx context.Context, p string) (*docview.LoadedDocument, error) {
	raw, err := l.fetcher.Fetch(ctx, p)
	if err != nil {
		return nil, docview.Errorf(docview.ELOADFAILED, "failed to load document %q", p)
	}

	metadata, content := docview.ExtractFrontMatter(raw)
	content = l.rewriteWikiLinks(content)
	content = l.rewriteEmbeds(content)

	title := l.resolveTitle(metadata, p)
	content = EnsureTitle(content, title)

	return &docview.LoadedDocument{
		Content:     content,
		Title:       title,
		Metadata:    metadata,
		Sections:    docview.ExtractSections(content),
		ContentHash: xxhash.Sum64String(raw),
	}, nil
}

// resolveTitle picks the document title: front-matter title, then the index
// entry's title, then the filename stem.
func (l *Loader) resolveTitle(metadata docview.Metadata, p string) string {
	if title := metadata.Title(); title != "" {
		return title
	}
	if doc := docview.FindByPath(l.index.Documents, p); doc != nil && doc.Title != "" {
		return doc.Title
	}
	return strings.TrimSuffix(path.Base(p), ".md")
}

var firstHeadingRe = regexp.MustCompile(`(?m)^#\s+.*$`)

// EnsureTitle guarantees exactly one top-level heading: any existing first
// H1 is stripped and a synthesized one from title is prepended.
func EnsureTitle(content, title string) string {
	if loc := firstHeadingRe.FindStringIndex(content); loc != nil {
		content = content[:loc[0]] + content[loc[1]:]
	}
	return "# " + title + "\n\n" + strings.TrimSpace(content)
}
