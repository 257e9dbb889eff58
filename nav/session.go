package nav

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/docview"
	"github.com/google/uuid"
)

// Session owns the loaded index and everything derived from it — the
// search index, the document loader, the debounced query state — for the
// lifetime of one viewing run. The tree is never mutated after Start;
// derived state is rebuilt wholesale by Reload.
type Session struct {
	ID string

	indexLoader docview.IndexLoader
	newLoader   func(*docview.Index) docview.DocumentLoader
	logger      *slog.Logger
	router      *Router
	debounce    *docview.Debouncer

	index   *docview.Index
	loader  docview.DocumentLoader
	search  *docview.SearchIndex
	current string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithDebounceDelay sets the search debounce quiescence window.
// Defaults to docview.DefaultDebounceDelay (200ms).
func WithDebounceDelay(d time.Duration) Option {
	return func(s *Session) {
		s.debounce = docview.NewDebouncer(d)
	}
}

// NewSession creates a Session. newLoader constructs the document loader
// once the index is available; it is called on Start and again on every
// Reload.
func NewSession(indexLoader docview.IndexLoader, newLoader func(*docview.Index) docview.DocumentLoader, opts ...Option) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		indexLoader: indexLoader,
		newLoader:   newLoader,
		router:      NewRouter(),
		search:      docview.NewSearchIndex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.debounce == nil {
		s.debounce = docview.NewDebouncer(docview.DefaultDebounceDelay)
	}
	return s
}

// Start loads the index, builds the search index and loader, and begins
// handling NavigationRequested events. An index-load failure is fatal to
// the session.
func (s *Session) Start(ctx context.Context) error {
	idx, err := s.indexLoader.Load(ctx)
	if err != nil {
		return err
	}
	s.index = idx
	s.loader = s.newLoader(idx)
	s.search.Build(idx.Documents)

	s.router.Subscribe(func(e Event) {
		req, ok := e.(NavigationRequested)
		if !ok {
			return
		}
		if _, err := s.Navigate(ctx, req.Slug, req.Fragment); err != nil {
			s.logger.Warn("navigation failed",
				"session", s.ID,
				"slug", req.Slug,
				"code", docview.ErrorCode(err),
			)
		}
	})

	s.logger.Info("session started",
		"session", s.ID,
		"site", idx.Metadata.SiteName,
		"documents", len(idx.Documents),
		"search_entries", s.search.Len(),
	)
	return nil
}

// Reload re-fetches the index and rebuilds all derived state.
func (s *Session) Reload(ctx context.Context) error {
	idx, err := s.indexLoader.Load(ctx)
	if err != nil {
		return err
	}
	s.index = idx
	s.loader = s.newLoader(idx)
	s.search.Build(idx.Documents)
	return nil
}

// Router returns the session's event router.
func (s *Session) Router() *Router {
	return s.router
}

// Index returns the loaded index. Nil before Start.
func (s *Session) Index() *docview.Index {
	return s.index
}

// CurrentSlug returns the slug of the most recently loaded document.
func (s *Session) CurrentSlug() string {
	return s.current
}

// HandleLocation reconstructs a NavigationRequested event from URL pieces
// (the query string and fragment) and publishes it. History back/forward
// handling goes through here, so it shares the navigation code path with
// link clicks.
func (s *Session) HandleLocation(rawQuery, fragment string) {
	s.router.Publish(NavigationRequested{
		Slug:     s.index.ResolveSlug(rawQuery),
		Fragment: fragment,
	})
}

// Navigate resolves slug to a document, loads and transforms it, and
// publishes the outcome. Folder documents without their own page fall
// through to their first child; folders with neither a page nor children
// surface EEMPTYFOLDER. The previous rendered state is the caller's to
// keep until a navigation succeeds.
func (s *Session) Navigate(ctx context.Context, slug, fragment string) (*docview.LoadedDocument, error) {
	resolved := s.index.ResolveSlug(slug)
	if fragment == "" {
		if i := strings.Index(slug, "#"); i >= 0 {
			fragment = strings.TrimPrefix(slug[i:], "#")
		}
	}

	doc := docview.FindBySlug(s.index.Documents, resolved)
	if doc == nil {
		err := docview.Errorf(docview.ENOTFOUND, "document not found: %s", resolved)
		s.router.Publish(LoadFailed{Slug: resolved, Err: err})
		return nil, err
	}

	path, err := resolveTarget(doc)
	if err != nil {
		s.router.Publish(LoadFailed{Slug: resolved, Err: err})
		return nil, err
	}

	loaded, err := s.loader.Load(ctx, path)
	if err != nil {
		s.router.Publish(LoadFailed{Slug: resolved, Err: err})
		return nil, err
	}

	s.current = resolved
	s.router.Publish(DocumentLoaded{Slug: resolved, Fragment: fragment, Document: loaded})
	return loaded, nil
}

// resolveTarget picks the path to load for a document: its own page, or
// the first child (by index order) for folders without one.
func resolveTarget(doc *docview.Document) (string, error) {
	if doc.Path != "" {
		return doc.Path, nil
	}
	if !doc.IsFolder() || len(doc.Items) == 0 {
		return "", docview.Errorf(docview.EEMPTYFOLDER, "folder %q is empty", doc.Slug)
	}
	return resolveTarget(doc.Items[0])
}

// Breadcrumb returns the titles of the folders containing the current
// document, outermost first. Empty before the first successful navigation
// and for top-level documents.
func (s *Session) Breadcrumb() []string {
	doc := docview.FindBySlug(s.index.Documents, s.current)
	if doc == nil || doc.Path == "" {
		return nil
	}
	parents := docview.FindParentFolders(s.index.Documents, doc.Path)
	if len(parents) == 0 {
		return nil
	}
	titles := make([]string, len(parents))
	for i, p := range parents {
		titles[i] = p.Title
	}
	return titles
}

// Search runs a query against the search index immediately.
func (s *Session) Search(query string) []docview.SearchResult {
	return s.search.Search(query)
}

// SearchDebounced schedules query execution after the debounce window;
// a newer call cancels the pending one. Results go to deliver.
func (s *Session) SearchDebounced(query string, deliver func([]docview.SearchResult)) {
	s.debounce.Trigger(func() {
		deliver(s.search.Search(query))
	})
}

// NextSlug returns the slug after the current document in display order,
// wrapping around at the end.
func (s *Session) NextSlug() string {
	return s.neighborSlug(1)
}

// PrevSlug returns the slug before the current document in display order,
// wrapping around at the start.
func (s *Session) PrevSlug() string {
	return s.neighborSlug(-1)
}

func (s *Session) neighborSlug(direction int) string {
	pages := docview.Pages(s.index.Documents)
	if len(pages) == 0 {
		return ""
	}
	for i, p := range pages {
		if p.Slug == s.current {
			return pages[(i+direction+len(pages))%len(pages)].Slug
		}
	}
	return pages[0].Slug
}

// Close releases session resources and cancels any pending debounced
// query.
func (s *Session) Close() error {
	s.debounce.Stop()
	return nil
}
