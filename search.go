package docview

import (
	"sort"
	"strings"
)

// SearchItemType classifies a search index entry.
type SearchItemType string

// Search item types.
const (
	SearchItemFolder SearchItemType = "folder"
	SearchItemFile   SearchItemType = "file"
	SearchItemHeader SearchItemType = "header"
)

// SearchIndexItem is one flattened entry of the search index: a document,
// or one of its headers. Location is the human-readable breadcrumb built
// from ancestor folder titles.
type SearchIndexItem struct {
	Title    string         `json:"title"`
	Path     string         `json:"path"`
	Slug     string         `json:"slug"`
	Location string         `json:"location"`
	Type     SearchItemType `json:"type"`
}

// SearchResult pairs an index item with its relevance score.
type SearchResult struct {
	SearchIndexItem
	Score int `json:"score"`
}

// Relevance scores, exclusive tiers evaluated in order. Header entries get
// a flat bonus that can lift them above same-tier matches but never above
// the next tier.
const (
	scoreTitleExact     = 100
	scoreTitlePrefix    = 80
	scoreTitleContains  = 60
	scorePathContains   = 40
	scoreLocationMatch  = 20
	headerBonus         = 5
	maxSearchResults    = 10
	searchCacheCapacity = 50
)

// SearchIndex flattens the document tree into searchable entries and
// answers scored queries. It owns a FIFO-bounded cache of query results.
// The index is rebuilt wholesale on every tree load, never patched.
//
// SearchIndex is not safe for concurrent use; callers are expected to
// access it from a single goroutine.
type SearchIndex struct {
	items      []SearchIndexItem
	cache      map[string][]SearchResult
	cacheOrder []string
}

// NewSearchIndex returns an empty search index.
func NewSearchIndex() *SearchIndex {
	return &SearchIndex{
		cache: make(map[string][]SearchResult),
	}
}

// Build replaces the index contents from the document tree and invalidates
// every cached query result.
func (s *SearchIndex) Build(docs []*Document) {
	s.items = s.items[:0]
	s.cache = make(map[string][]SearchResult)
	s.cacheOrder = s.cacheOrder[:0]
	s.process(docs, "")
}

// Len returns the number of indexed entries.
func (s *SearchIndex) Len() int {
	return len(s.items)
}

// Items returns a copy of the indexed entries in index order.
func (s *SearchIndex) Items() []SearchIndexItem {
	items := make([]SearchIndexItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *SearchIndex) process(docs []*Document, parent string) {
	for _, doc := range docs {
		if doc.IsFolder() {
			s.processFolder(doc, parent)
		} else {
			s.processFile(doc, parent)
		}
	}
}

func (s *SearchIndex) processFolder(doc *Document, parent string) {
	location := doc.Title
	if parent != "" {
		location = parent + " / " + doc.Title
	}

	if doc.Path != "" {
		if doc.Metadata.ShowFolderPage() {
			s.items = append(s.items, SearchIndexItem{
				Title:    doc.Title,
				Path:     doc.Path,
				Slug:     doc.Slug,
				Location: location,
				Type:     SearchItemFolder,
			})
		}
		s.addHeaders(doc, location)
	}

	s.process(doc.Items, location)
}

func (s *SearchIndex) processFile(doc *Document, parent string) {
	s.items = append(s.items, SearchIndexItem{
		Title:    doc.Title,
		Path:     doc.Path,
		Slug:     doc.Slug,
		Location: parent,
		Type:     SearchItemFile,
	})
	s.addHeaders(doc, parent)
}

func (s *SearchIndex) addHeaders(doc *Document, location string) {
	if len(doc.Headers) == 0 {
		return
	}
	loc := doc.Title
	if location != "" {
		loc = location + " / " + doc.Title
	}
	for _, header := range doc.Headers {
		s.items = append(s.items, SearchIndexItem{
			Title:    header,
			Path:     doc.Path,
			Slug:     doc.Slug + "#" + SlugifyHeading(header),
			Location: loc,
			Type:     SearchItemHeader,
		})
	}
}

// Search returns up to 10 results ordered by descending score; ties keep
// index order. Queries are matched case-insensitively. Repeated queries are
// answered from a FIFO cache of 50 entries: on overflow the oldest-inserted
// entry is evicted, regardless of how recently it was read.
func (s *SearchIndex) Search(query string) []SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	query = strings.ToLower(query)

	if cached, ok := s.cache[query]; ok {
		return cached
	}

	var results []SearchResult
	for _, item := range s.items {
		if score := scoreItem(item, query); score > 0 {
			results = append(results, SearchResult{SearchIndexItem: item, Score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}

	if len(s.cacheOrder) >= searchCacheCapacity {
		oldest := s.cacheOrder[0]
		s.cacheOrder = s.cacheOrder[1:]
		delete(s.cache, oldest)
	}
	s.cache[query] = results
	s.cacheOrder = append(s.cacheOrder, query)

	return results
}

// scoreItem applies the relevance tiers to one item. The first matching
// tier wins; unmatched items score 0 and are excluded from results.
func scoreItem(item SearchIndexItem, query string) int {
	title := strings.ToLower(item.Title)

	var score int
	switch {
	case title == query:
		score = scoreTitleExact
	case strings.HasPrefix(title, query):
		score = scoreTitlePrefix
	case strings.Contains(title, query):
		score = scoreTitleContains
	case strings.Contains(strings.ToLower(item.Path), query):
		score = scorePathContains
	case strings.Contains(strings.ToLower(item.Location), query):
		score = scoreLocationMatch
	default:
		return 0
	}

	if item.Type == SearchItemHeader {
		score += headerBonus
	}
	return score
}
