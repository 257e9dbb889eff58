package docview

import (
	"encoding/json"
	"strings"
)

// DocumentType distinguishes files from folders in the document tree.
type DocumentType string

// Document types.
const (
	DocumentFile   DocumentType = "file"
	DocumentFolder DocumentType = "folder"
)

// Document is one node of the documentation tree loaded from the index.
// The tree is read-only after the initial load; derived structures (search
// index, breadcrumbs) are rebuilt wholesale, never patched.
type Document struct {
	Type     DocumentType `json:"type,omitempty"`
	Title    string       `json:"title"`
	Slug     string       `json:"slug"`
	Path     string       `json:"path,omitempty"`
	Headers  []string     `json:"headers,omitempty"`
	Metadata Metadata     `json:"metadata,omitempty"`
	Items    []*Document  `json:"items,omitempty"`
}

// IsFolder reports whether the document is a folder node.
func (d *Document) IsFolder() bool {
	return d.Type == DocumentFolder
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.Slug == "" {
		return Errorf(EINVALID, "document slug required")
	}
	if d.Type != DocumentFolder && d.Path == "" {
		return Errorf(EINVALID, "file document %q requires a path", d.Slug)
	}
	return nil
}

// Metadata holds front-matter key/value pairs. Values arrive as strings
// except for the reserved keys coerced by ExtractFrontMatter.
type Metadata map[string]any

// String returns the value for key when it is a string, otherwise "".
func (m Metadata) String(key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// Title returns the front-matter title, or "" when absent.
func (m Metadata) Title() string {
	return m.String("title")
}

// Icon returns the front-matter icon class, or "" when absent.
func (m Metadata) Icon() string {
	return m.String("icon")
}

// Sort returns the front-matter sort weight, or 0 when absent.
func (m Metadata) Sort() int {
	if n, ok := m["sort"].(int); ok {
		return n
	}
	return 0
}

// DefaultOpen reports whether a folder should start expanded.
func (m Metadata) DefaultOpen() bool {
	if b, ok := m["defaultOpen"].(bool); ok {
		return b
	}
	return false
}

// ShowFolderPage reports whether a folder's own page is listed in the
// search index. Only the literal string "false" hides it; the value arrives
// from front-matter as a string, so a boolean false does not count.
func (m Metadata) ShowFolderPage() bool {
	return m.String("showfolderpage") != "false"
}

// Index is the bootstrap artifact describing a documentation site: the
// document tree plus site-level presentation data.
type Index struct {
	DefaultPage string       `json:"defaultPage"`
	Metadata    SiteMetadata `json:"metadata"`
	Author      Author       `json:"author"`
	Documents   []*Document  `json:"documents"`
	CustomCSS   string       `json:"customCSS,omitempty"`
}

// SiteMetadata holds site-level display metadata.
type SiteMetadata struct {
	SiteName string `json:"site_name"`
}

// Author describes the site author shown in the sidebar.
type Author struct {
	Name    string   `json:"name,omitempty"`
	Role    string   `json:"role,omitempty"`
	Socials []Social `json:"socials,omitempty"`
}

// Social is one external profile link.
type Social struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// ResolveSlug normalizes a raw navigation target taken from a URL query
// string. A leading '?' or '=' marker and any '#fragment' suffix are
// stripped; an empty target resolves to the default page.
func (idx *Index) ResolveSlug(raw string) string {
	if len(raw) > 0 && (raw[0] == '?' || raw[0] == '=') {
		raw = raw[1:]
	}
	if i := strings.Index(raw, "#"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" {
		return idx.DefaultPage
	}
	return raw
}

// ParseIndex decodes and validates a bootstrap index document.
// Slugs must be unique across the whole tree; they are the primary lookup
// key.
func ParseIndex(data []byte) (*Index, error) {
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, Errorf(EINVALID, "malformed index: %v", err)
	}
	seen := make(map[string]bool)
	var check func(docs []*Document) error
	check = func(docs []*Document) error {
		for _, doc := range docs {
			if err := doc.Validate(); err != nil {
				return err
			}
			if seen[doc.Slug] {
				return Errorf(EINVALID, "duplicate slug %q", doc.Slug)
			}
			seen[doc.Slug] = true
			if err := check(doc.Items); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(idx.Documents); err != nil {
		return nil, err
	}
	return &idx, nil
}
