package docview

import "strings"

// FindBySlug returns the first document whose slug matches, searching the
// tree in pre-order: a node is checked before its children. Returns nil
// when no document matches.
func FindBySlug(docs []*Document, slug string) *Document {
	for _, doc := range docs {
		if doc.Slug == slug {
			return doc
		}
		if doc.IsFolder() {
			if found := FindBySlug(doc.Items, slug); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindByTitle returns the first file document matching title. Folders are
// never candidates. A file matches when its title equals title exactly,
// its path ends with "<title>.md", or its slug equals the slugified title.
func FindByTitle(docs []*Document, title string) *Document {
	slug := Slugify(title)
	for _, doc := range docs {
		if doc.IsFolder() {
			if found := FindByTitle(doc.Items, title); found != nil {
				return found
			}
			continue
		}
		if doc.Title == title ||
			strings.HasSuffix(doc.Path, title+".md") ||
			doc.Slug == slug {
			return doc
		}
	}
	return nil
}

// FindByPath returns the first document whose path matches, in pre-order.
// Returns nil when no document matches.
func FindByPath(docs []*Document, path string) *Document {
	if path == "" {
		return nil
	}
	for _, doc := range docs {
		if doc.Path == path {
			return doc
		}
		if doc.IsFolder() {
			if found := FindByPath(doc.Items, path); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindParentFolders returns every folder, at any depth, that transitively
// contains the document at path. The traversal is iterative with a seen
// set, so each folder appears once, in first-seen (outermost first) order.
func FindParentFolders(docs []*Document, path string) []*Document {
	if path == "" {
		return nil
	}
	var parents []*Document
	seen := make(map[*Document]bool)

	stack := make([]*Document, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		stack = append(stack, docs[i])
	}
	for len(stack) > 0 {
		doc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !doc.IsFolder() {
			continue
		}
		if !seen[doc] && containsPath(doc, path) {
			seen[doc] = true
			parents = append(parents, doc)
		}
		for i := len(doc.Items) - 1; i >= 0; i-- {
			stack = append(stack, doc.Items[i])
		}
	}
	return parents
}

func containsPath(folder *Document, path string) bool {
	for _, item := range folder.Items {
		if item.Path == path {
			return true
		}
		if item.IsFolder() && containsPath(item, path) {
			return true
		}
	}
	return false
}

// Pages returns the documents reachable as pages, in display order: every
// file, plus every folder that has its own landing page.
func Pages(docs []*Document) []*Document {
	var pages []*Document
	var walk func(docs []*Document)
	walk = func(docs []*Document) {
		for _, doc := range docs {
			if doc.IsFolder() {
				if doc.Path != "" {
					pages = append(pages, doc)
				}
				walk(doc.Items)
				continue
			}
			pages = append(pages, doc)
		}
	}
	walk(docs)
	return pages
}

// Slugify converts a title to its URL slug form: lowercase with spaces
// replaced by hyphens.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}
