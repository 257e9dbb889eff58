package docview

import "strings"

// FormatTree renders the document tree as an indented outline for terminal
// display. Folders end with a slash; files show their slug.
func FormatTree(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}
	var b strings.Builder
	writeTree(&b, docs, 0)
	return b.String()
}

func writeTree(b *strings.Builder, docs []*Document, depth int) {
	for _, doc := range docs {
		b.WriteString(strings.Repeat("  ", depth))
		if doc.IsFolder() {
			b.WriteString(doc.Title)
			b.WriteString("/")
			if doc.Path != "" {
				b.WriteString(" (?" + doc.Slug + ")")
			}
			b.WriteString("\n")
			writeTree(b, doc.Items, depth+1)
			continue
		}
		b.WriteString(doc.Title)
		b.WriteString(" (?" + doc.Slug + ")\n")
	}
}
