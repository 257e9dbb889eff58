// Package goquery extracts document outlines from rendered HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docview"
)

// OutlineBuilder builds the in-page outline from rendered HTML. The
// leading h1 is the document title and is excluded; h2 through h6 make up
// the outline.
type OutlineBuilder struct{}

var _ docview.OutlineBuilder = (*OutlineBuilder)(nil)

// NewOutlineBuilder returns an OutlineBuilder.
func NewOutlineBuilder() *OutlineBuilder {
	return &OutlineBuilder{}
}

// Outline returns the headings of markup in document order. Anchor is the
// heading's id attribute, empty when the heading has none.
func (b *OutlineBuilder) Outline(markup string) ([]docview.OutlineEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, docview.Errorf(docview.EINVALID, "failed to parse markup: %v", err)
	}

	var entries []docview.OutlineEntry
	doc.Find("h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		anchor, _ := sel.Attr("id")
		entries = append(entries, docview.OutlineEntry{
			Level:  int(sel.Nodes[0].Data[1] - '0'),
			Title:  strings.TrimSpace(sel.Text()),
			Anchor: anchor,
		})
	})
	return entries, nil
}
