package docview

import (
	"regexp"
	"strings"
)

// Section represents a heading in a markdown document.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

var (
	headingRe    = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	codeBlockRe  = regexp.MustCompile("(?s)```.*?```")
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ExtractSections parses markdown and returns all headings (H1-H6) with
// anchors generated by SlugifyHeading.
func ExtractSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	// Remove code blocks to avoid matching # in code
	cleaned := codeBlockRe.ReplaceAllString(markdown, "")

	matches := headingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for _, match := range matches {
		title := strings.TrimSpace(match[2])
		sections = append(sections, Section{
			Level:  len(match[1]),
			Title:  title,
			Anchor: SlugifyHeading(title),
		})
	}
	return sections
}

// ExtractHeaders returns the titles of all headings in markdown, in order.
// This is the shape stored as Document.Headers in the index.
func ExtractHeaders(markdown string) []string {
	sections := ExtractSections(markdown)
	if len(sections) == 0 {
		return nil
	}
	headers := make([]string, len(sections))
	for i, s := range sections {
		headers[i] = s.Title
	}
	return headers
}

// SlugifyHeading converts heading text to the id used for in-page anchors:
// lowercase, non-word characters stripped, whitespace runs collapsed to
// single hyphens. Header search-entry slugs use the same rule; the two must
// never diverge or anchor links stop resolving.
func SlugifyHeading(heading string) string {
	s := strings.ToLower(heading)
	s = nonWordRe.ReplaceAllString(s, "")
	return whitespaceRe.ReplaceAllString(s, "-")
}
