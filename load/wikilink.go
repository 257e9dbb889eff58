package load

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docview"
)

var (
	wikiLinkRe = regexp.MustCompile(`\[\[(.*?)\]\]`)
	embedRe    = regexp.MustCompile(`!\[\[(.*?)\]\]`)
	mediaExtRe = regexp.MustCompile(`(?i)\.(png|jpg|jpeg|gif|mp4|webm)$`)
)

// rewriteWikiLinks converts [[Target]] and [[Target|Display]] into standard
// markdown links by resolving Target against document titles. Unresolved
// targets and media file references pass through unchanged.
func (l *Loader) rewriteWikiLinks(content string) string {
	return wikiLinkRe.ReplaceAllStringFunc(content, func(match string) string {
		inner := match[2 : len(match)-2]

		target, display := inner, ""
		if i := strings.Index(inner, "|"); i >= 0 {
			target, display = inner[:i], strings.TrimSpace(inner[i+1:])
		}
		target = strings.TrimSpace(target)

		// Media references belong to the embed pass.
		if mediaExtRe.MatchString(target) {
			return match
		}

		doc := docview.FindByTitle(l.index.Documents, target)
		if doc == nil {
			return match
		}

		text := display
		if text == "" {
			text = doc.Title
		}
		return "[" + text + "](?" + doc.Slug + ")"
	})
}

// rewriteEmbeds converts ![[file.ext]] into image markdown, or an HTML
// video element for mp4 files, rooted at the loader's media directory.
func (l *Loader) rewriteEmbeds(content string) string {
	return embedRe.ReplaceAllStringFunc(content, func(match string) string {
		filename := strings.TrimSpace(match[3 : len(match)-2])
		mediaPath := l.mediaDir + "/" + filename

		if strings.HasSuffix(strings.ToLower(filename), ".mp4") {
			return "\n<video controls width=\"100%\">\n" +
				"    <source src=\"" + mediaPath + "\" type=\"video/mp4\">\n" +
				"    Your browser does not support the video tag.\n" +
				"</video>\n\n"
		}

		return "\n![" + filename + "](" + mediaPath + ")\n\n"
	})
}
