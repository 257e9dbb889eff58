package docview_test

import (
	"testing"

	"github.com/fwojciec/docview"
	"github.com/stretchr/testify/assert"
)

func TestFormatTree(t *testing.T) {
	t.Parallel()

	t.Run("indents folders and shows slugs", func(t *testing.T) {
		t.Parallel()

		tree := []*docview.Document{
			{Title: "Intro", Slug: "intro", Path: "intro.md"},
			{Type: docview.DocumentFolder, Title: "Guides", Slug: "guides", Path: "guides/index.md",
				Items: []*docview.Document{
					{Title: "Setup", Slug: "setup", Path: "guides/setup.md"},
				}},
		}

		out := docview.FormatTree(tree)

		assert.Equal(t, "Intro (?intro)\nGuides/ (?guides)\n  Setup (?setup)\n", out)
	})

	t.Run("empty tree formats to empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docview.FormatTree(nil))
	})
}
