package goquery_test

import (
	"testing"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutlineBuilder_Outline(t *testing.T) {
	t.Parallel()

	t.Run("returns h2-h6 headings in document order", func(t *testing.T) {
		t.Parallel()

		markup := `<h1 id="title">Title</h1>
<h2 id="install">Install</h2>
<p>text</p>
<h3 id="from-source">From Source</h3>
<h2 id="usage">Usage</h2>`

		b := goquery.NewOutlineBuilder()

		entries, err := b.Outline(markup)
		require.NoError(t, err)
		assert.Equal(t, []docview.OutlineEntry{
			{Level: 2, Title: "Install", Anchor: "install"},
			{Level: 3, Title: "From Source", Anchor: "from-source"},
			{Level: 2, Title: "Usage", Anchor: "usage"},
		}, entries)
	})

	t.Run("excludes the h1 title", func(t *testing.T) {
		t.Parallel()

		b := goquery.NewOutlineBuilder()

		entries, err := b.Outline(`<h1 id="title">Title</h1><p>only a title</p>`)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("heading without an id gets an empty anchor", func(t *testing.T) {
		t.Parallel()

		b := goquery.NewOutlineBuilder()

		entries, err := b.Outline(`<h2>No Anchor</h2>`)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "No Anchor", entries[0].Title)
		assert.Empty(t, entries[0].Anchor)
	})

	t.Run("nested markup inside a heading uses its text", func(t *testing.T) {
		t.Parallel()

		b := goquery.NewOutlineBuilder()

		entries, err := b.Outline(`<h2 id="api"><code>API</code> Reference</h2>`)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "API Reference", entries[0].Title)
	})
}
