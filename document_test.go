package docview_test

import (
	"testing"

	"github.com/fwojciec/docview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid file document", func(t *testing.T) {
		t.Parallel()

		doc := &docview.Document{Title: "Intro", Slug: "intro", Path: "intro.md"}

		assert.NoError(t, doc.Validate())
	})

	t.Run("requires title", func(t *testing.T) {
		t.Parallel()

		doc := &docview.Document{Slug: "intro", Path: "intro.md"}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, docview.EINVALID, docview.ErrorCode(err))
	})

	t.Run("requires slug", func(t *testing.T) {
		t.Parallel()

		doc := &docview.Document{Title: "Intro", Path: "intro.md"}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, docview.EINVALID, docview.ErrorCode(err))
	})

	t.Run("file requires path", func(t *testing.T) {
		t.Parallel()

		doc := &docview.Document{Title: "Intro", Slug: "intro"}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, docview.EINVALID, docview.ErrorCode(err))
	})

	t.Run("folder without path is valid", func(t *testing.T) {
		t.Parallel()

		doc := &docview.Document{Type: docview.DocumentFolder, Title: "Guides", Slug: "guides"}

		assert.NoError(t, doc.Validate())
	})
}

func TestMetadata_ShowFolderPage(t *testing.T) {
	t.Parallel()

	t.Run("hidden only by the literal string false", func(t *testing.T) {
		t.Parallel()

		assert.False(t, docview.Metadata{"showfolderpage": "false"}.ShowFolderPage())
	})

	t.Run("boolean false does not hide", func(t *testing.T) {
		t.Parallel()

		assert.True(t, docview.Metadata{"showfolderpage": false}.ShowFolderPage())
	})

	t.Run("absent key shows the page", func(t *testing.T) {
		t.Parallel()

		assert.True(t, docview.Metadata{}.ShowFolderPage())
	})
}

func TestMetadata_Accessors(t *testing.T) {
	t.Parallel()

	meta := docview.Metadata{
		"title":       "Getting Started",
		"sort":        3,
		"defaultOpen": true,
		"icon":        "fa-book",
	}

	assert.Equal(t, "Getting Started", meta.Title())
	assert.Equal(t, 3, meta.Sort())
	assert.True(t, meta.DefaultOpen())
	assert.Equal(t, "fa-book", meta.Icon())

	empty := docview.Metadata{}
	assert.Empty(t, empty.Title())
	assert.Zero(t, empty.Sort())
	assert.False(t, empty.DefaultOpen())
}

func TestIndex_ResolveSlug(t *testing.T) {
	t.Parallel()

	idx := &docview.Index{DefaultPage: "intro"}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty resolves to default page", "", "intro"},
		{"bare question mark resolves to default page", "?", "intro"},
		{"question mark prefix stripped", "?guides", "guides"},
		{"equals prefix stripped", "=guides", "guides"},
		{"fragment stripped", "guides#setup", "guides"},
		{"prefix and fragment stripped", "?guides#setup", "guides"},
		{"plain slug passes through", "guides", "guides"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, idx.ResolveSlug(tt.raw))
		})
	}
}

func TestParseIndex(t *testing.T) {
	t.Parallel()

	t.Run("parses a full index", func(t *testing.T) {
		t.Parallel()

		data := []byte(`{
			"defaultPage": "intro",
			"metadata": {"site_name": "My Docs"},
			"author": {"name": "Jo", "role": "Maintainer", "socials": [{"url": "https://example.com", "title": "Site", "icon": "fa-globe"}]},
			"customCSS": "styles/extra.css",
			"documents": [
				{"title": "Intro", "slug": "intro", "path": "intro.md"},
				{"type": "folder", "title": "Guides", "slug": "guides", "items": [
					{"title": "Setup", "slug": "setup", "path": "guides/setup.md", "headers": ["Install", "Configure"]}
				]}
			]
		}`)

		idx, err := docview.ParseIndex(data)
		require.NoError(t, err)
		assert.Equal(t, "intro", idx.DefaultPage)
		assert.Equal(t, "My Docs", idx.Metadata.SiteName)
		assert.Equal(t, "Jo", idx.Author.Name)
		assert.Len(t, idx.Author.Socials, 1)
		assert.Equal(t, "styles/extra.css", idx.CustomCSS)
		require.Len(t, idx.Documents, 2)
		assert.True(t, idx.Documents[1].IsFolder())
		assert.Equal(t, []string{"Install", "Configure"}, idx.Documents[1].Items[0].Headers)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := docview.ParseIndex([]byte(`{not json`))
		require.Error(t, err)
		assert.Equal(t, docview.EINVALID, docview.ErrorCode(err))
	})

	t.Run("rejects duplicate slugs anywhere in the tree", func(t *testing.T) {
		t.Parallel()

		data := []byte(`{
			"defaultPage": "a",
			"documents": [
				{"title": "A", "slug": "dup", "path": "a.md"},
				{"type": "folder", "title": "F", "slug": "f", "items": [
					{"title": "B", "slug": "dup", "path": "b.md"}
				]}
			]
		}`)

		_, err := docview.ParseIndex(data)
		require.Error(t, err)
		assert.Equal(t, docview.EINVALID, docview.ErrorCode(err))
		assert.Contains(t, docview.ErrorMessage(err), "dup")
	})
}
