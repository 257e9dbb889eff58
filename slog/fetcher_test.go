package slog_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/mock"
	docviewslog "github.com/fwojciec/docview/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, path string) (string, error) {
				return "content", nil
			},
		}

		fetcher := docviewslog.NewFetcher(next, newLogger(&buf))

		content, err := fetcher.Fetch(context.Background(), "intro.md")
		require.NoError(t, err)
		assert.Equal(t, "content", content)
		assert.Contains(t, buf.String(), "document fetch")
		assert.Contains(t, buf.String(), "intro.md")
	})

	t.Run("logs failures and passes the error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, path string) (string, error) {
				return "", fmt.Errorf("boom")
			},
		}

		fetcher := docviewslog.NewFetcher(next, newLogger(&buf))

		_, err := fetcher.Fetch(context.Background(), "intro.md")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}

func TestDocumentLoader_Load(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	next := &mock.DocumentLoader{
		LoadFn: func(ctx context.Context, path string) (*docview.LoadedDocument, error) {
			return &docview.LoadedDocument{Title: "Intro", Content: "# Intro"}, nil
		},
	}

	loader := docviewslog.NewDocumentLoader(next, newLogger(&buf))

	doc, err := loader.Load(context.Background(), "intro.md")
	require.NoError(t, err)
	assert.Equal(t, "Intro", doc.Title)
	assert.Contains(t, buf.String(), "document load")
}
