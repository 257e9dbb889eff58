package goldmark_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docview/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("heading ids follow the slugification rule", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer()

		out, err := r.Render(context.Background(), "## API & Usage!", "Doc")
		require.NoError(t, err)
		assert.Contains(t, out, `id="api-usage"`)
	})

	t.Run("duplicate headings get unique ids", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer()

		out, err := r.Render(context.Background(), "## Setup\n\n## Setup", "Doc")
		require.NoError(t, err)
		assert.Contains(t, out, `id="setup"`)
		assert.Contains(t, out, `id="setup-1"`)
	})

	t.Run("fenced code with a language hint is highlighted", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer()

		out, err := r.Render(context.Background(), "```go\npackage main\n```", "Doc")
		require.NoError(t, err)
		assert.Contains(t, out, "<pre")
		assert.Contains(t, out, "package")
		assert.Contains(t, out, "<span")
	})

	t.Run("fenced code without a hint still renders", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer()

		out, err := r.Render(context.Background(), "```\n#!/bin/sh\necho hi\n```", "Doc")
		require.NoError(t, err)
		assert.Contains(t, out, "<pre")
		assert.Contains(t, out, "echo")
	})

	t.Run("raw html passes through", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer()

		out, err := r.Render(context.Background(), `<video src="demo.mp4" controls></video>`, "Doc")
		require.NoError(t, err)
		assert.Contains(t, out, `<video src="demo.mp4"`)
	})

	t.Run("gfm tables render", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer()

		out, err := r.Render(context.Background(), "| a | b |\n|---|---|\n| 1 | 2 |", "Doc")
		require.NoError(t, err)
		assert.Contains(t, out, "<table")
	})

	t.Run("cancelled context returns an error", func(t *testing.T) {
		t.Parallel()

		r := goldmark.NewRenderer()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := r.Render(ctx, "# Title", "Doc")
		assert.Error(t, err)
	})
}
