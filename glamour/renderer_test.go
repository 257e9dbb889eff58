package glamour_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docview/glamour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders markdown as terminal text", func(t *testing.T) {
		t.Parallel()

		r, err := glamour.NewRenderer(glamour.WithStyle("notty"))
		require.NoError(t, err)

		out, err := r.Render(context.Background(), "# Getting Started\n\nInstall the thing.", "Getting Started")
		require.NoError(t, err)
		assert.Contains(t, out, "Getting Started")
		assert.Contains(t, out, "Install the thing.")
	})

	t.Run("cancelled context returns an error", func(t *testing.T) {
		t.Parallel()

		r, err := glamour.NewRenderer(glamour.WithStyle("notty"))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = r.Render(ctx, "# Title", "Title")
		assert.Error(t, err)
	})
}
