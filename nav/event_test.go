package nav_test

import (
	"testing"

	"github.com/fwojciec/docview/nav"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	t.Parallel()

	t.Run("delivers events to subscribers in order", func(t *testing.T) {
		t.Parallel()

		r := nav.NewRouter()
		var got []string

		r.Subscribe(func(e nav.Event) { got = append(got, "first") })
		r.Subscribe(func(e nav.Event) { got = append(got, "second") })

		r.Publish(nav.NavigationRequested{Slug: "intro"})

		assert.Equal(t, []string{"first", "second"}, got)
	})

	t.Run("subscribers see the typed payload", func(t *testing.T) {
		t.Parallel()

		r := nav.NewRouter()
		var got nav.NavigationRequested

		r.Subscribe(func(e nav.Event) {
			if req, ok := e.(nav.NavigationRequested); ok {
				got = req
			}
		})

		r.Publish(nav.NavigationRequested{Slug: "guides", Fragment: "setup"})

		assert.Equal(t, "guides", got.Slug)
		assert.Equal(t, "setup", got.Fragment)
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		t.Parallel()

		r := nav.NewRouter()
		var count int

		unsubscribe := r.Subscribe(func(e nav.Event) { count++ })

		r.Publish(nav.NavigationRequested{})
		unsubscribe()
		r.Publish(nav.NavigationRequested{})

		assert.Equal(t, 1, count)
	})

	t.Run("publish with no subscribers is a no-op", func(t *testing.T) {
		t.Parallel()

		r := nav.NewRouter()

		assert.NotPanics(t, func() {
			r.Publish(nav.LoadFailed{Slug: "x"})
		})
	})
}
