// Package nav coordinates navigation for a viewing session: it routes typed
// navigation events, resolves slugs against the document tree, and drives
// the document loader. UI triggers (links, history, search selection) and
// the load pipeline stay decoupled through the Router.
package nav

import (
	"sync"

	"github.com/fwojciec/docview"
)

// Event is the closed set of navigation messages dispatched through Router.
type Event interface {
	isEvent()
}

// NavigationRequested asks the session to load the document for a slug.
// Fragment carries an optional in-page anchor. Both link clicks and
// history (back/forward) reconstruction emit this same event, so a single
// code path handles every navigation trigger.
type NavigationRequested struct {
	Slug     string
	Fragment string
}

// DocumentLoaded announces a successfully loaded and transformed document.
type DocumentLoaded struct {
	Slug     string
	Fragment string
	Document *docview.LoadedDocument
}

// LoadFailed announces a failed navigation. Err carries a docview error
// code describing the failure class.
type LoadFailed struct {
	Slug string
	Err  error
}

func (NavigationRequested) isEvent() {}
func (DocumentLoaded) isEvent()      {}
func (LoadFailed) isEvent()          {}

// Router dispatches events to subscribers in subscription order. It is the
// typed replacement for a stringly-named publish/subscribe bus: the event
// variants above are the only messages that exist.
type Router struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(Event)
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{}
}

// Subscribe registers fn for every published event and returns an
// unsubscribe function.
func (r *Router) Subscribe(fn func(Event)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.subs = append(r.subs, subscription{id: id, fn: fn})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, s := range r.subs {
			if s.id == id {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e to all subscribers synchronously, in subscription
// order.
func (r *Router) Publish(e Event) {
	r.mu.Lock()
	subs := make([]subscription, len(r.subs))
	copy(subs, r.subs)
	r.mu.Unlock()

	for _, s := range subs {
		s.fn(e)
	}
}
