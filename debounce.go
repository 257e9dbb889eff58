package docview

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is the quiescence window applied to search input
// before a query executes.
const DefaultDebounceDelay = 200 * time.Millisecond

// Debouncer coalesces rapid calls: the function passed to Trigger runs only
// after the delay elapses with no newer trigger. Cancellation works by
// advancing a generation token that the timer compares at fire time, so a
// new trigger invalidates any pending one.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

// NewDebouncer returns a Debouncer with the given delay.
// A non-positive delay falls back to DefaultDebounceDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the delay, cancelling any earlier
// pending trigger.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := gen == d.gen
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

// Stop cancels any pending trigger.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
	}
}
