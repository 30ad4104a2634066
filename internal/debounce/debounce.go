// Package debounce provides a timer-based call coalescer, independent of
// any rendering framework. Typical use: collapsing keystrokes into one
// search request.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid calls: only the function passed to the last
// Do within the delay window runs, once the window elapses without a
// newer call.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Debouncer with the given quiet window
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules fn after the quiet window, cancelling any previously
// scheduled function. fn runs on a timer goroutine.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops any pending call without running it
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
