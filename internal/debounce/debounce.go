// Package debounce provides a single-slot cancellable timer.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs at most one pending function. Scheduling a new one
// cancels whatever was waiting, so rapid calls restart the delay instead
// of stacking timers.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	gen      uint64
	duration time.Duration
}

// New creates a debouncer with the given delay.
func New(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
	}
}

// Duration returns the configured delay.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}

// Debounce schedules fn after the delay, replacing any pending call.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// A timer that fired while being replaced must not run.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a call is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Immediate cancels any pending call and runs fn now.
func (d *Debouncer) Immediate(fn func()) {
	d.Cancel()
	fn()
}
