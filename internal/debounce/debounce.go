// Package debounce coalesces bursts of calls into a single trailing call.
package debounce

import (
	"sync"
	"time"
)

// DefaultWait is used when a zero or negative wait is supplied.
const DefaultWait = 200 * time.Millisecond

// Debouncer runs only the last callback scheduled within its wait window.
type Debouncer struct {
	wait  time.Duration
	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// New creates a Debouncer. A non-positive wait selects DefaultWait.
func New(wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Debouncer{wait: wait}
}

// Trigger schedules callback after the wait, replacing any pending callback.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		// A timer that already fired can race a newer Trigger; only the most
		// recent sequence may run.
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			callback()
		}
	})
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a callback is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Wait returns the debounce window.
func (d *Debouncer) Wait() time.Duration {
	return d.wait
}

// Func wraps fn so that only the last call within wait is executed, with the
// arguments of that last call.
func Func[T any](fn func(T), wait time.Duration) func(T) {
	d := New(wait)
	return func(arg T) {
		d.Trigger(func() { fn(arg) })
	}
}
