package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of change events into a single callback
// invocation carrying the most recently changed path. Editors commonly
// write files several times per save; without debouncing each write would
// trigger a full revalidation.
type Debouncer struct {
	interval time.Duration
	fn       func(path string)

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	stopped bool
}

// NewDebouncer creates a debouncer invoking fn once per quiet period.
func NewDebouncer(interval time.Duration, fn func(path string)) *Debouncer {
	return &Debouncer{
		interval: interval,
		fn:       fn,
	}
}

// Trigger records a changed path and restarts the quiet-period timer.
// When the interval elapses without another trigger, the callback runs
// with the last recorded path.
func (d *Debouncer) Trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = path

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	path := d.pending
	d.mu.Unlock()

	d.fn(path)
}

// Stop cancels any pending callback and rejects further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
