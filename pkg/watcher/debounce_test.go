package watcher

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	var calls atomic.Int64
	var mu sync.Mutex
	var lastPath string

	d := NewDebouncer(50*time.Millisecond, func(path string) {
		calls.Add(1)
		mu.Lock()
		lastPath = path
		mu.Unlock()
	})
	defer d.Stop()

	// A burst of triggers collapses into one callback with the last path
	for _, path := range []string{"a.yml", "b.yml", "c.yml"} {
		d.Trigger(path)
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("callback invoked %d times, want 1", got)
	}

	mu.Lock()
	defer mu.Unlock()
	if lastPath != "c.yml" {
		t.Errorf("callback path = %q, want c.yml", lastPath)
	}
}

func TestDebouncerSeparateBursts(t *testing.T) {
	var calls atomic.Int64

	d := NewDebouncer(20*time.Millisecond, func(string) { calls.Add(1) })
	defer d.Stop()

	d.Trigger("a.yml")
	time.Sleep(80 * time.Millisecond)

	d.Trigger("b.yml")
	time.Sleep(80 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Errorf("callback invoked %d times, want 2", got)
	}
}

func TestDebouncerStop(t *testing.T) {
	var calls atomic.Int64

	d := NewDebouncer(50*time.Millisecond, func(string) { calls.Add(1) })

	d.Trigger("a.yml")
	d.Stop()

	// Triggers after Stop are dropped
	d.Trigger("b.yml")

	time.Sleep(100 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("callback invoked %d times after Stop, want 0", got)
	}
}
