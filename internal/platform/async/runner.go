// Package async models the deferred completions the storefront used to
// drive with fixed timers. Every scheduled completion exposes a cancel
// handle so a real network call can replace the timer without touching
// call sites.
package async

import (
	"sync"
	"time"
)

// CancelFunc aborts a pending completion. Calling it after the
// completion fired is a no-op. It reports whether the completion was
// still pending.
type CancelFunc func() bool

// Runner schedules one-shot deferred completions.
type Runner struct {
	mu      sync.Mutex
	pending map[*time.Timer]struct{}
}

// NewRunner constructs an empty Runner.
func NewRunner() *Runner {
	return &Runner{pending: map[*time.Timer]struct{}{}}
}

// Schedule runs fn once after delay and returns a cancel handle.
// A non-positive delay fires fn on the next timer tick.
func (r *Runner) Schedule(delay time.Duration, fn func()) CancelFunc {
	if fn == nil {
		return func() bool { return false }
	}
	if delay < 0 {
		delay = 0
	}
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		r.forget(timer)
		fn()
	})
	r.mu.Lock()
	r.pending[timer] = struct{}{}
	r.mu.Unlock()
	return func() bool {
		r.forget(timer)
		return timer.Stop()
	}
}

// Pending reports how many completions have not fired yet.
func (r *Runner) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Shutdown cancels every pending completion.
func (r *Runner) Shutdown() {
	r.mu.Lock()
	timers := make([]*time.Timer, 0, len(r.pending))
	for t := range r.pending {
		timers = append(timers, t)
	}
	r.pending = map[*time.Timer]struct{}{}
	r.mu.Unlock()
	for _, t := range timers {
		t.Stop()
	}
}

func (r *Runner) forget(timer *time.Timer) {
	r.mu.Lock()
	delete(r.pending, timer)
	r.mu.Unlock()
}
