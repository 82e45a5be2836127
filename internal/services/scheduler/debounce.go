// Package scheduler provides input debouncing with stale-response
// suppression. Fast typing schedules many triggers; only the newest fires,
// and only the newest fire is allowed to commit its result. The generation
// counter is the race guard: a slow response from an older trigger can still
// complete, but its effect is dropped.
package scheduler

import (
	"sync"
	"time"

	"github.com/ivan0796/swaplaunch-sub000/internal/metrics"
)

// Generation tags one scheduled call. Monotonically increasing per Debouncer.
type Generation uint64

// Debouncer coalesces rapid input changes into a single delayed call and
// guards commits against stale responses. Safe for concurrent use.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   Generation
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger cancels any pending trigger that has not fired yet, bumps the
// generation, and schedules run after the configured delay. The run callback
// receives its generation tag; it must pass that tag to Commit when the
// response arrives. Bumping the generation immediately also invalidates any
// older call still in flight.
func (d *Debouncer) Trigger(run func(gen Generation)) Generation {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		if d.timer.Stop() {
			metrics.DebouncedCallsCancelled.Inc()
		}
		d.timer = nil
	}

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		// The generation may already be stale by the time the timer fires
		// (a newer Trigger raced with the firing); run anyway, Commit will
		// sort it out. Cancellation is cooperative, not preemptive.
		run(gen)
	})
	return gen
}

// Commit applies the result of a call if and only if its generation is still
// the newest. Returns false when the response is stale; the caller discards
// it silently. apply runs under the debouncer lock, so commits are serialized
// and a stale commit can never interleave with a fresh one.
func (d *Debouncer) Commit(gen Generation, apply func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.gen {
		metrics.StaleResponsesDropped.Inc()
		return false
	}
	apply()
	return true
}

// Current reports whether gen is still the newest generation.
func (d *Debouncer) Current(gen Generation) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return gen == d.gen
}

// Cancel drops any pending trigger and invalidates all in-flight
// generations. Used when inputs are cleared.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// Generation returns the newest generation. Mostly useful in tests.
func (d *Debouncer) Generation() Generation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}
