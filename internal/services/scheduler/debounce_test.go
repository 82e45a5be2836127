package scheduler

import (
	"sync"
	"testing"
	"time"
)

func TestTrigger_OnlyNewestFires(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var mu sync.Mutex
	var fired []Generation

	for i := 0; i < 5; i++ {
		d.Trigger(func(gen Generation) {
			mu.Lock()
			fired = append(fired, gen)
			mu.Unlock()
		})
		time.Sleep(5 * time.Millisecond) // retype before the delay elapses
	}

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 1 {
		t.Fatalf("expected exactly one fire, got %d (%v)", len(fired), fired)
	}
	if fired[0] != 5 {
		t.Errorf("expected the newest generation (5) to fire, got %d", fired[0])
	}
}

func TestCommit_StaleResponseDiscarded(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	genA := d.Trigger(func(Generation) {})
	time.Sleep(5 * time.Millisecond)
	genB := d.Trigger(func(Generation) {})
	time.Sleep(5 * time.Millisecond)

	var committed string

	// B's fast response lands first.
	if ok := d.Commit(genB, func() { committed = "B" }); !ok {
		t.Fatal("newest generation must be allowed to commit")
	}
	// A's slow response arrives afterwards and must be dropped.
	if ok := d.Commit(genA, func() { committed = "A" }); ok {
		t.Fatal("stale generation must not commit")
	}

	if committed != "B" {
		t.Errorf("expected B's data to win, got %q", committed)
	}
}

func TestCommit_RaceGuardUnderConcurrency(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	var mu sync.Mutex
	var state string

	// Query A fires, its "network call" is slow.
	genA := d.Trigger(func(Generation) {})
	time.Sleep(3 * time.Millisecond)
	// Query B supersedes it and resolves quickly.
	genB := d.Trigger(func(Generation) {})
	time.Sleep(3 * time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		time.Sleep(20 * time.Millisecond) // A is the laggard
		d.Commit(genA, func() {
			mu.Lock()
			state = "A"
			mu.Unlock()
		})
	}()
	go func() {
		defer wg.Done()
		d.Commit(genB, func() {
			mu.Lock()
			state = "B"
			mu.Unlock()
		})
	}()
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if state != "B" {
		t.Errorf("late response from A overwrote B: state = %q", state)
	}
}

func TestCancel_InvalidatesInFlight(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	gen := d.Trigger(func(Generation) {})
	time.Sleep(5 * time.Millisecond)
	d.Cancel()

	if d.Commit(gen, func() { t.Error("commit after cancel must not run") }) {
		t.Error("expected commit to report stale after cancel")
	}
}

func TestCancel_PendingTriggerNeverFires(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	fired := make(chan struct{}, 1)
	d.Trigger(func(Generation) { fired <- struct{}{} })
	d.Cancel()

	select {
	case <-fired:
		t.Error("cancelled trigger must not fire")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestGeneration_Monotonic(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	var last Generation
	for i := 0; i < 10; i++ {
		gen := d.Trigger(func(Generation) {})
		if gen <= last {
			t.Fatalf("generation not monotonic: %d after %d", gen, last)
		}
		last = gen
	}
}
