package watch

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestGuard_SuppressesRuns(t *testing.T) {
	guard := NewGuard()

	samples := []string{"a", "a", "a", "b", "b", "a"}
	var changes []string
	for _, s := range samples {
		if guard.Observe(s) {
			changes = append(changes, s)
		}
	}

	// One change per maximal run, not per raw sample.
	want := []string{"a", "b", "a"}
	if len(changes) != len(want) {
		t.Fatalf("expected %d changes, got %d: %v", len(want), len(changes), changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d: expected %q, got %q", i, want[i], changes[i])
		}
	}
}

func TestGuard_FirstSampleIsAChange(t *testing.T) {
	guard := NewGuard()
	if !guard.Observe("anything") {
		t.Error("first non-empty sample should register as a change")
	}
}

func TestGuard_EmptyMatchesInitialState(t *testing.T) {
	guard := NewGuard()
	if guard.Observe("") {
		t.Error("empty candidate equals the initial state and is not a change")
	}
}

func TestGuard_UpdatesRegardlessOfCaller(t *testing.T) {
	guard := NewGuard()

	guard.Observe("x")
	if guard.Observe("x") {
		t.Error("repeat of last observed content should be suppressed")
	}
	if !guard.Observe("y") {
		t.Error("new content should register as a change")
	}
}

func TestGuard_ConcurrentObserveSameValue(t *testing.T) {
	guard := NewGuard()

	var accepted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if guard.Observe("same") {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := accepted.Load(); got != 1 {
		t.Errorf("exactly one concurrent observer should win, got %d", got)
	}
}
