// Package watch implements the clipboard watch pipeline: a poller
// samples the system clipboard on a fixed period, a guard suppresses
// repeated samples, distinct changes cross a bounded relay, and a
// persistence worker writes them to storage and notifies subscribers.
package watch

import "sync"

// Guard suppresses repeated identical samples before they enter the
// pipeline. It is the sole owner of the last-observed content.
type Guard struct {
	mu   sync.Mutex
	last string
}

// NewGuard creates a Guard with empty initial state, so the first
// non-empty sample always registers as a change.
func NewGuard() *Guard {
	return &Guard{}
}

// Observe reports whether candidate differs from the last observed
// content. On a change the stored content is updated before returning.
// The critical section covers only the compare-and-store; no I/O runs
// under the lock.
func (g *Guard) Observe(candidate string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.last == candidate {
		return false
	}
	g.last = candidate
	return true
}
