package watch

import "context"

// Relay is the fixed-capacity handoff between the poller and the
// persistence worker. Submission blocks when the relay is full rather
// than dropping the change; delivery preserves submission order.
type Relay struct {
	ch chan string
}

// NewRelay creates a relay holding at most capacity pending changes.
func NewRelay(capacity int) *Relay {
	return &Relay{
		ch: make(chan string, capacity),
	}
}

// Submit enqueues content, blocking while the relay is at capacity.
// It returns the context error if ctx is cancelled while blocked.
func (r *Relay) Submit(ctx context.Context, content string) error {
	select {
	case r.ch <- content:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive returns the channel the consumer drains. Messages arrive in
// submission order.
func (r *Relay) Receive() <-chan string {
	return r.ch
}

// Len returns the number of pending changes.
func (r *Relay) Len() int {
	return len(r.ch)
}

// Cap returns the relay capacity.
func (r *Relay) Cap() int {
	return cap(r.ch)
}
