// Package event provides the pub-sub boundary between the watch
// pipeline and its subscribers. Delivery is synchronous and
// fire-and-forget: handlers receive no ordering guarantee relative to
// storage state.
package event

import (
	"log"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Handler is a function that handles an event.
type Handler func(Event)

// subscription represents a registered event handler.
type subscription struct {
	id      uint64
	handler Handler
}

// Bus is a simple synchronous pub-sub event bus. It lets the pipeline
// notify consumers without a direct dependency on them.
type Bus struct {
	mu            sync.RWMutex
	subscriptions map[string][]subscription
	nextID        atomic.Uint64
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{
		subscriptions: make(map[string][]subscription),
	}
}

// Subscribe registers a handler for a specific event type. The returned
// id can be passed to Unsubscribe.
func (b *Bus) Subscribe(eventType string, handler Handler) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID.Add(1)
	b.subscriptions[eventType] = append(b.subscriptions[eventType], subscription{
		id:      id,
		handler: handler,
	})
	return id
}

// Unsubscribe removes a subscription by id. Returns true if the
// subscription was found and removed.
func (b *Bus) Unsubscribe(id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for eventType, subs := range b.subscriptions {
		for i, sub := range subs {
			if sub.id == id {
				b.subscriptions[eventType] = append(subs[:i], subs[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Publish dispatches an event to all handlers registered for its type,
// in registration order. A panicking handler is recovered and logged so
// it cannot block delivery to the remaining handlers.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subscriptions[event.EventType()]))
	copy(subs, b.subscriptions[event.EventType()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.safeCall(sub.handler, event)
	}
}

// safeCall invokes a handler and recovers from any panic.
func (b *Bus) safeCall(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: event handler panicked for event %s: %v\n%s",
				event.EventType(), r, debug.Stack())
		}
	}()
	handler(event)
}

// SubscriptionCount returns the total number of active subscriptions.
func (b *Bus) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, subs := range b.subscriptions {
		count += len(subs)
	}
	return count
}
