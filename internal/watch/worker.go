package watch

import (
	"context"
	"sync"
	"time"

	"github.com/example/clipd/internal/classify"
	"github.com/example/clipd/internal/event"
	"github.com/example/clipd/internal/logging"
	"github.com/example/clipd/internal/ports/secondary"
)

// Worker drains the relay, persists each distinct change, and notifies
// subscribers. Writes are dispatched as independent goroutines so a
// slow write never stalls the receive loop; notification is optimistic
// and does not wait for durability.
type Worker struct {
	relay    *Relay
	repo     secondary.HistoryRepository
	bus      *event.Bus
	throttle time.Duration
	log      *logging.Logger

	writes sync.WaitGroup
}

// NewWorker creates a persistence worker over the given relay.
func NewWorker(relay *Relay, repo secondary.HistoryRepository, bus *event.Bus, throttle time.Duration, log *logging.Logger) *Worker {
	return &Worker{
		relay:    relay,
		repo:     repo,
		bus:      bus,
		throttle: throttle,
		log:      log.With("component", "worker"),
	}
}

// Run drains the relay until ctx is cancelled, then waits for in-flight
// writes to finish.
func (w *Worker) Run(ctx context.Context) {
	w.log.Info("persistence worker started", "throttle", w.throttle.String())
	defer func() {
		w.writes.Wait()
		w.log.Info("persistence worker stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case content := <-w.relay.Receive():
			w.handle(ctx, content)

			// Throttle before pulling the next message, independent of
			// the poller cadence, to bound the notify/persist rate.
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.throttle):
			}
		}
	}
}

// handle persists one change and publishes the update event. The write
// runs in its own goroutine; a storage failure is logged and the change
// is treated as handled. The at-rest duplicate check lives inside the
// repository's insert transaction.
func (w *Worker) handle(ctx context.Context, content string) {
	entry := &secondary.EntryRecord{
		Content:     content,
		ContentType: classify.Detect(content),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	w.writes.Add(1)
	go func() {
		defer w.writes.Done()
		if err := w.repo.Insert(context.WithoutCancel(ctx), entry); err != nil {
			w.log.Error("failed to save clipboard entry", "error", err, "content_type", entry.ContentType)
		}
	}()

	w.bus.Publish(event.ClipboardUpdate{Content: content})
}
