package watch

import (
	"context"
	"sync"
	"time"

	"github.com/example/clipd/internal/event"
	"github.com/example/clipd/internal/logging"
	"github.com/example/clipd/internal/ports/secondary"
)

// Options configures a Pipeline.
type Options struct {
	PollInterval  time.Duration
	RelayCapacity int
	Throttle      time.Duration
	HistoryLimit  int
}

// Pipeline wires the poller, guard, relay and persistence worker
// together and runs them until cancelled.
type Pipeline struct {
	poller *Poller
	worker *Worker
	repo   secondary.HistoryRepository
	bus    *event.Bus
	limit  int
	log    *logging.Logger
}

// NewPipeline assembles a watch pipeline from its collaborators.
func NewPipeline(provider secondary.ClipboardProvider, repo secondary.HistoryRepository, bus *event.Bus, opts Options, log *logging.Logger) *Pipeline {
	guard := NewGuard()
	relay := NewRelay(opts.RelayCapacity)

	return &Pipeline{
		poller: NewPoller(provider, guard, relay, opts.PollInterval, log),
		worker: NewWorker(relay, repo, bus, opts.Throttle, log),
		repo:   repo,
		bus:    bus,
		limit:  opts.HistoryLimit,
		log:    log.With("component", "pipeline"),
	}
}

// Run emits the initial history batch, then runs the poller and the
// persistence worker until ctx is cancelled. It blocks until both loops
// have stopped and in-flight writes have drained.
func (p *Pipeline) Run(ctx context.Context) {
	p.emitInitialHistory(ctx)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		p.poller.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		p.worker.Run(ctx)
	}()
	wg.Wait()
}

// emitInitialHistory publishes one clipboard-history event per
// persisted entry, most recent first. A storage failure here only costs
// the initial batch, never the pipeline.
func (p *Pipeline) emitInitialHistory(ctx context.Context) {
	entries, err := p.repo.ListRecent(ctx, p.limit)
	if err != nil {
		p.log.Warn("failed to load initial history", "error", err)
		return
	}
	for _, e := range entries {
		p.bus.Publish(event.ClipboardHistory{
			ID:          e.ID,
			Content:     e.Content,
			Timestamp:   e.Timestamp,
			ContentType: e.ContentType,
		})
	}
}
