package watch

import (
	"context"
	"time"

	"github.com/example/clipd/internal/logging"
	"github.com/example/clipd/internal/ports/secondary"
)

// Poller samples the clipboard on a fixed period and forwards distinct
// changes to the relay.
type Poller struct {
	provider secondary.ClipboardProvider
	guard    *Guard
	relay    *Relay
	interval time.Duration
	log      *logging.Logger
}

// NewPoller creates a poller sampling provider every interval.
func NewPoller(provider secondary.ClipboardProvider, guard *Guard, relay *Relay, interval time.Duration, log *logging.Logger) *Poller {
	return &Poller{
		provider: provider,
		guard:    guard,
		relay:    relay,
		interval: interval,
		log:      log.With("component", "poller"),
	}
}

// Run samples the clipboard until ctx is cancelled. It never returns an
// error: clipboard read failures are transient and retried on the next
// tick.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.log.Info("clipboard poller started", "interval", p.interval.String())
	for {
		select {
		case <-ctx.Done():
			p.log.Info("clipboard poller stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	content, err := p.provider.Read()
	if err != nil {
		// Expected under a locked or unavailable clipboard.
		p.log.Debug("clipboard read failed", "error", err)
		return
	}
	if content == "" {
		return
	}
	if !p.guard.Observe(content) {
		return
	}

	// Blocks when the relay is full: a detected change is never dropped.
	if err := p.relay.Submit(ctx, content); err != nil {
		p.log.Debug("relay submission abandoned", "error", err)
	}
}
