// Package cli contains the cobra commands for clipd.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/clipd/internal/event"
	"github.com/example/clipd/internal/wire"
)

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the clipboard and record distinct changes",
		Long: `Run the clipboard watch pipeline until interrupted.

Each distinct clipboard change is classified, stored in the history
database, and printed to stdout. The stored history is replayed first.

Examples:
  clipd watch
  CLIPD_WATCH_POLL_INTERVAL_MS=500 clipd watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")

			bus := wire.EventBus()
			if !quiet {
				subscribePrinters(bus)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("%s watching clipboard (ctrl-c to stop)\n", color.New(color.FgGreen).Sprint("✓"))
			wire.Pipeline().Run(ctx)
			fmt.Println("stopped")
			return nil
		},
	}

	cmd.Flags().Bool("quiet", false, "Suppress change output, log only")

	return cmd
}

// subscribePrinters prints history replay and live updates to stdout.
func subscribePrinters(bus *event.Bus) {
	dim := color.New(color.Faint)
	tag := color.New(color.FgCyan)

	bus.Subscribe(event.TypeClipboardHistory, func(e event.Event) {
		h := e.(event.ClipboardHistory)
		dim.Printf("  %4d  %-9s  %s\n", h.ID, h.ContentType, firstLine(h.Content))
	})
	bus.Subscribe(event.TypeClipboardUpdate, func(e event.Event) {
		u := e.(event.ClipboardUpdate)
		fmt.Printf("%s %s\n", tag.Sprint("change:"), firstLine(u.Content))
	})
}

// firstLine truncates content to a single display line.
func firstLine(content string) string {
	for i, r := range content {
		if r == '\n' {
			return content[:i] + " …"
		}
		if i > 80 {
			return content[:i] + "…"
		}
	}
	return content
}
