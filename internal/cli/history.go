package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/clipd/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage clipboard history",
		Long:  `List, delete, and clear stored clipboard entries.`,
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyDeleteCmd())
	cmd.AddCommand(historyClearCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored entries, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			entries, err := wire.HistoryService().ListHistory(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list history: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No clipboard history yet.")
				fmt.Println()
				fmt.Println("Start recording changes:")
				fmt.Println("  clipd watch")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tTIME\tCONTENT")
			for _, e := range entries {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.ContentType, e.Timestamp, firstLine(e.Content))
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int("limit", 0, "Maximum entries to show (default 20)")

	return cmd
}

func historyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}

			if err := wire.HistoryService().DeleteEntry(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete entry: %w", err)
			}

			fmt.Printf("✓ Deleted entry %d\n", id)
			return nil
		},
	}
}

func historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.HistoryService().ClearHistory(cmd.Context()); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}

			fmt.Println("✓ Cleared clipboard history")
			return nil
		},
	}
}
