package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/clipd/internal/wire"
)

// CopyCmd returns the copy command
func CopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy [id]",
		Short: "Copy a stored entry back to the clipboard",
		Long: `Copy a history entry's content to the system clipboard.

Examples:
  clipd copy 42
  clipd copy --text "literal text"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _ := cmd.Flags().GetString("text")

			if text != "" {
				if err := wire.HistoryService().CopyText(cmd.Context(), text); err != nil {
					return err
				}
				fmt.Println("✓ Copied text to clipboard")
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("expected an entry id or --text")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}

			if err := wire.HistoryService().CopyEntry(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Printf("✓ Copied entry %d to clipboard\n", id)
			return nil
		},
	}

	cmd.Flags().String("text", "", "Copy this literal text instead of a stored entry")

	return cmd
}
