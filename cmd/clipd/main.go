package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/clipd/internal/cli"
	"github.com/example/clipd/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "clipd",
		Short:   "clipd - clipboard history daemon",
		Version: version.String(),
		Long: `clipd watches the system clipboard, records distinct changes in a
local SQLite history, and provides commands to browse, copy back,
and transform what it captured.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.WatchCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.CopyCmd())
	rootCmd.AddCommand(cli.JSONCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
