package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/clipd/internal/db"
	"github.com/example/clipd/internal/wire"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample clipboard entries",
		Long:  `Populate the history database with sample entries covering each content type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.SeedFixtures(wire.Database()); err != nil {
				return fmt.Errorf("failed to seed history: %w", err)
			}

			fmt.Println("✓ Seeded sample clipboard entries")
			fmt.Println()
			fmt.Println("Browse them:")
			fmt.Println("  clipd history list")
			return nil
		},
	}
}
