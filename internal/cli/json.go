package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/clipd/internal/jsontool"
)

// JSONCmd returns the json command
func JSONCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Validate, format, and minify JSON",
		Long:  `Stateless JSON helpers operating on a file argument or stdin.`,
	}

	cmd.AddCommand(jsonValidateCmd())
	cmd.AddCommand(jsonFormatCmd())
	cmd.AddCommand(jsonMinifyCmd())

	return cmd
}

func jsonValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			result := jsontool.Validate(text)
			if !result.Valid {
				fmt.Printf("%s %s\n", color.New(color.FgRed).Sprint("✗"), result.ErrorMessage)
				if result.Line > 0 {
					fmt.Printf("  at line %d, column %d\n", result.Line, result.Column)
				}
				os.Exit(1)
			}

			fmt.Printf("%s valid JSON\n", color.New(color.FgGreen).Sprint("✓"))
			return nil
		},
	}
}

func jsonFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [file]",
		Short: "Pretty-print a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			formatted, err := jsontool.Format(text)
			if err != nil {
				return err
			}

			fmt.Println(formatted)
			return nil
		},
	}
}

func jsonMinifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minify [file]",
		Short: "Minify a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			minified, err := jsontool.Minify(text)
			if err != nil {
				return err
			}

			fmt.Println(minified)
			return nil
		},
	}
}

// readInput returns the contents of the file argument, or stdin when no
// argument (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
