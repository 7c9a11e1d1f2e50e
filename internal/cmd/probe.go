package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/levelconv/internal/parser"
	"github.com/spf13/cobra"
)

// NewProbeCommand creates and returns the probe subcommand
func NewProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <level-file>",
		Short: "Show how the extraction patterns match one level file",
		Long: `Run the region-block and row patterns against a single level file and
print what each one matches. Use this to see why a file fails to convert.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			printProbe(parser.Probe(string(content)), cmd.OutOrStdout())
			return nil
		},
	}
}

func printProbe(result parser.ProbeResult, out io.Writer) {
	fmt.Fprintf(out, "Content length: %d\n", result.ContentLength)
	if result.HasSize {
		fmt.Fprintf(out, "Declared size: %d\n", result.DeclaredSize)
	} else {
		fmt.Fprintf(out, "Declared size: none\n")
	}

	fmt.Fprintf(out, "\nLooking for colorRegions...\n")
	if result.BlockPattern == "" {
		fmt.Fprintf(out, "No patterns matched\n")
	} else {
		fmt.Fprintf(out, "Pattern '%s' found match\n", result.BlockPattern)
		fmt.Fprintf(out, "Matched text length: %d\n", result.MatchedLength)
		fmt.Fprintf(out, "First %d chars: %s\n", len(result.Preview), result.Preview)
		fmt.Fprintf(out, "Found %d rows\n", len(result.InnerRows))
		if len(result.InnerRows) > 0 {
			fmt.Fprintf(out, "First row: %s\n", result.InnerRows[0])
		}
	}

	fmt.Fprintf(out, "\nSearching for rows directly...\n")
	fmt.Fprintf(out, "Found %d potential rows\n", result.DirectRowCount)
	for i, row := range result.DirectRows {
		fmt.Fprintf(out, "Row %d: %s\n", i, row)
	}

	fmt.Fprintf(out, "\nExtraction: ")
	if result.ExtractErr != nil {
		fmt.Fprintf(out, "failed (%v)\n", result.ExtractErr)
	} else {
		fmt.Fprintf(out, "ok\n")
	}
}
