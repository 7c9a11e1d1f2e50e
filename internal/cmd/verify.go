package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/levelconv/internal/config"
	"github.com/harrison/levelconv/internal/loader"
	"github.com/spf13/cobra"
)

// NewVerifyCommand creates and returns the verify subcommand
func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [output-dir]",
		Short: "Load converted level files back and check them",
		Long: `Decode every converted level file in the output directory and check that
each one holds a size x size grid of region codes.

Exit code: 0 if every file loads, 1 otherwise`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := config.DefaultConfig().OutputDir
			if len(args) == 1 {
				dir = args[0]
			}
			prefix, _ := cmd.Flags().GetString("prefix")
			return verifyDirectory(dir, prefix, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("prefix", config.DefaultConfig().Prefix, "File name prefix of converted levels")

	return cmd
}

func verifyDirectory(dir, prefix string, out io.Writer) error {
	result, err := loader.LoadDirectory(dir, prefix)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintf(out, "Found %d level files\n", result.Total)
	fmt.Fprintf(out, "\nResults:\n")
	fmt.Fprintf(out, "Successfully loaded: %s\n", green.Sprintf("%d/%d levels", result.Loaded, result.Total))

	if len(result.Failed) > 0 {
		fmt.Fprintf(out, "\nFailed to load:\n")
		for _, f := range result.Failed {
			fmt.Fprintf(out, "  - %s: %s\n", f.File, red.Sprint(f.Error))
		}
	}

	if result.Example != "" {
		grid := result.Levels[result.Example]
		fmt.Fprintf(out, "\nExample - %s:\n", result.Example)
		fmt.Fprintf(out, "  Size: %d\n", grid.Size)
		fmt.Fprintf(out, "  Color regions count: %d\n", len(grid.ColorRegions))
		fmt.Fprintf(out, "  Distinct regions: %s\n", strings.Join(grid.Regions(), " "))
		fmt.Fprintf(out, "  First row: %s\n", strings.Join(grid.ColorRegions[0], " "))
	}

	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d level files failed to load", len(result.Failed), result.Total)
	}
	return nil
}
