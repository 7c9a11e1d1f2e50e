package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for levelconv
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levelconv",
		Short: "Convert level definitions into grid data files",
		Long: `levelconv scans a directory of level definition files (level*.ts),
extracts the square grid of color region codes from each one, and writes
the levels of the selected size as JSON (or YAML) data files.

Levels of other sizes are counted and reported but not written. A file
that cannot be extracted is reported as failed and the run continues.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewConvertCommand())
	cmd.AddCommand(NewVerifyCommand())
	cmd.AddCommand(NewProbeCommand())

	return cmd
}
