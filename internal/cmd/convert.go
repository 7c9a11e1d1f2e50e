package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/harrison/levelconv/internal/config"
	"github.com/harrison/levelconv/internal/converter"
	"github.com/harrison/levelconv/internal/display"
	"github.com/harrison/levelconv/internal/fileutil"
	"github.com/harrison/levelconv/internal/logger"
	"github.com/spf13/cobra"
)

// NewConvertCommand creates and returns the convert subcommand
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [input-dir-or-file]",
		Short: "Convert level definitions of the target size",
		Long: `Scan a directory for level definition files and write every level whose
declared size equals --size to the output directory.

Given a single file instead of a directory, that file is converted
regardless of its size.

Settings come from .levelconv/config.yaml (or $LEVELCONV_CONFIG, or
--config); flags override the file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .levelconv/config.yaml)")
	cmd.Flags().StringP("output", "o", "", "Output directory")
	cmd.Flags().Int("size", 0, "Grid size to convert")
	cmd.Flags().String("prefix", "", "File name prefix of level definitions")
	cmd.Flags().String("ext", "", "File extension of level definitions")
	cmd.Flags().String("format", "", "Output format: json or yaml")
	cmd.Flags().Bool("recursive", false, "Scan subdirectories of the input directory")
	cmd.Flags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().Bool("verbose", false, "Shorthand for --log-level debug")
	cmd.Flags().String("report", "", "Write a run summary to this .md or .html file")

	return cmd
}

// loadConvertConfig loads the config file and applies changed flags over it
func loadConvertConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	var flags config.Flags
	if len(args) == 1 {
		flags.InputDir = &args[0]
	}
	flags.OutputDir = changedString(cmd, "output")
	flags.Prefix = changedString(cmd, "prefix")
	flags.Extension = changedString(cmd, "ext")
	flags.Format = changedString(cmd, "format")
	flags.ReportPath = changedString(cmd, "report")
	flags.LogLevel = changedString(cmd, "log-level")
	if cmd.Flags().Changed("size") {
		size, _ := cmd.Flags().GetInt("size")
		flags.TargetSize = &size
	}
	if cmd.Flags().Changed("recursive") {
		recursive, _ := cmd.Flags().GetBool("recursive")
		flags.Recursive = &recursive
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		debug := "debug"
		flags.LogLevel = &debug
	}

	cfg.MergeWithFlags(flags)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	return &value
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConvertConfig(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	consoleLog := logger.NewConsoleLogger(out, cfg.LogLevel)

	info, err := os.Stat(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("failed to access input: %w", err)
	}
	if !info.IsDir() {
		return convertSingleFile(cfg, consoleLog)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	report, err := converter.New(converter.OptionsFromConfig(cfg), consoleLog).Run(ctx)
	if report != nil && len(report.Ignored) > 0 {
		display.IgnoredFilesWarning(cfg.Prefix, cfg.Extension, report.Ignored).Display(cmd.ErrOrStderr())
	}
	return err
}

func convertSingleFile(cfg *config.Config, consoleLog *logger.ConsoleLogger) error {
	name := fileutil.ReplaceExt(filepath.Base(cfg.InputDir), converter.FormatExt(cfg.Format))
	outPath := filepath.Join(cfg.OutputDir, name)

	grid, err := converter.ConvertFile(cfg.InputDir, outPath)
	if err != nil {
		consoleLog.LogError(err.Error())
		return err
	}

	consoleLog.LogInfo(fmt.Sprintf("Converted: %s (size %d) -> %s", filepath.Base(cfg.InputDir), grid.Size, outPath))
	return nil
}
