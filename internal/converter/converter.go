// Package converter runs a batch conversion of level definitions into grid
// data files.
//
// A run scans the input directory, probes each file's declared size, and
// extracts and writes only the levels at the target size. Every per-file
// outcome is folded into a models.Report which the run returns; nothing is
// kept in package state. A malformed file is recorded as failed and never
// stops the run.
package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/levelconv/internal/config"
	"github.com/harrison/levelconv/internal/filelock"
	"github.com/harrison/levelconv/internal/fileutil"
	"github.com/harrison/levelconv/internal/models"
	"github.com/harrison/levelconv/internal/parser"
)

// Logger receives progress from a conversion run.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogFileResult(res models.FileResult)
	LogProgress(done, total int)
	LogSummary(report *models.Report)
}

// Options configures a conversion run.
type Options struct {
	InputDir   string
	OutputDir  string
	Prefix     string
	Extension  string
	TargetSize int
	Format     string // config.FormatJSON or config.FormatYAML
	Recursive  bool
	ReportPath string // optional .md or .html summary
}

// OptionsFromConfig maps a validated Config onto run options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		InputDir:   cfg.InputDir,
		OutputDir:  cfg.OutputDir,
		Prefix:     cfg.Prefix,
		Extension:  cfg.Extension,
		TargetSize: cfg.TargetSize,
		Format:     cfg.Format,
		Recursive:  cfg.Recursive,
		ReportPath: cfg.ReportPath,
	}
}

// Converter performs conversion runs.
type Converter struct {
	opts   Options
	logger Logger
	newID  func() string
	now    func() time.Time
}

// New creates a Converter. A nil logger is allowed.
func New(opts Options, logger Logger) *Converter {
	if opts.Format == "" {
		opts.Format = config.FormatJSON
	}
	return &Converter{
		opts:   opts,
		logger: logger,
		newID:  func() string { return uuid.New().String() },
		now:    time.Now,
	}
}

// Run converts every matching level file and returns the run report.
// The output directory is locked for the duration of the run. A cancelled
// context stops the run between files; the partial report is returned along
// with the context error.
func (c *Converter) Run(ctx context.Context) (*models.Report, error) {
	start := c.now()

	report := models.NewReport(c.newID(), c.opts.TargetSize)
	report.InputDir = c.opts.InputDir
	report.OutputDir = c.opts.OutputDir

	scan, err := fileutil.ScanDirectory(c.opts.InputDir, fileutil.ScanOptions{
		Prefix:     c.opts.Prefix,
		Extensions: []string{c.opts.Extension},
		Recursive:  c.opts.Recursive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}
	report.Ignored = scan.Ignored
	for _, scanErr := range scan.Errors {
		c.logWarn(scanErr.Error())
	}

	lock, err := filelock.AcquireDir(c.opts.OutputDir)
	if err != nil {
		return nil, err
	}
	defer lock.Release()

	c.logInfo(fmt.Sprintf("Scanning %d level files in %s (run %s)", len(scan.Files), c.opts.InputDir, report.RunID))

	for i, path := range scan.Files {
		if err := ctx.Err(); err != nil {
			report.Duration = c.now().Sub(start)
			return report, fmt.Errorf("conversion cancelled after %d of %d files: %w", i, len(scan.Files), err)
		}

		res := c.processFile(path)
		report.Record(res)

		if c.logger != nil {
			c.logger.LogFileResult(res)
			c.logger.LogProgress(i+1, len(scan.Files))
		}
	}

	report.Duration = c.now().Sub(start)

	if c.logger != nil {
		c.logger.LogSummary(report)
	}

	if c.opts.ReportPath != "" {
		if err := WriteReport(c.opts.ReportPath, report); err != nil {
			return report, err
		}
		c.logInfo(fmt.Sprintf("Report written to %s", c.opts.ReportPath))
	}

	return report, nil
}

// processFile converts one input file. A file that cannot be read is
// reported as unreadable, apart from the target-size counts.
func (c *Converter) processFile(path string) models.FileResult {
	name := c.relativeName(path)
	res := models.FileResult{File: name}

	content, err := os.ReadFile(path)
	if err != nil {
		res.Status = models.StatusUnreadable
		res.Error = fmt.Errorf("failed to read file: %w", err)
		return res
	}
	text := string(content)

	size, ok := parser.DeclaredSize(text)
	if !ok {
		res.Status = models.StatusNoSize
		return res
	}
	res.Size = size

	if size != c.opts.TargetSize {
		res.Status = models.StatusSkipped
		return res
	}

	grid, err := parser.Extract(text)
	if err != nil {
		res.Status = models.StatusFailed
		res.Error = err
		return res
	}

	outPath := filepath.Join(c.opts.OutputDir, fileutil.ReplaceExt(name, FormatExt(c.opts.Format)))
	if err := WriteGrid(outPath, grid, c.opts.Format); err != nil {
		res.Status = models.StatusFailed
		res.Error = err
		return res
	}

	res.Status = models.StatusConverted
	res.OutputPath = outPath
	c.logDebug(fmt.Sprintf("Wrote %s (%d regions)", outPath, len(grid.Regions())))
	return res
}

// relativeName returns path relative to the input directory, so recursive
// runs keep their subdirectory layout in the output.
func (c *Converter) relativeName(path string) string {
	absInput, err := filepath.Abs(c.opts.InputDir)
	if err != nil {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(absInput, path)
	if err != nil {
		return filepath.Base(path)
	}
	return rel
}

func (c *Converter) logDebug(msg string) {
	if c.logger != nil {
		c.logger.LogDebug(msg)
	}
}

func (c *Converter) logInfo(msg string) {
	if c.logger != nil {
		c.logger.LogInfo(msg)
	}
}

func (c *Converter) logWarn(msg string) {
	if c.logger != nil {
		c.logger.LogWarn(msg)
	}
}

// ConvertFile extracts a single level definition and writes it to outPath,
// choosing the encoding from outPath's extension. Unlike Run it applies no
// size selection. outPath's directory is locked while writing.
func ConvertFile(inPath, outPath string) (*models.LevelGrid, error) {
	grid, err := parser.ParseFile(inPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(inPath), err)
	}

	lock, err := filelock.AcquireDir(filepath.Dir(outPath))
	if err != nil {
		return nil, err
	}
	defer lock.Release()
	if err := WriteGrid(outPath, grid, FormatForPath(outPath)); err != nil {
		return nil, err
	}
	return grid, nil
}
