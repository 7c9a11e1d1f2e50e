// Package logger provides console logging for levelconv runs.
//
// ConsoleLogger writes level-filtered, timestamped lines and renders per-file
// conversion results and the end-of-run summary. It is safe for concurrent
// use. Color is enabled only when writing to a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/levelconv/internal/models"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs conversion progress to a writer with timestamps.
// All output is prefixed with [HH:MM:SS].
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive); anything
// else falls back to info.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
		now:         time.Now,
	}
}

// WithColor forces color output on or off.
func (cl *ConsoleLogger) WithColor(enabled bool) *ConsoleLogger {
	cl.colorOutput = enabled
	return cl
}

// isTerminal reports whether w is a TTY-backed file and NO_COLOR is unset.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil || !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	label := level
	if cl.colorOutput {
		label = levelColor(level).Sprint(level)
	}
	cl.write(fmt.Sprintf("[%s] [%s] %s\n", cl.timestamp(), label, message))
}

func levelColor(level string) *color.Color {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack)
	case "DEBUG":
		return color.New(color.FgCyan)
	case "WARN":
		return color.New(color.FgYellow)
	case "ERROR":
		return color.New(color.FgRed)
	default:
		return color.New(color.FgBlue)
	}
}

// LogFileResult logs the outcome for one level file.
// Converted files log at INFO, failed and unreadable files at WARN, skipped
// files at DEBUG.
func (cl *ConsoleLogger) LogFileResult(res models.FileResult) {
	if cl.writer == nil {
		return
	}

	var level, text string
	switch res.Status {
	case models.StatusConverted:
		level = "info"
		text = fmt.Sprintf("Converted: %s (size %d)", res.File, res.Size)
		if cl.colorOutput {
			text = color.New(color.FgGreen).Sprint(text)
		}
	case models.StatusFailed:
		level = "warn"
		text = fmt.Sprintf("Failed to convert: %s (size %d)", res.File, res.Size)
		if res.Error != nil {
			text += ": " + res.Error.Error()
		}
		if cl.colorOutput {
			text = color.New(color.FgRed).Sprint(text)
		}
	case models.StatusUnreadable:
		level = "warn"
		text = fmt.Sprintf("Failed to read: %s", res.File)
		if res.Error != nil {
			text += ": " + res.Error.Error()
		}
		if cl.colorOutput {
			text = color.New(color.FgRed).Sprint(text)
		}
	case models.StatusSkipped:
		level = "debug"
		text = fmt.Sprintf("Skipped: %s (size %d)", res.File, res.Size)
	case models.StatusNoSize:
		level = "debug"
		text = fmt.Sprintf("Skipped: %s (no size declaration)", res.File)
	default:
		return
	}

	if !cl.shouldLog(level) {
		return
	}
	cl.write(fmt.Sprintf("[%s] %s\n", cl.timestamp(), text))
}

// LogProgress logs a progress bar at DEBUG level.
// Format: "[HH:MM:SS] Progress: [=====     ] 5/10 (50%)"
func (cl *ConsoleLogger) LogProgress(done, total int) {
	if cl.writer == nil || !cl.shouldLog("debug") {
		return
	}

	pb := NewProgressBar(total, 10, cl.colorOutput)
	pb.Update(done)
	cl.write(fmt.Sprintf("[%s] Progress: %s\n", cl.timestamp(), pb.Render()))
}

// LogSummary logs the run summary at INFO level.
func (cl *ConsoleLogger) LogSummary(report *models.Report) {
	if cl.writer == nil || report == nil || !cl.shouldLog("info") {
		return
	}

	ts := cl.timestamp()
	header := "=== Conversion Summary ==="
	converted := fmt.Sprintf("Converted: %d", report.Converted)
	failed := fmt.Sprintf("Failed: %d", report.Failed)
	if cl.colorOutput {
		header = color.New(color.Bold).Sprint(header)
		converted = color.New(color.FgGreen).Sprint(converted)
		if report.Failed > 0 {
			failed = color.New(color.FgRed).Sprint(failed)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s\n", ts, header)
	fmt.Fprintf(&sb, "[%s] Size %d files: %d\n", ts, report.TargetSize, report.Matched)
	fmt.Fprintf(&sb, "[%s] %s\n", ts, converted)
	fmt.Fprintf(&sb, "[%s] %s\n", ts, failed)
	if report.NoSize > 0 {
		fmt.Fprintf(&sb, "[%s] Without size: %d\n", ts, report.NoSize)
	}
	if report.Unreadable > 0 {
		fmt.Fprintf(&sb, "[%s] Unreadable: %d\n", ts, report.Unreadable)
	}
	fmt.Fprintf(&sb, "[%s] Duration: %s\n", ts, formatDuration(report.Duration))

	if sizes := report.SortedOtherSizes(); len(sizes) > 0 {
		fmt.Fprintf(&sb, "[%s] Other sizes found:\n", ts)
		for _, size := range sizes {
			fmt.Fprintf(&sb, "[%s]   Size %d: %d files\n", ts, size, report.OtherSizes[size])
		}
	}

	if len(report.Failures) > 0 {
		fmt.Fprintf(&sb, "[%s] Failed files:\n", ts)
		for _, f := range report.Failures {
			fmt.Fprintf(&sb, "[%s]   - %s: %v\n", ts, f.File, f.Error)
		}
	}

	cl.write(sb.String())
}

func (cl *ConsoleLogger) write(s string) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.writer.Write([]byte(s))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func (cl *ConsoleLogger) timestamp() string {
	return cl.now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a short human-readable string.
// Examples: "250ms", "5s", "1m30s"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// NoOpLogger discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogDebug(message string)             {}
func (n *NoOpLogger) LogInfo(message string)              {}
func (n *NoOpLogger) LogWarn(message string)              {}
func (n *NoOpLogger) LogFileResult(res models.FileResult) {}
func (n *NoOpLogger) LogProgress(done, total int)         {}
func (n *NoOpLogger) LogSummary(report *models.Report)    {}
