package converter

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/harrison/levelconv/internal/filelock"
	"github.com/harrison/levelconv/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// RenderMarkdown renders the run summary as a Markdown document.
func RenderMarkdown(report *models.Report) string {
	var sb strings.Builder

	sb.WriteString("# Level conversion report\n\n")
	fmt.Fprintf(&sb, "- Run: `%s`\n", report.RunID)
	if report.InputDir != "" {
		fmt.Fprintf(&sb, "- Input: `%s`\n", report.InputDir)
	}
	if report.OutputDir != "" {
		fmt.Fprintf(&sb, "- Output: `%s`\n", report.OutputDir)
	}
	fmt.Fprintf(&sb, "- Target size: %d\n", report.TargetSize)
	fmt.Fprintf(&sb, "- Duration: %s\n\n", report.Duration)

	sb.WriteString("| Metric | Files |\n")
	sb.WriteString("|---|---|\n")
	fmt.Fprintf(&sb, "| Scanned | %d |\n", report.Scanned)
	fmt.Fprintf(&sb, "| Size %d | %d |\n", report.TargetSize, report.Matched)
	fmt.Fprintf(&sb, "| Converted | %d |\n", report.Converted)
	fmt.Fprintf(&sb, "| Failed | %d |\n", report.Failed)
	fmt.Fprintf(&sb, "| Without size | %d |\n", report.NoSize)
	if report.Unreadable > 0 {
		fmt.Fprintf(&sb, "| Unreadable | %d |\n", report.Unreadable)
	}

	if sizes := report.SortedOtherSizes(); len(sizes) > 0 {
		sb.WriteString("\n## Other sizes\n\n")
		sb.WriteString("| Size | Files |\n")
		sb.WriteString("|---|---|\n")
		for _, size := range sizes {
			fmt.Fprintf(&sb, "| %d | %d |\n", size, report.OtherSizes[size])
		}
	}

	if len(report.Failures) > 0 {
		sb.WriteString("\n## Failures\n\n")
		sb.WriteString("| File | Error |\n")
		sb.WriteString("|---|---|\n")
		for _, f := range report.Failures {
			fmt.Fprintf(&sb, "| `%s` | %s |\n", f.File, escapeCell(fmt.Sprint(f.Error)))
		}
	}

	if len(report.Ignored) > 0 {
		sb.WriteString("\n## Ignored files\n\n")
		for _, name := range report.Ignored {
			fmt.Fprintf(&sb, "- `%s`\n", name)
		}
	}

	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderHTML renders the Markdown summary to a standalone HTML page.
func RenderHTML(report *models.Report) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(RenderMarkdown(report)), &body); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>Level conversion report</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// WriteReport writes the summary to path as HTML when it ends in .html and
// as Markdown otherwise.
func WriteReport(path string, report *models.Report) error {
	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".html") {
		html, err := RenderHTML(report)
		if err != nil {
			return err
		}
		data = html
	} else {
		data = []byte(RenderMarkdown(report))
	}

	if err := filelock.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
