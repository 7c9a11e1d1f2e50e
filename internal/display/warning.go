package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// String renders the warning without color
func (w Warning) String() string {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Affected file:\n")
		} else {
			b.WriteString("    Affected files:\n")
		}
		for i, file := range w.Files {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, file)
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	return b.String()
}

// Display writes the warning to out in yellow
func (w Warning) Display(out io.Writer) {
	fmt.Fprint(out, color.New(color.FgYellow).Sprint(w.String()))
}

// IgnoredFilesWarning warns about files that carry the level extension but
// not the level prefix, and so are left out of the run
func IgnoredFilesWarning(prefix, ext string, files []string) Warning {
	noun := "files"
	if len(files) == 1 {
		noun = "file"
	}
	return Warning{
		Title:      fmt.Sprintf("Found %d %s %s without the %q prefix", len(files), ext, noun, prefix),
		Message:    fmt.Sprintf("Only %s*%s files are converted", prefix, ext),
		Files:      files,
		Suggestion: fmt.Sprintf("Rename level definitions to %s<N>%s to include them", prefix, ext),
	}
}
