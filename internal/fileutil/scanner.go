package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Prefix is a literal prefix the file name must start with (e.g., "level")
	Prefix string
	// Extensions is a list of file extensions to include (e.g., ".ts")
	Extensions []string
	// Recursive enables scanning of non-hidden subdirectories
	Recursive bool
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the absolute paths of matched files
	Files []string
	// Ignored contains base names that have a wanted extension but lack the prefix
	Ignored []string
	// Errors contains non-fatal errors encountered during scanning
	Errors []error
}

// ScanDirectory scans dir for files matching opts
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	result := &ScanResult{
		Files:   make([]string, 0),
		Ignored: make([]string, 0),
		Errors:  make([]error, 0),
	}

	extMap := normalizeExtensions(opts.Extensions)

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil
		}
		if path == dir {
			return nil
		}

		if d.IsDir() {
			if !opts.Recursive || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if len(extMap) > 0 && !extMap[strings.ToLower(filepath.Ext(name))] {
			return nil
		}
		if !strings.HasPrefix(name, opts.Prefix) {
			result.Ignored = append(result.Ignored, name)
			return nil
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", path, err))
			return nil
		}
		result.Files = append(result.Files, absPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Strings(result.Files)
	sort.Strings(result.Ignored)

	return result, nil
}

// ReplaceExt swaps the extension of a file name, e.g. level1.ts -> level1.json
func ReplaceExt(name, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

func normalizeExtensions(exts []string) map[string]bool {
	extMap := make(map[string]bool)
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}
	return extMap
}
