// Package loader reads converted level files back and checks that they are
// usable grids.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/levelconv/internal/converter"
	"github.com/harrison/levelconv/internal/fileutil"
	"github.com/harrison/levelconv/internal/models"
)

// LoadFailure names a file that could not be loaded and why.
type LoadFailure struct {
	File  string
	Error error
}

// LoadResult summarizes a directory load.
type LoadResult struct {
	Total   int
	Loaded  int
	Failed  []LoadFailure
	Levels  map[string]*models.LevelGrid // keyed by path relative to the loaded directory
	Example string                       // first file in sort order, if any loaded
}

// LoadDirectory decodes every <prefix>*.json, .yaml and .yml file under dir,
// including subdirectories written by recursive conversion runs.
// A file fails when it does not decode or its grid does not validate.
func LoadDirectory(dir, prefix string) (*LoadResult, error) {
	scan, err := fileutil.ScanDirectory(dir, fileutil.ScanOptions{
		Prefix:     prefix,
		Extensions: []string{".json", ".yaml", ".yml"},
		Recursive:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan output directory: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}

	result := &LoadResult{
		Total:  len(scan.Files),
		Levels: make(map[string]*models.LevelGrid),
	}

	for _, path := range scan.Files {
		name, err := filepath.Rel(absDir, path)
		if err != nil {
			name = filepath.Base(path)
		}
		grid, err := LoadFile(path)
		if err != nil {
			result.Failed = append(result.Failed, LoadFailure{File: name, Error: err})
			continue
		}
		result.Loaded++
		result.Levels[name] = grid
		if result.Example == "" {
			result.Example = name
		}
	}

	return result, nil
}

// LoadFile decodes a single converted level, picking the format from its extension.
func LoadFile(path string) (*models.LevelGrid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return converter.Decode(data, converter.FormatForPath(path))
}
