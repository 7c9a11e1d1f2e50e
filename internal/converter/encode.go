package converter

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/harrison/levelconv/internal/config"
	"github.com/harrison/levelconv/internal/filelock"
	"github.com/harrison/levelconv/internal/models"
	"gopkg.in/yaml.v3"
)

// FormatExt returns the file extension for an output format.
func FormatExt(format string) string {
	if format == config.FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// FormatForPath picks the output format from a file extension, defaulting to JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return config.FormatYAML
	default:
		return config.FormatJSON
	}
}

// Encode serializes a grid. JSON uses a two-space indent with no trailing
// newline.
func Encode(grid *models.LevelGrid, format string) ([]byte, error) {
	if grid == nil {
		return nil, models.ErrNilGrid
	}

	switch format {
	case config.FormatJSON, "":
		data, err := json.MarshalIndent(grid, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return data, nil
	case config.FormatYAML:
		data, err := yaml.Marshal(grid)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Decode parses a serialized grid and validates its shape.
func Decode(data []byte, format string) (*models.LevelGrid, error) {
	var grid models.LevelGrid

	switch format {
	case config.FormatJSON, "":
		if err := json.Unmarshal(data, &grid); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	case config.FormatYAML:
		if err := yaml.Unmarshal(data, &grid); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}
	return &grid, nil
}

// WriteGrid encodes grid and writes it atomically to path.
func WriteGrid(path string, grid *models.LevelGrid, format string) error {
	data, err := Encode(grid, format)
	if err != nil {
		return err
	}
	if err := filelock.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
