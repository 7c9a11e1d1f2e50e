package models

import (
	"errors"
	"fmt"
)

// LevelGrid is the square grid of color region codes extracted from one level
// definition. The JSON field names are consumed by downstream tooling and must
// not change.
type LevelGrid struct {
	Size         int        `json:"size" yaml:"size"`
	ColorRegions [][]string `json:"colorRegions" yaml:"colorRegions"`
}

// Validate checks that the grid is Size x Size and every cell holds exactly
// one uppercase Latin letter.
func (g *LevelGrid) Validate() error {
	if g.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", g.Size)
	}
	if len(g.ColorRegions) != g.Size {
		return fmt.Errorf("expected %d rows, got %d", g.Size, len(g.ColorRegions))
	}
	for i, row := range g.ColorRegions {
		if len(row) != g.Size {
			return fmt.Errorf("row %d: expected %d cells, got %d", i, g.Size, len(row))
		}
		for j, cell := range row {
			if !IsRegionCode(cell) {
				return fmt.Errorf("row %d col %d: invalid region code %q", i, j, cell)
			}
		}
	}
	return nil
}

// Regions returns the distinct region codes in first-seen order (row-major).
func (g *LevelGrid) Regions() []string {
	seen := make(map[string]bool)
	var regions []string
	for _, row := range g.ColorRegions {
		for _, cell := range row {
			if !seen[cell] {
				seen[cell] = true
				regions = append(regions, cell)
			}
		}
	}
	return regions
}

// Equal reports whether two grids have the same size and identical cells.
func (g *LevelGrid) Equal(other *LevelGrid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Size != other.Size || len(g.ColorRegions) != len(other.ColorRegions) {
		return false
	}
	for i := range g.ColorRegions {
		if len(g.ColorRegions[i]) != len(other.ColorRegions[i]) {
			return false
		}
		for j := range g.ColorRegions[i] {
			if g.ColorRegions[i][j] != other.ColorRegions[i][j] {
				return false
			}
		}
	}
	return true
}

// IsRegionCode returns true if s is a single character in A-Z.
func IsRegionCode(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}

// ErrNilGrid is returned when a nil grid is passed where one is required
var ErrNilGrid = errors.New("level grid is nil")
