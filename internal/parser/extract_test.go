package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoByTwoLevel = `import { Level } from "../types";

const level1: Level = {
  id: 1,
  size: 2,
  colorRegions: [
    ["A", "B"],
    ["B", "A"],
  ],
  regionColors: {
    A: "lightWisteria",
    B: "chardonnay",
  },
};

export default level1;
`

// buildLevel renders a level definition in the generator's layout.
func buildLevel(size int, rows [][]string) string {
	var sb strings.Builder
	sb.WriteString("const level: Level = {\n")
	fmt.Fprintf(&sb, "  size: %d,\n", size)
	sb.WriteString("  colorRegions: [\n")
	for _, row := range rows {
		quoted := make([]string, len(row))
		for i, cell := range row {
			quoted[i] = fmt.Sprintf("%q", cell)
		}
		fmt.Fprintf(&sb, "    [%s],\n", strings.Join(quoted, ", "))
	}
	sb.WriteString("  ],\n};\n")
	return sb.String()
}

func TestExtract_TwoByTwo(t *testing.T) {
	grid, err := Extract(twoByTwoLevel)
	require.NoError(t, err)

	assert.Equal(t, 2, grid.Size)
	assert.Equal(t, [][]string{{"A", "B"}, {"B", "A"}}, grid.ColorRegions)
}

func TestExtract_EightByEight(t *testing.T) {
	rows := [][]string{
		{"A", "A", "A", "B", "B", "B", "C", "C"},
		{"A", "D", "A", "B", "E", "B", "C", "C"},
		{"A", "D", "D", "D", "E", "E", "C", "C"},
		{"F", "F", "D", "G", "G", "E", "H", "H"},
		{"F", "F", "F", "G", "G", "E", "H", "H"},
		{"F", "F", "F", "G", "G", "G", "H", "H"},
		{"F", "F", "F", "F", "G", "G", "H", "H"},
		{"F", "F", "F", "F", "F", "F", "F", "H"},
	}

	grid, err := Extract(buildLevel(8, rows))
	require.NoError(t, err)

	assert.Equal(t, 8, grid.Size)
	assert.Equal(t, rows, grid.ColorRegions)
}

func TestExtract_CompactLayout(t *testing.T) {
	text := `export const level = {size:2,colorRegions:[["A","B"],["B","A"]]}`

	grid, err := Extract(text)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}, {"B", "A"}}, grid.ColorRegions)
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantErr  error
		wantKind ErrorKind
	}{
		{
			name:     "no size key",
			text:     `colorRegions: [["A", "B"], ["B", "A"]]`,
			wantErr:  ErrMissingDimension,
			wantKind: MissingDimension,
		},
		{
			name:     "size without digits",
			text:     `size: eight, colorRegions: [["A"]]`,
			wantErr:  ErrMissingDimension,
			wantKind: MissingDimension,
		},
		{
			name:     "zero size",
			text:     `size: 0, colorRegions: []`,
			wantErr:  ErrMissingDimension,
			wantKind: MissingDimension,
		},
		{
			name:     "size overflows int",
			text:     `size: 99999999999999999999999, colorRegions: [["A"]]`,
			wantErr:  ErrMissingDimension,
			wantKind: MissingDimension,
		},
		{
			name:     "size far larger than rows",
			text:     `size: 99999999999999, colorRegions: [["A", "B"], ["B", "A"]]`,
			wantErr:  ErrShapeMismatch,
			wantKind: ShapeMismatch,
		},
		{
			name:     "no region block",
			text:     `size: 2, regions: [["A", "B"], ["B", "A"]]`,
			wantErr:  ErrMissingRegionBlock,
			wantKind: MissingRegionBlock,
		},
		{
			name: "too few rows",
			text: buildLevel(3, [][]string{
				{"A", "B", "C"},
				{"C", "B", "A"},
			}),
			wantErr:  ErrShapeMismatch,
			wantKind: ShapeMismatch,
		},
		{
			name: "row with too few cells",
			text: buildLevel(2, [][]string{
				{"A", "B"},
				{"A"},
			}),
			wantErr:  ErrShapeMismatch,
			wantKind: ShapeMismatch,
		},
		{
			name: "row with too many cells",
			text: buildLevel(2, [][]string{
				{"A", "B", "C"},
				{"A", "B"},
			}),
			wantErr:  ErrShapeMismatch,
			wantKind: ShapeMismatch,
		},
		{
			name:     "lowercase cells are not rows",
			text:     `size: 2, colorRegions: [["a", "b"], ["b", "a"]]`,
			wantErr:  ErrShapeMismatch,
			wantKind: ShapeMismatch,
		},
		{
			name:     "multi-letter cells",
			text:     `size: 2, colorRegions: [["AB", "B"], ["B", "A"]]`,
			wantErr:  ErrShapeMismatch,
			wantKind: ShapeMismatch,
		},
		{
			name:     "empty input",
			text:     "",
			wantErr:  ErrMissingDimension,
			wantKind: MissingDimension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Extract(tt.text)
			require.Error(t, err)
			assert.Nil(t, grid)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestExtract_IgnoresRowsBeyondSize(t *testing.T) {
	text := buildLevel(2, [][]string{
		{"A", "B"},
		{"B", "A"},
		{"C", "C"},
	})

	grid, err := Extract(text)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}, {"B", "A"}}, grid.ColorRegions)
}

func TestExtract_IgnoresRowShapedContentBeforeMarker(t *testing.T) {
	text := `const level = {
  size: 2,
  hint: ["Z", "Z"],
  colorRegions: [
    ["A", "B"],
    ["B", "A"],
  ],
};`

	grid, err := Extract(text)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}, {"B", "A"}}, grid.ColorRegions)
}

func TestExtract_TrailingArraysAfterShortBlock(t *testing.T) {
	// The block is not closed explicitly, so a short grid picks up the next
	// row-shaped list after it. Here that list has the right width and is
	// accepted as a row.
	text := `size: 2,
colorRegions: [
  ["A", "B"],
],
solution: ["B", "A"],`

	grid, err := Extract(text)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}, {"B", "A"}}, grid.ColorRegions)
}

func TestExtract_Idempotent(t *testing.T) {
	first, err1 := Extract(twoByTwoLevel)
	second, err2 := Extract(twoByTwoLevel)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)

	_, errA := Extract("size: 3")
	_, errB := Extract("size: 3")
	assert.Equal(t, errA, errB)
}

func TestDeclaredSize(t *testing.T) {
	tests := []struct {
		text     string
		wantSize int
		wantOK   bool
	}{
		{"size: 8", 8, true},
		{"size:10", 10, true},
		{"size:\n\t 5,", 5, true},
		{"  size: 7, size: 9", 7, true},
		{"sizes: 4", 0, false},
		{"no declaration", 0, false},
		{"size: x", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			size, ok := DeclaredSize(tt.text)
			assert.Equal(t, tt.wantSize, size)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level1.ts")
	require.NoError(t, os.WriteFile(path, []byte(twoByTwoLevel), 0644))

	grid, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Size)

	_, err = ParseFile(filepath.Join(dir, "missing.ts"))
	require.Error(t, err)
	assert.Equal(t, KindUnknown, KindOf(err))
}

func TestExtractionErrorMessage(t *testing.T) {
	err := newExtractionError(ShapeMismatch, "expected %d rows", 3)
	assert.Equal(t, "shape_mismatch: expected 3 rows", err.Error())
	assert.Equal(t, "missing_dimension", ErrMissingDimension.Error())

	wrapped := fmt.Errorf("level9.ts: %w", err)
	assert.True(t, errors.Is(wrapped, ErrShapeMismatch))
	assert.False(t, errors.Is(wrapped, ErrMissingRegionBlock))
	assert.Equal(t, ShapeMismatch, KindOf(wrapped))
}
