package parser

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/harrison/levelconv/internal/models"
)

// The extractor scans text rather than parsing it. Level definitions are
// generated in a narrow, regular shape, and these patterns rely on it.
var (
	sizePattern        = regexp.MustCompile(`size:\s*(\d+)`)
	regionStartPattern = regexp.MustCompile(`colorRegions:\s*\[`)
	rowPattern         = regexp.MustCompile(`\[["A-Z, ]+\]`)
	cellPattern        = regexp.MustCompile(`"([A-Z])"`)
)

// DeclaredSize returns the first "size: N" value in text. The second result
// is false when there is no declaration or N does not fit in an int.
func DeclaredSize(text string) (int, bool) {
	match := sizePattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	size, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return size, true
}

// Extract locates the grid size and the colorRegions rows in a level
// definition and returns them as a LevelGrid.
//
// Rows are the first size bracketed lists after the colorRegions marker whose
// contents are only quotes, uppercase letters, commas and spaces. The end of
// the region block is never located: row-shaped lists must not precede or
// interleave with the grid rows. Rows with the wrong number of cells are
// dropped, which then surfaces as a ShapeMismatch on the row count.
//
// Extract has no side effects and returns an *ExtractionError for every
// malformed input.
func Extract(text string) (*models.LevelGrid, error) {
	size, ok := DeclaredSize(text)
	if !ok {
		return nil, newExtractionError(MissingDimension, "no size declaration")
	}
	if size <= 0 {
		return nil, newExtractionError(MissingDimension, "size must be positive, got %d", size)
	}

	start := regionStartPattern.FindStringIndex(text)
	if start == nil {
		return nil, newExtractionError(MissingRegionBlock, "no colorRegions block")
	}

	// Begin at the block's own opening bracket.
	block := text[start[1]-1:]
	candidates := rowPattern.FindAllString(block, size)

	rows := make([][]string, 0, len(candidates))
	for _, candidate := range candidates {
		cells := cellPattern.FindAllStringSubmatch(candidate, -1)
		if len(cells) != size {
			continue
		}
		row := make([]string, len(cells))
		for i, cell := range cells {
			row[i] = cell[1]
		}
		rows = append(rows, row)
	}

	if len(rows) != size {
		return nil, newExtractionError(ShapeMismatch,
			"expected %d rows of %d cells, found %d (from %d candidates)", size, size, len(rows), len(candidates))
	}

	grid := &models.LevelGrid{Size: size, ColorRegions: rows}
	if err := grid.Validate(); err != nil {
		return nil, newExtractionError(ShapeMismatch, "%v", err)
	}
	return grid, nil
}

// Parse reads a level definition from r and extracts its grid.
func Parse(r io.Reader) (*models.LevelGrid, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	return Extract(string(content))
}

// ParseFile opens path and extracts its grid. I/O errors are wrapped normally;
// malformed content yields an *ExtractionError.
func ParseFile(path string) (*models.LevelGrid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}
