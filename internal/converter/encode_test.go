package converter

import (
	"testing"

	"github.com/harrison/levelconv/internal/config"
	"github.com/harrison/levelconv/internal/models"
	"github.com/harrison/levelconv/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	grid, err := parser.Extract(levelSource(6, testGrid(6)))
	require.NoError(t, err)

	for _, format := range []string{config.FormatJSON, config.FormatYAML} {
		t.Run(format, func(t *testing.T) {
			data, err := Encode(grid, format)
			require.NoError(t, err)

			decoded, err := Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, grid.Size, decoded.Size)
			assert.Equal(t, grid.ColorRegions, decoded.ColorRegions)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode(nil, config.FormatJSON)
	assert.ErrorIs(t, err, models.ErrNilGrid)

	_, err = Encode(&models.LevelGrid{Size: 1, ColorRegions: [][]string{{"A"}}}, "xml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestDecodeRejectsBadGrids(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"rows short", `{"size": 2, "colorRegions": [["A", "B"]]}`},
		{"wrong key", `{"size": 1, "regions": [["A"]]}`},
		{"lowercase cell", `{"size": 1, "colorRegions": [["a"]]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), config.FormatJSON)
			assert.Error(t, err)
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, ".json", FormatExt(config.FormatJSON))
	assert.Equal(t, ".yaml", FormatExt(config.FormatYAML))

	assert.Equal(t, config.FormatYAML, FormatForPath("a/level1.yml"))
	assert.Equal(t, config.FormatYAML, FormatForPath("level1.YAML"))
	assert.Equal(t, config.FormatJSON, FormatForPath("level1.json"))
	assert.Equal(t, config.FormatJSON, FormatForPath("level1"))
}
