package parser

import (
	"regexp"
	"unicode/utf8"
)

// Alternative region-block patterns, tried in order by Probe. They capture the
// text up to the first closing bracket, so against a nested block they stop
// inside the first row; Probe shows how far each one gets.
var probeBlockPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)colorRegions:\s*\[(.*?)\]`),
	regexp.MustCompile(`(?s)colorRegions:\s*\[(.*?)\s*\]`),
	regexp.MustCompile(`(?s)colorRegions:\s*\[(.*?)\],`),
}

var innerRowPattern = regexp.MustCompile(`\[([^\]]+)\]`)

const (
	probePreviewLen = 200
	probeSampleRows = 3
)

// ProbeResult describes how the extraction patterns behave against one file.
type ProbeResult struct {
	// Lengths count runes.
	ContentLength int

	// BlockPattern is the first alternative pattern that matched, empty if none did.
	BlockPattern  string
	MatchedLength int
	Preview       string
	InnerRows     []string

	// DirectRows are the first row-shaped matches anywhere in the content.
	DirectRowCount int
	DirectRows     []string

	DeclaredSize int
	HasSize      bool
	ExtractErr   error
}

// Probe runs the region patterns against text and reports what each finds.
// It is a diagnostic for level files that fail to extract.
func Probe(text string) ProbeResult {
	result := ProbeResult{ContentLength: utf8.RuneCountInString(text)}

	for _, re := range probeBlockPatterns {
		match := re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		inner := match[1]
		result.BlockPattern = re.String()
		result.MatchedLength = utf8.RuneCountInString(inner)
		result.Preview = truncateRunes(inner, probePreviewLen)
		for _, row := range innerRowPattern.FindAllStringSubmatch(inner, -1) {
			result.InnerRows = append(result.InnerRows, row[1])
		}
		break
	}

	direct := rowPattern.FindAllString(text, -1)
	result.DirectRowCount = len(direct)
	if len(direct) > probeSampleRows {
		direct = direct[:probeSampleRows]
	}
	result.DirectRows = direct

	result.DeclaredSize, result.HasSize = DeclaredSize(text)
	_, result.ExtractErr = Extract(text)

	return result
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
