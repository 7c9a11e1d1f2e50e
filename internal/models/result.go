package models

import (
	"sort"
	"time"
)

// File conversion status constants
const (
	StatusConverted  = "CONVERTED"  // Level extracted and written
	StatusFailed     = "FAILED"     // Level at target size could not be extracted or written
	StatusSkipped    = "SKIPPED"    // Level declared a different size
	StatusNoSize     = "NO_SIZE"    // No size declaration found
	StatusUnreadable = "UNREADABLE" // File could not be read, so its size is unknown
)

// FileResult represents the outcome of processing a single level file
type FileResult struct {
	File       string // Base name of the input file
	Size       int    // Declared size (0 when none was found)
	Status     string // One of the Status* constants
	OutputPath string // Written file, set only when Status is StatusConverted
	Error      error  // Set when Status is StatusFailed or StatusUnreadable
}

// Report accumulates the results of one conversion run. It is returned by
// the run rather than kept in package state.
type Report struct {
	RunID      string
	InputDir   string
	OutputDir  string
	TargetSize int
	Scanned    int           // Files that matched the prefix and extension
	Matched    int           // Files at the target size
	Converted  int           // Files written successfully
	Failed     int           // Files at the target size that could not be converted
	NoSize     int           // Files without a size declaration
	Unreadable int           // Files that could not be read
	OtherSizes map[int]int   // Count of files per non-target size
	Failures   []FileResult  // Details of failed and unreadable files
	Ignored    []string      // Files with the level extension but not the prefix
	Duration   time.Duration // Total run time
}

// NewReport creates an empty report for the given run and target size
func NewReport(runID string, targetSize int) *Report {
	return &Report{
		RunID:      runID,
		TargetSize: targetSize,
		OtherSizes: make(map[int]int),
	}
}

// Record folds a single file result into the report counters
func (r *Report) Record(res FileResult) {
	r.Scanned++
	switch res.Status {
	case StatusConverted:
		r.Matched++
		r.Converted++
	case StatusFailed:
		r.Matched++
		r.Failed++
		r.Failures = append(r.Failures, res)
	case StatusSkipped:
		r.OtherSizes[res.Size]++
	case StatusNoSize:
		r.NoSize++
	case StatusUnreadable:
		r.Unreadable++
		r.Failures = append(r.Failures, res)
	}
}

// SortedOtherSizes returns the non-target sizes in ascending order
func (r *Report) SortedOtherSizes() []int {
	sizes := make([]int, 0, len(r.OtherSizes))
	for size := range r.OtherSizes {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}
