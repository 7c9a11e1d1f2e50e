package parser

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a level definition could not be extracted.
type ErrorKind int

const (
	// KindUnknown is reported for errors that did not come from extraction.
	KindUnknown ErrorKind = iota
	// MissingDimension means no parsable "size:" declaration was found.
	MissingDimension
	// MissingRegionBlock means no "colorRegions: [" marker was found.
	MissingRegionBlock
	// ShapeMismatch means the rows found do not form a size x size grid.
	ShapeMismatch
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case MissingDimension:
		return "missing_dimension"
	case MissingRegionBlock:
		return "missing_region_block"
	case ShapeMismatch:
		return "shape_mismatch"
	default:
		return "unknown"
	}
}

// ExtractionError is returned by Extract for malformed input. It never wraps
// another error; the Kind is the whole classification.
type ExtractionError struct {
	Kind   ErrorKind
	Detail string
}

// Sentinels for errors.Is matching on the kind alone.
var (
	ErrMissingDimension   = &ExtractionError{Kind: MissingDimension}
	ErrMissingRegionBlock = &ExtractionError{Kind: MissingRegionBlock}
	ErrShapeMismatch      = &ExtractionError{Kind: ShapeMismatch}
)

func newExtractionError(kind ErrorKind, format string, args ...interface{}) *ExtractionError {
	return &ExtractionError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Error implements the error interface for ExtractionError.
func (e *ExtractionError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is matches any ExtractionError of the same kind, so callers can write
// errors.Is(err, parser.ErrShapeMismatch) regardless of the detail.
func (e *ExtractionError) Is(target error) bool {
	t, ok := target.(*ExtractionError)
	return ok && t.Kind == e.Kind
}

// KindOf returns the ErrorKind carried by err, or KindUnknown.
func KindOf(err error) ErrorKind {
	var extractErr *ExtractionError
	if errors.As(err, &extractErr) {
		return extractErr.Kind
	}
	return KindUnknown
}
