package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when a table contains no data rows.
	ErrEmptyDataset = errors.New("dataset contains no samples")

	// ErrLengthMismatch indicates that features and labels have different sample counts.
	ErrLengthMismatch = errors.New("number of samples and labels differ")

	// ErrInvalidFraction is returned when a train fraction lies outside [0, 1].
	ErrInvalidFraction = errors.New("train fraction must be within [0, 1]")
)

// ParseError describes a malformed cell or row in a delimited table.
//
// Line is 1-based and counts physical lines of the input. Column is the
// 0-based field index, or -1 when the whole row is at fault.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("parse error on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
