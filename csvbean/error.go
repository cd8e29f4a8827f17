package csvbean

import (
	"errors"
	"fmt"
)

var (
	// ErrUnassignable is returned when a read chain produces a value the
	// field cannot hold.
	ErrUnassignable = errors.New("value cannot be assigned to field")
	// ErrNoColumns is returned when a header maps no column to the record.
	ErrNoColumns = errors.New("header maps no column to the record")
)

// RowError reports a cell that failed while reading or writing a row.
type RowError struct {
	Err    error
	Column string
	Line   int
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("csvbean: line %d, column %s: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error, usually a *cell.Error.
func (e *RowError) Unwrap() error {
	return e.Err
}
