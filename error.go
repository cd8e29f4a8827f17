package cellz

import (
	"errors"
	"fmt"
)

// Configuration errors. They are wrapped by *ConfigError.
var (
	ErrIncompatibleProvider  = errors.New("provider does not accept annotation")
	ErrMissingProvider       = errors.New("descriptor has no provider")
	ErrNilFactory            = errors.New("provider returned no factory")
	ErrNilProcessor          = errors.New("factory returned no processor")
	ErrIncompatibleSuccessor = errors.New("successor does not accept the step's output")
	ErrNilField              = errors.New("field is nil")
	ErrNilRecord             = errors.New("record is nil")
)

// Registry and record errors.
var (
	ErrDuplicateKind   = errors.New("annotation kind already registered")
	ErrUnknownKind     = errors.New("unknown annotation kind")
	ErrInvalidTag      = errors.New("invalid cellz tag")
	ErrNotStruct       = errors.New("record type is not a struct")
	ErrUnknownField    = errors.New("annotations declared for unknown field")
	ErrDuplicateColumn = errors.New("column mapped by more than one field")
)

// ConfigError reports a declaration that cannot be turned into a chain.
// It names the record, the field and the annotation kind that failed and
// wraps the cause.
type ConfigError struct {
	Err        error
	Record     string
	Field      string
	Annotation string
	Direction  Direction
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	location := e.Field
	if e.Record != "" {
		location = e.Record + "." + e.Field
	}
	if location == "" {
		location = "<nil>"
	}
	if e.Annotation == "" {
		return fmt.Sprintf("cellz: %s (%s): %v", location, e.Direction, e.Err)
	}
	return fmt.Sprintf("cellz: %s (%s): annotation %s: %v", location, e.Direction, e.Annotation, e.Err)
}

// Unwrap returns the underlying error, supporting error wrapping patterns.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(record *Record, field *Field, dir Direction, annotation string, err error) *ConfigError {
	e := &ConfigError{Err: err, Annotation: annotation, Direction: dir}
	if record != nil {
		e.Record = record.Name
	}
	if field != nil {
		e.Field = field.Name
	}
	return e
}
