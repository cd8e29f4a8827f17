package cell

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by *Error. Use errors.Is to classify a failure.
var (
	ErrNullValue      = errors.New("null value")
	ErrUnexpectedType = errors.New("unexpected input type")
	ErrParse          = errors.New("value could not be parsed")
	ErrConstraint     = errors.New("constraint violated")
	ErrInvalidConfig  = errors.New("invalid processor configuration")
)

// Error provides context about a failed cell.
// It wraps the underlying error with the name of the processor that
// rejected the value, the value itself, and the position of the cell.
type Error struct {
	Value     any
	Err       error
	Processor string
	Context   Context
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: processor %q failed on %#v: %v", e.Context.String(), e.Processor, e.Value, e.Err)
}

// Unwrap returns the underlying error, supporting error wrapping patterns.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNull reports whether the cell failed because it was empty.
func (e *Error) IsNull() bool {
	return errors.Is(e.Err, ErrNullValue)
}

// IsConstraint reports whether the cell failed a constraint check.
func (e *Error) IsConstraint() bool {
	return errors.Is(e.Err, ErrConstraint)
}

func fail(processor string, value any, ctx *Context, sentinel error, format string, args ...any) *Error {
	e := &Error{
		Value:     value,
		Processor: processor,
		Err:       fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...),
	}
	if ctx != nil {
		e.Context = *ctx
	}
	return e
}

func null(processor string, ctx *Context) *Error {
	return fail(processor, nil, ctx, ErrNullValue, "this processor does not accept null input")
}

func unexpected(processor string, value any, ctx *Context, want string) *Error {
	return fail(processor, value, ctx, ErrUnexpectedType, "expected %s but got %T", want, value)
}
