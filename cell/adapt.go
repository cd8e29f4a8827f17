package cell

import "errors"

// Func is a processor built from a function. It accepts every input kind
// and forwards the function's result to its successor.
type Func struct {
	AcceptsAll
	fn   func(any, *Context) (any, error)
	next Processor
	name string
}

// NewFunc creates a Processor from a function that may fail.
// Use it for one-off steps that have no primitive of their own; failures
// are reported as *Error under the given name.
//
//	upper := cell.NewFunc("upper", func(v any, _ *cell.Context) (any, error) {
//	    s, ok := v.(string)
//	    if !ok {
//	        return nil, fmt.Errorf("not a string: %T", v)
//	    }
//	    return strings.ToUpper(s), nil
//	}, next)
func NewFunc(name string, fn func(any, *Context) (any, error), next Processor) *Func {
	return &Func{name: name, fn: fn, next: next}
}

// NewTransform creates a Processor from a pure transformation that cannot fail.
func NewTransform(name string, fn func(any) any, next Processor) *Func {
	return NewFunc(name, func(value any, _ *Context) (any, error) {
		return fn(value), nil
	}, next)
}

// Execute implements Processor.
func (f *Func) Execute(value any, ctx *Context) (any, error) {
	result, err := f.fn(value, ctx)
	if err != nil {
		var cellErr *Error
		if errors.As(err, &cellErr) {
			return nil, err
		}
		e := &Error{Value: value, Processor: f.name, Err: err}
		if ctx != nil {
			e.Context = *ctx
		}
		return nil, e
	}
	return forward(f.next, result, ctx)
}

// Name returns the name given to the processor.
func (f *Func) Name() string {
	return f.name
}
