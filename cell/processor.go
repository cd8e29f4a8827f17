package cell

import (
	"fmt"
	"math"
	"strconv"
)

// Processor is a single step of a cell processing chain.
//
// Execute receives the current cell value and the position of the cell
// and returns the value handed to the caller. Every primitive in this
// package holds an optional successor and forwards its result to it, so
// a chain is just the outermost Processor:
//
//	chain := cell.NewTrim(cell.NewParseInt(nil))
//	value, err := chain.Execute(" 42 ", &cell.Context{Line: 2, Row: 1, Column: 3})
//	// value: 42 (int), err: nil
//
// A nil successor ends the chain and the value is returned unchanged.
type Processor interface {
	Execute(value any, ctx *Context) (any, error)
}

// Capability interfaces declare which kind of input a processor accepts.
// Primitives that produce a value of a fixed type require their successor
// to accept that type, which lets chains be checked when they are built
// rather than when the first row fails.
type (
	// StringProcessor accepts string input.
	StringProcessor interface {
		Processor
		acceptsString()
	}

	// LongProcessor accepts integer input.
	LongProcessor interface {
		Processor
		acceptsLong()
	}

	// DoubleProcessor accepts floating point input.
	DoubleProcessor interface {
		Processor
		acceptsDouble()
	}

	// BoolProcessor accepts boolean input.
	BoolProcessor interface {
		Processor
		acceptsBool()
	}

	// DateProcessor accepts time.Time input.
	DateProcessor interface {
		Processor
		acceptsDate()
	}
)

// Embeddable capability markers. Custom processors embed the markers for
// the inputs they accept.
type (
	AcceptsString struct{}
	AcceptsLong   struct{}
	AcceptsDouble struct{}
	AcceptsBool   struct{}
	AcceptsDate   struct{}
)

func (AcceptsString) acceptsString() {}
func (AcceptsLong) acceptsLong()     {}
func (AcceptsDouble) acceptsDouble() {}
func (AcceptsBool) acceptsBool()     {}
func (AcceptsDate) acceptsDate()     {}

// AcceptsAll marks a processor as accepting every input kind.
type AcceptsAll struct {
	AcceptsString
	AcceptsLong
	AcceptsDouble
	AcceptsBool
	AcceptsDate
}

// Context describes the position of the cell being processed.
type Context struct {
	Line      int   // physical line in the source, 1-based
	Row       int   // logical data row, 1-based
	Column    int   // column, 1-based
	RowSource []any // the raw values of the whole row, if known
}

// String returns a compact position description.
func (c *Context) String() string {
	if c == nil {
		return "unknown position"
	}
	return fmt.Sprintf("line %d, row %d, column %d", c.Line, c.Row, c.Column)
}

// forward hands value to next, or returns it when the chain ends here.
func forward(next Processor, value any, ctx *Context) (any, error) {
	if next == nil {
		return value, nil
	}
	return next.Execute(value, ctx)
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}

func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	if i, ok := toInt64(value); ok {
		return float64(i), true
	}
	return 0, false
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int:
		return strconv.Itoa(v)
	}
	return fmt.Sprint(value)
}
