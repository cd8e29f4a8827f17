package cell

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Processor names reported in *Error for the parse primitives.
const (
	ParseBoolName       = "parseBool"
	ParseIntName        = "parseInt"
	ParseLongName       = "parseLong"
	ParseDoubleName     = "parseDouble"
	ParseDateName       = "parseDate"
	ParseBigDecimalName = "parseBigDecimal"
	ParseUUIDName       = "parseUUID"
)

// Default literals recognised by NewParseBool.
var (
	DefaultTrueValues  = []string{"true", "1", "y", "t"}
	DefaultFalseValues = []string{"false", "0", "n", "f"}
)

// ParseBool turns one of a set of literals into a bool.
type ParseBool struct {
	AcceptsString
	trueValues  map[string]struct{}
	falseValues map[string]struct{}
	next        Processor
	ignoreCase  bool
}

// NewParseBool creates a ParseBool with DefaultTrueValues and
// DefaultFalseValues, ignoring case.
func NewParseBool(next BoolProcessor) *ParseBool {
	p, _ := NewParseBoolValues(DefaultTrueValues, DefaultFalseValues, true, next) //nolint:errcheck // defaults are valid
	return p
}

// NewParseBoolValues creates a ParseBool with custom literals. The two sets
// must not be empty and must not overlap.
func NewParseBoolValues(trueValues, falseValues []string, ignoreCase bool, next BoolProcessor) (*ParseBool, error) {
	if len(trueValues) == 0 || len(falseValues) == 0 {
		return nil, fmt.Errorf("%w: %s: true and false values must not be empty", ErrInvalidConfig, ParseBoolName)
	}
	p := &ParseBool{
		trueValues:  make(map[string]struct{}, len(trueValues)),
		falseValues: make(map[string]struct{}, len(falseValues)),
		ignoreCase:  ignoreCase,
		next:        next,
	}
	for _, v := range trueValues {
		p.trueValues[p.fold(v)] = struct{}{}
	}
	for _, v := range falseValues {
		if _, dup := p.trueValues[p.fold(v)]; dup {
			return nil, fmt.Errorf("%w: %s: %q is both a true and a false value", ErrInvalidConfig, ParseBoolName, v)
		}
		p.falseValues[p.fold(v)] = struct{}{}
	}
	return p, nil
}

func (p *ParseBool) fold(s string) string {
	if p.ignoreCase {
		return strings.ToLower(s)
	}
	return s
}

// Execute implements Processor.
func (p *ParseBool) Execute(value any, ctx *Context) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, null(ParseBoolName, ctx)
	case bool:
		return forward(p.next, v, ctx)
	case string:
		key := p.fold(v)
		if _, ok := p.trueValues[key]; ok {
			return forward(p.next, true, ctx)
		}
		if _, ok := p.falseValues[key]; ok {
			return forward(p.next, false, ctx)
		}
		return nil, fail(ParseBoolName, value, ctx, ErrParse, "%q is not a bool literal", v)
	}
	return nil, unexpected(ParseBoolName, value, ctx, "string")
}

// ParseInt parses a string into an int. Integers pass through converted.
type ParseInt struct {
	AcceptsString
	next Processor
}

// NewParseInt creates a ParseInt.
func NewParseInt(next LongProcessor) *ParseInt {
	return &ParseInt{next: next}
}

// Execute implements Processor.
func (p *ParseInt) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(ParseIntName, ctx)
	}
	if i, ok := toInt64(value); ok {
		return forward(p.next, int(i), ctx)
	}
	s, ok := value.(string)
	if !ok {
		return nil, unexpected(ParseIntName, value, ctx, "string")
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, fail(ParseIntName, value, ctx, ErrParse, "%q is not a valid int", s)
	}
	return forward(p.next, i, ctx)
}

// ParseLong parses a string into an int64.
type ParseLong struct {
	AcceptsString
	next Processor
}

// NewParseLong creates a ParseLong.
func NewParseLong(next LongProcessor) *ParseLong {
	return &ParseLong{next: next}
}

// Execute implements Processor.
func (p *ParseLong) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(ParseLongName, ctx)
	}
	if i, ok := toInt64(value); ok {
		return forward(p.next, i, ctx)
	}
	s, ok := value.(string)
	if !ok {
		return nil, unexpected(ParseLongName, value, ctx, "string")
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fail(ParseLongName, value, ctx, ErrParse, "%q is not a valid int64", s)
	}
	return forward(p.next, i, ctx)
}

// ParseDouble parses a string into a float64.
type ParseDouble struct {
	AcceptsString
	next Processor
}

// NewParseDouble creates a ParseDouble.
func NewParseDouble(next DoubleProcessor) *ParseDouble {
	return &ParseDouble{next: next}
}

// Execute implements Processor.
func (p *ParseDouble) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(ParseDoubleName, ctx)
	}
	if f, ok := toFloat64(value); ok {
		return forward(p.next, f, ctx)
	}
	s, ok := value.(string)
	if !ok {
		return nil, unexpected(ParseDoubleName, value, ctx, "string")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fail(ParseDoubleName, value, ctx, ErrParse, "%q is not a valid float64", s)
	}
	return forward(p.next, f, ctx)
}

// ParseDate parses a string into a time.Time using a Go reference layout.
type ParseDate struct {
	AcceptsString
	location *time.Location
	layout   string
	next     Processor
}

// NewParseDate creates a ParseDate interpreting dates without zone
// information as UTC.
func NewParseDate(layout string, next DateProcessor) *ParseDate {
	return NewParseDateIn(layout, time.UTC, next)
}

// NewParseDateIn creates a ParseDate interpreting dates without zone
// information in loc.
func NewParseDateIn(layout string, loc *time.Location, next DateProcessor) *ParseDate {
	return &ParseDate{layout: layout, location: loc, next: next}
}

// Execute implements Processor.
func (p *ParseDate) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(ParseDateName, ctx)
	}
	if t, ok := value.(time.Time); ok {
		return forward(p.next, t, ctx)
	}
	s, ok := value.(string)
	if !ok {
		return nil, unexpected(ParseDateName, value, ctx, "string")
	}
	t, err := time.ParseInLocation(p.layout, s, p.location)
	if err != nil {
		return nil, fail(ParseDateName, value, ctx, ErrParse, "%q does not match layout %q", s, p.layout)
	}
	return forward(p.next, t, ctx)
}

// ParseBigDecimal parses a string into an arbitrary precision decimal.Decimal.
type ParseBigDecimal struct {
	AcceptsString
	next Processor
}

// NewParseBigDecimal creates a ParseBigDecimal.
func NewParseBigDecimal(next Processor) *ParseBigDecimal {
	return &ParseBigDecimal{next: next}
}

// Execute implements Processor.
func (p *ParseBigDecimal) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(ParseBigDecimalName, ctx)
	}
	s, ok := value.(string)
	if !ok {
		return nil, unexpected(ParseBigDecimalName, value, ctx, "string")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fail(ParseBigDecimalName, value, ctx, ErrParse, "%q is not a valid decimal", s)
	}
	return forward(p.next, d, ctx)
}

// ParseUUID parses a string into a uuid.UUID.
type ParseUUID struct {
	AcceptsString
	next Processor
}

// NewParseUUID creates a ParseUUID.
func NewParseUUID(next Processor) *ParseUUID {
	return &ParseUUID{next: next}
}

// Execute implements Processor.
func (p *ParseUUID) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(ParseUUIDName, ctx)
	}
	s, ok := value.(string)
	if !ok {
		return nil, unexpected(ParseUUIDName, value, ctx, "string")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fail(ParseUUIDName, value, ctx, ErrParse, "%q is not a valid UUID", s)
	}
	return forward(p.next, id, ctx)
}
