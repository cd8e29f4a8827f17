package cell

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Processor names reported in *Error for the format primitives.
const (
	FmtBoolName   = "fmtBool"
	FmtNumberName = "fmtNumber"
	FmtDateName   = "fmtDate"
)

// FmtBool renders a bool as one of two strings.
type FmtBool struct {
	AcceptsBool
	trueValue  string
	falseValue string
	next       Processor
}

// NewFmtBool creates a FmtBool.
func NewFmtBool(trueValue, falseValue string, next StringProcessor) *FmtBool {
	return &FmtBool{trueValue: trueValue, falseValue: falseValue, next: next}
}

// Execute implements Processor.
func (p *FmtBool) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(FmtBoolName, ctx)
	}
	b, ok := value.(bool)
	if !ok {
		return nil, unexpected(FmtBoolName, value, ctx, "bool")
	}
	if b {
		return forward(p.next, p.trueValue, ctx)
	}
	return forward(p.next, p.falseValue, ctx)
}

// FmtNumber renders integers and floats with a decimal format pattern
// such as "#,##0.00". See NewFmtNumber for the supported pattern syntax.
type FmtNumber struct {
	AcceptsLong
	AcceptsDouble
	format  numberFormat
	printer *message.Printer
	next    Processor
}

// NewFmtNumber creates a FmtNumber for the English locale.
//
// In the pattern, the following characters are defined:
//
//	0   a digit that is always shown
//	#   a digit that is omitted when zero
//	.   the decimal separator
//	,   the grouping separator (only its presence matters)
//
// Text before the first and after the last digit placeholder is copied
// verbatim, so "$#,##0.00" renders 1234.5 as "$1,234.50".
func NewFmtNumber(pattern string, next StringProcessor) (*FmtNumber, error) {
	return NewFmtNumberLocale(pattern, language.English, next)
}

// NewFmtNumberLocale creates a FmtNumber rendering separators for locale.
func NewFmtNumberLocale(pattern string, locale language.Tag, next StringProcessor) (*FmtNumber, error) {
	format, err := parseNumberFormat(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, FmtNumberName, err)
	}
	return &FmtNumber{format: format, printer: message.NewPrinter(locale), next: next}, nil
}

// Execute implements Processor.
func (p *FmtNumber) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(FmtNumberName, ctx)
	}
	if _, ok := toFloat64(value); !ok {
		return nil, unexpected(FmtNumberName, value, ctx, "a number")
	}
	return forward(p.next, p.format.render(p.printer, value), ctx)
}

// FmtDate renders a time.Time with a Go reference layout.
type FmtDate struct {
	AcceptsDate
	layout string
	next   Processor
}

// NewFmtDate creates a FmtDate.
func NewFmtDate(layout string, next StringProcessor) *FmtDate {
	return &FmtDate{layout: layout, next: next}
}

// Execute implements Processor.
func (p *FmtDate) Execute(value any, ctx *Context) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, null(FmtDateName, ctx)
	case time.Time:
		return forward(p.next, v.Format(p.layout), ctx)
	case *time.Time:
		if v == nil {
			return nil, null(FmtDateName, ctx)
		}
		return forward(p.next, v.Format(p.layout), ctx)
	}
	return nil, unexpected(FmtDateName, value, ctx, "time.Time")
}
