package cell

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Processor names reported in *Error for the string primitives.
const (
	TrimName       = "trim"
	StrReplaceName = "strReplace"
	TruncateName   = "truncate"
	HashMapperName = "hashMapper"
)

// Trim removes leading and trailing whitespace from the string form of a cell.
type Trim struct {
	AcceptsAll
	next Processor
}

// NewTrim creates a Trim.
func NewTrim(next StringProcessor) *Trim {
	return &Trim{next: next}
}

// Execute implements Processor.
func (p *Trim) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(TrimName, ctx)
	}
	return forward(p.next, strings.TrimSpace(toString(value)), ctx)
}

// StrReplace replaces every match of a regular expression in the string
// form of a cell. The replacement may reference groups with $1 or ${name}.
type StrReplace struct {
	AcceptsAll
	pattern     *regexp.Regexp
	replacement string
	next        Processor
}

// NewStrReplace compiles pattern and creates a StrReplace.
func NewStrReplace(pattern, replacement string, next StringProcessor) (*StrReplace, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, StrReplaceName, err)
	}
	return &StrReplace{pattern: re, replacement: replacement, next: next}, nil
}

// Execute implements Processor.
func (p *StrReplace) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(StrReplaceName, ctx)
	}
	return forward(p.next, p.pattern.ReplaceAllString(toString(value), p.replacement), ctx)
}

// Truncate shortens strings longer than a maximum number of runes and
// appends a suffix to the truncated ones.
type Truncate struct {
	AcceptsAll
	suffix  string
	next    Processor
	maxSize int
}

// NewTruncate creates a Truncate. maxSize must be positive.
func NewTruncate(maxSize int, suffix string, next StringProcessor) (*Truncate, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: %s: maxSize must be > 0 but was %d", ErrInvalidConfig, TruncateName, maxSize)
	}
	return &Truncate{maxSize: maxSize, suffix: suffix, next: next}, nil
}

// Execute implements Processor.
func (p *Truncate) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(TruncateName, ctx)
	}
	s := toString(value)
	if utf8.RuneCountInString(s) <= p.maxSize {
		return forward(p.next, s, ctx)
	}
	runes := []rune(s)
	return forward(p.next, string(runes[:p.maxSize])+p.suffix, ctx)
}

// HashMapper maps the string form of a cell through a lookup table.
// Values missing from the table map to the default value.
type HashMapper struct {
	AcceptsAll
	mapping      map[string]any
	defaultValue any
	next         Processor
}

// NewHashMapper creates a HashMapper. The mapping must not be empty.
func NewHashMapper(mapping map[string]any, defaultValue any, next Processor) (*HashMapper, error) {
	if len(mapping) == 0 {
		return nil, fmt.Errorf("%w: %s: mapping should not be empty", ErrInvalidConfig, HashMapperName)
	}
	return &HashMapper{mapping: mapping, defaultValue: defaultValue, next: next}, nil
}

// Execute implements Processor.
func (p *HashMapper) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(HashMapperName, ctx)
	}
	result, ok := p.mapping[toString(value)]
	if !ok {
		result = p.defaultValue
	}
	return forward(p.next, result, ctx)
}
