package cell

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// Processor names reported in *Error for the constraint primitives.
const (
	RequireSubStrName   = "requireSubStr"
	ForbidSubStrName    = "forbidSubStr"
	StrMinMaxName       = "strMinMax"
	StrlenName          = "strlen"
	StrRegExName        = "strRegEx"
	LMinMaxName         = "lMinMax"
	DMinMaxName         = "dMinMax"
	IsIncludedInName    = "isIncludedIn"
	UniqueName          = "unique"
	UniqueHashCodeName  = "uniqueHashCode"
	RequireHashCodeName = "requireHashCode"
)

// RequireSubStr requires the string form of a cell to contain at least
// one of the given substrings.
type RequireSubStr struct {
	AcceptsAll
	next    Processor
	subStrs []string
}

// NewRequireSubStr creates a RequireSubStr.
func NewRequireSubStr(subStrs []string, next Processor) (*RequireSubStr, error) {
	if len(subStrs) == 0 {
		return nil, fmt.Errorf("%w: %s: provide at least one substring", ErrInvalidConfig, RequireSubStrName)
	}
	return &RequireSubStr{subStrs: subStrs, next: next}, nil
}

// Execute implements Processor.
func (p *RequireSubStr) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(RequireSubStrName, ctx)
	}
	s := toString(value)
	for _, sub := range p.subStrs {
		if strings.Contains(s, sub) {
			return forward(p.next, value, ctx)
		}
	}
	return nil, fail(RequireSubStrName, value, ctx, ErrConstraint, "%q does not contain any of the required substrings %q", s, p.subStrs)
}

// ForbidSubStr rejects cells whose string form contains any of the given substrings.
type ForbidSubStr struct {
	AcceptsAll
	next    Processor
	subStrs []string
}

// NewForbidSubStr creates a ForbidSubStr.
func NewForbidSubStr(subStrs []string, next Processor) (*ForbidSubStr, error) {
	if len(subStrs) == 0 {
		return nil, fmt.Errorf("%w: %s: provide at least one substring", ErrInvalidConfig, ForbidSubStrName)
	}
	return &ForbidSubStr{subStrs: subStrs, next: next}, nil
}

// Execute implements Processor.
func (p *ForbidSubStr) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(ForbidSubStrName, ctx)
	}
	s := toString(value)
	for _, sub := range p.subStrs {
		if strings.Contains(s, sub) {
			return nil, fail(ForbidSubStrName, value, ctx, ErrConstraint, "%q contains the forbidden substring %q", s, sub)
		}
	}
	return forward(p.next, value, ctx)
}

// StrMinMax bounds the rune length of the string form of a cell.
type StrMinMax struct {
	AcceptsAll
	next Processor
	min  int
	max  int
}

// NewStrMinMax creates a StrMinMax. Bounds are inclusive.
func NewStrMinMax(min, max int, next StringProcessor) (*StrMinMax, error) {
	if min < 0 || max < min {
		return nil, fmt.Errorf("%w: %s: invalid bounds [%d, %d]", ErrInvalidConfig, StrMinMaxName, min, max)
	}
	return &StrMinMax{min: min, max: max, next: next}, nil
}

// Execute implements Processor.
func (p *StrMinMax) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(StrMinMaxName, ctx)
	}
	s := toString(value)
	n := utf8.RuneCountInString(s)
	if n < p.min || n > p.max {
		return nil, fail(StrMinMaxName, value, ctx, ErrConstraint, "length %d of %q is not within [%d, %d]", n, s, p.min, p.max)
	}
	return forward(p.next, s, ctx)
}

// Strlen requires the rune length of the string form of a cell to be one
// of a set of lengths.
type Strlen struct {
	AcceptsAll
	lengths map[int]struct{}
	next    Processor
}

// NewStrlen creates a Strlen.
func NewStrlen(lengths []int, next StringProcessor) (*Strlen, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("%w: %s: provide at least one length", ErrInvalidConfig, StrlenName)
	}
	p := &Strlen{lengths: make(map[int]struct{}, len(lengths)), next: next}
	for _, l := range lengths {
		if l < 0 {
			return nil, fmt.Errorf("%w: %s: negative length %d", ErrInvalidConfig, StrlenName, l)
		}
		p.lengths[l] = struct{}{}
	}
	return p, nil
}

// Execute implements Processor.
func (p *Strlen) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(StrlenName, ctx)
	}
	s := toString(value)
	if _, ok := p.lengths[utf8.RuneCountInString(s)]; !ok {
		return nil, fail(StrlenName, value, ctx, ErrConstraint, "length of %q is not an accepted length", s)
	}
	return forward(p.next, s, ctx)
}

// StrRegEx requires the whole string form of a cell to match a regular expression.
type StrRegEx struct {
	AcceptsString
	pattern *regexp.Regexp
	next    Processor
}

// NewStrRegEx compiles pattern, anchored at both ends, and creates a StrRegEx.
func NewStrRegEx(pattern string, next StringProcessor) (*StrRegEx, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, StrRegExName, err)
	}
	return &StrRegEx{pattern: re, next: next}, nil
}

// Execute implements Processor.
func (p *StrRegEx) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(StrRegExName, ctx)
	}
	s, ok := value.(string)
	if !ok {
		return nil, unexpected(StrRegExName, value, ctx, "string")
	}
	if !p.pattern.MatchString(s) {
		return nil, fail(StrRegExName, value, ctx, ErrConstraint, "%q does not match %s", s, p.pattern)
	}
	return forward(p.next, s, ctx)
}

// LMinMax bounds an integer cell. Strings are parsed as int64 first.
type LMinMax struct {
	AcceptsLong
	AcceptsString
	next Processor
	min  int64
	max  int64
}

// NewLMinMax creates a LMinMax. Bounds are inclusive.
func NewLMinMax(min, max int64, next LongProcessor) (*LMinMax, error) {
	if max < min {
		return nil, fmt.Errorf("%w: %s: max %d < min %d", ErrInvalidConfig, LMinMaxName, max, min)
	}
	return &LMinMax{min: min, max: max, next: next}, nil
}

// Execute implements Processor.
func (p *LMinMax) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(LMinMaxName, ctx)
	}
	n, ok := toInt64(value)
	if !ok {
		s, isString := value.(string)
		if !isString {
			return nil, unexpected(LMinMaxName, value, ctx, "an integer")
		}
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fail(LMinMaxName, value, ctx, ErrParse, "%q is not a valid int64", s)
		}
		n, value = parsed, parsed
	}
	if n < p.min || n > p.max {
		return nil, fail(LMinMaxName, value, ctx, ErrConstraint, "%d does not lie between the min (%d) and max (%d) values (inclusive)", n, p.min, p.max)
	}
	return forward(p.next, value, ctx)
}

// DMinMax bounds a floating point cell. Strings are parsed as float64 first.
type DMinMax struct {
	AcceptsDouble
	AcceptsString
	next Processor
	min  float64
	max  float64
}

// NewDMinMax creates a DMinMax. Bounds are inclusive.
func NewDMinMax(min, max float64, next DoubleProcessor) (*DMinMax, error) {
	if max < min {
		return nil, fmt.Errorf("%w: %s: max %g < min %g", ErrInvalidConfig, DMinMaxName, max, min)
	}
	return &DMinMax{min: min, max: max, next: next}, nil
}

// Execute implements Processor.
func (p *DMinMax) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(DMinMaxName, ctx)
	}
	f, ok := toFloat64(value)
	if !ok {
		s, isString := value.(string)
		if !isString {
			return nil, unexpected(DMinMaxName, value, ctx, "a number")
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fail(DMinMaxName, value, ctx, ErrParse, "%q is not a valid float64", s)
		}
		f, value = parsed, parsed
	}
	if f < p.min || f > p.max {
		return nil, fail(DMinMaxName, value, ctx, ErrConstraint, "%g does not lie between the min (%g) and max (%g) values (inclusive)", f, p.min, p.max)
	}
	return forward(p.next, value, ctx)
}

// IsIncludedIn requires the string form of a cell to be one of a set of values.
type IsIncludedIn struct {
	AcceptsAll
	values map[string]struct{}
	next   Processor
}

// NewIsIncludedIn creates an IsIncludedIn.
func NewIsIncludedIn(values []string, next Processor) (*IsIncludedIn, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s: provide at least one value", ErrInvalidConfig, IsIncludedInName)
	}
	p := &IsIncludedIn{values: make(map[string]struct{}, len(values)), next: next}
	for _, v := range values {
		p.values[v] = struct{}{}
	}
	return p, nil
}

// Execute implements Processor.
func (p *IsIncludedIn) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(IsIncludedInName, ctx)
	}
	if _, ok := p.values[toString(value)]; !ok {
		return nil, fail(IsIncludedInName, value, ctx, ErrConstraint, "%v is not included in the allowed set of values", value)
	}
	return forward(p.next, value, ctx)
}

// Unique rejects a value seen before by the same processor.
// The processor is stateful: use one chain per file.
type Unique struct {
	AcceptsAll
	seen map[string]int
	next Processor
	mu   sync.Mutex
}

// NewUnique creates a Unique.
func NewUnique(next Processor) *Unique {
	return &Unique{seen: make(map[string]int), next: next}
}

// Execute implements Processor.
func (p *Unique) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(UniqueName, ctx)
	}
	data, err := Encode(value)
	if err != nil {
		return nil, unexpected(UniqueName, value, ctx, "an encodable value")
	}
	line := 0
	if ctx != nil {
		line = ctx.Line
	}
	p.mu.Lock()
	first, dup := p.seen[string(data)]
	if !dup {
		p.seen[string(data)] = line
	}
	p.mu.Unlock()
	if dup {
		return nil, fail(UniqueName, value, ctx, ErrConstraint, "duplicate value %v encountered, first seen on line %d", value, first)
	}
	return forward(p.next, value, ctx)
}

// UniqueHashCode rejects a value whose HashCode was seen before.
// It keeps only hashes, trading a small collision risk for memory.
type UniqueHashCode struct {
	AcceptsAll
	seen map[uint64]int
	next Processor
	mu   sync.Mutex
}

// NewUniqueHashCode creates a UniqueHashCode.
func NewUniqueHashCode(next Processor) *UniqueHashCode {
	return &UniqueHashCode{seen: make(map[uint64]int), next: next}
}

// Execute implements Processor.
func (p *UniqueHashCode) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(UniqueHashCodeName, ctx)
	}
	h, err := HashCode(value)
	if err != nil {
		return nil, unexpected(UniqueHashCodeName, value, ctx, "an encodable value")
	}
	line := 0
	if ctx != nil {
		line = ctx.Line
	}
	p.mu.Lock()
	first, dup := p.seen[h]
	if !dup {
		p.seen[h] = line
	}
	p.mu.Unlock()
	if dup {
		return nil, fail(UniqueHashCodeName, value, ctx, ErrConstraint, "duplicate value %v encountered with hashcode %d, first seen on line %d", value, h, first)
	}
	return forward(p.next, value, ctx)
}

// RequireHashCode requires the HashCode of a cell to be one of a set of hashes.
type RequireHashCode struct {
	AcceptsAll
	hashes map[uint64]struct{}
	next   Processor
}

// NewRequireHashCode creates a RequireHashCode.
func NewRequireHashCode(hashes []uint64, next Processor) (*RequireHashCode, error) {
	if len(hashes) == 0 {
		return nil, fmt.Errorf("%w: %s: provide at least one hashcode", ErrInvalidConfig, RequireHashCodeName)
	}
	p := &RequireHashCode{hashes: make(map[uint64]struct{}, len(hashes)), next: next}
	for _, h := range hashes {
		p.hashes[h] = struct{}{}
	}
	return p, nil
}

// Execute implements Processor.
func (p *RequireHashCode) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(RequireHashCodeName, ctx)
	}
	h, err := HashCode(value)
	if err != nil {
		return nil, unexpected(RequireHashCodeName, value, ctx, "an encodable value")
	}
	if _, ok := p.hashes[h]; !ok {
		return nil, fail(RequireHashCodeName, value, ctx, ErrConstraint, "the value %v has hashcode %d, which is not one of the required hashcodes", value, h)
	}
	return forward(p.next, value, ctx)
}
