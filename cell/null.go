package cell

// Processor names reported in *Error for the null handling primitives.
const (
	OptionalName          = "optional"
	ConvertNullToName     = "convertNullTo"
	NotNullName           = "notNull"
	StrNotNullOrEmptyName = "strNotNullOrEmpty"
)

// ConvertNullTo replaces a nil cell with a fixed value and stops the chain.
// Non-nil values are forwarded unchanged.
type ConvertNullTo struct {
	AcceptsAll
	value any
	next  Processor
}

// NewConvertNullTo creates a ConvertNullTo returning value for nil cells.
func NewConvertNullTo(value any, next Processor) *ConvertNullTo {
	return &ConvertNullTo{value: value, next: next}
}

// Execute implements Processor.
func (p *ConvertNullTo) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return p.value, nil
	}
	return forward(p.next, value, ctx)
}

// Optional lets nil cells through without running the rest of the chain.
type Optional struct {
	ConvertNullTo
}

// NewOptional creates an Optional.
func NewOptional(next Processor) *Optional {
	return &Optional{ConvertNullTo{next: next}}
}

// NotNull rejects nil cells.
type NotNull struct {
	AcceptsAll
	next Processor
}

// NewNotNull creates a NotNull.
func NewNotNull(next Processor) *NotNull {
	return &NotNull{next: next}
}

// Execute implements Processor.
func (p *NotNull) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(NotNullName, ctx)
	}
	return forward(p.next, value, ctx)
}

// StrNotNullOrEmpty rejects nil cells and empty strings.
type StrNotNullOrEmpty struct {
	AcceptsString
	next Processor
}

// NewStrNotNullOrEmpty creates a StrNotNullOrEmpty.
func NewStrNotNullOrEmpty(next Processor) *StrNotNullOrEmpty {
	return &StrNotNullOrEmpty{next: next}
}

// Execute implements Processor.
func (p *StrNotNullOrEmpty) Execute(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, null(StrNotNullOrEmptyName, ctx)
	}
	s, ok := value.(string)
	if !ok {
		return nil, unexpected(StrNotNullOrEmptyName, value, ctx, "string")
	}
	if s == "" {
		return nil, fail(StrNotNullOrEmptyName, value, ctx, ErrConstraint, "unexpected empty string")
	}
	return forward(p.next, s, ctx)
}
