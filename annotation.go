package cellz

import (
	"fmt"
	"slices"
)

// OrderUndefined is the order of a step that declares none.
// Steps run in ascending order, so an explicit order of 1 runs after every
// default step and an explicit negative order runs before them.
const OrderUndefined = 0

// Direction is the I/O direction a chain is built for.
type Direction uint8

// Directions.
const (
	Read Direction = iota + 1
	Write
)

// Both lists every direction.
var Both = []Direction{Read, Write}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Read:
		return "read"
	case Write:
		return "write"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection returns the Direction named by s.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "read":
		return Read, nil
	case "write":
		return Write, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Annotation is a declarative step attached to a record field.
// Name is the kind name used in struct tags and must not depend on the
// state of the value.
type Annotation interface {
	Name() string
}

// Described is implemented by annotation kinds that turn into processors.
// Descriptor must return the same value for every instance of a kind.
type Described interface {
	Annotation
	Descriptor() Descriptor
}

// Descriptor links an annotation kind to its provider and to the
// directions it applies in.
type Descriptor struct {
	// Provider returns a fresh provider for every resolution.
	Provider   func() Provider
	Directions []Direction
}

// Applies reports whether the descriptor lists dir.
func (d Descriptor) Applies(dir Direction) bool {
	return slices.Contains(d.Directions, dir)
}

// Describe returns the descriptor of the annotation's kind, if it has one.
func Describe(a Annotation) (Descriptor, bool) {
	d, ok := a.(Described)
	if !ok {
		return Descriptor{}, false
	}
	return d.Descriptor(), true
}

// Group is implemented by annotations that bundle other annotations.
// Groups are expanded in place by Extract; they are never resolved
// themselves unless they also implement Described.
type Group interface {
	Annotation
	Annotations() ([]Annotation, error)
}

// Repeated groups several annotations of one kind, in order.
// Its tag name is the kind's name followed by ".list":
//
//	`cellz:"strReplace.list{values: [{pattern: a, replacement: b}, {pattern: b, replacement: c}]}"`
type Repeated[A Annotation] struct {
	Values []A `yaml:"values"`
}

// Name implements Annotation.
func (Repeated[A]) Name() string {
	var zero A
	return zero.Name() + ".list"
}

// Annotations implements Group.
func (r Repeated[A]) Annotations() ([]Annotation, error) {
	out := make([]Annotation, len(r.Values))
	for i, v := range r.Values {
		out[i] = v
	}
	return out, nil
}

// Repeat builds a Repeated group from values.
func Repeat[A Annotation](values ...A) Repeated[A] {
	return Repeated[A]{Values: values}
}
