package cellz

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/cellz/cell"
)

// Metadata is the input of a provider: the annotation being resolved and
// where it was declared. It is built fresh for every resolution.
type Metadata struct {
	Annotation Annotation
	Field      *Field
	Record     *Record
}

// Provider turns one annotation into a Factory.
// Type is the annotation type the provider accepts; Resolve refuses to call
// a provider whose Type the annotation is not assignable to.
type Provider interface {
	Type() reflect.Type
	Create(meta Metadata) (Factory, error)
}

// Factory creates one step of a chain in front of next.
type Factory interface {
	Order() int
	Create(next cell.Processor) (cell.Processor, error)
}

type provider[A Annotation] struct {
	create func(A, Metadata) (Factory, error)
}

func (provider[A]) Type() reflect.Type {
	return reflect.TypeFor[A]()
}

func (p provider[A]) Create(meta Metadata) (Factory, error) {
	a, ok := meta.Annotation.(A)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not %s", ErrIncompatibleProvider, meta.Annotation, reflect.TypeFor[A]())
	}
	return p.create(a, meta)
}

// ProviderFor returns a Descriptor provider constructor for annotations of type A.
//
//	func (Trim) Descriptor() cellz.Descriptor {
//	    return cellz.Descriptor{
//	        Provider:   cellz.ProviderFor(newTrimFactory),
//	        Directions: cellz.Both,
//	    }
//	}
func ProviderFor[A Annotation](create func(a A, meta Metadata) (Factory, error)) func() Provider {
	return func() Provider {
		return provider[A]{create: create}
	}
}

type factory struct {
	create func(next cell.Processor) (cell.Processor, error)
	order  int
}

func (f factory) Order() int {
	return f.order
}

func (f factory) Create(next cell.Processor) (cell.Processor, error) {
	return f.create(next)
}

// NewFactory creates a Factory from an order and a constructor.
func NewFactory(order int, create func(next cell.Processor) (cell.Processor, error)) Factory {
	return factory{order: order, create: create}
}

// Next asserts that next accepts what the step being created produces.
// Providers use it to select the capability their primitive needs:
//
//	s, err := cellz.Next[cell.StringProcessor](next)
func Next[P cell.Processor](next cell.Processor) (P, error) {
	p, ok := next.(P)
	if !ok {
		var zero P
		return zero, fmt.Errorf("%w: %T does not implement %s", ErrIncompatibleSuccessor, next, reflect.TypeFor[P]())
	}
	return p, nil
}
