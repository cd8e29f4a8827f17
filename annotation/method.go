package annotation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/cell"
)

// Factory method errors.
var (
	ErrNoRecord        = errors.New("factory method needs a record")
	ErrUnknownMethod   = errors.New("record has no such factory method")
	ErrMethodSignature = errors.New("factory method must be func(cell.Processor) cell.Processor")
)

// FactoryMethod inserts the steps built by a method of the record type.
// The method is looked up on a pointer to a zero record, so it may have a
// value or a pointer receiver:
//
//	func (Person) LastNameSteps(next cell.Processor) cell.Processor {
//	    return cell.NewTrim(cell.NewNotNull(next))
//	}
type FactoryMethod struct {
	Method string `yaml:"method"`
	Order  int    `yaml:"order"`
}

// Name implements cellz.Annotation.
func (FactoryMethod) Name() string { return "factoryMethod" }

// Descriptor implements cellz.Described.
func (FactoryMethod) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newFactoryMethod), Directions: cellz.Both}
}

func newFactoryMethod(a FactoryMethod, meta cellz.Metadata) (cellz.Factory, error) {
	if meta.Record == nil || meta.Record.Type == nil {
		return nil, ErrNoRecord
	}
	m := reflect.New(meta.Record.Type).MethodByName(a.Method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMethod, meta.Record.Type, a.Method)
	}
	fn, ok := m.Interface().(func(cell.Processor) cell.Processor)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s is %s", ErrMethodSignature, meta.Record.Type, a.Method, m.Type())
	}
	return cellz.NewFactory(a.Order, func(next cell.Processor) (cell.Processor, error) {
		p := fn(next)
		if p == nil {
			return nil, cellz.ErrNilProcessor
		}
		return p, nil
	}), nil
}
