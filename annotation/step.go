package annotation

import (
	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/cell"
)

var (
	readOnly  = []cellz.Direction{cellz.Read}
	writeOnly = []cellz.Direction{cellz.Write}
)

// step builds a factory whose successor must implement P.
func step[P cell.Processor](order int, create func(next P) (cell.Processor, error)) cellz.Factory {
	return cellz.NewFactory(order, func(next cell.Processor) (cell.Processor, error) {
		p, err := cellz.Next[P](next)
		if err != nil {
			return nil, err
		}
		return create(p)
	})
}

// built converts a constructor result, keeping a nil processor nil.
func built[T cell.Processor](p T, err error) (cell.Processor, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

// check reports the error of a constructor result. Providers use it to
// reject invalid parameters before a chain is folded.
func check[T any](_ T, err error) error {
	return err
}
