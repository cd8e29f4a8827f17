package annotation

import (
	"time"

	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/cell"
)

// ParseBool reads bool literals. Without values it accepts the cell
// package defaults, ignoring case unless CaseSensitive is set.
type ParseBool struct {
	TrueValues    []string `yaml:"trueValues"`
	FalseValues   []string `yaml:"falseValues"`
	Order         int      `yaml:"order"`
	CaseSensitive bool     `yaml:"caseSensitive"`
}

// Name implements cellz.Annotation.
func (ParseBool) Name() string { return cell.ParseBoolName }

// Descriptor implements cellz.Described.
func (ParseBool) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newParseBool), Directions: readOnly}
}

func newParseBool(a ParseBool, _ cellz.Metadata) (cellz.Factory, error) {
	trueValues, falseValues := a.TrueValues, a.FalseValues
	if len(trueValues) == 0 {
		trueValues = cell.DefaultTrueValues
	}
	if len(falseValues) == 0 {
		falseValues = cell.DefaultFalseValues
	}
	if err := check(cell.NewParseBoolValues(trueValues, falseValues, !a.CaseSensitive, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.BoolProcessor) (cell.Processor, error) {
		return built(cell.NewParseBoolValues(trueValues, falseValues, !a.CaseSensitive, next))
	}), nil
}

// ParseInt reads an int.
type ParseInt struct {
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (ParseInt) Name() string { return cell.ParseIntName }

// Descriptor implements cellz.Described.
func (ParseInt) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newParseInt), Directions: readOnly}
}

func newParseInt(a ParseInt, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.LongProcessor) (cell.Processor, error) {
		return cell.NewParseInt(next), nil
	}), nil
}

// ParseLong reads an int64.
type ParseLong struct {
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (ParseLong) Name() string { return cell.ParseLongName }

// Descriptor implements cellz.Described.
func (ParseLong) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newParseLong), Directions: readOnly}
}

func newParseLong(a ParseLong, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.LongProcessor) (cell.Processor, error) {
		return cell.NewParseLong(next), nil
	}), nil
}

// ParseDouble reads a float64.
type ParseDouble struct {
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (ParseDouble) Name() string { return cell.ParseDoubleName }

// Descriptor implements cellz.Described.
func (ParseDouble) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newParseDouble), Directions: readOnly}
}

func newParseDouble(a ParseDouble, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.DoubleProcessor) (cell.Processor, error) {
		return cell.NewParseDouble(next), nil
	}), nil
}

// ParseDate reads a time.Time with the Go reference Layout. Location is
// an IANA zone name used for values without zone information; it
// defaults to UTC.
type ParseDate struct {
	Layout   string `yaml:"layout"`
	Location string `yaml:"location"`
	Order    int    `yaml:"order"`
}

// Name implements cellz.Annotation.
func (ParseDate) Name() string { return cell.ParseDateName }

// Descriptor implements cellz.Described.
func (ParseDate) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newParseDate), Directions: readOnly}
}

func newParseDate(a ParseDate, _ cellz.Metadata) (cellz.Factory, error) {
	loc := time.UTC
	if a.Location != "" {
		l, err := time.LoadLocation(a.Location)
		if err != nil {
			return nil, err
		}
		loc = l
	}
	return step(a.Order, func(next cell.DateProcessor) (cell.Processor, error) {
		return cell.NewParseDateIn(a.Layout, loc, next), nil
	}), nil
}

// ParseBigDecimal reads an arbitrary precision decimal.
type ParseBigDecimal struct {
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (ParseBigDecimal) Name() string { return cell.ParseBigDecimalName }

// Descriptor implements cellz.Described.
func (ParseBigDecimal) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newParseBigDecimal), Directions: readOnly}
}

func newParseBigDecimal(a ParseBigDecimal, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return cell.NewParseBigDecimal(next), nil
	}), nil
}

// ParseUUID reads a UUID.
type ParseUUID struct {
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (ParseUUID) Name() string { return cell.ParseUUIDName }

// Descriptor implements cellz.Described.
func (ParseUUID) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newParseUUID), Directions: readOnly}
}

func newParseUUID(a ParseUUID, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return cell.NewParseUUID(next), nil
	}), nil
}
