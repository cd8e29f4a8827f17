package annotation

import (
	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/cell"
)

// RequireSubStr requires one of Values to occur in the cell.
type RequireSubStr struct {
	Values []string `yaml:"values"`
	Order  int      `yaml:"order"`
}

// Name implements cellz.Annotation.
func (RequireSubStr) Name() string { return cell.RequireSubStrName }

// Descriptor implements cellz.Described.
func (RequireSubStr) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newRequireSubStr), Directions: cellz.Both}
}

func newRequireSubStr(a RequireSubStr, _ cellz.Metadata) (cellz.Factory, error) {
	if err := check(cell.NewRequireSubStr(a.Values, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return built(cell.NewRequireSubStr(a.Values, next))
	}), nil
}

// ForbidSubStr rejects cells containing any of Values.
type ForbidSubStr struct {
	Values []string `yaml:"values"`
	Order  int      `yaml:"order"`
}

// Name implements cellz.Annotation.
func (ForbidSubStr) Name() string { return cell.ForbidSubStrName }

// Descriptor implements cellz.Described.
func (ForbidSubStr) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newForbidSubStr), Directions: cellz.Both}
}

func newForbidSubStr(a ForbidSubStr, _ cellz.Metadata) (cellz.Factory, error) {
	if err := check(cell.NewForbidSubStr(a.Values, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return built(cell.NewForbidSubStr(a.Values, next))
	}), nil
}

// StrMinMax bounds the length of the cell, inclusive.
type StrMinMax struct {
	Min   int `yaml:"min"`
	Max   int `yaml:"max"`
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (StrMinMax) Name() string { return cell.StrMinMaxName }

// Descriptor implements cellz.Described.
func (StrMinMax) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newStrMinMax), Directions: cellz.Both}
}

func newStrMinMax(a StrMinMax, _ cellz.Metadata) (cellz.Factory, error) {
	if err := check(cell.NewStrMinMax(a.Min, a.Max, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.StringProcessor) (cell.Processor, error) {
		return built(cell.NewStrMinMax(a.Min, a.Max, next))
	}), nil
}

// Strlen requires the length of the cell to be one of Lengths.
type Strlen struct {
	Lengths []int `yaml:"lengths"`
	Order   int   `yaml:"order"`
}

// Name implements cellz.Annotation.
func (Strlen) Name() string { return cell.StrlenName }

// Descriptor implements cellz.Described.
func (Strlen) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newStrlen), Directions: cellz.Both}
}

func newStrlen(a Strlen, _ cellz.Metadata) (cellz.Factory, error) {
	if err := check(cell.NewStrlen(a.Lengths, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.StringProcessor) (cell.Processor, error) {
		return built(cell.NewStrlen(a.Lengths, next))
	}), nil
}

// StrRegEx requires the whole cell to match Regex.
type StrRegEx struct {
	Regex string `yaml:"regex"`
	Order int    `yaml:"order"`
}

// Name implements cellz.Annotation.
func (StrRegEx) Name() string { return cell.StrRegExName }

// Descriptor implements cellz.Described.
func (StrRegEx) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newStrRegEx), Directions: cellz.Both}
}

func newStrRegEx(a StrRegEx, _ cellz.Metadata) (cellz.Factory, error) {
	if err := check(cell.NewStrRegEx(a.Regex, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.StringProcessor) (cell.Processor, error) {
		return built(cell.NewStrRegEx(a.Regex, next))
	}), nil
}

// LMinMax bounds an integer cell, inclusive.
type LMinMax struct {
	Min   int64 `yaml:"min"`
	Max   int64 `yaml:"max"`
	Order int   `yaml:"order"`
}

// Name implements cellz.Annotation.
func (LMinMax) Name() string { return cell.LMinMaxName }

// Descriptor implements cellz.Described.
func (LMinMax) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newLMinMax), Directions: cellz.Both}
}

func newLMinMax(a LMinMax, _ cellz.Metadata) (cellz.Factory, error) {
	if err := check(cell.NewLMinMax(a.Min, a.Max, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.LongProcessor) (cell.Processor, error) {
		return built(cell.NewLMinMax(a.Min, a.Max, next))
	}), nil
}

// DMinMax bounds a floating point cell, inclusive.
type DMinMax struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Order int     `yaml:"order"`
}

// Name implements cellz.Annotation.
func (DMinMax) Name() string { return cell.DMinMaxName }

// Descriptor implements cellz.Described.
func (DMinMax) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newDMinMax), Directions: cellz.Both}
}

func newDMinMax(a DMinMax, _ cellz.Metadata) (cellz.Factory, error) {
	if err := check(cell.NewDMinMax(a.Min, a.Max, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.DoubleProcessor) (cell.Processor, error) {
		return built(cell.NewDMinMax(a.Min, a.Max, next))
	}), nil
}

// IsIncludedIn requires the cell to be one of Values.
type IsIncludedIn struct {
	Values []string `yaml:"values"`
	Order  int      `yaml:"order"`
}

// Name implements cellz.Annotation.
func (IsIncludedIn) Name() string { return cell.IsIncludedInName }

// Descriptor implements cellz.Described.
func (IsIncludedIn) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newIsIncludedIn), Directions: cellz.Both}
}

func newIsIncludedIn(a IsIncludedIn, _ cellz.Metadata) (cellz.Factory, error) {
	if err := check(cell.NewIsIncludedIn(a.Values, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return built(cell.NewIsIncludedIn(a.Values, next))
	}), nil
}

// Unique rejects values seen before by the same chain.
type Unique struct {
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (Unique) Name() string { return cell.UniqueName }

// Descriptor implements cellz.Described.
func (Unique) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newUnique), Directions: cellz.Both}
}

func newUnique(a Unique, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return cell.NewUnique(next), nil
	}), nil
}

// UniqueHashCode rejects values whose hash was seen before by the same chain.
type UniqueHashCode struct {
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (UniqueHashCode) Name() string { return cell.UniqueHashCodeName }

// Descriptor implements cellz.Described.
func (UniqueHashCode) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newUniqueHashCode), Directions: cellz.Both}
}

func newUniqueHashCode(a UniqueHashCode, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return cell.NewUniqueHashCode(next), nil
	}), nil
}

// RequireHashCode requires the cell.HashCode of the value to be one of Hashes.
type RequireHashCode struct {
	Hashes []uint64 `yaml:"hashes"`
	Order  int      `yaml:"order"`
}

// Name implements cellz.Annotation.
func (RequireHashCode) Name() string { return cell.RequireHashCodeName }

// Descriptor implements cellz.Described.
func (RequireHashCode) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newRequireHashCode), Directions: cellz.Both}
}

func newRequireHashCode(a RequireHashCode, _ cellz.Metadata) (cellz.Factory, error) {
	if err := check(cell.NewRequireHashCode(a.Hashes, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return built(cell.NewRequireHashCode(a.Hashes, next))
	}), nil
}
