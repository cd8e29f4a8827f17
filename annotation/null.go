package annotation

import (
	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/cell"
)

// Optional lets empty cells through without running later steps.
type Optional struct {
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (Optional) Name() string { return cell.OptionalName }

// Descriptor implements cellz.Described.
func (Optional) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newOptional), Directions: cellz.Both}
}

func newOptional(a Optional, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return cell.NewOptional(next), nil
	}), nil
}

// ConvertNullTo replaces empty cells with Value.
type ConvertNullTo struct {
	Value any `yaml:"value"`
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (ConvertNullTo) Name() string { return cell.ConvertNullToName }

// Descriptor implements cellz.Described.
func (ConvertNullTo) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newConvertNullTo), Directions: cellz.Both}
}

func newConvertNullTo(a ConvertNullTo, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return cell.NewConvertNullTo(a.Value, next), nil
	}), nil
}

// NotNull rejects empty cells.
type NotNull struct {
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (NotNull) Name() string { return cell.NotNullName }

// Descriptor implements cellz.Described.
func (NotNull) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newNotNull), Directions: cellz.Both}
}

func newNotNull(a NotNull, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return cell.NewNotNull(next), nil
	}), nil
}

// StrNotNullOrEmpty rejects empty cells and empty strings.
type StrNotNullOrEmpty struct {
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (StrNotNullOrEmpty) Name() string { return cell.StrNotNullOrEmptyName }

// Descriptor implements cellz.Described.
func (StrNotNullOrEmpty) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newStrNotNullOrEmpty), Directions: cellz.Both}
}

func newStrNotNullOrEmpty(a StrNotNullOrEmpty, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return cell.NewStrNotNullOrEmpty(next), nil
	}), nil
}
