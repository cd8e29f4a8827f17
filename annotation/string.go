package annotation

import (
	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/cell"
)

// Trim removes surrounding whitespace.
type Trim struct {
	Order int `yaml:"order"`
}

// Name implements cellz.Annotation.
func (Trim) Name() string { return cell.TrimName }

// Descriptor implements cellz.Described.
func (Trim) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newTrim), Directions: cellz.Both}
}

func newTrim(a Trim, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.StringProcessor) (cell.Processor, error) {
		return cell.NewTrim(next), nil
	}), nil
}

// StrReplace replaces every match of the regular expression Pattern with
// Replacement.
type StrReplace struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Order       int    `yaml:"order"`
}

// Name implements cellz.Annotation.
func (StrReplace) Name() string { return cell.StrReplaceName }

// Descriptor implements cellz.Described.
func (StrReplace) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newStrReplace), Directions: cellz.Both}
}

func newStrReplace(a StrReplace, _ cellz.Metadata) (cellz.Factory, error) {
	if err := check(cell.NewStrReplace(a.Pattern, a.Replacement, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.StringProcessor) (cell.Processor, error) {
		return built(cell.NewStrReplace(a.Pattern, a.Replacement, next))
	}), nil
}

// StrReplaces applies several replacements in order.
type StrReplaces = cellz.Repeated[StrReplace]

// Truncate shortens values longer than MaxSize runes and appends Suffix.
type Truncate struct {
	Suffix  string `yaml:"suffix"`
	MaxSize int    `yaml:"maxSize"`
	Order   int    `yaml:"order"`
}

// Name implements cellz.Annotation.
func (Truncate) Name() string { return cell.TruncateName }

// Descriptor implements cellz.Described.
func (Truncate) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newTruncate), Directions: cellz.Both}
}

func newTruncate(a Truncate, _ cellz.Metadata) (cellz.Factory, error) {
	if err := check(cell.NewTruncate(a.MaxSize, a.Suffix, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.StringProcessor) (cell.Processor, error) {
		return built(cell.NewTruncate(a.MaxSize, a.Suffix, next))
	}), nil
}

// HashMapper maps values through Mapping, falling back to Default.
type HashMapper struct {
	Mapping map[string]any `yaml:"mapping"`
	Default any            `yaml:"default"`
	Order   int            `yaml:"order"`
}

// Name implements cellz.Annotation.
func (HashMapper) Name() string { return cell.HashMapperName }

// Descriptor implements cellz.Described.
func (HashMapper) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newHashMapper), Directions: cellz.Both}
}

func newHashMapper(a HashMapper, _ cellz.Metadata) (cellz.Factory, error) {
	if err := check(cell.NewHashMapper(a.Mapping, a.Default, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.Processor) (cell.Processor, error) {
		return built(cell.NewHashMapper(a.Mapping, a.Default, next))
	}), nil
}
