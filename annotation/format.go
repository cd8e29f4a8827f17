package annotation

import (
	"github.com/zoobzio/cellz"
	"github.com/zoobzio/cellz/cell"
	"golang.org/x/text/language"
)

// FmtBool writes bools as TrueValue or FalseValue.
type FmtBool struct {
	TrueValue  string `yaml:"trueValue"`
	FalseValue string `yaml:"falseValue"`
	Order      int    `yaml:"order"`
}

// Name implements cellz.Annotation.
func (FmtBool) Name() string { return cell.FmtBoolName }

// Descriptor implements cellz.Described.
func (FmtBool) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newFmtBool), Directions: writeOnly}
}

func newFmtBool(a FmtBool, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.StringProcessor) (cell.Processor, error) {
		return cell.NewFmtBool(a.TrueValue, a.FalseValue, next), nil
	}), nil
}

// FmtNumber writes numbers with a decimal format pattern such as
// "#,##0.00". Locale is a BCP 47 tag and defaults to English.
type FmtNumber struct {
	Format string `yaml:"format"`
	Locale string `yaml:"locale"`
	Order  int    `yaml:"order"`
}

// Name implements cellz.Annotation.
func (FmtNumber) Name() string { return cell.FmtNumberName }

// Descriptor implements cellz.Described.
func (FmtNumber) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newFmtNumber), Directions: writeOnly}
}

func newFmtNumber(a FmtNumber, _ cellz.Metadata) (cellz.Factory, error) {
	locale := language.English
	if a.Locale != "" {
		tag, err := language.Parse(a.Locale)
		if err != nil {
			return nil, err
		}
		locale = tag
	}
	if err := check(cell.NewFmtNumberLocale(a.Format, locale, nil)); err != nil {
		return nil, err
	}
	return step(a.Order, func(next cell.StringProcessor) (cell.Processor, error) {
		return built(cell.NewFmtNumberLocale(a.Format, locale, next))
	}), nil
}

// FmtDate writes times with the Go reference Layout.
type FmtDate struct {
	Layout string `yaml:"layout"`
	Order  int    `yaml:"order"`
}

// Name implements cellz.Annotation.
func (FmtDate) Name() string { return cell.FmtDateName }

// Descriptor implements cellz.Described.
func (FmtDate) Descriptor() cellz.Descriptor {
	return cellz.Descriptor{Provider: cellz.ProviderFor(newFmtDate), Directions: writeOnly}
}

func newFmtDate(a FmtDate, _ cellz.Metadata) (cellz.Factory, error) {
	return step(a.Order, func(next cell.StringProcessor) (cell.Processor, error) {
		return cell.NewFmtDate(a.Layout, next), nil
	}), nil
}
