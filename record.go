package cellz

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-openapi/inflect"
)

// Annotated lets a record type attach annotations in code, keyed by Go
// field name. They follow the annotations parsed from the field's tag.
// Use it for annotations that cannot be written in a tag, such as custom
// kinds with function values.
type Annotated interface {
	CellAnnotations() map[string][]Annotation
}

// Field describes one CSV column of a record.
type Field struct {
	Type        reflect.Type
	Name        string
	Column      string
	Tag         reflect.StructTag
	Index       []int
	Annotations []Annotation
}

// Record describes a struct type mapped to CSV rows.
type Record struct {
	Type     reflect.Type
	Name     string
	Fields   []*Field
	byName   map[string]*Field
	byColumn map[string]*Field
}

// Field returns the field with the given Go name.
func (r *Record) Field(name string) (*Field, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// Column returns the field mapped to the given CSV column.
func (r *Record) Column(column string) (*Field, bool) {
	f, ok := r.byColumn[column]
	return f, ok
}

// Columns returns the column names in field order.
func (r *Record) Columns() []string {
	out := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		out[i] = f.Column
	}
	return out
}

// NewRecord describes struct type t, parsing cellz tags with reg.
// Exported fields are mapped in declaration order; a field tagged
// `csv:"-"` is skipped. The column name is the csv tag, or the snake case
// form of the field name.
func NewRecord(t reflect.Type, reg *Registry) (*Record, error) {
	if t == nil {
		return nil, ErrNotStruct
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	r := &Record{
		Type:     t,
		Name:     t.Name(),
		byName:   make(map[string]*Field),
		byColumn: make(map[string]*Field),
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		column, _, _ := strings.Cut(sf.Tag.Get("csv"), ",")
		if column == "-" {
			continue
		}
		if column == "" {
			column = inflect.Underscore(sf.Name)
		}
		f := &Field{
			Name:   sf.Name,
			Column: column,
			Index:  slices.Clone(sf.Index),
			Type:   sf.Type,
			Tag:    sf.Tag,
		}
		if tag, ok := sf.Tag.Lookup(TagKey); ok {
			if reg == nil {
				return nil, fmt.Errorf("%w: %s.%s has a %s tag but no registry was given", ErrInvalidTag, r.Name, sf.Name, TagKey)
			}
			parsed, err := reg.Parse(tag)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", r.Name, sf.Name, err)
			}
			f.Annotations = parsed
		}
		if prev, ok := r.byColumn[f.Column]; ok {
			return nil, fmt.Errorf("%w: %s.%s and %s.%s both map %q", ErrDuplicateColumn, r.Name, prev.Name, r.Name, f.Name, f.Column)
		}
		r.Fields = append(r.Fields, f)
		r.byName[f.Name] = f
		r.byColumn[f.Column] = f
	}

	if annotated, ok := reflect.New(t).Interface().(Annotated); ok {
		for name, extra := range annotated.CellAnnotations() {
			f, ok := r.byName[name]
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, r.Name, name)
			}
			f.Annotations = append(f.Annotations, extra...)
		}
	}
	return r, nil
}

// RecordOf describes T, caching the result per registry.
func RecordOf[T any](reg *Registry) (*Record, error) {
	return cachedRecord(reflect.TypeFor[T](), reg)
}
