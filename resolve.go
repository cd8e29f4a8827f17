package cellz

import "reflect"

// Resolve turns one annotation into a Factory for dir.
//
// It reports false, with no error, when the annotation has no descriptor
// or its descriptor does not list dir. A provider that does not accept the
// annotation's type, or that fails, is a *ConfigError.
func Resolve(a Annotation, field *Field, record *Record, dir Direction) (Factory, bool, error) {
	desc, ok := Describe(a)
	if !ok || !desc.Applies(dir) {
		return nil, false, nil
	}
	if desc.Provider == nil {
		return nil, false, configError(record, field, dir, a.Name(), ErrMissingProvider)
	}
	p := desc.Provider()
	if p == nil {
		return nil, false, configError(record, field, dir, a.Name(), ErrMissingProvider)
	}
	if got, want := reflect.TypeOf(a), p.Type(); want == nil || !got.AssignableTo(want) {
		return nil, false, configError(record, field, dir, got.String(), ErrIncompatibleProvider)
	}
	f, err := p.Create(Metadata{Annotation: a, Field: field, Record: record})
	if err != nil {
		return nil, false, configError(record, field, dir, a.Name(), err)
	}
	if f == nil {
		return nil, false, configError(record, field, dir, a.Name(), ErrNilFactory)
	}
	return f, true, nil
}
