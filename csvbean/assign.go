package csvbean

import (
	"fmt"
	"reflect"
)

// assign stores value in dst. Nil leaves dst at its zero value. Pointer
// fields are allocated, and numeric values convert between numeric kinds.
func assign(dst reflect.Value, value any) error {
	if value == nil {
		dst.SetZero()
		return nil
	}
	if dst.Kind() == reflect.Pointer {
		elem := reflect.New(dst.Type().Elem())
		if err := assign(elem.Elem(), value); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	}
	v := reflect.ValueOf(value)
	switch {
	case v.Type().AssignableTo(dst.Type()):
		dst.Set(v)
	case numeric(v.Kind()) && numeric(dst.Kind()):
		dst.Set(v.Convert(dst.Type()))
	case v.Kind() == reflect.String && dst.Kind() == reflect.String:
		dst.SetString(v.String())
	default:
		return fmt.Errorf("%w: %T into %s", ErrUnassignable, value, dst.Type())
	}
	return nil
}

// fieldValue returns the value of src for a write chain, dereferencing
// pointers and reporting nil pointers as nil.
func fieldValue(src reflect.Value) any {
	for src.Kind() == reflect.Pointer {
		if src.IsNil() {
			return nil
		}
		src = src.Elem()
	}
	return src.Interface()
}

// text renders the result of a write chain as a cell.
func text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	return fmt.Sprint(value)
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
