package cellz

import (
	"context"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// Extract returns the resolvable annotations of field in declaration order.
//
// Annotations with a descriptor are kept. Groups without a descriptor are
// replaced in place by their contents, one level deep. A group that fails
// to expand is skipped with a SignalGroupExpandFailed warning. Anything
// else is unrelated metadata and is dropped.
//
// The result is a new slice on every call.
func Extract(field *Field) []Annotation {
	if field == nil {
		return nil
	}
	out := make([]Annotation, 0, len(field.Annotations))
	for _, a := range field.Annotations {
		if _, ok := Describe(a); ok {
			out = append(out, a)
			continue
		}
		g, ok := a.(Group)
		if !ok {
			continue
		}
		members, err := g.Annotations()
		if err != nil {
			capitan.Warn(context.Background(), SignalGroupExpandFailed,
				FieldField.Field(field.Name),
				FieldAnnotation.Field(a.Name()),
				FieldError.Field(err.Error()),
				FieldTimestamp.Field(float64(clockz.RealClock.Now().Unix())),
			)
			continue
		}
		out = append(out, members...)
	}
	return out
}
