package cellz

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/zoobzio/cellz/cell"
)

// Passthrough ends every chain. It accepts every input kind and returns
// its input unchanged, so a field without annotations still gets a
// usable processor.
type Passthrough struct {
	cell.AcceptsAll
}

// Execute implements cell.Processor.
func (Passthrough) Execute(value any, _ *cell.Context) (any, error) {
	return value, nil
}

// definition is a resolved annotation waiting to be folded into a chain.
type definition struct {
	annotation Annotation
	factory    Factory
	descriptor Descriptor
}

// resolution is the outcome of resolving every annotation of a field.
type resolution struct {
	definitions []definition // sorted, innermost first
	extracted   int
}

// resolveAll extracts and resolves the annotations of field and sorts the
// factories by descending order. Extracted annotations are reversed first,
// so that among equal orders the last declared step ends up innermost.
func resolveAll(record *Record, field *Field, dir Direction) (resolution, error) {
	if field == nil {
		return resolution{}, configError(record, nil, dir, "", ErrNilField)
	}
	annotations := Extract(field)
	slices.Reverse(annotations)

	res := resolution{extracted: len(annotations)}
	for _, a := range annotations {
		f, ok, err := Resolve(a, field, record, dir)
		if err != nil {
			return resolution{}, err
		}
		if !ok {
			continue
		}
		desc, _ := Describe(a)
		res.definitions = append(res.definitions, definition{annotation: a, factory: f, descriptor: desc})
	}
	slices.SortStableFunc(res.definitions, func(a, b definition) int {
		return cmp.Compare(b.factory.Order(), a.factory.Order())
	})
	return res, nil
}

// fold wraps Passthrough with every definition, innermost first.
func (res resolution) fold(record *Record, field *Field, dir Direction) (cell.Processor, error) {
	var running cell.Processor = Passthrough{}
	for _, d := range res.definitions {
		next, err := d.factory.Create(running)
		if err != nil {
			return nil, configError(record, field, dir, d.annotation.Name(), err)
		}
		if next == nil {
			return nil, configError(record, field, dir, d.annotation.Name(), ErrNilProcessor)
		}
		running = next
	}
	return running, nil
}

// BuildFor composes the processor chain of field for dir.
//
// Steps run in ascending order; steps of equal order run in declaration
// order. Annotations that do not apply in dir are skipped silently. The
// result is a new chain on every call and is owned by the caller.
func BuildFor(record *Record, field *Field, dir Direction) (cell.Processor, error) {
	res, err := resolveAll(record, field, dir)
	if err != nil {
		return nil, err
	}
	return res.fold(record, field, dir)
}

// Step is one entry of a Plan.
type Step struct {
	Annotation Annotation
	Directions []Direction
	Order      int
}

// Plan lists the steps BuildFor would compose, in execution order.
type Plan struct {
	Record    *Record
	Field     *Field
	Steps     []Step
	Direction Direction
}

// PlanFor resolves field for dir like BuildFor without creating processors.
func PlanFor(record *Record, field *Field, dir Direction) (Plan, error) {
	res, err := resolveAll(record, field, dir)
	if err != nil {
		return Plan{}, err
	}
	plan := Plan{Record: record, Field: field, Direction: dir, Steps: make([]Step, len(res.definitions))}
	for i, d := range res.definitions {
		plan.Steps[len(res.definitions)-1-i] = Step{
			Annotation: d.annotation,
			Order:      d.factory.Order(),
			Directions: d.descriptor.Directions,
		}
	}
	return plan, nil
}

// Names returns the annotation names of the plan's steps.
func (p Plan) Names() []string {
	names := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		names[i] = s.Annotation.Name()
	}
	return names
}

// String renders the plan as "Record.Field (dir): a(0) -> b(1)".
func (p Plan) String() string {
	var b strings.Builder
	if p.Record != nil {
		b.WriteString(p.Record.Name)
		b.WriteByte('.')
	}
	if p.Field != nil {
		b.WriteString(p.Field.Name)
	}
	fmt.Fprintf(&b, " (%s): ", p.Direction)
	if len(p.Steps) == 0 {
		b.WriteString("passthrough")
		return b.String()
	}
	for i, s := range p.Steps {
		if i > 0 {
			b.WriteString(" -> ")
		}
		fmt.Fprintf(&b, "%s(%d)", s.Annotation.Name(), s.Order)
	}
	return b.String()
}
