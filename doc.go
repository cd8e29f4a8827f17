// Package cellz composes CSV cell processor chains from declarative field annotations.
//
// # Overview
//
// A record is a plain Go struct whose fields map to CSV columns. Each field
// carries annotations: small values that describe one processing step,
// such as trimming, parsing a number or checking a constraint. cellz turns
// the annotations of a field into a chain of cell.Processor values, one
// chain per I/O direction, so the same declaration drives both reading and
// writing.
//
// # Core Concepts
//
//   - Annotation: A declared step. Kinds implement Name and, to be resolvable, Descriptor
//   - Descriptor: Links a kind to its Provider and the directions it applies in
//   - Provider: Turns one annotation into a Factory, validating its parameters
//   - Factory: Creates one processor in front of its successor, at a given order
//   - Group: An annotation that bundles others; Extract expands it in place
//
// # Declaring Annotations
//
// Annotations are declared in struct tags under the cellz key, separated by
// semicolons. Parameters are a YAML flow mapping:
//
//	type Person struct {
//	    Name    string  `csv:"name" cellz:"trim;strMinMax{min: 1, max: 40}"`
//	    Balance float64 `csv:"balance" cellz:"optional;parseDouble;fmtNumber{format: '0.00'}"`
//	}
//
//	reg := annotation.Registry()
//	record, err := cellz.RecordOf[Person](reg)
//
// Types that cannot express their annotations as tags implement Annotated
// and return them keyed by field name.
//
// # Building Chains
//
//	field, _ := record.Field("Name")
//	chain, err := cellz.BuildFor(record, field, cellz.Read)
//	value, err := chain.Execute("  Ada ", &cell.Context{Line: 2, Row: 1, Column: 1})
//
// Steps run in ascending order. Steps that declare no order use
// OrderUndefined, and steps of equal order run in declaration order. The
// innermost processor is always a Passthrough, so a field with no
// applicable annotations still gets a working chain.
//
// Annotations that do not apply in the requested direction are skipped.
// Declarations that cannot be composed, such as a parser followed by a
// step that cannot accept its output, are reported as *ConfigError.
//
// # Observability
//
// BuildFor is a pure function. Builder wraps it with metrics, tracing and
// hooks, and emits capitan signals for every build:
//
//	b := cellz.NewBuilder()
//	defer b.Close()
//	chains, err := b.Build(ctx, record, cellz.Write)
//
// The csvbean package reads and writes records with chains built this way.
package cellz
