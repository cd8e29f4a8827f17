// Package csvbean reads and writes CSV rows as annotated Go structs.
//
// Column values run through the processor chain cellz composes for each
// field: the read chain turns raw cells into field values and the write
// chain turns field values back into cells.
//
//	type Person struct {
//	    Name string  `csv:"name" cellz:"trim"`
//	    Age  int     `csv:"age" cellz:"parseInt;lMinMax{min: 0, max: 150}"`
//	}
//
//	r := csvbean.NewReader[Person](file).WithRegistry(annotation.Registry())
//	people, err := r.ReadAll(ctx)
//
// Empty cells are read as nil, so chains that should accept them start
// with optional or convertNullTo. A row that fails returns a *RowError
// and the next Read continues with the following row.
//
// Readers and writers are not safe for concurrent use.
package csvbean
