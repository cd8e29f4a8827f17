// Package annotation provides the standard cellz annotation kinds, one per
// primitive of package cell, and a registry holding all of them.
//
// Kinds are plain structs. In struct tags they are named by their Name and
// configured with a YAML flow mapping of their fields:
//
//	type Person struct {
//	    LastName string  `csv:"last_name" cellz:"strReplace{pattern: '^', replacement: ' '}; trim"`
//	    Balance  float64 `cellz:"parseDouble; fmtNumber{format: '#,##0.00'}"`
//	}
//
//	record, err := cellz.RecordOf[Person](annotation.Registry())
//
// Every kind has an Order field. Steps run in ascending order and steps
// of equal order run in declaration order.
//
// Format kinds (fmtBool, fmtNumber, fmtDate) apply when writing only and
// parse kinds (parseBool, parseInt, ...) when reading only. All other kinds
// apply in both directions.
package annotation
