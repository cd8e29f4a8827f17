package csvbean

import "github.com/zoobzio/capitan"

// Signal definitions for csvbean events.
var (
	SignalRowFailed = capitan.NewSignal(
		"csvbean.row-failed",
		"A cell could not be read or written and its row was rejected",
	)
)

// Field keys for csvbean signals.
var (
	FieldLine   = capitan.NewIntKey("line")      // Physical line in the CSV source
	FieldColumn = capitan.NewStringKey("column") // CSV column name
	FieldRecord = capitan.NewStringKey("record") // Record type name
)
