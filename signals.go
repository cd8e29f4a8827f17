package cellz

import "github.com/zoobzio/capitan"

// Signal definitions for cellz events.
// Signals follow the pattern: <component>.<event>.
var (
	// Extractor signals.
	SignalGroupExpandFailed = capitan.NewSignal(
		"extract.group-expand-failed",
		"A grouping annotation could not be expanded and its contents were skipped",
	)

	// Builder signals.
	SignalChainBuilt = capitan.NewSignal(
		"builder.chain-built",
		"Builder composed the processor chain for a field",
	)
	SignalBuildFailed = capitan.NewSignal(
		"builder.build-failed",
		"Builder could not compose the processor chain for a field because of a configuration error",
	)
)

// Common field keys using capitan primitive types.
var (
	FieldRecord     = capitan.NewStringKey("record")     // Record type name
	FieldField      = capitan.NewStringKey("field")      // Go field name
	FieldAnnotation = capitan.NewStringKey("annotation") // Annotation kind name
	FieldDirection  = capitan.NewStringKey("direction")  // read or write
	FieldError      = capitan.NewStringKey("error")      // Error message
	FieldTimestamp  = capitan.NewFloat64Key("timestamp") // Unix timestamp

	// Builder fields.
	FieldSteps    = capitan.NewIntKey("steps")        // Steps in the composed chain
	FieldSkipped  = capitan.NewIntKey("skipped")      // Annotations that did not apply
	FieldDuration = capitan.NewFloat64Key("duration") // Build duration in seconds
)
