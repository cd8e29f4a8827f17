// Package cell provides the primitive cell processors that cellz chains
// are assembled from.
//
// # Overview
//
// A cell processor transforms or validates a single CSV cell. Every
// primitive holds an optional successor, so a chain is a nested value
// whose outermost processor runs first:
//
//	chain, _ := cell.NewStrReplace("a", "b", cell.NewTrim(nil))
//	v, _ := chain.Execute(" abc ", &cell.Context{Line: 1, Row: 1, Column: 1})
//	// v == "bbc"
//
// # Families
//
//   - Null handling: Optional, ConvertNullTo, NotNull, StrNotNullOrEmpty
//   - Strings: Trim, StrReplace, Truncate, HashMapper
//   - Parsing (read side): ParseBool, ParseInt, ParseLong, ParseDouble,
//     ParseDate, ParseBigDecimal, ParseUUID
//   - Formatting (write side): FmtBool, FmtNumber, FmtDate
//   - Constraints: RequireSubStr, ForbidSubStr, StrMinMax, Strlen, StrRegEx,
//     LMinMax, DMinMax, IsIncludedIn, Unique, UniqueHashCode, RequireHashCode
//
// Func adapts a plain function into a processor for one-off logic.
//
// # Capabilities
//
// Primitives that produce a fixed type require a successor that accepts
// it. ParseInt only chains onto a LongProcessor, FmtBool only onto a
// StringProcessor. Custom processors declare what they accept by embedding
// AcceptsString, AcceptsLong, AcceptsDouble, AcceptsBool, AcceptsDate or
// AcceptsAll.
//
// # Errors
//
// Failures are reported as *Error, which carries the processor name, the
// offending value and the cell position. Use errors.Is with ErrNullValue,
// ErrUnexpectedType, ErrParse or ErrConstraint to classify them.
// Constructors return errors wrapping ErrInvalidConfig.
package cell
