package annotation

import "github.com/zoobzio/cellz"

// Kinds returns a zero value of every standard annotation kind.
func Kinds() []cellz.Annotation {
	return []cellz.Annotation{
		// Null handling.
		Optional{}, ConvertNullTo{}, NotNull{}, StrNotNullOrEmpty{},

		// Strings.
		Trim{}, StrReplace{}, StrReplaces{}, Truncate{}, HashMapper{},

		// Formatting.
		FmtBool{}, FmtNumber{}, FmtDate{},

		// Parsing.
		ParseBool{}, ParseInt{}, ParseLong{}, ParseDouble{}, ParseDate{},
		ParseBigDecimal{}, ParseUUID{},

		// Constraints.
		RequireSubStr{}, cellz.Repeated[RequireSubStr]{}, ForbidSubStr{},
		StrMinMax{}, Strlen{}, StrRegEx{}, LMinMax{}, DMinMax{}, IsIncludedIn{},
		Unique{}, UniqueHashCode{}, RequireHashCode{},

		// Record methods.
		FactoryMethod{},
	}
}

// Registry returns a new registry holding every standard kind. Custom
// kinds can be added with Register.
func Registry() *cellz.Registry {
	return cellz.NewRegistry(Kinds()...)
}
