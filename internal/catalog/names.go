package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical lookup form of a store type name:
// surrounding whitespace trimmed, NFC normalized, lower-cased. All index
// keys and membership tests use this form, which is what makes name
// identity case-insensitive.
func Normalize(name string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(name)))
}

// BaseName strips a trailing parenthesized facet list from a store type
// name: "nvarchar(450)" yields "nvarchar", "decimal(18,2)" yields
// "decimal". Names without a facet list pass through unchanged.
func BaseName(name string) string {
	if i := strings.IndexByte(name, '('); i >= 0 {
		return strings.TrimSpace(name[:i])
	}
	return strings.TrimSpace(name)
}

// disallowedNames lists the store type base names that are only valid with
// an explicit length qualifier. A mapping whose full canonical name is one
// of these was resolved from a bare, unqualified name and is too ambiguous
// to persist safely.
var disallowedNames = map[string]struct{}{
	"binary varying":             {},
	"binary":                     {},
	"char varying":               {},
	"char":                       {},
	"character varying":          {},
	"character":                  {},
	"national char varying":      {},
	"national character varying": {},
	"national character":         {},
	"nchar":                      {},
	"nvarchar":                   {},
	"varbinary":                  {},
	"varchar":                    {},
}

// IsDisallowed reports whether name is a member of the unqualified
// store-name set, case-insensitively. Only exact full-name matches count:
// "varchar" is disallowed, "varchar(30)" and "varchar(max)" are not.
func IsDisallowed(name string) bool {
	_, ok := disallowedNames[Normalize(name)]
	return ok
}
