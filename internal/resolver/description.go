package resolver

import (
	"github.com/schemakit/typemap/internal/catalog"
	"github.com/schemakit/typemap/internal/typemap"
)

// Description is the caller-supplied picture of a value to be stored.
// All fields are optional hints; the engine decides what wins.
//
// A Description is immutable per resolution call: the engine never writes
// to it, so callers may reuse one across calls.
type Description struct {
	// Tag is the language-level value type, TagNone if unknown.
	Tag typemap.Tag

	// NamedType is a fully-qualified external type identifier for values
	// outside the core tag set ("geometry", "hierarchyid"). Consulted
	// only through the registered named-type factories.
	NamedType string

	// StoreType is the explicitly requested store type name, possibly
	// carrying a facet list ("nvarchar(450)"). Case-insensitive.
	StoreType string

	// StoreTypeBase is the unqualified form of StoreType. Derived from
	// StoreType when empty.
	StoreTypeBase string

	// Size, Precision, Scale are the requested facets, nil when absent.
	Size      *int
	Precision *int
	Scale     *int

	// Unicode and FixedLength are tri-state: nil means unset.
	Unicode     *bool
	FixedLength *bool

	// Key marks the value as a key or index member, which narrows the
	// default text/binary size to the index key-length limit.
	Key bool

	// RowVersion marks the value as a concurrency-token byte sequence.
	RowVersion bool
}

// baseName returns the explicit base name, deriving it from StoreType when
// the caller supplied only the qualified form.
func (d Description) baseName() string {
	if d.StoreTypeBase != "" {
		return d.StoreTypeBase
	}
	if d.StoreType != "" {
		return catalog.BaseName(d.StoreType)
	}
	return ""
}

// isUnicode resolves the tri-state encoding flag; absence defaults to
// Unicode (wide) text.
func (d Description) isUnicode() bool {
	return d.Unicode == nil || *d.Unicode
}

// isFixedLength resolves the tri-state length-mode flag; absence means
// variable length.
func (d Description) isFixedLength() bool {
	return d.FixedLength != nil && *d.FixedLength
}
