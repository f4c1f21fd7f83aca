package typemap

import (
	"fmt"
	"strings"
)

// PostfixStyle describes how facet values are rendered into the canonical
// store type name.
type PostfixStyle uint8

const (
	// PostfixNone renders the base name as-is ("bigint", "rowversion").
	PostfixNone PostfixStyle = iota

	// PostfixSize renders a length qualifier ("nvarchar(450)"). An entry
	// with PostfixSize and no size is unbounded and carries the literal
	// "(max)" form in its canonical name.
	PostfixSize

	// PostfixPrecisionScale renders precision and scale ("decimal(18,2)").
	// Entries with this style always carry both facets.
	PostfixPrecisionScale
)

// String returns the postfix style name.
func (p PostfixStyle) String() string {
	switch p {
	case PostfixNone:
		return "none"
	case PostfixSize:
		return "size"
	case PostfixPrecisionScale:
		return "precision-scale"
	default:
		return fmt.Sprintf("postfix(%d)", uint8(p))
	}
}

// StoreMapping describes one concrete SQL Server storage representation.
//
// A StoreMapping is an immutable template: the catalog hands out shared
// pointers, and parameterization clones via WithFacets. Nothing mutates a
// mapping after construction, which keeps the catalog safe for
// unsynchronized concurrent reads.
type StoreMapping struct {
	// StoreType is the full canonical name, facets rendered ("varchar(30)").
	// Never empty. Identity is case-insensitive.
	StoreType string

	// StoreTypeBase is the name without any parenthesized facet list
	// ("varchar"). Equal to StoreType for facet-free names.
	StoreTypeBase string

	// Tag is the language value type this mapping natively stores.
	// TagNone for entries reachable only by store name.
	Tag Tag

	// Size is the length facet in characters or bytes. Nil means
	// unbounded for PostfixSize entries and not-applicable otherwise.
	Size *int

	// Precision and Scale are the numeric facets. Always both set on
	// PostfixPrecisionScale entries.
	Precision *int
	Scale     *int

	// Unicode reports wide-character encoding for text mappings.
	Unicode bool

	// FixedLength reports a fixed-width representation (char, binary).
	FixedLength bool

	// Postfix selects how facets render into StoreType.
	Postfix PostfixStyle

	// Comparer is the structural equality/hash/copy strategy. Required on
	// byte-sequence mappings, nil elsewhere.
	Comparer ValueComparer
}

// FacetOverride selects facet values to substitute when cloning a template.
// Nil fields keep the template's value.
type FacetOverride struct {
	Size        *int
	Precision   *int
	Scale       *int
	FixedLength *bool
}

// WithFacets clones the mapping with the given facets substituted and the
// canonical name re-rendered. Tag, Postfix, Unicode, and Comparer carry over
// unchanged; the receiver is never modified.
func (m *StoreMapping) WithFacets(o FacetOverride) *StoreMapping {
	c := *m
	if o.Size != nil {
		size := *o.Size
		c.Size = &size
	}
	if o.Precision != nil {
		precision := *o.Precision
		c.Precision = &precision
	}
	if o.Scale != nil {
		scale := *o.Scale
		c.Scale = &scale
	}
	if o.FixedLength != nil {
		c.FixedLength = *o.FixedLength
	}
	c.StoreType = renderStoreType(c.StoreTypeBase, c.Postfix, c.Size, c.Precision, c.Scale)
	return &c
}

// renderStoreType builds the full canonical name from base name and facets.
func renderStoreType(base string, postfix PostfixStyle, size, precision, scale *int) string {
	switch postfix {
	case PostfixSize:
		if size == nil {
			return base + "(max)"
		}
		return fmt.Sprintf("%s(%d)", base, *size)
	case PostfixPrecisionScale:
		if precision == nil || scale == nil {
			return base
		}
		return fmt.Sprintf("%s(%d,%d)", base, *precision, *scale)
	default:
		return base
	}
}

// Equivalent reports whether two mappings describe the same storage
// representation: same canonical name (case-insensitive), value type, and
// facet values.
func (m *StoreMapping) Equivalent(other *StoreMapping) bool {
	if m == nil || other == nil {
		return m == other
	}
	return strings.EqualFold(m.StoreType, other.StoreType) &&
		m.Tag == other.Tag &&
		intPtrEqual(m.Size, other.Size) &&
		intPtrEqual(m.Precision, other.Precision) &&
		intPtrEqual(m.Scale, other.Scale) &&
		m.Unicode == other.Unicode &&
		m.FixedLength == other.FixedLength
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// String returns the canonical store type name.
func (m *StoreMapping) String() string {
	return m.StoreType
}
