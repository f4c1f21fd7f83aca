package resolver

import (
	"log/slog"

	"github.com/schemakit/typemap/internal/catalog"
	"github.com/schemakit/typemap/internal/typemap"
)

// Size ceilings and key-sizing defaults for synthesized text and binary
// mappings. Ceilings are the largest finite lengths the store supports;
// key defaults reflect the index key-length limit (900 bytes, so 450
// two-byte characters for Unicode text).
const (
	maxAnsiSize    = 8000
	maxUnicodeSize = 4000
	maxBytesSize   = 8000

	ansiKeySize    = 900
	unicodeKeySize = 450
	bytesKeySize   = 900
)

// Resolver is the resolution engine over an immutable catalog.
//
// A Resolver is built once and read-only afterward: the catalog and the
// named-type registry are populated in New and never mutated, so a shared
// Resolver is safe for concurrent callers. Callers must not attempt to
// reconfigure a shared instance.
type Resolver struct {
	catalog *catalog.Catalog
	named   map[string]NamedTypeFactory
}

// Option configures a Resolver at construction time.
type Option func(*Resolver)

// WithNamedType registers a factory for an external named value type.
// The identifier is matched case-insensitively against
// Description.NamedType. Registering the same identifier twice keeps the
// last factory.
func WithNamedType(identifier string, factory NamedTypeFactory) Option {
	return func(r *Resolver) {
		r.named[catalog.Normalize(identifier)] = factory
	}
}

// New builds a Resolver with a freshly constructed catalog.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		catalog: catalog.New(),
		named:   make(map[string]NamedTypeFactory),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog exposes the underlying catalog for introspection (listings,
// direct lookups). Read-only.
func (r *Resolver) Catalog() *catalog.Catalog {
	return r.catalog
}

// Resolve maps a Description to a concrete StoreMapping.
//
// A nil result signals "defer to the fallback resolver" and is a normal
// outcome, not an error. Precedence is fixed; the first matching rule wins.
func (r *Resolver) Resolve(d Description) *typemap.StoreMapping {
	base := d.baseName()

	// A float32 stored under a double-precision-capable column name with
	// a small size hint is still intended as single precision.
	if m := r.resolveNarrowFloat(d, base); m != nil {
		return m
	}

	if d.StoreType != "" || base != "" {
		if entry, found := r.lookupName(d.StoreType, base); found {
			return r.applyNameMatch(d, entry)
		}
		// Name given but unknown here: fall through. The value type may
		// still resolve, and an unknown name alone is the fallback
		// resolver's business.
	}

	if d.Tag != typemap.TagNone {
		if entry, ok := r.catalog.LookupByTag(d.Tag); ok {
			return entry
		}
	}

	if m := r.resolveNamedType(d); m != nil {
		return m
	}

	switch d.Tag {
	case typemap.TagString:
		return r.synthesizeText(d)
	case typemap.TagBytes:
		return r.synthesizeBytes(d)
	}

	return nil
}

// resolveNarrowFloat handles the single-precision special case: value type
// float32, a size hint of at most 24 bits, and a requested base name of
// "float" or "double precision".
func (r *Resolver) resolveNarrowFloat(d Description, base string) *typemap.StoreMapping {
	if d.Tag != typemap.TagFloat32 || d.Size == nil || *d.Size > 24 {
		return nil
	}
	normalized := catalog.Normalize(base)
	if normalized != "float" && normalized != "double precision" {
		return nil
	}
	entry, ok := r.catalog.LookupByTag(typemap.TagFloat32)
	if !ok {
		return nil
	}
	slog.Debug("narrow float resolved to single precision",
		"store_type", base,
		"size", *d.Size,
	)
	return entry
}

// lookupName tries the full requested name first, then its base.
func (r *Resolver) lookupName(full, base string) (*typemap.StoreMapping, bool) {
	if full != "" {
		if entry, ok := r.catalog.LookupByName(full); ok {
			return entry, true
		}
	}
	if base != "" {
		if entry, ok := r.catalog.LookupByName(base); ok {
			return entry, true
		}
	}
	return nil, false
}

// applyNameMatch finishes an explicit store name match: reject conflicting
// value types, then re-parameterize the entry with any requested facets so
// that resolving a previous resolution's name and facets reproduces an
// equivalent mapping.
func (r *Resolver) applyNameMatch(d Description, entry *typemap.StoreMapping) *typemap.StoreMapping {
	if d.Tag != typemap.TagNone && entry.Tag != typemap.TagNone && d.Tag != entry.Tag {
		// A nonsensical name/type combination ("bigint" for a bool) is
		// a configuration mistake, not something to paper over with the
		// fallback chain.
		slog.Debug("store name conflicts with value type",
			"store_type", entry.StoreType,
			"entry_tag", entry.Tag.String(),
			"requested_tag", d.Tag.String(),
		)
		return nil
	}

	switch entry.Postfix {
	case typemap.PostfixSize:
		if d.Size != nil && entry.Size == nil {
			return entry.WithFacets(typemap.FacetOverride{Size: d.Size})
		}
	case typemap.PostfixPrecisionScale:
		if d.Precision != nil {
			scale := entry.Scale
			if d.Scale != nil {
				scale = d.Scale
			}
			return entry.WithFacets(typemap.FacetOverride{Precision: d.Precision, Scale: scale})
		}
	}
	return entry
}

// resolveNamedType consults the registered factories for external value
// types outside the core catalog.
func (r *Resolver) resolveNamedType(d Description) *typemap.StoreMapping {
	if d.NamedType == "" || len(r.named) == 0 {
		return nil
	}
	factory, ok := r.named[catalog.Normalize(d.NamedType)]
	if !ok {
		return nil
	}
	return factory(d.NamedType)
}

// synthesizeText builds a text mapping from the description's encoding,
// length-mode, and sizing hints.
func (r *Resolver) synthesizeText(d Description) *typemap.StoreMapping {
	unicode := d.isUnicode()
	fixed := d.isFixedLength()

	ceiling, keyDefault := maxAnsiSize, ansiKeySize
	if unicode {
		ceiling, keyDefault = maxUnicodeSize, unicodeKeySize
	}

	size := effectiveSize(d, keyDefault)
	size = applyCeiling(size, ceiling, fixed)

	if size == nil {
		return r.catalog.UnboundedString(unicode)
	}

	m := r.catalog.StringTemplate(unicode, fixed).WithFacets(typemap.FacetOverride{Size: size})
	slog.Debug("synthesized text mapping",
		"store_type", m.StoreType,
		"unicode", unicode,
		"fixed", fixed,
	)
	return m
}

// synthesizeBytes builds a binary mapping. A rowversion role wins over all
// other facets: a concurrency token has a fixed 8-byte shape.
func (r *Resolver) synthesizeBytes(d Description) *typemap.StoreMapping {
	if d.RowVersion {
		return r.catalog.RowVersion()
	}

	fixed := d.isFixedLength()

	size := effectiveSize(d, bytesKeySize)
	size = applyCeiling(size, maxBytesSize, fixed)

	if size == nil {
		return r.catalog.UnboundedBytes()
	}

	m := r.catalog.BytesTemplate(fixed).WithFacets(typemap.FacetOverride{Size: size})
	slog.Debug("synthesized binary mapping",
		"store_type", m.StoreType,
		"fixed", fixed,
	)
	return m
}

// effectiveSize picks the requested size, falling back to the key-sizing
// default for key and index members, else unset (unbounded).
func effectiveSize(d Description, keyDefault int) *int {
	if d.Size != nil {
		size := *d.Size
		return &size
	}
	if d.Key {
		size := keyDefault
		return &size
	}
	return nil
}

// applyCeiling enforces the finite-size ceiling. A fixed-length request is
// clamped down to the ceiling; a variable-length request widens to
// unbounded instead, because clamping would silently truncate stored data
// while the max representation still holds the full value.
func applyCeiling(size *int, ceiling int, fixed bool) *int {
	if size == nil || *size <= ceiling {
		return size
	}
	if fixed {
		clamped := ceiling
		return &clamped
	}
	return nil
}
