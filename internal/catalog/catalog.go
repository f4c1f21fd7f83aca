package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schemakit/typemap/internal/typemap"
)

// Catalog is the pair of static indices over mapping entries.
//
// Both indices are populated once by New and never mutated afterward, so a
// Catalog is safe for concurrent reads without locking. Lookup absence is a
// normal not-found result, never a failure.
type Catalog struct {
	byName map[string]*typemap.StoreMapping
	byTag  map[typemap.Tag]*typemap.StoreMapping
}

// New builds the catalog from the static entry tables.
func New() *Catalog {
	byName := make(map[string]*typemap.StoreMapping, len(storeNameEntries))
	for name, entry := range storeNameEntries {
		byName[name] = entry
	}
	byTag := make(map[typemap.Tag]*typemap.StoreMapping, len(tagEntries))
	for tag, entry := range tagEntries {
		byTag[tag] = entry
	}
	return &Catalog{byName: byName, byTag: byTag}
}

// LookupByName returns the entry registered under a store type name.
// Matching is case-insensitive via Normalize. The full given name is looked
// up as-is; callers wanting base-name fallback look up BaseName(name)
// themselves.
func (c *Catalog) LookupByName(name string) (*typemap.StoreMapping, bool) {
	entry, ok := c.byName[Normalize(name)]
	return entry, ok
}

// LookupByTag returns the entry natively mapping a value type tag.
func (c *Catalog) LookupByTag(tag typemap.Tag) (*typemap.StoreMapping, bool) {
	entry, ok := c.byTag[tag]
	return entry, ok
}

// StringTemplate returns the sized text template for the given encoding and
// length-mode: char, varchar, nchar, or nvarchar.
func (c *Catalog) StringTemplate(unicode, fixedLength bool) *typemap.StoreMapping {
	switch {
	case unicode && fixedLength:
		return fixedUnicodeStringEntry
	case unicode:
		return variableUnicodeStringEntry
	case fixedLength:
		return fixedAnsiStringEntry
	default:
		return variableAnsiStringEntry
	}
}

// UnboundedString returns the "(max)" text entry for the given encoding.
func (c *Catalog) UnboundedString(unicode bool) *typemap.StoreMapping {
	if unicode {
		return maxUnicodeStringEntry
	}
	return maxAnsiStringEntry
}

// BytesTemplate returns the sized binary template: binary or varbinary.
func (c *Catalog) BytesTemplate(fixedLength bool) *typemap.StoreMapping {
	if fixedLength {
		return fixedBytesEntry
	}
	return variableBytesEntry
}

// UnboundedBytes returns the varbinary(max) entry.
func (c *Catalog) UnboundedBytes() *typemap.StoreMapping {
	return maxBytesEntry
}

// RowVersion returns the fixed 8-byte concurrency token entry.
func (c *Catalog) RowVersion() *typemap.StoreMapping {
	return rowversionEntry
}

// Names returns every registered store name in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tags returns every indexed value type tag in ascending order.
func (c *Catalog) Tags() []typemap.Tag {
	tags := make([]typemap.Tag, 0, len(c.byTag))
	for tag := range c.byTag {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Listing renders the name index as a stable, human-readable table: one
// line per registered name, sorted, with the entry's canonical store type
// and value tag. Used by the CLI catalog command and the golden test.
func (c *Catalog) Listing() string {
	var b strings.Builder
	for _, name := range c.Names() {
		entry := c.byName[name]
		fmt.Fprintf(&b, "%s => %s [%s]\n", name, entry.StoreType, entry.Tag)
	}
	return b.String()
}
