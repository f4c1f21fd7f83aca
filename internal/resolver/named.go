package resolver

import (
	"github.com/schemakit/typemap/internal/typemap"
)

// NamedTypeFactory constructs a specialized mapping for an external named
// value type. The factory receives the identifier exactly as the caller
// spelled it; the registry match itself is case-insensitive.
//
// Factories plug in domain-specific value types (spatial, hierarchical)
// without widening the core catalog. The engine owns none of a factory's
// internals and calls it only when precedence reaches the named-type rule:
// an explicit store name or an exact value-type match still wins.
type NamedTypeFactory func(identifier string) *typemap.StoreMapping

// NamedTypes returns the registered identifiers in normalized form.
// Introspection only; the registry itself stays read-only.
func (r *Resolver) NamedTypes() []string {
	names := make([]string, 0, len(r.named))
	for name := range r.named {
		names = append(names, name)
	}
	return names
}
