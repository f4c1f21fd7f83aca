package resolver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/schemakit/typemap/internal/catalog"
	"github.com/schemakit/typemap/internal/typemap"
)

// UnqualifiedStoreTypeError reports a mapping whose store type name
// requires a length qualifier but carries none: a bare "varchar" resolved
// purely by name with no size anywhere in the chain.
//
// The failure is a configuration mistake surfaced at model-build time. It
// is deterministic: the same inputs fail identically on every call, so
// there are no retry semantics.
type UnqualifiedStoreTypeError struct {
	// StoreType is the offending unqualified name.
	StoreType string

	// Property is the bound property name, empty when unknown. The
	// distinction only changes the message, not the logic.
	Property string
}

// Error implements the error interface.
func (e *UnqualifiedStoreTypeError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf(
			"property %q uses unqualified store type %q; specify a length, for example %q or %q",
			e.Property, e.StoreType, e.StoreType+"(100)", e.StoreType+"(max)",
		)
	}
	return fmt.Sprintf(
		"unqualified store type %q; specify a length, for example %q or %q",
		e.StoreType, e.StoreType+"(100)", e.StoreType+"(max)",
	)
}

// IsUnqualifiedStoreType reports whether err is an
// UnqualifiedStoreTypeError. Uses errors.As to handle wrapped errors.
func IsUnqualifiedStoreType(err error) bool {
	var ue *UnqualifiedStoreTypeError
	return errors.As(err, &ue)
}

// Validate checks a resolved mapping before it is bound to a named
// property. It fails only when the mapping's full canonical name is a
// member of the disallowed unqualified-name set; synthesized sized
// mappings and "(max)" entries always pass.
func (r *Resolver) Validate(m *typemap.StoreMapping, property string) error {
	if m == nil {
		return nil
	}
	if !catalog.IsDisallowed(m.StoreType) {
		return nil
	}

	slog.Debug("rejecting unqualified store type",
		"store_type", m.StoreType,
		"property", property,
	)
	return &UnqualifiedStoreTypeError{StoreType: m.StoreType, Property: property}
}
