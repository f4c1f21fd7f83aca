// Package typemap provides the foundational types for SQL Server storage
// type resolution.
//
// This package contains type definitions only. All other internal packages
// import typemap; typemap imports nothing internal. This ensures the mapping
// model remains the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - StoreMapping values are immutable templates. Parameterization goes
//     through WithFacets, which clones; templates are never mutated in place.
//   - Value-type identity is the Tag enum, not reflection. TagOf classifies
//     concrete Go values for hosts that hold values rather than tags.
//   - Byte-sequence mappings carry a ValueComparer so equal-content slices
//     compare equal and are deep-copied on read, never aliased.
package typemap
