// Package resolver implements the storage type resolution engine.
//
// The engine turns a Description (a partial, possibly conflicting picture of
// a value: language type, requested store name, facets, key/rowversion
// roles) into a concrete StoreMapping, applying a fixed precedence order:
//
//  1. Narrow-float special case (float32 under a "float"/"double precision"
//     name with a size hint of 24 bits or less stays single precision)
//  2. Explicit store name match, guarded against conflicting value types
//  3. Exact value-type match
//  4. Registered named-type factory (spatial and similar external types)
//  5. Text synthesis with key sizing and overflow policy
//  6. Binary synthesis, including the rowversion concurrency token
//
// A nil result means "no specific answer here, consult the fallback
// resolver"; it is never an error. Resolution is a pure function of its
// inputs and the immutable catalog: no I/O, no mutation, deterministic,
// safe for concurrent callers.
//
// The only failure the package produces is UnqualifiedStoreTypeError from
// Validate, raised when a mapping was resolved from a bare length-requiring
// name such as "varchar" with no size anywhere in the chain.
package resolver
