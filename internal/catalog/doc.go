// Package catalog holds the static SQL Server storage type catalog: two
// immutable indices over mapping entries (by store name, by value-type tag)
// and the set of store names that are invalid without a length qualifier.
//
// The catalog is configuration data, not logic. It is built once by New and
// never mutated afterward, so a single Catalog may be read concurrently
// without synchronization.
package catalog
