// Package testutil provides small helpers shared by package tests.
package testutil

// Int returns a pointer to v, for optional facet fields.
func Int(v int) *int {
	return &v
}

// Bool returns a pointer to v, for tri-state flags.
func Bool(v bool) *bool {
	return &v
}
