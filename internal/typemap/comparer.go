package typemap

import (
	"bytes"

	"github.com/zeebo/xxh3"
)

// ValueComparer defines structural equality, hashing, and copying for stored
// values whose Go representation compares by reference.
//
// The default == semantics are wrong for array-like data: two byte slices
// with equal contents must compare equal, hash identically, and be
// deep-copied when handed back to callers so the stored value is never
// aliased.
type ValueComparer interface {
	// Equal reports structural equality of two values.
	Equal(a, b any) bool

	// Hash returns a structural hash consistent with Equal.
	Hash(v any) uint64

	// Copy returns a value that is safe to hand to callers: equal to v
	// but sharing no mutable storage with it.
	Copy(v any) any
}

// BytesComparer is the ValueComparer for []byte values.
//
// Non-[]byte inputs compare unequal, hash to zero, and copy through
// unchanged; the comparer is only ever attached to byte-sequence mappings.
type BytesComparer struct{}

var _ ValueComparer = BytesComparer{}

// Equal reports content equality of two byte slices.
func (BytesComparer) Equal(a, b any) bool {
	ab, aok := a.([]byte)
	bb, bok := b.([]byte)
	if !aok || !bok {
		return false
	}
	return bytes.Equal(ab, bb)
}

// Hash returns the xxh3 hash of the slice contents.
func (BytesComparer) Hash(v any) uint64 {
	b, ok := v.([]byte)
	if !ok {
		return 0
	}
	return xxh3.Hash(b)
}

// Copy returns an independent copy of the slice. Nil stays nil.
func (BytesComparer) Copy(v any) any {
	b, ok := v.([]byte)
	if !ok || b == nil {
		return v
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
