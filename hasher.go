package hashdict

import (
	"bytes"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher is the hash/equality contract of a key type. Keys that are Equal
// must hash identically. The dictionary consumes a Hasher and never
// redefines equality on its own.
//
// Keys must not be mutated after insertion in a way that changes their hash
// or equality; doing so leaves lookups for that key unspecified.
type Hasher[K any] interface {
	Hash(key K) uint64
	Equal(a, b K) bool
}

// StringHasher hashes string keys with xxHash64.
type StringHasher struct{}

// Hash returns the xxHash64 of key.
func (StringHasher) Hash(key string) uint64 { return xxhash.Sum64String(key) }

// Equal reports whether a and b are the same string.
func (StringHasher) Equal(a, b string) bool { return a == b }

// BytesHasher hashes byte slice keys by content with xxHash64. The
// dictionary stores the slice it was given, so callers must not modify a
// key slice after handing it to Add.
type BytesHasher struct{}

// Hash returns the xxHash64 of key's contents.
func (BytesHasher) Hash(key []byte) uint64 { return xxhash.Sum64(key) }

// Equal reports whether a and b hold the same bytes.
func (BytesHasher) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// processSeed backs ComparableHasher values built without
// NewComparableHasher.
var processSeed = maphash.MakeSeed()

// ComparableHasher works for any comparable key type using the runtime's
// hash for that type. The zero value uses a per-process seed.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHasher returns a randomly seeded ComparableHasher.
func NewComparableHasher[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{seed: maphash.MakeSeed()}
}

// Hash returns the runtime hash of key under h's seed.
func (h ComparableHasher[K]) Hash(key K) uint64 {
	if h.seed == (maphash.Seed{}) {
		return maphash.Comparable(processSeed, key)
	}
	return maphash.Comparable(h.seed, key)
}

// Equal reports whether a == b.
func (ComparableHasher[K]) Equal(a, b K) bool { return a == b }

// HasherFunc adapts a pair of functions to the Hasher interface.
type HasherFunc[K any] struct {
	HashFn  func(K) uint64
	EqualFn func(a, b K) bool
}

// Hash calls f.HashFn.
func (f HasherFunc[K]) Hash(key K) uint64 { return f.HashFn(key) }

// Equal calls f.EqualFn.
func (f HasherFunc[K]) Equal(a, b K) bool { return f.EqualFn(a, b) }
