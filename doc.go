/*
Package hashdict provides a generic dictionary backed by an open-addressing
hash table with linear probing.

Basic usage:

	import "github.com/theflywheel/hashdict"

	d, err := hashdict.New[string, int](hashdict.StringHasher{})
	if err != nil {
		log.Fatal(err)
	}

	d.Add("apples", 3)
	if old, replaced := d.Add("apples", 5); replaced {
		fmt.Println("previous:", old)
	}

	if n, ok := d.Get("apples"); ok {
		fmt.Println("apples:", n)
	}

	for k, v := range d.All() {
		fmt.Println(k, v)
	}

Features:

  - Any key type, given a Hasher supplying hash and equality
  - xxHash64 hashers for string and []byte keys
  - Lazy deletion with tombstones, reused by later insertions
  - Prime table sizes, 101 slots by default
  - Automatic rehash when occupancy would exceed the load factor (0.5)
  - One-shot key and value iterators plus range-over-func sequences
  - Optional zap logger for rehash diagnostics and TOML configuration

Implementation Details:

Each slot of the backing array is empty, occupied or a tombstone. A key's
home slot is its hash modulo the capacity; lookups walk forward from there,
wrapping at the end, skipping tombstones and stopping at the first empty
slot. Insertions reuse the first tombstone passed on the way.

Occupancy counts both live entries and tombstones. Before an insertion
would consume an empty slot and push occupancy above the load factor, the
table is rebuilt at the next prime at least twice its capacity. Only live
entries are copied, so a rebuild also clears out every tombstone.

A Dictionary is not safe for concurrent use; callers sharing one between
goroutines must provide their own locking.
*/
package hashdict
