package hashdict

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Dictionary maps keys to values using an open-addressing table with linear
// probing. Deleted entries leave tombstones behind so that lookup chains for
// later keys stay intact; tombstones are discarded when the table is
// rebuilt.
//
// A Dictionary is not safe for concurrent use. The zero value is not
// usable; construct one with New.
type Dictionary[K, V any] struct {
	hasher Hasher[K]
	slots  []slot[K, V]
	// size counts occupied slots, used counts occupied and tombstone slots.
	size          int
	used          int
	maxLoadFactor float64
	resizes       int
	logger        *zap.Logger
}

// Stats is a snapshot of a Dictionary's bookkeeping counters.
type Stats struct {
	Size       int
	Capacity   int
	Used       int
	Tombstones int
	Resizes    int
}

// New creates an empty dictionary that hashes and compares keys with h.
func New[K, V any](h Hasher[K], opts ...Option) (*Dictionary[K, V], error) {
	if h == nil {
		return nil, fmt.Errorf("%w: nil hasher", ErrInvalidConfig)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	return &Dictionary[K, V]{
		hasher:        h,
		slots:         make([]slot[K, V], nextPrime(o.capacity)),
		maxLoadFactor: o.maxLoadFactor,
		logger:        o.logger,
	}, nil
}

// NewWithConfig creates an empty dictionary from a decoded Config. Extra
// options are applied after the config.
func NewWithConfig[K, V any](h Hasher[K], cfg Config, opts ...Option) (*Dictionary[K, V], error) {
	return New[K, V](h, append(cfg.Options(), opts...)...)
}

// Add associates value with key. If key was already present its value is
// replaced in place and the previous value is returned with replaced set.
func (d *Dictionary[K, V]) Add(key K, value V) (old V, replaced bool) {
	i, found := d.findSlot(key)
	if found {
		s := &d.slots[i]
		old = s.value
		s.value = value
		return old, true
	}

	if i < 0 || (d.slots[i].state == slotEmpty && d.overloaded(d.used+1, len(d.slots))) {
		d.grow()
		i, _ = d.findSlot(key)
	}

	if d.slots[i].state == slotEmpty {
		d.used++
	}
	d.slots[i].fill(key, value)
	d.size++
	return old, false
}

// Remove deletes key and returns the value it held. The slot becomes a
// tombstone; the table never shrinks on removal.
func (d *Dictionary[K, V]) Remove(key K) (V, bool) {
	i := d.locate(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	s := &d.slots[i]
	removed := s.value
	s.bury()
	d.size--
	return removed, true
}

// Get returns the value stored under key.
func (d *Dictionary[K, V]) Get(key K) (V, bool) {
	i := d.locate(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	return d.slots[i].value, true
}

// Contains reports whether key is present.
func (d *Dictionary[K, V]) Contains(key K) bool {
	return d.locate(key) >= 0
}

// IsEmpty reports whether the dictionary holds no entries.
func (d *Dictionary[K, V]) IsEmpty() bool {
	return d.size == 0
}

// Size returns the number of live entries. Tombstones are not counted.
func (d *Dictionary[K, V]) Size() int {
	return d.size
}

// Capacity returns the number of slots in the backing array.
func (d *Dictionary[K, V]) Capacity() int {
	return len(d.slots)
}

// LoadFactor returns the fraction of slots that are not empty.
func (d *Dictionary[K, V]) LoadFactor() float64 {
	return float64(d.used) / float64(len(d.slots))
}

// Stats returns the current size, capacity, occupancy, tombstone and
// resize counters.
func (d *Dictionary[K, V]) Stats() Stats {
	return Stats{
		Size:       d.size,
		Capacity:   len(d.slots),
		Used:       d.used,
		Tombstones: d.used - d.size,
		Resizes:    d.resizes,
	}
}

// Clear removes every entry, keeping the current capacity.
func (d *Dictionary[K, V]) Clear() {
	clear(d.slots)
	d.size = 0
	d.used = 0
}

// String renders the entries in slot order, e.g. "map[a:1 b:2]".
func (d *Dictionary[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	for k, v := range d.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// homeIndex maps key onto [0, capacity).
func (d *Dictionary[K, V]) homeIndex(key K, capacity int) int {
	idx := int(int64(d.hasher.Hash(key)) % int64(capacity))
	if idx < 0 {
		idx += capacity
	}
	return idx
}

// findSlot walks the slots from key's home index. It returns the index of the
// occupied slot holding key with found set, or else the slot an insertion
// should use: the first tombstone passed, or the empty slot that ended the
// walk. It returns -1 if the table has neither.
func (d *Dictionary[K, V]) findSlot(key K) (int, bool) {
	n := len(d.slots)
	idx := d.homeIndex(key, n)
	reuse := -1

	for i := 0; i < n; i++ {
		s := &d.slots[idx]
		switch s.state {
		case slotEmpty:
			if reuse >= 0 {
				return reuse, false
			}
			return idx, false
		case slotOccupied:
			if d.hasher.Equal(s.key, key) {
				return idx, true
			}
		case slotTombstone:
			if reuse < 0 {
				reuse = idx
			}
		}
		idx++
		if idx == n {
			idx = 0
		}
	}
	return reuse, false
}

// locate returns the index of the occupied slot holding key, or -1.
func (d *Dictionary[K, V]) locate(key K) int {
	n := len(d.slots)
	idx := d.homeIndex(key, n)

	for i := 0; i < n; i++ {
		s := &d.slots[idx]
		if s.state == slotEmpty {
			return -1
		}
		if s.state == slotOccupied && d.hasher.Equal(s.key, key) {
			return idx
		}
		idx++
		if idx == n {
			idx = 0
		}
	}
	return -1
}

func (d *Dictionary[K, V]) overloaded(used, capacity int) bool {
	return float64(used)/float64(capacity) > d.maxLoadFactor
}

// grow rebuilds the table at the next prime at least twice the current
// capacity, doubling further until one more live entry fits under the
// load factor.
func (d *Dictionary[K, V]) grow() {
	capacity := nextPrime(2 * len(d.slots))
	for d.overloaded(d.size+1, capacity) {
		capacity = nextPrime(2 * capacity)
	}
	d.rehash(capacity)
}

var errTableFull = errors.New("hashdict: no free slot during rehash")

// rehash moves every live entry into a fresh array of the given capacity,
// dropping tombstones.
func (d *Dictionary[K, V]) rehash(capacity int) {
	old := d.slots
	tombstones := d.used - d.size

	d.slots = make([]slot[K, V], capacity)
	d.used = 0
	for i := range old {
		if !old[i].occupied() {
			continue
		}
		j, _ := d.findSlot(old[i].key)
		if j < 0 {
			panic(errTableFull)
		}
		d.slots[j].fill(old[i].key, old[i].value)
		d.used++
	}
	d.resizes++

	d.logger.Debug("rehashed table",
		zap.Int("old_capacity", len(old)),
		zap.Int("new_capacity", capacity),
		zap.Int("entries", d.size),
		zap.Int("tombstones_dropped", tombstones))
}
