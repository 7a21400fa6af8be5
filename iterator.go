package hashdict

import (
	"errors"
	"iter"
)

// ErrExhausted is returned by an iterator's Next after its last element.
var ErrExhausted = errors.New("hashdict: iterator exhausted")

// cursor walks the occupied slots of one backing array in index order. It
// yields at most the number of entries live when it was created.
//
// Iterators are positional: adding or removing entries while one is in
// use may cause entries to be skipped or seen twice. A resize swaps in a
// new array, so an iterator created before it keeps reading the old one.
type cursor[K, V any] struct {
	slots     []slot[K, V]
	next      int
	remaining int
}

func (c *cursor[K, V]) hasNext() bool {
	return c.remaining > 0
}

func (c *cursor[K, V]) advance() (*slot[K, V], error) {
	if c.remaining <= 0 {
		return nil, ErrExhausted
	}
	for c.next < len(c.slots) && !c.slots[c.next].occupied() {
		c.next++
	}
	if c.next == len(c.slots) {
		c.remaining = 0
		return nil, ErrExhausted
	}
	s := &c.slots[c.next]
	c.next++
	c.remaining--
	return s, nil
}

// KeyIterator is a one-shot iterator over a dictionary's keys.
type KeyIterator[K, V any] struct {
	c cursor[K, V]
}

// KeyIterator returns an iterator over the keys in slot order.
func (d *Dictionary[K, V]) KeyIterator() *KeyIterator[K, V] {
	return &KeyIterator[K, V]{c: cursor[K, V]{slots: d.slots, remaining: d.size}}
}

// HasNext reports whether Next will return another key.
func (it *KeyIterator[K, V]) HasNext() bool {
	return it.c.hasNext()
}

// Next returns the next key, or ErrExhausted when there are none left.
func (it *KeyIterator[K, V]) Next() (K, error) {
	s, err := it.c.advance()
	if err != nil {
		var zero K
		return zero, err
	}
	return s.key, nil
}

// ValueIterator is a one-shot iterator over a dictionary's values.
type ValueIterator[K, V any] struct {
	c cursor[K, V]
}

// ValueIterator returns an iterator over the values in slot order.
func (d *Dictionary[K, V]) ValueIterator() *ValueIterator[K, V] {
	return &ValueIterator[K, V]{c: cursor[K, V]{slots: d.slots, remaining: d.size}}
}

// HasNext reports whether Next will return another value.
func (it *ValueIterator[K, V]) HasNext() bool {
	return it.c.hasNext()
}

// Next returns the next value, or ErrExhausted when there are none left.
func (it *ValueIterator[K, V]) Next() (V, error) {
	s, err := it.c.advance()
	if err != nil {
		var zero V
		return zero, err
	}
	return s.value, nil
}

// All returns a sequence of the key/value pairs in slot order.
func (d *Dictionary[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c := cursor[K, V]{slots: d.slots, remaining: d.size}
		for c.hasNext() {
			s, err := c.advance()
			if err != nil || !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Keys returns a sequence of the keys in slot order.
func (d *Dictionary[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range d.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns a sequence of the values in slot order.
func (d *Dictionary[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}
