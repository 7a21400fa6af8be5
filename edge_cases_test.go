package hashdict_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theflywheel/hashdict"
)

// TestVariousSizes tests different combinations of key and value sizes
func TestVariousSizes(t *testing.T) {
	testCases := []struct {
		name      string
		keySize   int
		valueSize int
	}{
		{"Small_Keys_Small_Values", 4, 4},
		{"Small_Keys_Large_Values", 4, 1024},
		{"Large_Keys_Small_Values", 256, 4},
		{"Large_Keys_Large_Values", 256, 1024},
		{"Tiny_Keys_Values", 1, 1},
		{"Empty_Key", 0, 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := hashdict.New[[]byte, []byte](hashdict.BytesHasher{})
			require.NoError(t, err)

			key := make([]byte, tc.keySize)
			value := make([]byte, tc.valueSize)
			for i := range key {
				key[i] = byte(i % 256)
			}
			for i := range value {
				value[i] = byte((i + 128) % 256)
			}

			d.Add(key, value)

			// Lookups compare by content, not by slice identity.
			lookup := bytes.Clone(key)
			got, found := d.Get(lookup)
			require.True(t, found)
			require.True(t, bytes.Equal(got, value),
				"value mismatch for key size %d and value size %d", tc.keySize, tc.valueSize)
		})
	}
}

// TestResizing tests that the table keeps every entry as it grows
func TestResizing(t *testing.T) {
	d, err := hashdict.New[[]byte, []byte](hashdict.BytesHasher{})
	require.NoError(t, err)

	const numEntries = 5000
	keyFor := func(i int) []byte {
		key := make([]byte, 8)
		for j := range key {
			key[j] = byte((i >> (8 * (j % 4))) + j)
		}
		return key
	}
	valueFor := func(i int) []byte {
		value := make([]byte, 8)
		for j := range value {
			value[j] = byte((i + j + 128) % 256)
		}
		return value
	}

	for i := 0; i < numEntries; i++ {
		d.Add(keyFor(i), valueFor(i))

		got, found := d.Get(keyFor(i))
		require.True(t, found, "entry %d not found immediately after insertion", i)
		require.Equal(t, valueFor(i), got)
	}
	require.Greater(t, d.Stats().Resizes, 1)

	for i := 0; i < numEntries; i += numEntries / 100 {
		got, found := d.Get(keyFor(i))
		require.True(t, found, "entry %d not found after all insertions", i)
		require.Equal(t, valueFor(i), got)
	}
}

// TestEmptyValue tests storing and retrieving zero-length values
func TestEmptyValue(t *testing.T) {
	d, err := hashdict.New[[]byte, []byte](hashdict.BytesHasher{})
	require.NoError(t, err)

	key := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	d.Add(key, []byte{})

	got, found := d.Get(key)
	require.True(t, found)
	require.Empty(t, got)
}

func TestComparableKeys(t *testing.T) {
	type point struct{ x, y int }

	d, err := hashdict.New[point, string](hashdict.NewComparableHasher[point]())
	require.NoError(t, err)

	d.Add(point{1, 2}, "a")
	d.Add(point{2, 1}, "b")

	v, ok := d.Get(point{1, 2})
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.False(t, d.Contains(point{3, 3}))

	var zeroSeeded hashdict.ComparableHasher[point]
	require.Equal(t, zeroSeeded.Hash(point{1, 2}), zeroSeeded.Hash(point{1, 2}))
}

func TestRemoveAllThenReinsert(t *testing.T) {
	d, err := hashdict.New[int, int](hashdict.NewComparableHasher[int](), hashdict.WithCapacity(11))
	require.NoError(t, err)

	for round := 0; round < 20; round++ {
		for i := 0; i < 5; i++ {
			d.Add(i+round*5, i)
		}
		for i := 0; i < 5; i++ {
			_, ok := d.Remove(i + round*5)
			require.True(t, ok)
		}
		require.True(t, d.IsEmpty())
		require.LessOrEqual(t, d.LoadFactor(), hashdict.DefaultMaxLoadFactor)
	}
}
