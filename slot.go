package hashdict

// slotState tags one position in the backing array.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

func (s slotState) String() string {
	switch s {
	case slotEmpty:
		return "empty"
	case slotOccupied:
		return "occupied"
	case slotTombstone:
		return "tombstone"
	}
	return "unknown"
}

// slot is a single table cell. The key and value are only meaningful while
// state == slotOccupied; bury zeroes them when the cell becomes a
// tombstone.
type slot[K, V any] struct {
	state slotState
	key   K
	value V
}

func (s *slot[K, V]) occupied() bool {
	return s.state == slotOccupied
}

func (s *slot[K, V]) fill(key K, value V) {
	s.key = key
	s.value = value
	s.state = slotOccupied
}

// bury marks the slot deleted. The zero value overwrite lets the GC reclaim
// whatever the entry referenced; lookups never read a tombstone's payload.
func (s *slot[K, V]) bury() {
	var (
		zk K
		zv V
	)
	s.key = zk
	s.value = zv
	s.state = slotTombstone
}
