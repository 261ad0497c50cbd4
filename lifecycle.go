// Package hrom implements a handle-stable realtime ordered map: an
// ordered associative container backed by a Weak AVL (WAVL) rank-balanced
// tree over an index-addressed slot arena. Every element lives at a
// stable integer slot that survives grows of the backing storage, so a
// Handle obtained from Insert or Find stays valid until the entry it
// names is removed.
package hrom

// Map is an ordered map from K to V with O(log N) worst-case Insert,
// Find and Remove, iterated in key order by Ascend/Descend/All.
//
// A Map is not safe for concurrent use; callers must serialize access
// themselves, the same way the rest of this package's ancestry assumes a
// single owner per container.
type Map[K any, V any] struct {
	a arena[K, V]
}

// New constructs a Map ordered by cmp, a three-way comparator: negative
// when a < b, zero when equal, positive when a > b. New returns
// ErrNilComparator if cmp is nil. The map's backing storage grows
// without bound as entries are added.
func New[K any, V any](cmp func(a, b K) int) (*Map[K, V], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}
	m := &Map[K, V]{a: newArena[K, V](cmp, 0)}
	return m, nil
}

// NewWithCapacityLimit is New with a hard ceiling on the number of slots
// the map's arena will ever allocate (including the sentinel slot).
// Operations that would otherwise grow the arena past maxSlots instead
// report StatusInsertError / ErrNoAllocator, the Go expression of
// spec.md's "no allocator callback installed" outcome.
func NewWithCapacityLimit[K any, V any](cmp func(a, b K) int, maxSlots int) (*Map[K, V], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}
	if maxSlots < 1 {
		return nil, ErrArgError
	}
	m := &Map[K, V]{a: newArena[K, V](cmp, 0)}
	m.a.maxCap = maxSlots
	return m, nil
}

// Len returns the number of entries currently stored.
func (m *Map[K, V]) Len() int { return m.a.count }

// Reserve grows the backing arrays so at least n more inserts can proceed
// without a further grow. It never shrinks the map. It reports
// ErrNoAllocator, without growing, if n more entries cannot fit under a
// capacity limit installed via NewWithCapacityLimit.
func (m *Map[K, V]) Reserve(n int) error {
	if n <= 0 {
		return nil
	}
	target := len(m.a.nodes) + n
	if m.a.maxCap > 0 && target > m.a.maxCap {
		if m.a.count+1+n > m.a.maxCap {
			return ErrNoAllocator
		}
		target = m.a.maxCap
	}
	m.a.growTo(target)
	return nil
}

// Clear empties the map. The backing arrays are released; capacity is not
// retained, matching the teacher corpus's array-based Clear semantics. A
// capacity limit installed via NewWithCapacityLimit survives Clear.
func (m *Map[K, V]) Clear() {
	maxCap := m.a.maxCap
	m.a = newArena[K, V](m.a.cmp, 0)
	m.a.maxCap = maxCap
}

// Clone returns an independent copy of m: the same backing arrays,
// copied slot-for-slot, so the clone's tree topology and handles-by-slot
// layout match the original exactly. This is the Go expression of the
// storage plan's single-block "copy(dst, src, alloc)" lifecycle
// operation, adapted to three parallel slices instead of one byte block.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := &Map[K, V]{a: arena[K, V]{
		cmp:      m.a.cmp,
		freeHead: m.a.freeHead,
		len:      m.a.len,
		count:    m.a.count,
		root:     m.a.root,
		maxCap:   m.a.maxCap,
	}}
	out.a.data = append([]entry[K, V](nil), m.a.data...)
	out.a.nodes = append([]node(nil), m.a.nodes...)
	out.a.parity.words = append([]uint64(nil), m.a.parity.words...)
	return out
}

// Footprint reports the current byte cost of the backing storage.
func (m *Map[K, V]) Footprint() Footprint { return m.a.footprint() }
