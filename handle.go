package hrom

// Handle names one slot in a Map. It stays valid across further inserts
// and removes of other keys - only removing the entry the Handle itself
// names invalidates it. Handles returned by Find/Insert/Upsert carry a
// Status so callers can branch on Occupied/Vacant without a second error
// check. A Vacant handle still remembers the key it was looked up with,
// so OrInsert and InsertHandle can chain off it without a second lookup.
type Handle[K any, V any] struct {
	m      *Map[K, V]
	slot   uint32
	key    K
	status Status
}

// Status reports the outcome that produced this Handle.
func (h Handle[K, V]) Status() Status { return h.status }

// Valid reports whether the Handle refers to a live slot.
func (h Handle[K, V]) Valid() bool { return h.status == StatusOccupied && h.slot != nilSlot }

// Key returns the key stored at the handle's slot. Calling it on an
// invalid handle returns the zero value.
func (h Handle[K, V]) Key() K {
	if !h.Valid() {
		var zero K
		return zero
	}
	return h.m.a.data[h.slot].key
}

// Value returns the value stored at the handle's slot.
func (h Handle[K, V]) Value() V {
	if !h.Valid() {
		var zero V
		return zero
	}
	return h.m.a.data[h.slot].val
}

// SetValue overwrites the value stored at the handle's slot. It reports
// ErrInvalidHandle if the handle is not Occupied.
func (h Handle[K, V]) SetValue(v V) error {
	if !h.Valid() {
		return ErrInvalidHandle
	}
	h.m.a.data[h.slot].val = v
	return nil
}

// Next returns a handle to the in-order successor of h's entry.
func (h Handle[K, V]) Next() (Handle[K, V], bool) {
	if !h.Valid() {
		return Handle[K, V]{m: h.m, status: StatusArgError}, false
	}
	s := h.m.a.successor(h.slot)
	if s == nilSlot {
		return Handle[K, V]{m: h.m, status: StatusVacant}, false
	}
	return Handle[K, V]{m: h.m, slot: s, key: h.m.a.data[s].key, status: StatusOccupied}, true
}

// Prev returns a handle to the in-order predecessor of h's entry.
func (h Handle[K, V]) Prev() (Handle[K, V], bool) {
	if !h.Valid() {
		return Handle[K, V]{m: h.m, status: StatusArgError}, false
	}
	s := h.m.a.predecessor(h.slot)
	if s == nilSlot {
		return Handle[K, V]{m: h.m, status: StatusVacant}, false
	}
	return Handle[K, V]{m: h.m, slot: s, key: h.m.a.data[s].key, status: StatusOccupied}, true
}

// Find looks up key and returns a Handle describing the outcome. A
// Vacant handle carries no slot, but still remembers key so it can be
// chained into OrInsert or InsertHandle without a second lookup.
func (m *Map[K, V]) Find(key K) Handle[K, V] {
	s := m.a.findSlot(key)
	if s == nilSlot {
		return Handle[K, V]{m: m, key: key, status: StatusVacant}
	}
	return Handle[K, V]{m: m, slot: s, key: key, status: StatusOccupied}
}

// Get is the common-case lookup: the value and whether key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	s := m.a.findSlot(key)
	if s == nilSlot {
		var zero V
		return zero, false
	}
	return m.a.data[s].val, true
}

// InsertOrAssign adds key/val if key is not already present, or
// overwrites the existing value if it is. The returned Handle is
// Occupied on success; on allocator failure it is InsertError and err is
// ErrNoAllocator. The bool reports whether a new entry was created.
func (m *Map[K, V]) InsertOrAssign(key K, val V) (Handle[K, V], bool, error) {
	s, inserted, err := m.a.insert(key, val, true)
	if err != nil {
		return Handle[K, V]{m: m, key: key, status: StatusInsertError}, false, err
	}
	return Handle[K, V]{m: m, slot: s, key: key, status: StatusOccupied}, inserted, nil
}

// TryInsert adds key/val only if key is not already present. If key is
// already present, the stored value is left untouched and the returned
// Handle describes the existing entry. The bool reports whether a new
// entry was created.
func (m *Map[K, V]) TryInsert(key K, val V) (Handle[K, V], bool, error) {
	s, inserted, err := m.a.insert(key, val, false)
	if err != nil {
		return Handle[K, V]{m: m, key: key, status: StatusInsertError}, false, err
	}
	return Handle[K, V]{m: m, slot: s, key: key, status: StatusOccupied}, inserted, nil
}

// Insert is InsertOrAssign, dropping the allocator-failure error for
// callers of the unbounded (default) configuration, where it cannot
// occur.
func (m *Map[K, V]) Insert(key K, val V) (Handle[K, V], bool) {
	h, inserted, _ := m.InsertOrAssign(key, val)
	return h, inserted
}

// Upsert is InsertOrAssign without the inserted flag or error, for
// callers that only want the resulting handle.
func (m *Map[K, V]) Upsert(key K, val V) Handle[K, V] {
	h, _, _ := m.InsertOrAssign(key, val)
	return h
}

// SwapHandle exchanges *val with the record stored at key: on an
// Occupied outcome the previous stored value ends up in *val and the
// caller's value ends up stored; on a Vacant outcome *val is inserted as
// a new entry and left unchanged.
func (m *Map[K, V]) SwapHandle(key K, val *V) (Handle[K, V], error) {
	if s := m.a.findSlot(key); s != nilSlot {
		m.a.data[s].val, *val = *val, m.a.data[s].val
		return Handle[K, V]{m: m, slot: s, key: key, status: StatusOccupied}, nil
	}
	s, _, err := m.a.insert(key, *val, true)
	if err != nil {
		return Handle[K, V]{m: m, key: key, status: StatusInsertError}, err
	}
	return Handle[K, V]{m: m, slot: s, key: key, status: StatusVacant}, nil
}

// RemoveHandle removes the occupied slot h points at, returning its
// value and a Vacant handle for the same key. Calling it on an already
// Vacant or invalid handle is a no-op that returns the zero value.
func (h Handle[K, V]) RemoveHandle() (V, Handle[K, V]) {
	if !h.Valid() {
		var zero V
		return zero, Handle[K, V]{m: h.m, key: h.key, status: StatusVacant}
	}
	val, _ := h.m.a.remove(h.key)
	return val, Handle[K, V]{m: h.m, key: h.key, status: StatusVacant}
}

// OrInsert returns h unchanged if it is Occupied, otherwise inserts val
// under h's key and returns the resulting Handle. It reports
// StatusInsertError if growth was needed but the allocator failed.
func (m *Map[K, V]) OrInsert(h Handle[K, V], val V) (Handle[K, V], error) {
	if h.Valid() {
		return h, nil
	}
	s, _, err := m.a.insert(h.key, val, false)
	if err != nil {
		return Handle[K, V]{m: m, key: h.key, status: StatusInsertError}, err
	}
	return Handle[K, V]{m: m, slot: s, key: h.key, status: StatusOccupied}, nil
}

// InsertHandle unconditionally writes val into the slot h targets,
// inserting a new entry under h's key if h is not Occupied. It reports
// StatusInsertError if growth was needed but the allocator failed.
func (m *Map[K, V]) InsertHandle(h Handle[K, V], val V) (Handle[K, V], error) {
	if h.Valid() {
		m.a.data[h.slot].val = val
		return h, nil
	}
	s, _, err := m.a.insert(h.key, val, true)
	if err != nil {
		return Handle[K, V]{m: m, key: h.key, status: StatusInsertError}, err
	}
	return Handle[K, V]{m: m, slot: s, key: h.key, status: StatusOccupied}, nil
}

// Remove deletes key if present and returns its value.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	return m.a.remove(key)
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.a.findSlot(key) != nilSlot
}
