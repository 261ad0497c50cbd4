package hrom

import "iter"

// All yields every key/value pair in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.a.root == nilSlot {
			return
		}
		s := m.a.minSlot(m.a.root)
		for s != nilSlot {
			if !yield(m.a.data[s].key, m.a.data[s].val) {
				return
			}
			s = m.a.successor(s)
		}
	}
}

// Ascend yields every pair with key >= from, in ascending order.
func (m *Map[K, V]) Ascend(from K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s := m.a.lowerBound(from)
		for s != nilSlot {
			if !yield(m.a.data[s].key, m.a.data[s].val) {
				return
			}
			s = m.a.successor(s)
		}
	}
}

// Descend yields every pair with key <= from, in descending order.
func (m *Map[K, V]) Descend(from K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s := m.a.upperBound(from)
		if s == nilSlot {
			if m.a.root == nilSlot {
				return
			}
			s = m.a.maxSlot(m.a.root)
		} else {
			s = m.a.predecessor(s)
		}
		for s != nilSlot {
			if !yield(m.a.data[s].key, m.a.data[s].val) {
				return
			}
			s = m.a.predecessor(s)
		}
	}
}

// Range yields every pair whose key falls between lo and hi, with
// inclusivity controlled independently on each end.
func (m *Map[K, V]) Range(lo, hi K, loIncl, hiIncl bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var s uint32
		if loIncl {
			s = m.a.lowerBound(lo)
		} else {
			s = m.a.upperBound(lo)
		}
		for s != nilSlot {
			c := m.a.cmp(m.a.data[s].key, hi)
			if c > 0 || (c == 0 && !hiIncl) {
				return
			}
			if !yield(m.a.data[s].key, m.a.data[s].val) {
				return
			}
			s = m.a.successor(s)
		}
	}
}

// First returns the smallest key/value pair, if any.
func (m *Map[K, V]) First() (k K, v V, ok bool) {
	if m.a.root == nilSlot {
		return k, v, false
	}
	s := m.a.minSlot(m.a.root)
	return m.a.data[s].key, m.a.data[s].val, true
}

// Last returns the largest key/value pair, if any.
func (m *Map[K, V]) Last() (k K, v V, ok bool) {
	if m.a.root == nilSlot {
		return k, v, false
	}
	s := m.a.maxSlot(m.a.root)
	return m.a.data[s].key, m.a.data[s].val, true
}
