package hrom

import (
	set3 "github.com/TomTonic/Set3"
)

// KeySet returns a snapshot of every key currently stored in m, as a
// Set3 for fast membership testing and set algebra against other key
// collections. Mirrors the teacher corpus's GetAllValues/AllKeys, built
// on the same Set3 domain dependency.
func KeySet[K comparable, V any](m *Map[K, V]) *set3.Set3[K] {
	s := set3.EmptyWithCapacity[K](uint32(m.Len()))
	for k := range m.All() {
		s.Add(k)
	}
	return s
}

// Intersect returns the keys present in both a and b.
func Intersect[K comparable, V any](a, b *Map[K, V]) *set3.Set3[K] {
	small, large := a, b
	if small.Len() > large.Len() {
		small, large = large, small
	}
	result := set3.EmptyWithCapacity[K](uint32(small.Len()))
	for k := range small.All() {
		if large.ContainsKey(k) {
			result.Add(k)
		}
	}
	return result
}
