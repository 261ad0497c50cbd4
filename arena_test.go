package hrom

import "testing"

func TestAllocSlotNeverReturnsSentinel(t *testing.T) {
	a := newArena[int, int](intCmp, 0)
	seen := map[uint32]bool{}
	for i := 0; i < 50; i++ {
		s, err := a.allocSlot()
		if err != nil {
			t.Fatalf("allocSlot: %v", err)
		}
		if s == nilSlot {
			t.Fatalf("allocSlot returned sentinel slot 0")
		}
		if seen[s] {
			t.Fatalf("allocSlot returned slot %d twice without a free in between", s)
		}
		seen[s] = true
	}
}

func TestFreeListReuseIsLIFO(t *testing.T) {
	a := newArena[int, int](intCmp, 0)
	s1, _ := a.allocSlot()
	s2, _ := a.allocSlot()
	a.freeSlot(s2)
	a.freeSlot(s1)

	r1, _ := a.allocSlot()
	if r1 != s1 {
		t.Fatalf("expected LIFO reuse to return %d first, got %d", s1, r1)
	}
	r2, _ := a.allocSlot()
	if r2 != s2 {
		t.Fatalf("expected LIFO reuse to return %d second, got %d", s2, r2)
	}
}

func TestGrowPreservesExistingSlots(t *testing.T) {
	a := newArena[int, int](intCmp, 0)
	var slots []uint32
	for i := 0; i < 10; i++ {
		s, _ := a.allocSlot()
		a.data[s] = entry[int, int]{key: i, val: i * i}
		slots = append(slots, s)
	}
	for i, s := range slots {
		if a.data[s].val != i*i {
			t.Fatalf("slot %d lost its data across grows: got %d want %d", s, a.data[s].val, i*i)
		}
	}
}

func TestFootprintReportsNonZeroAfterInserts(t *testing.T) {
	m, _ := New[int, int](intCmp)
	for i := 0; i < 100; i++ {
		m.Upsert(i, i)
	}
	fp := m.Footprint()
	if fp.Len != 100 {
		t.Fatalf("expected Footprint.Len=100, got %d", fp.Len)
	}
	if fp.TotalBytes == 0 {
		t.Fatalf("expected non-zero TotalBytes")
	}
	if fp.TotalBytes != fp.DataBytes+fp.NodeBytes+fp.ParityBytes {
		t.Fatalf("TotalBytes should be the sum of the three component sizes")
	}
}
