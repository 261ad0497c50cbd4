package hrom

import "testing"

func TestParityBitsGetSetClear(t *testing.T) {
	var p parityBits
	p.ensure(300)

	indices := []uint32{1, 63, 64, 127, 128, 191, 192, 255, 299}
	for _, i := range indices {
		if p.get(i) {
			t.Fatalf("bit %d should be clear initially", i)
		}
	}

	for _, i := range indices {
		p.set(i)
		if !p.get(i) {
			t.Fatalf("bit %d should be set after set()", i)
		}
	}

	for _, i := range []uint32{2, 60, 65, 129, 254} {
		if p.get(i) {
			t.Fatalf("bit %d should remain clear", i)
		}
	}

	for _, i := range indices {
		p.clear(i)
		if p.get(i) {
			t.Fatalf("bit %d should be clear after clear()", i)
		}
	}
}

func TestParityBitsSentinelAlwaysOdd(t *testing.T) {
	var p parityBits
	p.ensure(10)
	if !p.get(0) {
		t.Fatalf("sentinel slot 0 must report virtual parity 1 (odd)")
	}
}

func TestParityBitsTotalCount(t *testing.T) {
	var p parityBits
	p.ensure(64)
	if got := p.totalBitCount(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	p.set(10)
	p.set(20)
	p.set(10)
	if got := p.totalBitCount(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	p.clear(20)
	if got := p.totalBitCount(); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestParityBitsFlip(t *testing.T) {
	var p parityBits
	p.ensure(64)
	p.flip(5)
	if !p.get(5) {
		t.Fatalf("expected bit 5 set after flip")
	}
	p.flip(5)
	if p.get(5) {
		t.Fatalf("expected bit 5 clear after second flip")
	}
}

func TestParityBitsEnsureIdempotent(t *testing.T) {
	var p parityBits
	p.ensure(10)
	p.set(3)
	p.ensure(5) // shrink-request should be a no-op
	if !p.get(3) {
		t.Fatalf("ensure with smaller n must not lose data")
	}
	p.ensure(1000)
	if !p.get(3) {
		t.Fatalf("growing must preserve existing bits")
	}
}
