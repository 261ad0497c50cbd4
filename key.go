package hrom

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ByteKey is a ready-made ordered key type for use as the K type
// parameter of Map, for callers who would otherwise have to write their
// own three-way comparator for raw bytes or primitive values.
//
// Integer encoding policy
// -----------------------
// Every integer constructor produces an 8-byte big-endian representation
// with an offset of 1<<63 added before encoding, so lexicographic byte
// comparison of ByteKeys matches numeric ordering of the original values
// regardless of signedness or source width: FromInt32(x) and
// FromInt64(x) compare equal for the same numeric x. The one exception is
// FromUint64 for values of 1<<63 and above, which wrap (see FromUint64).
type ByteKey []byte

// FromBytes returns a copy of b as a ByteKey. A nil b yields an empty
// (non-nil) ByteKey.
func FromBytes(b []byte) ByteKey {
	if b == nil {
		return []byte{}
	}
	kb := make([]byte, len(b))
	copy(kb, b)
	return ByteKey(kb)
}

// FromString returns a ByteKey built from s after normalizing it to
// Unicode NFC, so that canonically equivalent strings produce equal keys.
func FromString(s string) ByteKey {
	return FromBytes([]byte(norm.NFC.String(s)))
}

const int64Offset = uint64(1) << 63

func encodeOffset(u uint64) ByteKey {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u)
	return FromBytes(b[:])
}

// FromInt64 converts an int64 to an order-preserving 8-byte ByteKey.
func FromInt64(i int64) ByteKey { return encodeOffset(uint64(i) + int64Offset) }

// FromInt32 converts an int32 to an order-preserving 8-byte ByteKey.
func FromInt32(i int32) ByteKey { return encodeOffset(uint64(int64(i)) + int64Offset) }

// FromInt converts an int to an order-preserving 8-byte ByteKey.
func FromInt(i int) ByteKey { return encodeOffset(uint64(int64(i)) + int64Offset) }

// FromUint64 converts a uint64 to an 8-byte ByteKey. Order is preserved
// for values below 1<<63; a larger u wraps under the offset and encodes
// the same as FromInt64(int64(u)), sorting before every non-negative key.
func FromUint64(u uint64) ByteKey { return encodeOffset(u + int64Offset) }

// FromUint32 converts a uint32 to an order-preserving 8-byte ByteKey.
func FromUint32(u uint32) ByteKey { return encodeOffset(uint64(u) + int64Offset) }

// Bytes returns a copy of the key's bytes.
func (k ByteKey) Bytes() []byte {
	if k == nil {
		return nil
	}
	b := make([]byte, len(k))
	copy(b, k)
	return b
}

// Clone returns an independent copy of k.
func (k ByteKey) Clone() ByteKey {
	if k == nil {
		return nil
	}
	return ByteKey(k.Bytes())
}

// String renders k as uppercase hex byte tuples, e.g. "[01,AB,00]".
func (k ByteKey) String() string {
	if len(k) == 0 {
		return "[]"
	}
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	sb.WriteByte('[')
	for i, b := range k {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0x0F])
	}
	sb.WriteByte(']')
	return sb.String()
}

// IsEmpty reports whether k has zero length.
func (k ByteKey) IsEmpty() bool { return len(k) == 0 }

// Equal reports whether k and other have identical contents.
func (k ByteKey) Equal(other ByteKey) bool {
	return k.Compare(other) == 0
}

// Compare is the three-way comparator ByteKey satisfies for use with New:
// negative if k < other, zero if equal, positive if k > other. Shorter
// keys compare before longer keys that share their full prefix.
func (k ByteKey) Compare(other ByteKey) int {
	n := len(k)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if k[i] != other[i] {
			if k[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(k) < len(other):
		return -1
	case len(k) > len(other):
		return 1
	default:
		return 0
	}
}

// CompareByteKeys is a package-level comparator suitable for
// New[ByteKey, V](CompareByteKeys), for callers who prefer a function
// value over a method value.
func CompareByteKeys(a, b ByteKey) int { return a.Compare(b) }
