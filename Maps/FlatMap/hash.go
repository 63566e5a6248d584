package FlatMap

import (
	"unsafe"

	"github.com/cespare/xxhash"
	Go_Cols "github.com/g-m-twostay/go-cols"
)

// HashString is a ready-made hash function for string keys.
func HashString(s string) uint64 {
	if h := xxhash.Sum64String(s); h != 0 {
		return h
	}
	return 1 << 63
}

// HashBytes is a ready-made hash function for byte-slice derived keys.
func HashBytes(b []byte) uint64 {
	if h := xxhash.Sum64(b); h != 0 {
		return h
	}
	return 1 << 63
}

// HashOf returns a hash function for K based on its memory content, seeded
// by seed. Like Go_Cols.Hasher.HashAny this reads the raw bytes of the
// value, so K shouldn't contain pointers or strings; use HashString or your
// own function for those.
func HashOf[K comparable](seed Go_Cols.Hasher) func(K) uint64 {
	return func(k K) uint64 {
		if h := uint64(seed.HashMem(unsafe.Pointer(&k), unsafe.Sizeof(k))); h != 0 {
			return h
		}
		return 1 << 63
	}
}
