package FlatMap

// Element is one table slot: the cached 64-bit hash tag plus the pair.
// hash 0 marks an empty slot, so hash functions handed to the table must
// never return 0; the helpers in hash.go perturb a real 0 away. The zero
// value is an empty slot.
type Element[K comparable, V any] struct {
	hash uint64
	key  K
	val  V
}
