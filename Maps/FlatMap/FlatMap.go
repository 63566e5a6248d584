package FlatMap

import (
	"math/bits"

	Go_Cols "github.com/g-m-twostay/go-cols"
)

// FlatMap is an open addressing hash table over one contiguous slot array
// with Robin Hood insertion and backward-shift deletion. The capacity is
// always a power of two so probes wrap with a mask. An occupied slot is
// never farther from its home slot than it was forced to be at insertion
// time: an inserting probe that has traveled farther than a slot's occupant
// steals that slot and pushes the occupant onward, which bounds probe length
// variance and lets lookups stop early at any richer occupant.
// Loads above 7/8 trigger a doubling when the growth policy permits one;
// under Go_Cols.FixedCap the table instead fills to the last slot and then
// reports *FullError, which makes it usable as a genuinely fixed-capacity
// table. Pointers handed out by Get, Range and entries are valid only until
// the next insert, remove or resize on the same table.
// Not safe for concurrent use.
type FlatMap[K comparable, V any] struct {
	bkt  []Element[K, V]
	sz   int
	hf   func(K) uint64
	grow Go_Cols.Grower
}

// New returns a FlatMap sized to hold size pairs below the load threshold,
// hashing keys with hf and growing by doubling. hf must never return 0; the
// ready-made functions in this package guarantee that.
func New[K comparable, V any](hf func(K) uint64, size int) *FlatMap[K, V] {
	return NewGrow[K, V](hf, size, Go_Cols.DoubleCap)
}

// NewGrow is New with an explicit growth policy. Under Go_Cols.FixedCap the
// table is sized to exactly the next power of two >= size and never
// reallocates, so a size that is already a power of two gives a table of
// exactly size slots.
func NewGrow[K comparable, V any](hf func(K) uint64, size int, g Go_Cols.Grower) *FlatMap[K, V] {
	bl := 1
	if size > 1 {
		bl = 1 << bits.Len(uint(size-1))
	}
	if _, ok := g(bl, bl+1); ok { // growable tables get headroom below the load threshold
		for bl*7 < size*8 {
			bl <<= 1
		}
	}
	return &FlatMap[K, V]{bkt: make([]Element[K, V], bl), hf: hf, grow: g}
}

func (u *FlatMap[K, V]) mask() int {
	return len(u.bkt) - 1
}

func (u *FlatMap[K, V]) home(h uint64) int {
	return int(h) & u.mask()
}

// dist is the displacement of a slot at index i holding hash h: the probe
// distance from h's home slot to i.
func (u *FlatMap[K, V]) dist(i int, h uint64) int {
	return (i - u.home(h)) & u.mask()
}

// find the slot of k, or -1. The probe stops at an empty slot or at an
// occupant richer than the probe is long: had k been inserted it would have
// stolen that slot.
func (u *FlatMap[K, V]) find(h uint64, k K) int {
	for i, d := u.home(h), 0; ; i, d = (i+1)&u.mask(), d+1 {
		e := &u.bkt[i]
		if e.hash == 0 || u.dist(i, e.hash) < d {
			return -1
		}
		if e.hash == h && e.key == k {
			return i
		}
	}
}

// insert places e by Robin Hood probing from slot i at displacement d,
// swapping e into any slot whose occupant is richer and carrying the evicted
// occupant onward. Returns the slot where the originally incoming pair
// landed. The caller must have ruled out a duplicate key and a needed
// resize.
func (u *FlatMap[K, V]) insert(i, d int, e Element[K, V]) int {
	first := -1
	for {
		s := &u.bkt[i]
		if s.hash == 0 {
			*s = e
			if first < 0 {
				first = i
			}
			u.sz++
			return first
		}
		if sd := u.dist(i, s.hash); sd < d {
			if first < 0 {
				first = i
			}
			e, *s = *s, e
			d = sd
		}
		i, d = (i+1)&u.mask(), d+1
	}
}

// ensure makes room for one more pair, doubling the table when the load
// threshold would be crossed and the growth policy permits. Reports whether
// the table was rehashed. With growth denied the table may fill completely;
// only a truly full table errors.
func (u *FlatMap[K, V]) ensure() (bool, error) {
	if (u.sz+1)*8 <= len(u.bkt)*7 {
		return false, nil
	}
	next, ok := u.grow(len(u.bkt), len(u.bkt)*2)
	if !ok {
		if u.sz == len(u.bkt) {
			return false, &Go_Cols.FullError{Cap: len(u.bkt)}
		}
		return false, nil
	}
	if next < len(u.bkt)*2 {
		next = len(u.bkt) * 2
	}
	old := u.bkt
	u.bkt = make([]Element[K, V], 1<<bits.Len(uint(next-1)))
	u.sz = 0
	for i := range old {
		if old[i].hash != 0 {
			u.insert(u.home(old[i].hash), 0, old[i]) // insertion into a fresh table can't violate the ordering
		}
	}
	return true, nil
}

// Get the value stored under k, nil when absent.
func (u *FlatMap[K, V]) Get(k K) *V {
	if i := u.find(u.hf(k), k); i >= 0 {
		return &u.bkt[i].val
	}
	return nil
}

// Has reports whether k is present.
func (u *FlatMap[K, V]) Has(k K) bool {
	return u.find(u.hf(k), k) >= 0
}

// Put stores v under k, overwriting an existing value. Returns *FullError
// when the table was full and growth was denied; the table is then
// unchanged.
func (u *FlatMap[K, V]) Put(k K, v V) error {
	h := u.hf(k)
	i, d := u.home(h), 0
	for {
		e := &u.bkt[i]
		if e.hash == 0 || u.dist(i, e.hash) < d {
			break
		}
		if e.hash == h && e.key == k {
			e.val = v
			return nil
		}
		i, d = (i+1)&u.mask(), d+1
	}
	resized, err := u.ensure()
	if err != nil {
		return err
	}
	if resized {
		i, d = u.home(h), 0
	}
	u.insert(i, d, Element[K, V]{hash: h, key: k, val: v})
	return nil
}

// Swap stores v under k and hands back the value it overwrote, if any.
func (u *FlatMap[K, V]) Swap(k K, v V) (old V, had bool, err error) {
	h := u.hf(k)
	if i := u.find(h, k); i >= 0 {
		old, u.bkt[i].val = u.bkt[i].val, v
		return old, true, nil
	}
	if _, err = u.ensure(); err != nil {
		return
	}
	u.insert(u.home(h), 0, Element[K, V]{hash: h, key: k, val: v})
	return
}

// Remove the value stored under k. The hole is closed immediately by
// shifting every displaced follower back one slot, so no probe sequence is
// ever broken and no tombstones exist.
func (u *FlatMap[K, V]) Remove(k K) (V, bool) {
	i := u.find(u.hf(k), k)
	if i < 0 {
		return *new(V), false
	}
	out := u.bkt[i].val
	u.shiftBack(i)
	u.sz--
	return out, true
}

// shiftBack closes the hole at i: every following occupant not already in
// its home slot moves back one, and the hole advances, until an empty slot
// or a zero-displacement occupant terminates the displaced run.
func (u *FlatMap[K, V]) shiftBack(i int) {
	for {
		n := (i + 1) & u.mask()
		if u.bkt[n].hash == 0 || u.dist(n, u.bkt[n].hash) == 0 {
			u.bkt[i] = Element[K, V]{}
			return
		}
		u.bkt[i] = u.bkt[n]
		i = n
	}
}

// Size is the number of stored pairs.
func (u *FlatMap[K, V]) Size() int {
	return u.sz
}

// Cap is the current slot count.
func (u *FlatMap[K, V]) Cap() int {
	return len(u.bkt)
}

// Range calls f on every pair in table order until f returns false.
func (u *FlatMap[K, V]) Range(f func(K, *V) bool) {
	for i := range u.bkt {
		if u.bkt[i].hash != 0 && !f(u.bkt[i].key, &u.bkt[i].val) {
			return
		}
	}
}

// Clear removes every pair, calling des once per pair first when it isn't
// nil. Keeps the slot array.
func (u *FlatMap[K, V]) Clear(des func(K, *V)) {
	for i := range u.bkt {
		if u.bkt[i].hash != 0 {
			if des != nil {
				des(u.bkt[i].key, &u.bkt[i].val)
			}
			u.bkt[i] = Element[K, V]{}
		}
	}
	u.sz = 0
}

// validate checks the probe invariant: every occupied slot is reachable by
// linear probing from its home slot without crossing an empty slot, and the
// stored size matches the occupied count. For tests.
func (u *FlatMap[K, V]) validate() bool {
	n := 0
	for i := range u.bkt {
		if u.bkt[i].hash == 0 {
			continue
		}
		n++
		for j := u.home(u.bkt[i].hash); j != i; j = (j + 1) & u.mask() {
			if u.bkt[j].hash == 0 {
				return false
			}
		}
	}
	return n == u.sz
}
