package FlatMap

const (
	vacant byte = iota
	occupied
)

// Entry is the result of a single probe, tagged Occupied at an existing
// slot or Vacant remembering the searched key and its hash. It supports
// conditional insert/modify/remove chains without probing twice. Any insert,
// remove or resize on the table invalidates an Entry, so consume it
// immediately; don't store it. Inspect it only through the receivers below.
type Entry[K comparable, V any] struct {
	u      *FlatMap[K, V]
	i      int
	k      K
	h      uint64
	status byte
}

// Entry probes for k once and returns the tagged result.
func (u *FlatMap[K, V]) Entry(k K) Entry[K, V] {
	h := u.hf(k)
	if i := u.find(h, k); i >= 0 {
		return Entry[K, V]{u: u, i: i, k: k, h: h, status: occupied}
	}
	return Entry[K, V]{u: u, k: k, h: h, status: vacant}
}

// Occupied reports whether the entry points at an existing pair.
func (e Entry[K, V]) Occupied() bool {
	return e.status == occupied
}

// Get the value, nil unless Occupied.
func (e Entry[K, V]) Get() *V {
	if e.status != occupied {
		return nil
	}
	return &e.u.bkt[e.i].val
}

// AndModify applies f to the value only when Occupied.
func (e Entry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	if e.status == occupied {
		f(&e.u.bkt[e.i].val)
	}
	return e
}

// OrInsert inserts v under the searched key only when Vacant and returns the
// existing or the newly inserted value. Nil when the table was full and
// growth was denied.
func (e Entry[K, V]) OrInsert(v V) *V {
	if e.status == occupied {
		return &e.u.bkt[e.i].val
	}
	if _, err := e.u.ensure(); err != nil {
		return nil
	}
	i := e.u.insert(e.u.home(e.h), 0, Element[K, V]{hash: e.h, key: e.k, val: v})
	return &e.u.bkt[i].val
}

// OrInsertWith is OrInsert with a lazily produced default: f runs only when
// the insertion actually happens.
func (e Entry[K, V]) OrInsertWith(f func() V) *V {
	if e.status == occupied {
		return &e.u.bkt[e.i].val
	}
	if _, err := e.u.ensure(); err != nil {
		return nil
	}
	i := e.u.insert(e.u.home(e.h), 0, Element[K, V]{hash: e.h, key: e.k, val: f()})
	return &e.u.bkt[i].val
}

// InsertEntry writes v unconditionally: over the existing value when
// Occupied, as a fresh pair otherwise. Nil when the insertion failed.
func (e Entry[K, V]) InsertEntry(v V) *V {
	if e.status == occupied {
		e.u.bkt[e.i].val = v
		return &e.u.bkt[e.i].val
	}
	return e.OrInsert(v)
}

// Remove the pair only when Occupied, returning its value.
func (e Entry[K, V]) Remove() (V, bool) {
	if e.status != occupied {
		return *new(V), false
	}
	out := e.u.bkt[e.i].val
	e.u.shiftBack(e.i)
	e.u.sz--
	return out, true
}
