package Trees

import (
	"cmp"

	Go_Cols "github.com/g-m-twostay/go-cols"
	"golang.org/x/exp/constraints"
)

type pair[K, V any] struct {
	k K
	v V
}

// Map is an ordered map front end over Splay keyed by K's natural order.
// All access characteristics, splaying included, are those of Splay; the
// same pointer validity rule applies to every *V handed out.
type Map[K cmp.Ordered, V any, S constraints.Unsigned] struct {
	t Splay[pair[K, V], S]
}

// NewMap returns an empty Map with room for hint entries, growing by
// doubling.
func NewMap[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *Map[K, V, S] {
	return NewMapGrow[K, V, S](hint, Go_Cols.DoubleCap)
}

// NewMapGrow is NewMap with an explicit growth policy.
func NewMapGrow[K cmp.Ordered, V any, S constraints.Unsigned](hint S, g Go_Cols.Grower) *Map[K, V, S] {
	return &Map[K, V, S]{t: *NewGrow[pair[K, V], S](func(a, b pair[K, V]) int { return cmp.Compare(a.k, b.k) }, hint, g)}
}

// Put stores v under k, overwriting an existing value. Returns *FullError
// when a fresh node was needed and growth was denied.
func (m *Map[K, V, S]) Put(k K, v V) error {
	if m.t.Entry(pair[K, V]{k: k}).InsertEntry(pair[K, V]{k: k, v: v}) == nil {
		return &Go_Cols.FullError{Cap: cap(m.t.vs)}
	}
	return nil
}

// Get the value stored under k, nil when absent. Splays.
func (m *Map[K, V, S]) Get(k K) *V {
	if p := m.t.Get(pair[K, V]{k: k}); p != nil {
		return &p.v
	}
	return nil
}

// Has reports whether k is present. Splays.
func (m *Map[K, V, S]) Has(k K) bool {
	return m.Get(k) != nil
}

// Remove the value stored under k.
func (m *Map[K, V, S]) Remove(k K) (V, bool) {
	p, ok := m.t.Remove(pair[K, V]{k: k})
	return p.v, ok
}

// Entry for k, for conditional insert/modify/remove chains without a second
// lookup. Same invalidation rule as Trees.Entry.
func (m *Map[K, V, S]) Entry(k K) MapEntry[K, V, S] {
	return MapEntry[K, V, S]{k: k, e: m.t.Entry(pair[K, V]{k: k})}
}

// Min key and its value, nils on an empty map.
func (m *Map[K, V, S]) Min() (*K, *V) {
	if p := m.t.Min(); p != nil {
		return &p.k, &p.v
	}
	return nil, nil
}

// Max key and its value, nils on an empty map.
func (m *Map[K, V, S]) Max() (*K, *V) {
	if p := m.t.Max(); p != nil {
		return &p.k, &p.v
	}
	return nil, nil
}

// PopMin removes and returns the entry with the smallest key.
func (m *Map[K, V, S]) PopMin() (K, V, bool) {
	p, ok := m.t.PopMin()
	return p.k, p.v, ok
}

// PopMax removes and returns the entry with the greatest key.
func (m *Map[K, V, S]) PopMax() (K, V, bool) {
	p, ok := m.t.PopMax()
	return p.k, p.v, ok
}

// EqualRange calls f in ascending key order on every entry with lo <= key <
// hi until f returns false.
func (m *Map[K, V, S]) EqualRange(lo, hi K, f func(K, *V) bool) {
	m.t.EqualRange(pair[K, V]{k: lo}, pair[K, V]{k: hi}).For(func(p *pair[K, V]) bool {
		return f(p.k, &p.v)
	})
}

// EqualRRange calls f in descending key order on every entry with lo < key
// <= hi until f returns false.
func (m *Map[K, V, S]) EqualRRange(hi, lo K, f func(K, *V) bool) {
	m.t.EqualRRange(pair[K, V]{k: hi}, pair[K, V]{k: lo}).For(func(p *pair[K, V]) bool {
		return f(p.k, &p.v)
	})
}

// InOrder calls f on every entry in ascending key order until f returns
// false.
func (m *Map[K, V, S]) InOrder(f func(K, *V) bool) {
	m.t.InOrder(func(p *pair[K, V]) bool {
		return f(p.k, &p.v)
	})
}

// Size of the map.
func (m *Map[K, V, S]) Size() uint {
	return m.t.Size()
}

// Clear removes every entry, calling des once per entry first when it isn't
// nil.
func (m *Map[K, V, S]) Clear(des func(K, *V)) {
	if des == nil {
		m.t.Clear(nil)
		return
	}
	m.t.Clear(func(p *pair[K, V]) {
		des(p.k, &p.v)
	})
}

// Validate the underlying tree.
func (m *Map[K, V, S]) Validate() bool {
	return m.t.Validate()
}

// MapEntry is Entry specialized for Map: value-typed accessors keyed by the
// searched key.
type MapEntry[K cmp.Ordered, V any, S constraints.Unsigned] struct {
	k K
	e Entry[pair[K, V], S]
}

// Occupied reports whether the key is present.
func (e MapEntry[K, V, S]) Occupied() bool {
	return e.e.Occupied()
}

// Get the value, nil unless Occupied.
func (e MapEntry[K, V, S]) Get() *V {
	if p := e.e.Get(); p != nil {
		return &p.v
	}
	return nil
}

// AndModify applies f to the value only when Occupied.
func (e MapEntry[K, V, S]) AndModify(f func(*V)) MapEntry[K, V, S] {
	e.e.AndModify(func(p *pair[K, V]) { f(&p.v) })
	return e
}

// OrInsert inserts v under the searched key only when Vacant and returns the
// existing or the newly inserted value. Nil when the insertion failed.
func (e MapEntry[K, V, S]) OrInsert(v V) *V {
	if p := e.e.OrInsert(pair[K, V]{k: e.k, v: v}); p != nil {
		return &p.v
	}
	return nil
}

// OrInsertWith is OrInsert with a lazily produced default.
func (e MapEntry[K, V, S]) OrInsertWith(f func() V) *V {
	if p := e.e.OrInsertWith(func() pair[K, V] { return pair[K, V]{k: e.k, v: f()} }); p != nil {
		return &p.v
	}
	return nil
}

// Remove the entry only when Occupied, returning its value.
func (e MapEntry[K, V, S]) Remove() (V, bool) {
	p, ok := e.e.RemoveEntry()
	return p.v, ok
}
