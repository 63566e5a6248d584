// Package FlatSet implements Sets.ExtendedSet on top of the Robin Hood open
// addressing table in Maps/FlatMap, storing elements as keys with an empty
// value.
package FlatSet

import (
	Go_Cols "github.com/g-m-twostay/go-cols"
	"github.com/g-m-twostay/go-cols/Maps/FlatMap"
	"github.com/g-m-twostay/go-cols/Sets"
)

type FlatSet[E comparable] struct {
	m *FlatMap.FlatMap[E, struct{}]
}

// New creates a FlatSet holding at least size elements before resizing,
// hashing with hf. hf must never return 0 for an element it may be asked
// about; FlatMap.HashOf satisfies this.
func New[E comparable](hf func(E) uint64, size int) *FlatSet[E] {
	return &FlatSet[E]{m: FlatMap.New[E, struct{}](hf, size)}
}

// NewGrow is New with an explicit growth policy.
func NewGrow[E comparable](hf func(E) uint64, size int, g Go_Cols.Grower) *FlatSet[E] {
	return &FlatSet[E]{m: FlatMap.NewGrow[E, struct{}](hf, size, g)}
}

// Put adds e, reporting whether it was absent. err is non-nil only when the
// table is full and growth is denied.
func (u *FlatSet[E]) Put(e E) (bool, error) {
	if u.m.Has(e) {
		return false, nil
	}
	if err := u.m.Put(e, struct{}{}); err != nil {
		return false, err
	}
	return true, nil
}

// Has reports whether e is in the set.
func (u *FlatSet[E]) Has(e E) bool {
	return u.m.Has(e)
}

// Remove e, reporting whether it was present.
func (u *FlatSet[E]) Remove(e E) bool {
	_, had := u.m.Remove(e)
	return had
}

// Size of the set.
func (u *FlatSet[E]) Size() int {
	return u.m.Size()
}

// Cap is the current slot count of the backing table.
func (u *FlatSet[E]) Cap() int {
	return u.m.Cap()
}

// Take removes and returns an arbitrary element.
func (u *FlatSet[E]) Take() (E, bool) {
	var got E
	had := false
	u.m.Range(func(k E, _ *struct{}) bool {
		got, had = k, true
		return false
	})
	if had {
		u.m.Remove(got)
	}
	return got, had
}

// Range calls f on every element in table order until f returns false.
func (u *FlatSet[E]) Range(f func(E) bool) {
	u.m.Range(func(k E, _ *struct{}) bool {
		return f(k)
	})
}

// Clear empties the set, calling des once per element first when it isn't
// nil.
func (u *FlatSet[E]) Clear(des func(*E)) {
	u.m.Clear(func(k E, _ *struct{}) {
		if des != nil {
			des(&k)
		}
	})
}

// PutAll adds every element of o, returning how many were absent. Stops
// early if the table fills under a denying growth policy; elements already
// taken stay.
func (u *FlatSet[E]) PutAll(o Sets.Set[E]) int {
	n := 0
	o.Range(func(e E) bool {
		added, err := u.Put(e)
		if err != nil {
			return false
		}
		if added {
			n++
		}
		return true
	})
	return n
}

// RemoveAll removes every element of o, returning how many were present.
func (u *FlatSet[E]) RemoveAll(o Sets.Set[E]) int {
	n := 0
	o.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return n
}

// Eq reports whether u and o hold exactly the same elements.
func (u *FlatSet[E]) Eq(o Sets.Set[E]) bool {
	if u.Size() != o.Size() {
		return false
	}
	eq := true
	u.m.Range(func(k E, _ *struct{}) bool {
		eq = o.Has(k)
		return eq
	})
	return eq
}

// Intersect removes every element not also in o.
func (u *FlatSet[E]) Intersect(o Sets.Set[E]) {
	u.Filter(o.Has)
}

// Filter removes every element keep rejects.
func (u *FlatSet[E]) Filter(keep func(E) bool) {
	var drop []E
	u.m.Range(func(k E, _ *struct{}) bool {
		if !keep(k) {
			drop = append(drop, k)
		}
		return true
	})
	for _, e := range drop {
		u.m.Remove(e)
	}
}
