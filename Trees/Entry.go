package Trees

import "golang.org/x/exp/constraints"

const (
	vacant byte = iota
	occupied
	insertFailed
)

// Entry is the result of a single splayed search, tagged Occupied at an
// existing element or Vacant at the splayed insertion point. It supports the
// usual conditional chains (AndModify, OrInsert, ...) without a second
// lookup. A Vacant entry remembers only that insertion point, so any value
// inserted through it must be equal under the tree's cmp to the value the
// entry was searched with; inserting a differently ordered value breaks the
// ordering invariant. An Entry is invalidated by any other mutating call on
// the tree, so consume it immediately; don't store it. Inspect it only
// through the receivers below.
type Entry[T any, S constraints.Unsigned] struct {
	u      *Splay[T, S]
	i      S
	status byte
}

// Occupied reports whether the entry points at an existing element.
func (e Entry[T, S]) Occupied() bool {
	return e.status == occupied
}

// InsertFailed reports that an insertion couldn't allocate a node. The tree
// was left unchanged.
func (e Entry[T, S]) InsertFailed() bool {
	return e.status == insertFailed
}

// Get the element, nil unless Occupied.
func (e Entry[T, S]) Get() *T {
	if e.status != occupied {
		return nil
	}
	return e.u.getV(e.i)
}

// AndModify applies f to the element only when Occupied. f mustn't change
// how the element orders under the tree's comparison; use Splay.Update for
// that.
func (e Entry[T, S]) AndModify(f func(*T)) Entry[T, S] {
	if e.status == occupied {
		f(e.u.getV(e.i))
	}
	return e
}

// OrInsert inserts v only when Vacant and returns the existing or the newly
// inserted element. v must equal the searched value under cmp. Nil when the
// insertion failed.
func (e Entry[T, S]) OrInsert(v T) *T {
	if e.status == occupied {
		return e.u.getV(e.i)
	}
	if ni := e.u.insertRoot(v); ni != 0 {
		return e.u.getV(ni)
	}
	return nil
}

// OrInsertWith is OrInsert with a lazily produced default: f runs only when
// the insertion actually happens. f's result must equal the searched value
// under cmp.
func (e Entry[T, S]) OrInsertWith(f func() T) *T {
	if e.status == occupied {
		return e.u.getV(e.i)
	}
	if ni := e.u.insertRoot(f()); ni != 0 {
		return e.u.getV(ni)
	}
	return nil
}

// InsertEntry writes v unconditionally: over the existing element when
// Occupied, as a fresh node otherwise. In both cases v must equal the
// searched value under cmp; use Splay.Update to change how an element
// orders. Nil when the insertion failed.
func (e Entry[T, S]) InsertEntry(v T) *T {
	if e.status == occupied {
		*e.u.getV(e.i) = v
		return e.u.getV(e.i)
	}
	if ni := e.u.insertRoot(v); ni != 0 {
		return e.u.getV(ni)
	}
	return nil
}

// RemoveEntry removes the element only when Occupied, returning it.
func (e Entry[T, S]) RemoveEntry() (T, bool) {
	if e.status != occupied {
		return *new(T), false
	}
	out := *e.u.getV(e.i)
	e.u.splay(e.u.at(out)) // the occupied node is already at or near the root
	e.u.detachRoot()
	return out, true
}

// Range is a half-open ascending view [Begin, End) produced by
// Splay.EqualRange. Like Entry it is invalidated by the next mutating call.
type Range[T any, S constraints.Unsigned] struct {
	u          *Splay[T, S]
	begin, end S
}

// Begin is the first element of the view, nil when the view is empty.
func (r Range[T, S]) Begin() *T {
	if r.begin == 0 {
		return nil
	}
	return r.u.getV(r.begin)
}

// End is the first element past the view, nil when the view runs to the end
// of the tree.
func (r Range[T, S]) End() *T {
	if r.end == 0 {
		return nil
	}
	return r.u.getV(r.end)
}

// For calls f on each element of the view in ascending order until f returns
// false.
func (r Range[T, S]) For(f func(*T) bool) {
	for i := r.begin; i != 0 && i != r.end; i = r.u.next(i) {
		if !f(r.u.getV(i)) {
			return
		}
	}
}

// RRange is the descending mirror of Range, walking predecessors from Begin
// down to but excluding End.
type RRange[T any, S constraints.Unsigned] struct {
	u          *Splay[T, S]
	begin, end S
}

func (r RRange[T, S]) Begin() *T {
	if r.begin == 0 {
		return nil
	}
	return r.u.getV(r.begin)
}

func (r RRange[T, S]) End() *T {
	if r.end == 0 {
		return nil
	}
	return r.u.getV(r.end)
}

// For calls f on each element of the view in descending order until f
// returns false.
func (r RRange[T, S]) For(f func(*T) bool) {
	for i := r.begin; i != 0 && i != r.end; i = r.u.prev(i) {
		if !f(r.u.getV(i)) {
			return
		}
	}
}
