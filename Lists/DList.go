package Lists

// DNode is one link of a DList. Nodes are allocated by the list's push and
// insert receivers; Val may be read and written freely while the node is
// linked.
type DNode[T any] struct {
	next, prev *DNode[T]
	Val        T
}

// DList is a circular doubly linked list through a single sentinel, so every
// real node always has non-nil neighbors and no positional receiver needs a
// nil check. The sentinel is embedded in the header and points into itself:
// use a DList only through the pointer NewD returns and never copy the
// value, a copy's sentinel would still point into the original.
// All positional receivers are O(1). Not safe for concurrent use.
type DList[T any] struct {
	sen DNode[T]
	sz  int
}

// NewD returns an empty DList.
func NewD[T any]() *DList[T] {
	l := &DList[T]{}
	l.sen.next, l.sen.prev = &l.sen, &l.sen
	return l
}

// Size of the list.
func (u *DList[T]) Size() int {
	return u.sz
}

// Front node, nil when empty.
func (u *DList[T]) Front() *DNode[T] {
	if u.sen.next == &u.sen {
		return nil
	}
	return u.sen.next
}

// Back node, nil when empty.
func (u *DList[T]) Back() *DNode[T] {
	if u.sen.prev == &u.sen {
		return nil
	}
	return u.sen.prev
}

// Next node after n, nil at the end.
func (u *DList[T]) Next(n *DNode[T]) *DNode[T] {
	if n.next == &u.sen {
		return nil
	}
	return n.next
}

// Prev node before n, nil at the front.
func (u *DList[T]) Prev(n *DNode[T]) *DNode[T] {
	if n.prev == &u.sen {
		return nil
	}
	return n.prev
}

// link n between p and q.
func link[T any](n, p, q *DNode[T]) {
	n.prev, n.next = p, q
	p.next, q.prev = n, n
}

// unlink n from its neighbors. n's own links are left stale.
func unlink[T any](n *DNode[T]) {
	n.prev.next, n.next.prev = n.next, n.prev
}

// PushFront adds v at the front and returns its node.
func (u *DList[T]) PushFront(v T) *DNode[T] {
	n := &DNode[T]{Val: v}
	link(n, &u.sen, u.sen.next)
	u.sz++
	return n
}

// PushBack adds v at the back and returns its node.
func (u *DList[T]) PushBack(v T) *DNode[T] {
	n := &DNode[T]{Val: v}
	link(n, u.sen.prev, &u.sen)
	u.sz++
	return n
}

// InsertBefore adds v before at and returns its node. at must be linked in
// this list.
func (u *DList[T]) InsertBefore(at *DNode[T], v T) *DNode[T] {
	n := &DNode[T]{Val: v}
	link(n, at.prev, at)
	u.sz++
	return n
}

// InsertAfter adds v after at and returns its node.
func (u *DList[T]) InsertAfter(at *DNode[T], v T) *DNode[T] {
	n := &DNode[T]{Val: v}
	link(n, at, at.next)
	u.sz++
	return n
}

// PopFront removes and returns the front element.
func (u *DList[T]) PopFront() (T, bool) {
	if f := u.Front(); f != nil {
		unlink(f)
		u.sz--
		return f.Val, true
	}
	return *new(T), false
}

// PopBack removes and returns the back element.
func (u *DList[T]) PopBack() (T, bool) {
	if b := u.Back(); b != nil {
		unlink(b)
		u.sz--
		return b.Val, true
	}
	return *new(T), false
}

// Erase unlinks n and calls des on its element first when des isn't nil.
func (u *DList[T]) Erase(n *DNode[T], des func(*T)) {
	if des != nil {
		des(&n.Val)
	}
	unlink(n)
	u.sz--
}

// EraseRange erases [first, last), where last==nil means through the back.
func (u *DList[T]) EraseRange(first, last *DNode[T], des func(*T)) {
	end := last
	if end == nil {
		end = &u.sen
	}
	for n := first; n != end; {
		next := n.next
		u.Erase(n, des)
		n = next
	}
}

// Extract unlinks n without destructor interaction, for moving the node
// elsewhere. The node keeps its element.
func (u *DList[T]) Extract(n *DNode[T]) *DNode[T] {
	unlink(n)
	u.sz--
	return n
}

// ExtractRange unlinks [first, last) without destructor interaction and
// returns the nodes as a fresh list. last==nil means through the back.
func (u *DList[T]) ExtractRange(first, last *DNode[T]) *DList[T] {
	out := NewD[T]()
	out.SpliceRange(&out.sen, u, first, last)
	return out
}

// Splice moves node n out of o and links it before at in u. o may be u
// itself.
func (u *DList[T]) Splice(at *DNode[T], o *DList[T], n *DNode[T]) {
	unlink(n)
	o.sz--
	link(n, at.prev, at)
	u.sz++
}

// SpliceRange moves [first, last) out of o and links it before at in u.
// last==nil means through o's back. at mustn't lie inside the moved range.
func (u *DList[T]) SpliceRange(at *DNode[T], o *DList[T], first, last *DNode[T]) {
	end := last
	if end == nil {
		end = &o.sen
	}
	for n := first; n != end; {
		next := n.next
		u.Splice(at, o, n)
		n = next
	}
}

// Range calls f on every element front to back until f returns false.
func (u *DList[T]) Range(f func(*T) bool) {
	for n := u.sen.next; n != &u.sen; n = n.next {
		if !f(&n.Val) {
			return
		}
	}
}

// Clear erases every node, calling des once per element first when it isn't
// nil.
func (u *DList[T]) Clear(des func(*T)) {
	for n := u.sen.next; n != &u.sen; n = n.next {
		if des != nil {
			des(&n.Val)
		}
	}
	u.sen.next, u.sen.prev = &u.sen, &u.sen
	u.sz = 0
}

// IsSorted reports whether the elements are nondecreasing under cmp.
func (u *DList[T]) IsSorted(cmp func(a, b T) int) bool {
	for n := u.sen.next; n != &u.sen && n.next != &u.sen; n = n.next {
		if cmp(n.next.Val, n.Val) < 0 {
			return false
		}
	}
	return true
}

// findRun returns the node one past the maximal nondecreasing run starting
// at start.
func (u *DList[T]) findRun(start *DNode[T], cmp func(a, b T) int) *DNode[T] {
	for start.next != &u.sen && cmp(start.next.Val, start.Val) >= 0 {
		start = start.next
	}
	return start.next
}

// merge the adjacent runs [a0, a1b0) and [a1b0, b1) in place by splicing
// each b element that is strictly less than the a front before it. Equal
// elements keep their order, so the sort is stable.
func (u *DList[T]) merge(a0, a1b0, b1 *DNode[T], cmp func(a, b T) int) {
	for a0 != a1b0 && a1b0 != b1 {
		if cmp(a1b0.Val, a0.Val) >= 0 {
			a0 = a0.next
		} else {
			n := a1b0
			a1b0 = a1b0.next
			unlink(n)
			link(n, a0.prev, a0)
		}
	}
}

// Sort the list with an iterative bottom-up natural merge sort: each pass
// finds maximal already-sorted runs and merges adjacent pairs in place.
// O(1) auxiliary space, O(n) on an already sorted list (the single pass
// relinks nothing), O(n log n) worst case since each pass at least doubles
// the merged run length. Stable.
func (u *DList[T]) Sort(cmp func(a, b T) int) {
	for {
		runs := 0
		a0 := u.sen.next
		for a0 != &u.sen {
			runs++
			a1b0 := u.findRun(a0, cmp)
			if a1b0 == &u.sen {
				break
			}
			b1 := u.findRun(a1b0, cmp)
			u.merge(a0, a1b0, b1, cmp)
			a0 = b1
		}
		if runs <= 1 {
			return
		}
	}
}

// Validate checks the circular structure: every node's neighbors point back
// at it and the reachable count equals Size. For tests.
func (u *DList[T]) Validate() bool {
	n := 0
	for c := u.sen.next; c != &u.sen; c = c.next {
		if c.next.prev != c || c.prev.next != c {
			return false
		}
		if n++; n > u.sz {
			return false
		}
	}
	return n == u.sz
}
