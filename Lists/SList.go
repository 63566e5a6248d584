package Lists

// SNode is one link of an SList.
type SNode[T any] struct {
	next *SNode[T]
	Val  T
}

// SList is a circular singly linked list through an embedded sentinel, one
// pointer per node. Front ops are O(1); anything positional goes through a
// Cursor, which carries the predecessor so removal at the position stays
// O(1) despite the single link. Same no-copy rule as DList: use it only
// through the pointer NewS returns.
type SList[T any] struct {
	sen SNode[T]
	sz  int
}

// NewS returns an empty SList.
func NewS[T any]() *SList[T] {
	l := &SList[T]{}
	l.sen.next = &l.sen
	return l
}

// Size of the list.
func (u *SList[T]) Size() int {
	return u.sz
}

// Front node, nil when empty.
func (u *SList[T]) Front() *SNode[T] {
	if u.sen.next == &u.sen {
		return nil
	}
	return u.sen.next
}

// Next node after n, nil at the end.
func (u *SList[T]) Next(n *SNode[T]) *SNode[T] {
	if n.next == &u.sen {
		return nil
	}
	return n.next
}

// PushFront adds v at the front and returns its node.
func (u *SList[T]) PushFront(v T) *SNode[T] {
	n := &SNode[T]{next: u.sen.next, Val: v}
	u.sen.next = n
	u.sz++
	return n
}

// PopFront removes and returns the front element.
func (u *SList[T]) PopFront() (T, bool) {
	if f := u.Front(); f != nil {
		u.sen.next = f.next
		u.sz--
		return f.Val, true
	}
	return *new(T), false
}

// InsertAfter adds v after at and returns its node.
func (u *SList[T]) InsertAfter(at *SNode[T], v T) *SNode[T] {
	n := &SNode[T]{next: at.next, Val: v}
	at.next = n
	u.sz++
	return n
}

// RemoveAfter unlinks the node after at, calling des on its element first
// when des isn't nil. Reports whether there was one.
func (u *SList[T]) RemoveAfter(at *SNode[T], des func(*T)) bool {
	n := at.next
	if n == &u.sen {
		return false
	}
	if des != nil {
		des(&n.Val)
	}
	at.next = n.next
	u.sz--
	return true
}

// ExtractAfter unlinks and returns the node after at without destructor
// interaction, nil when at is the last node.
func (u *SList[T]) ExtractAfter(at *SNode[T]) *SNode[T] {
	n := at.next
	if n == &u.sen {
		return nil
	}
	at.next = n.next
	u.sz--
	return n
}

// Range calls f on every element front to back until f returns false.
func (u *SList[T]) Range(f func(*T) bool) {
	for n := u.sen.next; n != &u.sen; n = n.next {
		if !f(&n.Val) {
			return
		}
	}
}

// Clear erases every node, calling des once per element first when it isn't
// nil.
func (u *SList[T]) Clear(des func(*T)) {
	for n := u.sen.next; n != &u.sen; n = n.next {
		if des != nil {
			des(&n.Val)
		}
	}
	u.sen.next = &u.sen
	u.sz = 0
}

// Cursor is a position in an SList that tracks the predecessor of the
// current node. Invalidated by any mutation of the list other than through
// the cursor itself.
type Cursor[T any] struct {
	l    *SList[T]
	prev *SNode[T]
}

// Begin returns a cursor at the front.
func (u *SList[T]) Begin() Cursor[T] {
	return Cursor[T]{l: u, prev: &u.sen}
}

// Done reports whether the cursor moved past the last node.
func (c *Cursor[T]) Done() bool {
	return c.prev.next == &c.l.sen
}

// Cur returns the current node, nil when Done.
func (c *Cursor[T]) Cur() *SNode[T] {
	if c.Done() {
		return nil
	}
	return c.prev.next
}

// Next advances past the current node.
func (c *Cursor[T]) Next() {
	c.prev = c.prev.next
}

// Insert adds v at the cursor, before the current node, and leaves the
// cursor on the new node.
func (c *Cursor[T]) Insert(v T) *SNode[T] {
	return c.l.InsertAfter(c.prev, v)
}

// Remove unlinks the current node and returns its element. The cursor moves
// to the following node.
func (c *Cursor[T]) Remove() (T, bool) {
	if n := c.l.ExtractAfter(c.prev); n != nil {
		return n.Val, true
	}
	return *new(T), false
}

// IsSorted reports whether the elements are nondecreasing under cmp.
func (u *SList[T]) IsSorted(cmp func(a, b T) int) bool {
	for n := u.sen.next; n != &u.sen && n.next != &u.sen; n = n.next {
		if cmp(n.next.Val, n.Val) < 0 {
			return false
		}
	}
	return true
}

// findRun returns the last node of the maximal nondecreasing run starting at
// start and the run's length.
func (u *SList[T]) findRun(start *SNode[T], cmp func(a, b T) int) (*SNode[T], int) {
	n := 1
	for start.next != &u.sen && cmp(start.next.Val, start.Val) >= 0 {
		start = start.next
		n++
	}
	return start, n
}

// mergeAfter relinks the na nodes from a and the nb nodes from b into one
// sorted run after p, reattaches rest at its end, and returns the run's last
// node. b is taken only when strictly less, keeping the merge stable.
func mergeAfter[T any](p, a *SNode[T], na int, b *SNode[T], nb int, rest *SNode[T], cmp func(a, b T) int) *SNode[T] {
	tail := p
	for na > 0 && nb > 0 {
		if cmp(b.Val, a.Val) < 0 {
			tail.next = b
			tail, b = b, b.next
			nb--
		} else {
			tail.next = a
			tail, a = a, a.next
			na--
		}
	}
	for ; na > 0; na-- {
		tail.next = a
		tail, a = a, a.next
	}
	for ; nb > 0; nb-- {
		tail.next = b
		tail, b = b, b.next
	}
	tail.next = rest
	return tail
}

// Sort the list with the same iterative natural merge sort as DList.Sort:
// stable, O(1) auxiliary space, a single no-op pass on sorted input.
func (u *SList[T]) Sort(cmp func(a, b T) int) {
	for {
		runs := 0
		p := &u.sen
		for p.next != &u.sen {
			runs++
			aEnd, na := u.findRun(p.next, cmp)
			if aEnd.next == &u.sen {
				break
			}
			bEnd, nb := u.findRun(aEnd.next, cmp)
			p = mergeAfter(p, p.next, na, aEnd.next, nb, bEnd.next, cmp)
		}
		if runs <= 1 {
			return
		}
	}
}

// Validate checks that the chain closes back at the sentinel in exactly Size
// steps. For tests.
func (u *SList[T]) Validate() bool {
	n := 0
	for c := u.sen.next; c != &u.sen; c = c.next {
		if n++; n > u.sz {
			return false
		}
	}
	return n == u.sz
}
