// Package Heaps implements a pairing heap, an amortized O(log(n)) mergeable
// heap with O(1) push and meld and cheap priority updates through node
// handles.
package Heaps

// Node is a handle to one element of a Pairing heap. It stays valid until
// the element is popped or erased, so callers can hold it for Update and
// Erase.
type Node[T any] struct {
	// child is the leftmost child; children chain through sibling. prev is
	// the parent for a first child and the left sibling otherwise, which
	// makes a cut O(1) from the node alone.
	child, sibling, prev *Node[T]
	Val                  T
}

// Pairing is a min-heap under cmp: Peek and Pop yield the element cmp orders
// first. Not safe for concurrent use.
type Pairing[T any] struct {
	root *Node[T]
	cmp  func(a, b T) int
	sz   int
}

// New creates an empty Pairing heap ordered by cmp.
func New[T any](cmp func(a, b T) int) *Pairing[T] {
	return &Pairing[T]{cmp: cmp}
}

// meld the heaps rooted at a and b, either may be nil. The larger root is
// linked as the other's first child.
func (u *Pairing[T]) meld(a, b *Node[T]) *Node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if u.cmp(b.Val, a.Val) < 0 {
		a, b = b, a
	}
	b.prev = a
	b.sibling = a.child
	if a.child != nil {
		a.child.prev = b
	}
	a.child = b
	return a
}

// mergePairs collapses a sibling chain into one heap with the two-pass
// scheme: meld adjacent pairs left to right, then fold the pair winners
// right to left. The winners are chained through their sibling pointers, so
// no extra space is used.
func (u *Pairing[T]) mergePairs(first *Node[T]) *Node[T] {
	if first == nil {
		return nil
	}
	var pairs *Node[T]
	for cur := first; cur != nil; {
		a, b := cur, cur.sibling
		a.sibling = nil
		if b != nil {
			cur = b.sibling
			b.sibling = nil
		} else {
			cur = nil
		}
		w := u.meld(a, b)
		w.sibling = pairs
		pairs = w
	}
	root := pairs
	pairs = pairs.sibling
	root.sibling = nil
	for pairs != nil {
		n := pairs
		pairs = pairs.sibling
		n.sibling = nil
		root = u.meld(root, n)
	}
	root.prev = nil
	return root
}

// cut detaches n's subtree from its parent. n must not be the root.
func cut[T any](n *Node[T]) {
	if n.prev.child == n {
		n.prev.child = n.sibling
	} else {
		n.prev.sibling = n.sibling
	}
	if n.sibling != nil {
		n.sibling.prev = n.prev
	}
	n.prev, n.sibling = nil, nil
}

// Size of the heap.
func (u *Pairing[T]) Size() int {
	return u.sz
}

// Push adds v and returns its handle.
// Time: amortized O(1).
func (u *Pairing[T]) Push(v T) *Node[T] {
	n := &Node[T]{Val: v}
	u.root = u.meld(u.root, n)
	u.root.prev = nil
	u.sz++
	return n
}

// Peek returns the minimum element without removing it, nil when empty. The
// pointer must not be used to change the element's order.
func (u *Pairing[T]) Peek() *T {
	if u.root == nil {
		return nil
	}
	return &u.root.Val
}

// Pop removes and returns the minimum element.
// Time: amortized O(log(n)).
func (u *Pairing[T]) Pop() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	n := u.root
	u.root = u.mergePairs(n.child)
	n.child = nil
	u.sz--
	return n.Val, true
}

// Meld moves every element of o into u, leaving o empty. Both heaps must
// order by the same cmp.
// Time: O(1).
func (u *Pairing[T]) Meld(o *Pairing[T]) {
	u.root = u.meld(u.root, o.root)
	if u.root != nil {
		u.root.prev = nil
	}
	u.sz += o.sz
	o.root, o.sz = nil, 0
}

// Decrease sets n's element to v, which must not order after the current
// one. The subtree keeps its heap property, so a cut and one meld suffice.
// Time: amortized O(1).
func (u *Pairing[T]) Decrease(n *Node[T], v T) {
	n.Val = v
	if n == u.root {
		return
	}
	cut(n)
	u.root = u.meld(u.root, n)
	u.root.prev = nil
}

// Increase sets n's element to v, which must not order before the current
// one. n's children may now belong above it, so they are merged back
// separately.
// Time: amortized O(log(n)).
func (u *Pairing[T]) Increase(n *Node[T], v T) {
	n.Val = v
	kids := n.child
	n.child = nil
	if n != u.root {
		cut(n)
		u.root = u.meld(u.root, n)
	}
	if kids != nil {
		u.root = u.meld(u.root, u.mergePairs(kids))
	}
	u.root.prev = nil
}

// Update sets n's element to v, dispatching to Decrease or Increase by
// comparing against the current element.
func (u *Pairing[T]) Update(n *Node[T], v T) {
	if u.cmp(v, n.Val) <= 0 {
		u.Decrease(n, v)
	} else {
		u.Increase(n, v)
	}
}

// Erase removes the element n points at, wherever it sits in the heap, and
// returns it. n is invalid afterwards.
// Time: amortized O(log(n)).
func (u *Pairing[T]) Erase(n *Node[T]) T {
	if n == u.root {
		v, _ := u.Pop()
		return v
	}
	cut(n)
	if n.child != nil {
		u.root = u.meld(u.root, u.mergePairs(n.child))
		u.root.prev = nil
		n.child = nil
	}
	u.sz--
	return n.Val
}

// Clear empties the heap, calling des once per element first when it isn't
// nil.
func (u *Pairing[T]) Clear(des func(*T)) {
	if des != nil {
		var walk func(n *Node[T])
		walk = func(n *Node[T]) {
			for ; n != nil; n = n.sibling {
				des(&n.Val)
				walk(n.child)
			}
		}
		walk(u.root)
	}
	u.root, u.sz = nil, 0
}

// Validate checks the heap property and the prev back-links of every node
// and that the reachable count equals Size. For tests.
func (u *Pairing[T]) Validate() bool {
	n := 0
	var walk func(c, prev *Node[T], parent *T) bool
	walk = func(c, prev *Node[T], parent *T) bool {
		for ; c != nil; prev, c = c, c.sibling {
			if c.prev != prev {
				return false
			}
			if parent != nil && u.cmp(c.Val, *parent) < 0 {
				return false
			}
			n++
			if !walk(c.child, c, &c.Val) {
				return false
			}
		}
		return true
	}
	if u.root != nil && u.root.prev != nil {
		return false
	}
	if u.root != nil {
		n++
		if !walk(u.root.child, u.root, &u.root.Val) {
			return false
		}
	}
	return n == u.sz
}
