package Trees

import (
	Go_Cols "github.com/g-m-twostay/go-cols"
	"golang.org/x/exp/constraints"
)

// A node in the arena.
// The zero value is meaningful.
type info[S constraints.Unsigned] struct {
	l, r, p S
}

// base is the index arena shared by tree implementations. ifs[0] is the zero
// value and acts as the nil sentinel; all links are indexes into ifs. vs[i-1]
// holds the element of node i. free is the beginning of the linked list that
// contains all the free indexes, in which case we use info[S]::l as next.
type base[T any, S constraints.Unsigned] struct {
	root, free S
	ifs        []info[S]
	vs         []T
	grow       Go_Cols.Grower
}

func makeBase[T any, S constraints.Unsigned](hint S, g Go_Cols.Grower) base[T, S] {
	// capacity math in int: hint+1 wraps in S when hint is S's maximum.
	return base[T, S]{ifs: make([]info[S], 1, int(hint)+1), vs: make([]T, 0, int(hint)), grow: g}
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// setL writes the left child link of p and the parent link of c.
func (u *base[T, S]) setL(p, c S) {
	u.ifs[p].l = c
	if c != 0 {
		u.ifs[c].p = p
	}
}

// setR writes the right child link of p and the parent link of c.
func (u *base[T, S]) setR(p, c S) {
	u.ifs[p].r = c
	if c != 0 {
		u.ifs[c].p = p
	}
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a].l = u.free
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a node holding v, reusing a free index first. Returns 0 when the
// arena is exhausted and the growth policy denies a reallocation.
func (u *base[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{}
		u.vs[i-1] = v
		return i
	}
	if len(u.vs) == cap(u.vs) {
		next, ok := u.grow(cap(u.vs), cap(u.vs)+1)
		if !ok {
			return 0
		}
		nv := make([]T, len(u.vs), next)
		copy(nv, u.vs)
		u.vs = nv
		ni := make([]info[S], len(u.ifs), next+1)
		copy(ni, u.ifs)
		u.ifs = ni
	}
	u.vs = append(u.vs, v)
	u.ifs = append(u.ifs, info[S]{})
	return S(len(u.ifs) - 1)
}

// next is the in-order successor of node i: leftmost of the right subtree,
// otherwise the first ancestor reached from a left child. The parent links
// make this O(1) amortized with no stack.
func (u *base[T, S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		for u.ifs[r].l != 0 {
			r = u.ifs[r].l
		}
		return r
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].r == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// prev mirrors next for the in-order predecessor.
func (u *base[T, S]) prev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		for u.ifs[l].r != 0 {
			l = u.ifs[l].r
		}
		return l
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].l == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// leftmost of the subtree rooted at i. i mustn't be 0.
func (u *base[T, S]) leftmost(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

// rightmost of the subtree rooted at i. i mustn't be 0.
func (u *base[T, S]) rightmost(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}
