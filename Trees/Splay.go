package Trees

import (
	Go_Cols "github.com/g-m-twostay/go-cols"
	"golang.org/x/exp/constraints"
)

// Splay is a self-adjusting binary search tree with no repeated values under
// cmp. Every search-like receiver, including the read-only ones, splays the
// accessed node to the root, so recently touched elements migrate toward the
// root and working sets with access locality see amortized O(1) accesses.
// T is the type of values it will hold, S is the type used for node indexes
// into the arena, so S must be a wide upperbound for the size of the tree.
// No balance metadata is kept; splaying alone bounds all operations to
// amortized O(log n).
// Unlike pointer trees, nodes live in one slice arena so the whole tree is
// at most two allocations between growths. Pointers handed out by Get,
// Min/Max, ranges and entries are valid only until the next structurally
// mutating call on the same tree.
type Splay[T any, S constraints.Unsigned] struct {
	base[T, S]
	cmp func(a, b T) int
	sz  S
}

// New returns an empty Splay ordered by cmp with room for hint elements,
// growing by doubling when full. cmp is a threeway comparison: negative when
// a orders before b, 0 when equal, positive otherwise.
func New[T any, S constraints.Unsigned](cmp func(a, b T) int, hint S) *Splay[T, S] {
	return NewGrow[T, S](cmp, hint, Go_Cols.DoubleCap)
}

// NewGrow is New with an explicit growth policy. With Go_Cols.FixedCap the
// arena never reallocates: once hint nodes are live, inserts report failure
// through the Entry until something is removed.
func NewGrow[T any, S constraints.Unsigned](cmp func(a, b T) int, hint S, g Go_Cols.Grower) *Splay[T, S] {
	return &Splay[T, S]{base: makeBase[T, S](hint, g), cmp: cmp}
}

// splay runs one top-down pass from the root toward the node at selects,
// rewiring the path with the zig/zig-zig/zig-zag cases onto a left and a
// right assembly tree, then reassembles. On return the root is the last
// non-nil node the walk reached: the match if present, otherwise an in-order
// neighbor of the target. Search and rebalance collapse into this single
// pass. at returns the target's ordering relative to its argument.
// Time: amortized O(log n); Space: O(1).
func (u *Splay[T, S]) splay(at func(*T) int) {
	curI := u.root
	if curI == 0 {
		return
	}
	var lT, rT, lRoot, rRoot S // assembly roots and their attach tails
	for {
		if c := at(u.getV(curI)); c < 0 {
			li := u.ifs[curI].l
			if li == 0 {
				break
			}
			if at(u.getV(li)) < 0 { // zig-zig: rotate right about curI first
				u.setL(curI, u.ifs[li].r)
				u.setR(li, curI)
				curI = li
				if li = u.ifs[curI].l; li == 0 {
					break
				}
			}
			if rT == 0 { // link curI under the right assembly tree
				rRoot = curI
			} else {
				u.setL(rT, curI)
			}
			rT = curI
			curI = li
		} else if c > 0 {
			ri := u.ifs[curI].r
			if ri == 0 {
				break
			}
			if at(u.getV(ri)) > 0 {
				u.setR(curI, u.ifs[ri].l)
				u.setL(ri, curI)
				curI = ri
				if ri = u.ifs[curI].r; ri == 0 {
					break
				}
			}
			if lT == 0 {
				lRoot = curI
			} else {
				u.setR(lT, curI)
			}
			lT = curI
			curI = ri
		} else {
			break
		}
	}
	if lT == 0 {
		lRoot = u.ifs[curI].l
	} else {
		u.setR(lT, u.ifs[curI].l)
	}
	if rT == 0 {
		rRoot = u.ifs[curI].r
	} else {
		u.setL(rT, u.ifs[curI].r)
	}
	u.setL(curI, lRoot)
	u.setR(curI, rRoot)
	u.ifs[curI].p = 0
	u.root = curI
}

func (u *Splay[T, S]) at(v T) func(*T) int {
	return func(p *T) int {
		return u.cmp(v, *p)
	}
}

// insertRoot links v as the new root; the root must already be the splayed
// closest neighbor of v. Equal values land in the right subtree. Returns 0
// when the arena is full and growth was denied, leaving the tree unchanged.
func (u *Splay[T, S]) insertRoot(v T) S {
	ni := u.alloc(v)
	if ni == 0 {
		return 0
	}
	if r := u.root; r != 0 {
		if u.cmp(v, *u.getV(r)) < 0 {
			u.setL(ni, u.ifs[r].l)
			u.ifs[r].l = 0
			u.setR(ni, r)
		} else {
			u.setR(ni, u.ifs[r].r)
			u.ifs[r].r = 0
			u.setL(ni, r)
		}
	}
	u.ifs[ni].p = 0
	u.root = ni
	u.sz++
	return ni
}

// detachRoot removes the root by joining its subtrees: the predecessor is
// splayed to the top of the left subtree, which then adopts the right
// subtree. The index is recycled.
func (u *Splay[T, S]) detachRoot() {
	r := u.root
	l, rt := u.ifs[r].l, u.ifs[r].r
	if l == 0 {
		u.root = rt
		if rt != 0 {
			u.ifs[rt].p = 0
		}
	} else {
		u.ifs[l].p = 0
		u.root = l
		u.splay(func(*T) int { return 1 }) // max of the left subtree: no right child after
		u.setR(u.root, rt)
	}
	u.addFree(r)
	u.sz--
}

// Insert v. The returned Entry is Occupied at the existing element when an
// equal value was already present (the tree is then undisturbed beyond the
// splay), Occupied at the new element on success, and InsertFailed when the
// arena is full and the growth policy denied a reallocation.
// Time: amortized O(log n).
func (u *Splay[T, S]) Insert(v T) Entry[T, S] {
	u.splay(u.at(v))
	if u.root != 0 && u.cmp(v, *u.getV(u.root)) == 0 {
		return Entry[T, S]{u: u, i: u.root, status: occupied}
	}
	if ni := u.insertRoot(v); ni != 0 {
		return Entry[T, S]{u: u, i: ni, status: occupied}
	}
	return Entry[T, S]{u: u, status: insertFailed}
}

// Entry splays v's position and returns an Occupied entry at the element
// equal to v, or a Vacant one whose OrInsert will link at the splayed
// insertion point. The entry must be consumed before any other mutating
// call on the tree.
func (u *Splay[T, S]) Entry(v T) Entry[T, S] {
	u.splay(u.at(v))
	if u.root != 0 && u.cmp(v, *u.getV(u.root)) == 0 {
		return Entry[T, S]{u: u, i: u.root, status: occupied}
	}
	return Entry[T, S]{u: u, status: vacant}
}

// Remove [Tree.Remove].
// Time: amortized O(log n).
func (u *Splay[T, S]) Remove(v T) (T, bool) {
	u.splay(u.at(v))
	if u.root == 0 || u.cmp(v, *u.getV(u.root)) != 0 {
		return *new(T), false
	}
	out := *u.getV(u.root)
	u.detachRoot()
	return out, true
}

// Get the element equal to v, splaying it to the root, or nil.
func (u *Splay[T, S]) Get(v T) *T {
	u.splay(u.at(v))
	if u.root != 0 && u.cmp(v, *u.getV(u.root)) == 0 {
		return u.getV(u.root)
	}
	return nil
}

// Has [Tree.Has]. Note that this also splays.
func (u *Splay[T, S]) Has(v T) bool {
	return u.Get(v) != nil
}

// Min [Tree.Min]. The minimum is splayed to the root.
func (u *Splay[T, S]) Min() *T {
	if u.root == 0 {
		return nil
	}
	u.splay(func(*T) int { return -1 })
	return u.getV(u.root)
}

// Max [Tree.Max]. The maximum is splayed to the root.
func (u *Splay[T, S]) Max() *T {
	if u.root == 0 {
		return nil
	}
	u.splay(func(*T) int { return 1 })
	return u.getV(u.root)
}

// PopMin [Tree.PopMin]. Together with PopMax this makes the tree a
// double-ended priority queue.
func (u *Splay[T, S]) PopMin() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	u.splay(func(*T) int { return -1 })
	out := *u.getV(u.root)
	u.detachRoot()
	return out, true
}

// PopMax [Tree.PopMax].
func (u *Splay[T, S]) PopMax() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	u.splay(func(*T) int { return 1 })
	out := *u.getV(u.root)
	u.detachRoot()
	return out, true
}

// Successor [Tree.Successor]. Doesn't splay.
// Time: O(log n) amortized against the splayed shape; Space: O(1).
func (u *Splay[T, S]) Successor(v T) *T {
	var p S
	for cur := u.root; cur != 0; {
		if u.cmp(v, *u.getV(cur)) < 0 {
			p = cur
			cur = u.ifs[cur].l
		} else {
			cur = u.ifs[cur].r
		}
	}
	if p == 0 {
		return nil
	}
	return u.getV(p)
}

// Predecessor [Tree.Predecessor]. Doesn't splay.
func (u *Splay[T, S]) Predecessor(v T) *T {
	var p S
	for cur := u.root; cur != 0; {
		if u.cmp(v, *u.getV(cur)) > 0 {
			p = cur
			cur = u.ifs[cur].r
		} else {
			cur = u.ifs[cur].l
		}
	}
	if p == 0 {
		return nil
	}
	return u.getV(p)
}

// ceil is the smallest node >= v, 0 if none. A passive descent: a range
// needs two boundary searches, and splaying the second would rotate the
// first boundary straight back down, so neither splays. Callers wanting the
// locality boost for a boundary can Get it afterwards.
func (u *Splay[T, S]) ceil(v T) S {
	var p S
	for cur := u.root; cur != 0; {
		if u.cmp(v, *u.getV(cur)) <= 0 {
			p = cur
			cur = u.ifs[cur].l
		} else {
			cur = u.ifs[cur].r
		}
	}
	return p
}

// floor is the greatest node <= v, 0 if none.
func (u *Splay[T, S]) floor(v T) S {
	var p S
	for cur := u.root; cur != 0; {
		if u.cmp(v, *u.getV(cur)) >= 0 {
			p = cur
			cur = u.ifs[cur].r
		} else {
			cur = u.ifs[cur].l
		}
	}
	return p
}

// EqualRange is the ascending half-open view from the smallest element >= lo
// up to but excluding the smallest element >= hi. The boundary searches
// don't splay; see ceil.
func (u *Splay[T, S]) EqualRange(lo, hi T) Range[T, S] {
	return Range[T, S]{u: u, begin: u.ceil(lo), end: u.ceil(hi)}
}

// EqualRRange is the descending half-open view from the greatest element
// <= hi down to but excluding the greatest element <= lo.
func (u *Splay[T, S]) EqualRRange(hi, lo T) RRange[T, S] {
	return RRange[T, S]{u: u, begin: u.floor(hi), end: u.floor(lo)}
}

// Update applies fn to the element equal to v in place. If the modified
// element still orders strictly between its structural neighbors the tree is
// left as is; otherwise it is detached and reinserted. fn must keep the
// element unique under cmp, otherwise it ends up adjacent to its equal.
// Returns false without calling fn when v isn't present.
func (u *Splay[T, S]) Update(v T, fn func(*T)) bool {
	u.splay(u.at(v))
	r := u.root
	if r == 0 || u.cmp(v, *u.getV(r)) != 0 {
		return false
	}
	fn(u.getV(r))
	nv := *u.getV(r)
	ordered := true
	if l := u.ifs[r].l; l != 0 && u.cmp(nv, *u.getV(u.rightmost(l))) <= 0 {
		ordered = false
	}
	if rt := u.ifs[r].r; ordered && rt != 0 && u.cmp(nv, *u.getV(u.leftmost(rt))) >= 0 {
		ordered = false
	}
	if !ordered {
		u.detachRoot()
		u.splay(u.at(nv))
		u.insertRoot(nv) // the slot just freed is reused, so this can't fail
	}
	return true
}

// InOrder [Tree.InOrder]. Iterative through the parent links, no stack.
func (u *Splay[T, S]) InOrder(f func(*T) bool) {
	if u.root == 0 {
		return
	}
	for i := u.leftmost(u.root); i != 0; i = u.next(i) {
		if !f(u.getV(i)) {
			return
		}
	}
}

// InOrderR is InOrder in descending order.
func (u *Splay[T, S]) InOrderR(f func(*T) bool) {
	if u.root == 0 {
		return
	}
	for i := u.rightmost(u.root); i != 0; i = u.prev(i) {
		if !f(u.getV(i)) {
			return
		}
	}
}

// Size [Tree.Size].
func (u *Splay[T, S]) Size() uint {
	return uint(u.sz)
}

// Clear removes every element, calling des once per element first when it
// isn't nil. Keeps the arena storage.
func (u *Splay[T, S]) Clear(des func(*T)) {
	if des != nil {
		u.InOrder(func(v *T) bool {
			des(v)
			return true
		})
	}
	u.ifs = u.ifs[:1]
	u.vs = u.vs[:0]
	u.root, u.free, u.sz = 0, 0, 0
}

// Validate [Tree.Validate]: every node orders strictly within its ancestors'
// bounds, every parent link mirrors a child link, and the reachable count
// equals Size. Recursive.
func (u *Splay[T, S]) Validate() bool {
	if u.root == 0 {
		return u.sz == 0
	}
	if u.ifs[u.root].p != 0 {
		return false
	}
	n, ok := u.validate(u.root, nil, nil)
	return ok && n == u.sz
}

func (u *Splay[T, S]) validate(i S, lo, hi *T) (S, bool) {
	v := u.getV(i)
	if lo != nil && u.cmp(*v, *lo) <= 0 {
		return 0, false
	}
	if hi != nil && u.cmp(*v, *hi) >= 0 {
		return 0, false
	}
	n := S(1)
	if l := u.ifs[i].l; l != 0 {
		if u.ifs[l].p != i {
			return 0, false
		}
		c, ok := u.validate(l, lo, v)
		if !ok {
			return 0, false
		}
		n += c
	}
	if r := u.ifs[i].r; r != 0 {
		if u.ifs[r].p != i {
			return 0, false
		}
		c, ok := u.validate(r, v, hi)
		if !ok {
			return 0, false
		}
		n += c
	}
	return n, true
}
