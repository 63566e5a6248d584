package Trees

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	Go_Cols "github.com/g-m-twostay/go-cols"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

func newInt(hint uint32) *Splay[int, uint32] {
	return New[int, uint32](cmp.Compare[int], hint)
}

func TestSplay_Insert(t *testing.T) {
	tree := newInt(1)
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		if e := tree.Insert(b); e.InsertFailed() || e.Get() == nil || *e.Get() != b {
			t.Errorf("failed to insert key %v", b)
		}
		if !tree.Has(b) {
			t.Errorf("lost key %v", b)
		}
		content[b] = struct{}{}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if !tree.Validate() {
		t.Error("tree is corrupt")
	}
	for k := range content {
		if tree.Get(k) == nil {
			t.Errorf("tree does not have key %v", k)
		}
	}
}

func TestSplay_Remove(t *testing.T) {
	tree := newInt(1)
	content := make(map[int]struct{})
	if _, ok := tree.Remove(0); ok {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i])
		content[a[i]] = struct{}{}
	}
	for i := range rg.Intn(len(a)) {
		_, in := content[a[i]]
		if v, ok := tree.Remove(a[i]); ok != in {
			t.Errorf("failed to delete key %v", a[i])
		} else if ok && v != a[i] {
			t.Errorf("deleted wrong value %v, want %v", v, a[i])
		}
		if _, ok := tree.Remove(a[i]); ok {
			t.Errorf("can delete a second time key %v", a[i])
		}
		delete(content, a[i])
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if !tree.Validate() {
		t.Error("tree is corrupt")
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
}

// prime-stride shuffle of 0..50: every insert keeps the tree valid and the
// in-order walk comes out ascending.
func TestSplay_PrimeStride(t *testing.T) {
	tree := newInt(0)
	for i := 0; i < 50; i++ {
		tree.Insert(i * 53 % 50)
		if !tree.Validate() {
			t.Fatalf("tree is corrupt after inserting %d", i*53%50)
		}
	}
	if tree.Size() != 50 {
		t.Fatalf("tree size is %d, want 50", tree.Size())
	}
	var s []int
	tree.InOrder(func(v *int) bool {
		s = append(s, *v)
		return true
	})
	for i := range 50 {
		if s[i] != i {
			t.Fatalf("in-order position %d holds %d", i, s[i])
		}
	}
}

func TestSplay_SplaysToRoot(t *testing.T) {
	tree := newInt(0)
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i])
	}
	for range 100 {
		k := a[rg.Intn(len(a))]
		if !tree.Has(k) {
			t.Fatalf("tree does not have key %v", k)
		}
		if got := *tree.getV(tree.root); got != k {
			t.Fatalf("root is %d after finding %d", got, k)
		}
	}
}

func TestSplay_InOrder(t *testing.T) {
	tree := newInt(1)
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		tree.Insert(b)
		content[b] = struct{}{}
	}
	var s []int
	tree.InOrder(func(v *int) bool {
		s = append(s, *v)
		return true
	})
	if int(tree.Size()) != len(s) {
		t.Errorf("walked %d elements, want %d", len(s), tree.Size())
	}
	if !slices.IsSorted(s) {
		t.Errorf("in-order walk is not sorted")
	}
	for _, v := range s {
		if _, in := content[v]; !in {
			t.Errorf("walk has non existent key %v", v)
		}
	}
	var r []int
	tree.InOrderR(func(v *int) bool {
		r = append(r, *v)
		return true
	})
	slices.Reverse(r)
	if !slices.Equal(s, r) {
		t.Errorf("reverse walk disagrees with forward walk")
	}
}

func TestSplay_PopMinMax(t *testing.T) {
	tree := newInt(1)
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		tree.Insert(b)
		content[b] = struct{}{}
	}
	last, first := -1, tAddValRange
	for range len(content) / 2 {
		v, ok := tree.PopMin()
		if !ok || v <= last {
			t.Fatalf("PopMin gave %d after %d", v, last)
		}
		last = v
		if w, ok := tree.PopMax(); !ok || w >= first || w <= v {
			t.Fatalf("PopMax gave %d", w)
		} else {
			first = w
		}
	}
	if !tree.Validate() {
		t.Error("tree is corrupt")
	}
}

func TestSplay_PredSucc(t *testing.T) {
	tree := newInt(0)
	for i := range tAddN {
		tree.Insert(i * 2)
	}
	for i := 1; i < tAddN; i++ {
		if p := tree.Predecessor(i * 2); p == nil || *p != i*2-2 {
			t.Fatalf("wrong predecessor of %d", i*2)
		}
		if p := tree.Predecessor(i*2 + 1); p == nil || *p != i*2 {
			t.Fatalf("wrong predecessor of %d", i*2+1)
		}
		if s := tree.Successor(i*2 - 2); s == nil || *s != i*2 {
			t.Fatalf("wrong successor of %d", i*2-2)
		}
		if s := tree.Successor(i*2 - 1); s == nil || *s != i*2 {
			t.Fatalf("wrong successor of %d", i*2-1)
		}
	}
	if tree.Predecessor(0) != nil {
		t.Fatal("shouldn't have predecessor")
	}
	if tree.Successor((tAddN - 1) * 2) != nil {
		t.Fatal("shouldn't have successor")
	}
}

func TestSplay_EqualRange(t *testing.T) {
	tree := newInt(0)
	for i := range 100 {
		tree.Insert(i * 3) // 0,3,...,297
	}
	var s []int
	tree.EqualRange(10, 40).For(func(v *int) bool {
		s = append(s, *v)
		return true
	})
	want := []int{12, 15, 18, 21, 24, 27, 30, 33, 36, 39}
	if !slices.Equal(s, want) {
		t.Fatalf("forward range is %v, want %v", s, want)
	}
	r := tree.EqualRange(10, 40)
	if r.Begin() == nil || *r.Begin() != 12 {
		t.Fatal("wrong range begin")
	}
	if r.End() == nil || *r.End() != 42 {
		t.Fatal("wrong range end")
	}
	s = s[:0]
	tree.EqualRRange(40, 10).For(func(v *int) bool {
		s = append(s, *v)
		return true
	})
	slices.Reverse(s)
	if !slices.Equal(s, want) {
		t.Fatalf("reverse range is %v, want %v", s, want)
	}
	s = s[:0]
	tree.EqualRange(-50, 3).For(func(v *int) bool {
		s = append(s, *v)
		return true
	})
	if !slices.Equal(s, []int{0}) {
		t.Fatalf("clamped range is %v", s)
	}
	s = s[:0]
	tree.EqualRange(297, 1000).For(func(v *int) bool {
		s = append(s, *v)
		return true
	})
	if !slices.Equal(s, []int{297}) {
		t.Fatalf("tail range is %v", s)
	}
}

func TestSplay_Update(t *testing.T) {
	type kv struct {
		k, n int
	}
	tree := New[kv, uint32](func(a, b kv) int { return cmp.Compare(a.k, b.k) }, 0)
	for i := range 100 {
		tree.Insert(kv{k: i * 10})
	}
	// in-place: the payload changes, the key stays between its neighbors
	if !tree.Update(kv{k: 500}, func(v *kv) { v.n = 7 }) {
		t.Fatal("update of present key failed")
	}
	if got := tree.Get(kv{k: 500}); got == nil || got.n != 7 {
		t.Fatal("payload update was lost")
	}
	// reordering: the key moves across the whole tree
	if !tree.Update(kv{k: 500}, func(v *kv) { v.k = -1 }) {
		t.Fatal("reordering update failed")
	}
	if tree.Has(kv{k: 500}) {
		t.Fatal("old key still present")
	}
	if got := tree.Get(kv{k: -1}); got == nil || got.n != 7 {
		t.Fatal("moved element lost its payload")
	}
	if !tree.Validate() {
		t.Error("tree is corrupt after updates")
	}
	if tree.Update(kv{k: 12345}, func(v *kv) {}) {
		t.Fatal("update of absent key succeeded")
	}
}

func TestSplay_Entry(t *testing.T) {
	tree := newInt(0)
	tree.Insert(5)
	// or_insert on an occupied entry keeps the existing element
	if p := tree.Entry(5).OrInsert(5); p == nil || *p != 5 {
		t.Fatal("occupied OrInsert gave wrong element")
	}
	if tree.Size() != 1 {
		t.Fatalf("size is %d after occupied OrInsert", tree.Size())
	}
	// or_insert on a vacant entry inserts the default
	if p := tree.Entry(9).OrInsert(9); p == nil || *p != 9 {
		t.Fatal("vacant OrInsert didn't insert")
	}
	if tree.Size() != 2 {
		t.Fatalf("size is %d after vacant OrInsert", tree.Size())
	}
	called := false
	tree.Entry(5).OrInsertWith(func() int {
		called = true
		return 5
	})
	if called {
		t.Fatal("OrInsertWith evaluated its default for an occupied entry")
	}
	if v, ok := tree.Entry(9).RemoveEntry(); !ok || v != 9 {
		t.Fatal("RemoveEntry failed")
	}
	if _, ok := tree.Entry(9).RemoveEntry(); ok {
		t.Fatal("RemoveEntry removed an absent key")
	}
	if !tree.Validate() {
		t.Error("tree is corrupt")
	}
}

func TestSplay_Fixed(t *testing.T) {
	const n = 64
	tree := NewGrow[int, uint8](cmp.Compare[int], n, Go_Cols.FixedCap)
	for i := range n {
		if e := tree.Insert(i * 53 % n); e.InsertFailed() {
			t.Fatalf("insert %d failed below capacity", i)
		}
	}
	if e := tree.Insert(n + 1); !e.InsertFailed() {
		t.Fatal("insert beyond capacity succeeded")
	}
	if tree.Size() != n {
		t.Fatalf("size changed to %d on failed insert", tree.Size())
	}
	if !tree.Validate() {
		t.Error("tree is corrupt after failed insert")
	}
	if _, ok := tree.Remove(17); !ok {
		t.Fatal("remove failed")
	}
	if e := tree.Insert(n + 1); e.InsertFailed() {
		t.Fatal("insert after remove failed")
	}
}

// a uint8 arena can index 255 nodes; asking for exactly that many must not
// overflow the constructor's capacity math.
func TestSplay_FixedMaxHint(t *testing.T) {
	const n = 255
	tree := NewGrow[int, uint8](cmp.Compare[int], n, Go_Cols.FixedCap)
	for i := range n {
		if e := tree.Insert(i * 53 % n); e.InsertFailed() {
			t.Fatalf("insert %d failed below capacity", i)
		}
	}
	if tree.Size() != n {
		t.Fatalf("size is %d, want %d", tree.Size(), n)
	}
	if e := tree.Insert(n); !e.InsertFailed() {
		t.Fatal("insert beyond the index type's capacity succeeded")
	}
	if !tree.Validate() {
		t.Error("tree is corrupt at full capacity")
	}
}

func TestSplay_Clear(t *testing.T) {
	tree := newInt(0)
	for i := range 100 {
		tree.Insert(i)
	}
	destroyed := 0
	tree.Clear(func(*int) { destroyed++ })
	if destroyed != 100 {
		t.Fatalf("destructor ran %d times, want 100", destroyed)
	}
	if tree.Size() != 0 || tree.Has(1) {
		t.Fatal("tree not empty after Clear")
	}
	tree.Insert(3)
	if tree.Size() != 1 || !tree.Has(3) {
		t.Fatal("tree unusable after Clear")
	}
}
