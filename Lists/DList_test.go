package Lists

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"
)

const lAddN = 4000

func intCmp(a, b int) int { return cmp.Compare(a, b) }

func collect[T any](l *DList[T]) []T {
	var out []T
	l.Range(func(v *T) bool {
		out = append(out, *v)
		return true
	})
	return out
}

func TestDList_PushPop(t *testing.T) {
	l := NewD[int]()
	if _, ok := l.PopFront(); ok {
		t.Error("popped from empty list")
	}
	for i := range 8 {
		l.PushBack(i)
	}
	l.PushFront(-1)
	if !l.Validate() {
		t.Fatal("invalid after pushes")
	}
	if l.Size() != 9 || l.Front().Val != -1 || l.Back().Val != 7 {
		t.Error("wrong ends:", l.Front().Val, l.Back().Val)
	}
	if v, _ := l.PopFront(); v != -1 {
		t.Error("wrong front pop:", v)
	}
	if v, _ := l.PopBack(); v != 7 {
		t.Error("wrong back pop:", v)
	}
	if got := collect(l); !slices.Equal(got, []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Error("wrong contents:", got)
	}
}

func TestDList_InsertErase(t *testing.T) {
	l := NewD[int]()
	mid := l.PushBack(1)
	l.InsertBefore(mid, 0)
	l.InsertAfter(mid, 2)
	if got := collect(l); !slices.Equal(got, []int{0, 1, 2}) {
		t.Fatal("wrong contents:", got)
	}
	des := 0
	l.Erase(mid, func(*int) { des++ })
	if des != 1 || l.Size() != 2 || !l.Validate() {
		t.Error("erase went wrong")
	}
	l.EraseRange(l.Front(), nil, func(*int) { des++ })
	if des != 3 || l.Size() != 0 {
		t.Error("erase range went wrong:", des, l.Size())
	}
}

func TestDList_Splice(t *testing.T) {
	a, b := NewD[int](), NewD[int]()
	for i := range 4 {
		a.PushBack(i)
		b.PushBack(10 + i)
	}
	b.Splice(b.Front(), a, a.Back())
	if got := collect(b); !slices.Equal(got, []int{3, 10, 11, 12, 13}) {
		t.Fatal("wrong contents after splice:", got)
	}
	b.SpliceRange(&b.sen, a, a.Front(), nil)
	if a.Size() != 0 || b.Size() != 8 || !a.Validate() || !b.Validate() {
		t.Fatal("wrong sizes after range splice:", a.Size(), b.Size())
	}
	if got := collect(b); !slices.Equal(got, []int{3, 10, 11, 12, 13, 0, 1, 2}) {
		t.Error("wrong contents after range splice:", got)
	}
}

func TestDList_ExtractRange(t *testing.T) {
	l := NewD[int]()
	for i := range 6 {
		l.PushBack(i)
	}
	mid := l.ExtractRange(l.Next(l.Front()), l.Back())
	if got := collect(mid); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Fatal("wrong extracted range:", got)
	}
	if got := collect(l); !slices.Equal(got, []int{0, 5}) || !l.Validate() || !mid.Validate() {
		t.Error("wrong remainder:", got)
	}
}

func TestDList_Extract(t *testing.T) {
	l := NewD[int]()
	for i := range 3 {
		l.PushBack(i)
	}
	n := l.Extract(l.Front())
	if n.Val != 0 || l.Size() != 2 {
		t.Fatal("wrong extracted node")
	}
	link(n, l.sen.prev, &l.sen)
	l.sz++
	if got := collect(l); !slices.Equal(got, []int{1, 2, 0}) || !l.Validate() {
		t.Error("relink went wrong:", got)
	}
}

func TestDList_Sort(t *testing.T) {
	l := NewD[int]()
	for _, v := range []int{5, 3, 1, 4, 2} {
		l.PushBack(v)
	}
	l.Sort(intCmp)
	if got := collect(l); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Fatal("wrong order after sort:", got)
	}
	if !l.IsSorted(intCmp) || !l.Validate() {
		t.Fatal("invalid after sort")
	}
	var before []*DNode[int]
	for n := l.Front(); n != nil; n = l.Next(n) {
		before = append(before, n)
	}
	l.Sort(intCmp)
	i := 0
	for n := l.Front(); n != nil; n = l.Next(n) {
		if before[i] != n {
			t.Fatal("sorted input was relinked at", i)
		}
		i++
	}
}

func TestDList_SortRandom(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	l := NewD[int]()
	ref := make([]int, 0, lAddN)
	for range lAddN {
		v := rg.Intn(lAddN / 2)
		l.PushBack(v)
		ref = append(ref, v)
	}
	l.Sort(intCmp)
	slices.Sort(ref)
	if got := collect(l); !slices.Equal(got, ref) {
		t.Fatal("wrong order after sort")
	}
	if !l.Validate() {
		t.Fatal("invalid after sort")
	}
}

func TestDList_SortStable(t *testing.T) {
	type kv struct{ k, seq int }
	rg := rand.New(rand.NewSource(1))
	l := NewD[kv]()
	for i := range 512 {
		l.PushBack(kv{k: rg.Intn(8), seq: i})
	}
	l.Sort(func(a, b kv) int { return cmp.Compare(a.k, b.k) })
	prev := kv{k: -1, seq: -1}
	l.Range(func(v *kv) bool {
		if v.k < prev.k || (v.k == prev.k && v.seq < prev.seq) {
			t.Error("stability broken at", *v)
		}
		prev = *v
		return true
	})
}

func TestDList_Clear(t *testing.T) {
	l := NewD[int]()
	for i := range 16 {
		l.PushBack(i)
	}
	des := 0
	l.Clear(func(*int) { des++ })
	if des != 16 || l.Size() != 0 || l.Front() != nil || !l.Validate() {
		t.Error("clear went wrong:", des, l.Size())
	}
}
