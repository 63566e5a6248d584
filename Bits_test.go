package Go_Cols

import (
	"math/rand"
	"testing"
)

const bLen = 1000

// shadow checks u bit by bit against ref.
func shadow(t *testing.T, u *Bits, ref []bool) {
	t.Helper()
	if u.Len() != len(ref) {
		t.Fatal("wrong length:", u.Len(), len(ref))
	}
	for i, want := range ref {
		if u.Get(i) != want {
			t.Fatal("wrong bit at", i)
		}
	}
}

func TestBits_UpDownFlip(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	u := NewBits(bLen)
	ref := make([]bool, bLen)
	for range bLen * 4 {
		i := rg.Intn(bLen)
		switch rg.Intn(3) {
		case 0:
			u.Up(i)
			ref[i] = true
		case 1:
			u.Down(i)
			ref[i] = false
		default:
			u.Flip(i)
			ref[i] = !ref[i]
		}
	}
	shadow(t, u, ref)
}

func TestBits_Ranges(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	u := NewBits(bLen)
	ref := make([]bool, bLen)
	for range 256 {
		i := rg.Intn(bLen)
		n := rg.Intn(bLen - i)
		switch rg.Intn(3) {
		case 0:
			u.SetRange(i, n)
			for j := i; j < i+n; j++ {
				ref[j] = true
			}
		case 1:
			u.ResetRange(i, n)
			for j := i; j < i+n; j++ {
				ref[j] = false
			}
		default:
			u.FlipRange(i, n)
			for j := i; j < i+n; j++ {
				ref[j] = !ref[j]
			}
		}
	}
	shadow(t, u, ref)
	for range 64 {
		i := rg.Intn(bLen)
		n := rg.Intn(bLen - i)
		want, all, any := 0, true, false
		for j := i; j < i+n; j++ {
			if ref[j] {
				want++
				any = true
			} else {
				all = false
			}
		}
		if got := u.PopcountRange(i, n); got != want {
			t.Fatal("wrong popcount of", i, n, ":", got, want)
		}
		if u.AllRange(i, n) != all || u.AnyRange(i, n) != any || u.NoneRange(i, n) == any {
			t.Fatal("wrong all/any/none of", i, n)
		}
	}
	want := 0
	for _, b := range ref {
		if b {
			want++
		}
	}
	if got := u.Popcount(); got != want {
		t.Error("wrong total popcount:", got, want)
	}
}

func TestBits_RangeEdges(t *testing.T) {
	u := NewBits(130)
	u.SetRange(0, 130)
	if !u.All() || u.Popcount() != 130 {
		t.Fatal("full set range missed bits")
	}
	u.ResetRange(63, 3) // straddles the first block boundary
	if u.Get(62) != true || u.Get(63) != false || u.Get(65) != false || u.Get(66) != true {
		t.Fatal("straddling reset wrong")
	}
	if u.PopcountRange(0, 130) != 127 {
		t.Fatal("wrong popcount after straddling reset")
	}
	u.SetRange(40, 0)
	if u.PopcountRange(0, 130) != 127 || !u.AllRange(40, 0) {
		t.Error("empty range did something")
	}
}

func TestBits_Scans(t *testing.T) {
	u := NewBits(200)
	if u.FirstTrailingOne() != -1 || u.FirstLeadingOne() != -1 {
		t.Fatal("found ones in empty array")
	}
	if u.FirstTrailingZero() != 0 || u.FirstLeadingZero() != 199 {
		t.Fatal("wrong zero scan on empty array")
	}
	u.Up(70)
	u.SetRange(120, 10) // run of 10 crossing nothing
	u.SetRange(60, 6)   // run of 6 ending just before a block boundary
	if got := u.FirstTrailingOne(); got != 60 {
		t.Error("wrong first one:", got)
	}
	if got := u.FirstTrailingOnes(5); got != 60 {
		t.Error("wrong run of 5:", got)
	}
	if got := u.FirstTrailingOnes(8); got != 120 {
		t.Error("wrong run of 8:", got)
	}
	if got := u.FirstTrailingOnes(11); got != -1 {
		t.Error("found absent run:", got)
	}
	if got := u.FirstLeadingOne(); got != 129 {
		t.Error("wrong last one:", got)
	}
	if got := u.FirstLeadingOnes(10); got != 129 {
		t.Error("wrong backward run:", got)
	}
	// run of 7 spanning the boundary at 64: bits 60..66
	u.Up(66)
	if got := u.FirstTrailingOnes(7); got != 60 {
		t.Error("wrong boundary-spanning run:", got)
	}
	u.SetRange(0, 200)
	u.Down(100)
	if got := u.FirstTrailingZero(); got != 100 {
		t.Error("wrong first zero:", got)
	}
	if got := u.FirstLeadingZero(); got != 100 {
		t.Error("wrong last zero:", got)
	}
	if got := u.FirstTrailingZeros(2); got != -1 {
		t.Error("found absent zero run:", got)
	}
}

func TestBits_ScanRandom(t *testing.T) {
	rg := rand.New(rand.NewSource(2))
	u := NewBits(bLen)
	ref := make([]bool, bLen)
	for i := range ref {
		if rg.Intn(3) == 0 {
			ref[i] = true
			u.Up(i)
		}
	}
	for _, k := range []int{1, 2, 3, 7, 64, 65} {
		want := -1
		run := 0
		for i, b := range ref {
			if b {
				if run++; run >= k {
					want = i - k + 1
					break
				}
			} else {
				run = 0
			}
		}
		if got := u.FirstTrailingOnes(k); got != want {
			t.Fatal("wrong forward scan for k =", k, ":", got, want)
		}
		want = -1
		run = 0
		for i := len(ref) - 1; i >= 0; i-- {
			if ref[i] {
				if run++; run >= k {
					want = i + k - 1
					break
				}
			} else {
				run = 0
			}
		}
		if got := u.FirstLeadingOnes(k); got != want {
			t.Fatal("wrong backward scan for k =", k, ":", got, want)
		}
	}
}

func TestBits_PopcountBulk(t *testing.T) {
	u := NewBits(200)
	u.SetRange(3, 130)
	if got := u.Popcount(); got != 130 {
		t.Fatal("wrong bulk popcount:", got)
	}
	if got := u.PopcountRange(3, 130); got != 130 {
		t.Fatal("wrong range popcount:", got)
	}
	u.FlipRange(0, 200)
	if got := u.Popcount(); got != 70 {
		t.Error("wrong bulk popcount after flip:", got)
	}
}

func TestBits_PushBack(t *testing.T) {
	u := NewBits(0)
	var ref []bool
	rg := rand.New(rand.NewSource(3))
	for range 300 {
		v := rg.Intn(2) == 1
		if err := u.PushBack(v); err != nil {
			t.Fatal("push failed:", err)
		}
		ref = append(ref, v)
	}
	shadow(t, u, ref)
}

func TestBits_PushBackFixed(t *testing.T) {
	u := NewBitsGrow(60, FixedCap)
	for i := 60; i < 64; i++ {
		if err := u.PushBack(true); err != nil {
			t.Fatal("push failed inside last block at", i, ":", err)
		}
	}
	if err := u.PushBack(true); err == nil {
		t.Fatal("push succeeded past fixed capacity")
	}
	if u.Len() != 64 {
		t.Error("failed push changed length:", u.Len())
	}
}

func TestBits_EqClear(t *testing.T) {
	a, b := NewBits(100), NewBits(100)
	a.SetRange(10, 50)
	b.SetRange(10, 50)
	if !a.Eq(b) {
		t.Fatal("equal arrays compared unequal")
	}
	b.Flip(99)
	if a.Eq(b) {
		t.Fatal("different arrays compared equal")
	}
	if a.Eq(NewBits(101)) {
		t.Fatal("different lengths compared equal")
	}
	a.Clear()
	if !a.None() || a.Popcount() != 0 {
		t.Error("clear left bits up")
	}
}

func TestBits_Bounds(t *testing.T) {
	u := NewBits(10)
	defer func() {
		if _, ok := recover().(*BoundsError); !ok {
			t.Error("no bounds panic")
		}
	}()
	u.SetRange(5, 6)
}
