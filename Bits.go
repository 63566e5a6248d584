package Go_Cols

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

const blockBits = 64

// maskRange is a block mask with bits [lo, hi) up.
func maskRange(lo, hi uint) uint64 {
	return (^uint64(0) << lo) & (^uint64(0) >> (blockBits - hi))
}

// Bits is a word-blocked bit array of fixed logical length with optional
// growth through PushBack. All range receivers take a starting bit index i
// and a count n and panic with *BoundsError when [i, i+n) exceeds Len.
// Range receivers handle the partial first block, whole interior blocks, and
// the partial last block separately so hot loops never divide per bit.
// Not safe for concurrent use.
type Bits struct {
	blk  []uint64
	n    int
	grow Grower
}

// NewBits makes a Bits of n zero bits that grows by doubling.
func NewBits(n int) *Bits {
	return NewBitsGrow(n, DoubleCap)
}

// NewBitsGrow makes a Bits of n zero bits with the given growth policy.
// With FixedCap, PushBack fails once the last allocated block is used up.
func NewBitsGrow(n int, g Grower) *Bits {
	return &Bits{blk: make([]uint64, (n+blockBits-1)/blockBits), n: n, grow: g}
}

// Len is the logical number of bits.
func (u *Bits) Len() int {
	return u.n
}

func (u *Bits) check(i, n int) {
	if i < 0 || n < 0 || i+n > u.n {
		panic(&BoundsError{Index: i + n, Len: u.n})
	}
}

// fixEnd zeroes the unused high bits of the final block so that Popcount,
// Eq and the All/Any/None receivers never see bits beyond Len.
func (u *Bits) fixEnd() {
	if r := uint(u.n % blockBits); r != 0 && len(u.blk) > 0 {
		u.blk[len(u.blk)-1] &= ^uint64(0) >> (blockBits - r)
	}
}

func (u *Bits) Get(i int) bool {
	u.check(i, 1)
	return u.blk[i/blockBits]>>(i%blockBits)&1 == 1
}

// Up sets bit i.
func (u *Bits) Up(i int) {
	u.check(i, 1)
	u.blk[i/blockBits] |= 1 << (i % blockBits)
}

// Down clears bit i.
func (u *Bits) Down(i int) {
	u.check(i, 1)
	u.blk[i/blockBits] &^= 1 << (i % blockBits)
}

// Flip inverts bit i.
func (u *Bits) Flip(i int) {
	u.check(i, 1)
	u.blk[i/blockBits] ^= 1 << (i % blockBits)
}

// PushBack appends one bit, growing the block array under the growth policy.
// Returns *FullError and leaves the array unchanged when growth is denied.
func (u *Bits) PushBack(v bool) error {
	if u.n == len(u.blk)*blockBits {
		if u.n == cap(u.blk)*blockBits {
			next, ok := u.grow(cap(u.blk), cap(u.blk)+1)
			if !ok {
				return &FullError{Cap: u.n}
			}
			nb := make([]uint64, len(u.blk), next)
			copy(nb, u.blk)
			u.blk = nb
		}
		u.blk = append(u.blk, 0)
	}
	u.n++
	if v {
		u.Up(u.n - 1)
	}
	return nil
}

// SetRange sets bits [i, i+n).
func (u *Bits) SetRange(i, n int) {
	u.check(i, n)
	for n > 0 {
		b, lo := i/blockBits, uint(i%blockBits)
		hi := uint(blockBits)
		if w := blockBits - int(lo); w > n {
			hi = lo + uint(n)
		}
		if lo == 0 && hi == blockBits {
			u.blk[b] = ^uint64(0)
		} else {
			u.blk[b] |= maskRange(lo, hi)
		}
		i += int(hi - lo)
		n -= int(hi - lo)
	}
}

// ResetRange clears bits [i, i+n).
func (u *Bits) ResetRange(i, n int) {
	u.check(i, n)
	for n > 0 {
		b, lo := i/blockBits, uint(i%blockBits)
		hi := uint(blockBits)
		if w := blockBits - int(lo); w > n {
			hi = lo + uint(n)
		}
		if lo == 0 && hi == blockBits {
			u.blk[b] = 0
		} else {
			u.blk[b] &^= maskRange(lo, hi)
		}
		i += int(hi - lo)
		n -= int(hi - lo)
	}
}

// FlipRange inverts bits [i, i+n).
func (u *Bits) FlipRange(i, n int) {
	u.check(i, n)
	for n > 0 {
		b, lo := i/blockBits, uint(i%blockBits)
		hi := uint(blockBits)
		if w := blockBits - int(lo); w > n {
			hi = lo + uint(n)
		}
		if lo == 0 && hi == blockBits {
			u.blk[b] = ^u.blk[b]
		} else {
			u.blk[b] ^= maskRange(lo, hi)
		}
		i += int(hi - lo)
		n -= int(hi - lo)
	}
}

// PopcountRange counts the up bits in [i, i+n).
func (u *Bits) PopcountRange(i, n int) int {
	u.check(i, n)
	c := 0
	for n > 0 {
		b, lo := i/blockBits, uint(i%blockBits)
		hi := uint(blockBits)
		if w := blockBits - int(lo); w > n {
			hi = lo + uint(n)
		}
		c += bits.OnesCount64(u.blk[b] & maskRange(lo, hi))
		i += int(hi - lo)
		n -= int(hi - lo)
	}
	return c
}

// Popcount counts all up bits.
func (u *Bits) Popcount() int {
	u.fixEnd()
	return int(popcount.CountSlice(u.blk))
}

// AllRange reports whether every bit in [i, i+n) is up. True for n==0.
func (u *Bits) AllRange(i, n int) bool {
	u.check(i, n)
	for n > 0 {
		b, lo := i/blockBits, uint(i%blockBits)
		hi := uint(blockBits)
		if w := blockBits - int(lo); w > n {
			hi = lo + uint(n)
		}
		if m := maskRange(lo, hi); u.blk[b]&m != m {
			return false
		}
		i += int(hi - lo)
		n -= int(hi - lo)
	}
	return true
}

// AnyRange reports whether some bit in [i, i+n) is up.
func (u *Bits) AnyRange(i, n int) bool {
	u.check(i, n)
	for n > 0 {
		b, lo := i/blockBits, uint(i%blockBits)
		hi := uint(blockBits)
		if w := blockBits - int(lo); w > n {
			hi = lo + uint(n)
		}
		if u.blk[b]&maskRange(lo, hi) != 0 {
			return true
		}
		i += int(hi - lo)
		n -= int(hi - lo)
	}
	return false
}

// NoneRange reports whether no bit in [i, i+n) is up.
func (u *Bits) NoneRange(i, n int) bool {
	return !u.AnyRange(i, n)
}

func (u *Bits) All() bool {
	return u.AllRange(0, u.n)
}

func (u *Bits) Any() bool {
	return u.AnyRange(0, u.n)
}

func (u *Bits) None() bool {
	return !u.Any()
}

// scanForward finds the lowest index starting k contiguous bits equal to
// ones, skipping whole blocks with trailing-zero counts and carrying a
// partial run count across block boundaries. Returns -1 when absent.
func (u *Bits) scanForward(k int, ones bool) int {
	if k <= 0 || k > u.n {
		return -1
	}
	run, start := 0, 0
	for i := 0; i < u.n; {
		w := u.blk[i/blockBits]
		if !ones {
			w = ^w
		}
		off := uint(i % blockBits)
		w >>= off
		rem := blockBits - int(off)
		if left := u.n - i; left < rem {
			rem = left
		}
		if c := bits.TrailingZeros64(^w); c > 0 { // matching bits at the bottom
			if c > rem {
				c = rem
			}
			if run == 0 {
				start = i
			}
			if run += c; run >= k {
				return start
			}
			i += c
		} else { // mismatch run: skip it whole
			z := bits.TrailingZeros64(w)
			if z > rem {
				z = rem
			}
			run = 0
			i += z
		}
	}
	return -1
}

// scanBackward mirrors scanForward from the high end, returning the highest
// index i such that bits (i-k, i] all equal ones. Returns -1 when absent.
func (u *Bits) scanBackward(k int, ones bool) int {
	if k <= 0 || k > u.n {
		return -1
	}
	run, start := 0, 0
	for i := u.n - 1; i >= 0; {
		w := u.blk[i/blockBits]
		if !ones {
			w = ^w
		}
		top := uint(blockBits - 1 - i%blockBits)
		w <<= top
		rem := i%blockBits + 1
		if c := bits.LeadingZeros64(^w); c > 0 {
			if c > rem {
				c = rem
			}
			if run == 0 {
				start = i
			}
			if run += c; run >= k {
				return start
			}
			i -= c
		} else {
			z := bits.LeadingZeros64(w)
			if z > rem {
				z = rem
			}
			run = 0
			i -= z
		}
	}
	return -1
}

// FirstTrailingOne is the lowest up bit, -1 if none.
func (u *Bits) FirstTrailingOne() int {
	return u.scanForward(1, true)
}

// FirstTrailingOnes is the lowest index beginning k contiguous up bits.
func (u *Bits) FirstTrailingOnes(k int) int {
	return u.scanForward(k, true)
}

// FirstTrailingZero is the lowest down bit, -1 if none.
func (u *Bits) FirstTrailingZero() int {
	return u.scanForward(1, false)
}

// FirstTrailingZeros is the lowest index beginning k contiguous down bits.
func (u *Bits) FirstTrailingZeros(k int) int {
	return u.scanForward(k, false)
}

// FirstLeadingOne is the highest up bit, -1 if none.
func (u *Bits) FirstLeadingOne() int {
	return u.scanBackward(1, true)
}

// FirstLeadingOnes is the highest index ending k contiguous up bits below it.
func (u *Bits) FirstLeadingOnes(k int) int {
	return u.scanBackward(k, true)
}

// FirstLeadingZero is the highest down bit, -1 if none.
func (u *Bits) FirstLeadingZero() int {
	return u.scanBackward(1, false)
}

// FirstLeadingZeros is the highest index ending k contiguous down bits below it.
func (u *Bits) FirstLeadingZeros(k int) int {
	return u.scanBackward(k, false)
}

// Eq reports whether both arrays have the same length and contents.
func (u *Bits) Eq(o *Bits) bool {
	if u.n != o.n {
		return false
	}
	u.fixEnd()
	o.fixEnd()
	for i, w := range u.blk {
		if w != o.blk[i] {
			return false
		}
	}
	return true
}

// Clear downs every bit without releasing storage.
func (u *Bits) Clear() {
	for i := range u.blk {
		u.blk[i] = 0
	}
}
