// Package Queues implements a double-ended queue over a circular array.
package Queues

import (
	Go_Cols "github.com/g-m-twostay/go-cols"
)

// Deque is a circular array deque. All end operations are amortized O(1);
// growth goes through the configured Go_Cols.Grower, so a FixedCap deque
// never reallocates and reports Go_Cols.FullError when out of room. Not
// safe for concurrent use.
type Deque[T any] struct {
	buf  []T
	head int
	sz   int
	grow Go_Cols.Grower
}

// New creates a Deque with room for size elements that doubles when full.
func New[T any](size int) *Deque[T] {
	return NewGrow[T](size, Go_Cols.DoubleCap)
}

// NewGrow is New with an explicit growth policy.
func NewGrow[T any](size int, g Go_Cols.Grower) *Deque[T] {
	if size < 1 {
		size = 1
	}
	return &Deque[T]{buf: make([]T, size), grow: g}
}

// Size of the deque.
func (u *Deque[T]) Size() int {
	return u.sz
}

// Cap is the current slot count.
func (u *Deque[T]) Cap() int {
	return len(u.buf)
}

// resize linearizes the elements into a fresh buffer of length n. n >= sz.
func (u *Deque[T]) resize(n int) {
	nb := make([]T, n)
	tail := u.head + u.sz
	if tail <= len(u.buf) {
		copy(nb, u.buf[u.head:tail])
	} else {
		m := copy(nb, u.buf[u.head:])
		copy(nb[m:], u.buf[:tail-len(u.buf)])
	}
	u.buf, u.head = nb, 0
}

// ensure makes room for one more element, consulting the Grower when full.
func (u *Deque[T]) ensure() error {
	if u.sz < len(u.buf) {
		return nil
	}
	n, ok := u.grow(len(u.buf), u.sz+1)
	if !ok {
		return &Go_Cols.FullError{Cap: len(u.buf)}
	}
	u.resize(n)
	return nil
}

// PushBack appends v. Errors only when full under a denying growth policy.
func (u *Deque[T]) PushBack(v T) error {
	if err := u.ensure(); err != nil {
		return err
	}
	u.buf[(u.head+u.sz)%len(u.buf)] = v
	u.sz++
	return nil
}

// PushFront prepends v. Errors only when full under a denying growth policy.
func (u *Deque[T]) PushFront(v T) error {
	if err := u.ensure(); err != nil {
		return err
	}
	u.head = (u.head - 1 + len(u.buf)) % len(u.buf)
	u.buf[u.head] = v
	u.sz++
	return nil
}

// Front element, nil when empty. Valid until the next push or pop.
func (u *Deque[T]) Front() *T {
	if u.sz == 0 {
		return nil
	}
	return &u.buf[u.head]
}

// Back element, nil when empty. Valid until the next push or pop.
func (u *Deque[T]) Back() *T {
	if u.sz == 0 {
		return nil
	}
	return &u.buf[(u.head+u.sz-1)%len(u.buf)]
}

// At returns the i-th element from the front. Panics with Go_Cols.BoundsError
// when i is out of range.
func (u *Deque[T]) At(i int) *T {
	if i < 0 || i >= u.sz {
		panic(&Go_Cols.BoundsError{Index: i, Len: u.sz})
	}
	return &u.buf[(u.head+i)%len(u.buf)]
}

// PopFront removes and returns the front element.
func (u *Deque[T]) PopFront() (T, bool) {
	if u.sz == 0 {
		return *new(T), false
	}
	v := u.buf[u.head]
	u.buf[u.head] = *new(T)
	u.head = (u.head + 1) % len(u.buf)
	u.sz--
	return v, true
}

// PopBack removes and returns the back element.
func (u *Deque[T]) PopBack() (T, bool) {
	if u.sz == 0 {
		return *new(T), false
	}
	i := (u.head + u.sz - 1) % len(u.buf)
	v := u.buf[i]
	u.buf[i] = *new(T)
	u.sz--
	return v, true
}

// Shrink reallocates the buffer down to the current size.
func (u *Deque[T]) Shrink() {
	n := u.sz
	if n < 1 {
		n = 1
	}
	if n < len(u.buf) {
		u.resize(n)
	}
}

// Range calls f on every element front to back until f returns false.
func (u *Deque[T]) Range(f func(*T) bool) {
	for i := 0; i < u.sz; i++ {
		if !f(&u.buf[(u.head+i)%len(u.buf)]) {
			return
		}
	}
}

// Clear empties the deque, calling des once per element first when it isn't
// nil. The buffer is kept.
func (u *Deque[T]) Clear(des func(*T)) {
	for i := 0; i < u.sz; i++ {
		j := (u.head + i) % len(u.buf)
		if des != nil {
			des(&u.buf[j])
		}
		u.buf[j] = *new(T)
	}
	u.head, u.sz = 0, 0
}
