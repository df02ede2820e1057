// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package circular provides a deque implemented as a circular buffer
// that grows as needed.
package circular

import (
	"iter"
	"log/slog"

	"cloudeng.io/deque"
)

var _ deque.Interface[int] = (*Deque[int])(nil)

// Deque provides a double-ended queue backed by a circular buffer that
// grows as needed. Indexed access is O(1). The zero value is an empty
// deque ready for use, storage is allocated on the first addition.
type Deque[T any] struct {
	storage []T
	head    int // index of the first element.
	used    int
}

// NewDeque creates a new deque with the specified initial capacity,
// the smallest capacity is 1.
func NewDeque[T any](size int) *Deque[T] {
	if size <= 0 {
		size = 1
	}
	return &Deque[T]{
		storage: make([]T, size),
	}
}

// Size returns the current number of elements in the deque.
func (d *Deque[T]) Size() int {
	return d.used
}

// Len is the same as Size.
func (d *Deque[T]) Len() int {
	return d.used
}

// IsEmpty returns true if the deque contains no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.used == 0
}

// Cap returns the current capacity of the deque.
func (d *Deque[T]) Cap() int {
	return len(d.storage)
}

func (d *Deque[T]) slot(i int) int {
	return (d.head + i) % len(d.storage)
}

// unroll copies the contents of the deque, in order, to n.
func (d *Deque[T]) unroll(n []T) {
	if d.head+d.used <= len(d.storage) {
		copy(n, d.storage[d.head:d.head+d.used])
		return
	}
	c := copy(n, d.storage[d.head:])
	copy(n[c:], d.storage[:d.used-c])
}

func (d *Deque[T]) resize(size int) {
	n := make([]T, size)
	d.unroll(n)
	d.head = 0
	d.storage = n
}

func (d *Deque[T]) reserve(extra int) {
	if total := d.used + extra; total > len(d.storage) {
		d.resize(max(total, 2*len(d.storage)))
	}
}

// AddFirst adds item to the front of the deque, growing the deque as
// needed.
func (d *Deque[T]) AddFirst(item T) {
	d.reserve(1)
	d.head = (d.head - 1 + len(d.storage)) % len(d.storage)
	d.storage[d.head] = item
	d.used++
}

// AddLast adds item to the back of the deque, growing the deque as
// needed.
func (d *Deque[T]) AddLast(item T) {
	d.reserve(1)
	d.storage[d.slot(d.used)] = item
	d.used++
}

// Append appends the specified values to the deque, growing the
// deque as needed.
func (d *Deque[T]) Append(v []T) {
	if len(v) == 0 {
		return
	}
	d.reserve(len(v))
	// The free space starts at the slot after the last element and may
	// wrap around, in which case two copies are required.
	start := d.slot(d.used)
	c := copy(d.storage[start:], v)
	copy(d.storage, v[c:])
	d.used += len(v)
}

// RemoveFirst removes and returns the element at the front of the
// deque. It returns false if the deque is empty.
func (d *Deque[T]) RemoveFirst() (T, bool) {
	var zero T
	if d.used == 0 {
		return zero, false
	}
	v := d.storage[d.head]
	d.storage[d.head] = zero
	d.head = (d.head + 1) % len(d.storage)
	d.used--
	return v, true
}

// RemoveLast removes and returns the element at the back of the deque.
// It returns false if the deque is empty.
func (d *Deque[T]) RemoveLast() (T, bool) {
	var zero T
	if d.used == 0 {
		return zero, false
	}
	i := d.slot(d.used - 1)
	v := d.storage[i]
	d.storage[i] = zero
	d.used--
	return v, true
}

// Head removes and returns the first n elements of the deque. If n is
// greater than the number of elements in the deque then all elements
// are returned. The vacated slots are zeroed so that any pointers they
// held may be GC'd.
func (d *Deque[T]) Head(n int) []T {
	if n <= 0 || d.used == 0 {
		return nil
	}
	n = min(n, d.used)
	o := make([]T, n)
	c := copy(o, d.storage[d.head:min(d.head+n, len(d.storage))])
	clear(d.storage[d.head : d.head+c])
	if c < n {
		copy(o[c:], d.storage[:n-c])
		clear(d.storage[:n-c])
	}
	d.head = (d.head + n) % len(d.storage)
	d.used -= n
	return o
}

// First returns the element at the front of the deque without
// removing it.
func (d *Deque[T]) First() (T, bool) {
	return d.Get(0)
}

// Last returns the element at the back of the deque without
// removing it.
func (d *Deque[T]) Last() (T, bool) {
	return d.Get(d.used - 1)
}

// Get returns the element at index, where 0 is the front of the deque.
// It returns false if index is negative or not less than Size.
func (d *Deque[T]) Get(index int) (T, bool) {
	if index < 0 || index >= d.used {
		var zero T
		return zero, false
	}
	return d.storage[d.slot(index)], true
}

// All returns an iterator over the elements of the deque from front
// to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.used; i++ {
			if !yield(d.storage[d.slot(i)]) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of the deque from back
// to front.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := d.used - 1; i >= 0; i-- {
			if !yield(d.storage[d.slot(i)]) {
				return
			}
		}
	}
}

// Reset removes all elements from the deque but retains its storage.
func (d *Deque[T]) Reset() {
	clear(d.storage)
	d.head, d.used = 0, 0
}

// Compact reduces the storage used by the deque to the minimum
// necessary to store its current contents.
func (d *Deque[T]) Compact() {
	if d.used == 0 {
		d.storage = make([]T, 1)
		d.head = 0
		return
	}
	d.resize(d.used)
}

// Equal returns true if other is d, or if other implements
// deque.Indexed[T] and contains the same elements in the same order as
// determined by deque.ValuesEqual.
func (d *Deque[T]) Equal(other any) bool {
	if o, ok := other.(*Deque[T]); ok && o == d {
		return true
	}
	return deque.EqualAny[T](d, other)
}

// LogValue implements slog.LogValuer.
func (d *Deque[T]) LogValue() slog.Value {
	return deque.LogValue(d.used, d.All())
}
