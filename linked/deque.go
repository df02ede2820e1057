// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package linked provides a deque implemented as a doubly linked list
// closed into a ring by a single sentinel node.
package linked

import (
	"iter"
	"log/slog"

	"cloudeng.io/deque"
)

var _ deque.Interface[int] = (*Deque[int])(nil)

// Deque is a double-ended queue implemented as a doubly linked list.
// The sentinel's next link is the first item and its prev link is the
// last item; an empty deque's sentinel links to itself.
// The zero value is an empty deque ready for use. A Deque must not be
// copied after first use.
type Deque[T any] struct {
	sentinel node[T] // sentinel to avoid having to handle head/tail corner cases.
	size     int
}

type node[T any] struct {
	next *node[T]
	prev *node[T]
	item T
}

// New returns a new, empty, Deque.
func New[T any]() *Deque[T] {
	d := &Deque[T]{}
	d.Reset()
	return d
}

// Reset removes all items from the deque.
func (d *Deque[T]) Reset() {
	for n := d.sentinel.next; n != nil && n != &d.sentinel; {
		next := n.next
		*n = node[T]{}
		n = next
	}
	d.size = 0
	d.sentinel.next = &d.sentinel
	d.sentinel.prev = &d.sentinel
}

// Size returns the number of items in the deque.
func (d *Deque[T]) Size() int {
	return d.size
}

// Len is the same as Size.
func (d *Deque[T]) Len() int {
	return d.size
}

// IsEmpty returns true if the deque contains no items.
func (d *Deque[T]) IsEmpty() bool {
	return d.size == 0
}

// lazyInit links the sentinel of a zero value Deque to itself.
func (d *Deque[T]) lazyInit() {
	if d.sentinel.next == nil {
		d.Reset()
	}
}

func (d *Deque[T]) insertAfter(item T, at *node[T]) {
	n := &node[T]{item: item}
	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
	d.size++
}

func (d *Deque[T]) unlink(n *node[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	item := n.item
	*n = node[T]{}
	d.size--
	return item
}

// AddFirst adds item to the front of the deque.
func (d *Deque[T]) AddFirst(item T) {
	d.lazyInit()
	d.insertAfter(item, &d.sentinel)
}

// AddLast adds item to the back of the deque.
func (d *Deque[T]) AddLast(item T) {
	d.lazyInit()
	d.insertAfter(item, d.sentinel.prev)
}

// RemoveFirst removes and returns the item at the front of the deque.
// It returns false if the deque is empty.
func (d *Deque[T]) RemoveFirst() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.unlink(d.sentinel.next), true
}

// RemoveLast removes and returns the item at the back of the deque.
// It returns false if the deque is empty.
func (d *Deque[T]) RemoveLast() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.unlink(d.sentinel.prev), true
}

// First returns the item at the front of the deque without removing it.
func (d *Deque[T]) First() (T, bool) {
	if d.size == 0 {
		return d.sentinel.item, false
	}
	return d.sentinel.next.item, true
}

// Last returns the item at the back of the deque without removing it.
func (d *Deque[T]) Last() (T, bool) {
	if d.size == 0 {
		return d.sentinel.item, false
	}
	return d.sentinel.prev.item, true
}

// Get returns the item at index, where 0 is the front of the deque.
// It returns false if index is negative or not less than Size.
func (d *Deque[T]) Get(index int) (T, bool) {
	if index < 0 || index >= d.size {
		return d.sentinel.item, false
	}
	n := d.sentinel.next
	for ; index > 0; index-- {
		n = n.next
	}
	return n.item, true
}

// GetRecursive is like Get but walks the list recursively.
func (d *Deque[T]) GetRecursive(index int) (T, bool) {
	if d.size == 0 {
		return d.sentinel.item, false
	}
	return d.getRecursive(d.sentinel.next, index)
}

func (d *Deque[T]) getRecursive(n *node[T], index int) (T, bool) {
	if index < 0 || n == &d.sentinel {
		return d.sentinel.item, false
	}
	if index == 0 {
		return n.item, true
	}
	return d.getRecursive(n.next, index-1)
}

// All returns an iterator over the items in the deque from front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d.size == 0 {
			return
		}
		for n := d.sentinel.next; n != &d.sentinel; n = n.next {
			if !yield(n.item) {
				return
			}
		}
	}
}

// Backward returns an iterator over the items in the deque from back
// to front.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d.size == 0 {
			return
		}
		for n := d.sentinel.prev; n != &d.sentinel; n = n.prev {
			if !yield(n.item) {
				return
			}
		}
	}
}

// Equal returns true if other is d, or if other implements
// deque.Indexed[T] and contains the same items in the same order as
// determined by deque.ValuesEqual.
func (d *Deque[T]) Equal(other any) bool {
	if o, ok := other.(*Deque[T]); ok && o == d {
		return true
	}
	return deque.EqualAny[T](d, other)
}

// LogValue implements slog.LogValuer.
func (d *Deque[T]) LogValue() slog.Value {
	return deque.LogValue(d.size, d.All())
}
