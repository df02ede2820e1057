// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package maxdeque provides a deque that can report its maximum element
// as determined by a comparator.
package maxdeque

import (
	"cmp"
	"iter"

	"cloudeng.io/deque"
	"cloudeng.io/deque/circular"
)

// Deque is a deque that supports finding its maximum element. Storage
// is delegated to the embedded deque.Interface, a circular.Deque unless
// WithStorage is used, and hence all of its methods are available
// directly.
type Deque[T any] struct {
	deque.Interface[T]
	cmp func(a, b T) int
}

// New creates a new Deque. Max will always report no value unless
// WithComparator is specified.
func New[T any](opts ...Option[T]) *Deque[T] {
	var o options[T]
	o.capacity = 16
	for _, fn := range opts {
		fn(&o)
	}
	if o.storage == nil {
		o.storage = circular.NewDeque[T](o.capacity)
	}
	return &Deque[T]{
		Interface: o.storage,
		cmp:       o.cmp,
	}
}

// NewOrdered is like New but uses cmp.Compare as the default comparator.
// WithComparator may be used to override this default.
func NewOrdered[T cmp.Ordered](opts ...Option[T]) *Deque[T] {
	return New(append([]Option[T]{WithComparator(cmp.Compare[T])}, opts...)...)
}

// Comparator returns the comparator used by Max, it may be nil.
func (d *Deque[T]) Comparator() func(a, b T) int {
	return d.cmp
}

// Equal returns true if other is a deque.Indexed[T] with the same
// elements in the same order as d. The comparator is not considered.
func (d *Deque[T]) Equal(other any) bool {
	if o, ok := other.(*Deque[T]); ok && o == d {
		return true
	}
	return deque.EqualAny[T](d, other)
}

// Max returns the maximum element using the comparator supplied when
// the deque was created. It returns false if the deque is empty or if
// no comparator was supplied.
func (d *Deque[T]) Max() (T, bool) {
	return d.MaxFunc(d.cmp)
}

// MaxFunc returns the maximum element as determined by c. If there are
// multiple maximal elements then the one nearest the front is returned.
// It returns false if the deque is empty or c is nil.
func (d *Deque[T]) MaxFunc(c func(a, b T) int) (T, bool) {
	return Max(d.All(), c)
}

// Max returns the maximum element of seq as determined by c, the
// earliest is returned if there are several. It returns false if seq
// is empty or c is nil. c is called exactly once for every element
// after the first.
func Max[T any](seq iter.Seq[T], c func(a, b T) int) (T, bool) {
	var largest T
	if c == nil {
		return largest, false
	}
	found := false
	for v := range seq {
		if !found {
			largest, found = v, true
			continue
		}
		if c(largest, v) < 0 {
			largest = v
		}
	}
	return largest, found
}
