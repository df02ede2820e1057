// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package maxdeque

import "cloudeng.io/deque"

type options[T any] struct {
	capacity int
	cmp      func(a, b T) int
	storage  deque.Interface[T]
}

// Option represents the options that can be passed to New and NewOrdered.
type Option[T any] func(*options[T])

// WithComparator sets the comparator used by Max. The comparator must
// return a negative value if a < b, zero if a == b and a positive value
// if a > b, as per cmp.Compare.
func WithComparator[T any](fn func(a, b T) int) Option[T] {
	return func(o *options[T]) {
		o.cmp = fn
	}
}

// WithCapacity sets the initial capacity of the circular.Deque used
// as storage when WithStorage is not specified.
func WithCapacity[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithStorage sets the deque used to store elements, for example a
// linked.Deque. Any elements already stored in it are retained.
func WithStorage[T any](d deque.Interface[T]) Option[T] {
	return func(o *options[T]) {
		o.storage = d
	}
}
