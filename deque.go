// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package deque

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"reflect"
	"strings"
)

// Indexed represents the minimal capability required of a type for it to
// be compared with a deque. Get returns false if index is out of range.
type Indexed[T any] interface {
	Size() int
	Get(index int) (T, bool)
}

// Interface represents the operations common to all of the deque
// implementations.
type Interface[T any] interface {
	Indexed[T]
	AddFirst(item T)
	AddLast(item T)
	RemoveFirst() (T, bool)
	RemoveLast() (T, bool)
	All() iter.Seq[T]
}

// EqualFunc returns true if a and b have the same size and eq returns true
// for the elements at every index. It stops at the first mismatch.
func EqualFunc[T any](a, b Indexed[T], eq func(x, y T) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := range a.Size() {
		x, xok := a.Get(i)
		y, yok := b.Get(i)
		if xok != yok || !eq(x, y) {
			return false
		}
	}
	return true
}

// Equal is like EqualFunc but uses == to compare elements.
func Equal[T comparable](a, b Indexed[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// ValuesEqual compares two values for use with EqualFunc. Identical
// references, including two nils, are always equal and a nil pointer
// never equals a non-nil one. Otherwise, if a implements Equal(T) bool
// then that method is used, and failing that reflect.DeepEqual.
func ValuesEqual[T any](a, b T) bool {
	if eq, decided := sameReference(any(a), any(b)); decided {
		return eq
	}
	if e, ok := any(a).(interface{ Equal(T) bool }); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// sameReference reports whether a and b can be compared by reference
// alone: both nil, or both pointers, channels or maps of the same type.
// Identical references are equal. Of two pointers, if only one is nil
// they are unequal.
func sameReference(a, b any) (eq, decided bool) {
	if a == nil || b == nil {
		return a == nil && b == nil, true
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false, false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Map:
	default:
		return false, false
	}
	if va.Pointer() == vb.Pointer() {
		return true, true
	}
	if va.Kind() == reflect.Pointer && (va.IsNil() || vb.IsNil()) {
		return false, true
	}
	return false, false
}

// EqualAny implements the Equal(any) bool method provided by the deque
// implementations. It returns false if other is nil or does not implement
// Indexed[T] and otherwise compares the two using ValuesEqual.
func EqualAny[T any](d Indexed[T], other any) bool {
	if other == nil {
		return false
	}
	o, ok := other.(Indexed[T])
	if !ok {
		return false
	}
	if v := reflect.ValueOf(other); v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	return EqualFunc(d, o, ValuesEqual[T])
}

// Print writes the items in seq to w separated by a single space and
// followed by a newline.
func Print[T any](w io.Writer, seq iter.Seq[T]) error {
	var out strings.Builder
	sep := ""
	for v := range seq {
		out.WriteString(sep)
		fmt.Fprintf(&out, "%v", v)
		sep = " "
	}
	out.WriteByte('\n')
	_, err := io.WriteString(w, out.String())
	return err
}

// LogValueLimit is the maximum number of items included by LogValue.
const LogValueLimit = 8

// LogValue returns an slog.Value summarizing a deque of the specified
// size using the first LogValueLimit items yielded by seq. It is used by
// the deque implementations to implement slog.LogValuer.
func LogValue[T any](size int, seq iter.Seq[T]) slog.Value {
	items := make([]T, 0, min(size, LogValueLimit))
	for v := range seq {
		if len(items) == LogValueLimit {
			break
		}
		items = append(items, v)
	}
	return slog.GroupValue(
		slog.Int("size", size),
		slog.Any("items", items),
		slog.Bool("truncated", size > len(items)),
	)
}
