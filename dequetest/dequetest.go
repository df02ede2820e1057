// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dequetest provides support for testing implementations of
// deque.Interface. Scenarios are sequences of operations, with their
// expected results, described in YAML and Run applies them to a deque.
// CheckProperties verifies the properties that must hold for any deque.
package dequetest

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"cloudeng.io/deque"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// Run applies the operations in sc to d and returns an error describing
// every result that differs from the one expected. Each operation is
// logged at debug level, along with the contents of d, to the logger
// stored in ctx, if any. d is only iterated when debug logging is enabled.
func Run(ctx context.Context, d deque.Interface[int], sc Scenario) error {
	logger := ctxlog.Logger(ctx).With("scenario", sc.Name)
	errs := &errors.M{}
	for i, op := range sc.Ops {
		if err := apply(d, op); err != nil {
			errs.Append(fmt.Errorf("%v: step %v: %v: %w", sc.Name, i, op, err))
		}
		if logger.Enabled(ctx, slog.LevelDebug) {
			logger.Debug("applied", "step", i, "op", op.String(), "deque", deque.LogValue(d.Size(), d.All()))
		}
	}
	return errs.Err()
}

func check(v int, ok bool, want *int) error {
	switch {
	case want == nil && ok:
		return fmt.Errorf("got %v, want no value", v)
	case want != nil && !ok:
		return fmt.Errorf("got no value, want %v", *want)
	case want != nil && v != *want:
		return fmt.Errorf("got %v, want %v", v, *want)
	}
	return nil
}

func apply(d deque.Interface[int], op Op) error {
	switch op.Name {
	case AddFirst:
		d.AddFirst(op.Value)
	case AddLast:
		d.AddLast(op.Value)
	case RemoveFirst:
		v, ok := d.RemoveFirst()
		return check(v, ok, op.Want)
	case RemoveLast:
		v, ok := d.RemoveLast()
		return check(v, ok, op.Want)
	case Get:
		v, ok := d.Get(op.Index)
		return check(v, ok, op.Want)
	case Size:
		if got, want := d.Size(), op.Value; got != want {
			return fmt.Errorf("got %v, want %v", got, want)
		}
	case Items:
		if got, want := slices.Collect(d.All()), op.Items; !slices.Equal(got, want) {
			return fmt.Errorf("got %v, want %v", got, want)
		}
	default:
		return ErrUnknownOp
	}
	return nil
}

// CheckProperties verifies that d satisfies the properties required of
// all deques, leaving its contents unchanged:
//
//   - Get returns no value for -1 and Size.
//   - iteration order is the same as index order.
//   - if d implements GetRecursive, it agrees with Get for every index
//     in [-1, Size].
//   - adding and then removing a value at either end returns that value
//     and restores the original size.
//   - if d implements Equal(any) bool, d is equal to itself.
func CheckProperties[T any](d deque.Interface[T]) error {
	errs := &errors.M{}
	size := d.Size()
	for _, i := range []int{-1, size} {
		if _, ok := d.Get(i); ok {
			errs.Append(fmt.Errorf("get(%v): returned a value for an out of range index", i))
		}
	}
	i := 0
	for v := range d.All() {
		if g, ok := d.Get(i); !ok || !deque.ValuesEqual(g, v) {
			errs.Append(fmt.Errorf("iteration: item %v: got %v, get returned %v, %v", i, v, g, ok))
		}
		i++
	}
	if i != size {
		errs.Append(fmt.Errorf("iteration: yielded %v items, size is %v", i, size))
	}
	if r, ok := d.(interface{ GetRecursive(int) (T, bool) }); ok {
		for i := -1; i <= size; i++ {
			gv, gok := d.Get(i)
			rv, rok := r.GetRecursive(i)
			if gok != rok || !deque.ValuesEqual(gv, rv) {
				errs.Append(fmt.Errorf("get(%v) returned %v, %v, but getRecursive(%v) returned %v, %v", i, gv, gok, i, rv, rok))
			}
		}
	}
	errs.Append(roundTrip(d, "last", d.AddLast, d.RemoveLast))
	errs.Append(roundTrip(d, "first", d.AddFirst, d.RemoveFirst))
	if e, ok := d.(interface{ Equal(any) bool }); ok && !e.Equal(d) {
		errs.Append(fmt.Errorf("equal: deque is not equal to itself"))
	}
	return errs.Err()
}

func roundTrip[T any](d deque.Interface[T], end string, add func(T), remove func() (T, bool)) error {
	var item T
	size := d.Size()
	add(item)
	if got, want := d.Size(), size+1; got != want {
		return fmt.Errorf("add %v: size: got %v, want %v", end, got, want)
	}
	v, ok := remove()
	if !ok || !deque.ValuesEqual(v, item) {
		return fmt.Errorf("remove %v: got %v, %v, want %v", end, v, ok, item)
	}
	if got, want := d.Size(), size; got != want {
		return fmt.Errorf("remove %v: size: got %v, want %v", end, got, want)
	}
	return nil
}
