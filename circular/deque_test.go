// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package circular

import (
	"reflect"
	"runtime"
	"slices"
	"strings"
	"testing"
)

func arange(s, n int) []int {
	if n == 0 {
		return nil
	}
	r := make([]int, n)
	for i := range r {
		r[i] = s + i
	}
	return r
}

func invariants[T any](t *testing.T, d *Deque[T], head, used, size int) {
	_, _, line, _ := runtime.Caller(1)
	if got, want := d.used, used; got != want {
		t.Errorf("line %v: used: got %v, want %v", line, got, want)
	}
	if got, want := d.head, head; got != want {
		t.Errorf("line %v: head: got %v, want %v", line, got, want)
	}
	if got, want := d.Cap(), size; got != want {
		t.Errorf("line %v: cap: got %v, want %v", line, got, want)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("line %v: %v", line, err)
	}
}

func head[T any](t *testing.T, d *Deque[T], n int, val []T) {
	_, _, line, _ := runtime.Caller(1)
	if got, want := d.Head(n), val; !reflect.DeepEqual(got, want) {
		t.Logf("%#v\n", d)
		t.Errorf("line %v: got %v, want %v", line, got, want)
	}
}

func contents[T comparable](t *testing.T, d *Deque[T], want []T) {
	_, _, line, _ := runtime.Caller(1)
	if got := slices.Collect(d.All()); !slices.Equal(got, want) {
		t.Errorf("line %v: got %v, want %v", line, got, want)
	}
	if got, want := d.Size(), len(want); got != want {
		t.Errorf("line %v: got %v, want %v", line, got, want)
	}
	for i, w := range want {
		if got, ok := d.Get(i); !ok || got != w {
			t.Errorf("line %v: %v: got %v, %v, want %v", line, i, got, ok, w)
		}
	}
	for _, i := range []int{-1, len(want)} {
		if _, ok := d.Get(i); ok {
			t.Errorf("line %v: %v: expected out of range", line, i)
		}
	}
	rev := slices.Clone(want)
	slices.Reverse(rev)
	if got := slices.Collect(d.Backward()); !slices.Equal(got, rev) {
		t.Errorf("line %v: got %v, want %v", line, got, rev)
	}
}

func TestCircular(t *testing.T) {
	// Smallest deque has a size of 1.
	d := NewDeque[int](0)
	invariants(t, d, 0, 0, 1)
	d = NewDeque[int](1)
	invariants(t, d, 0, 0, 1)

	bsize := 7
	d = NewDeque[int](bsize)

	// Empty.
	invariants(t, d, 0, 0, bsize)
	head(t, d, 0, arange(0, 0))
	invariants(t, d, 0, 0, bsize)
	head(t, d, 10, arange(0, 0))

	// Fill and empty.
	d.Append(arange(0, bsize))
	invariants(t, d, 0, 7, bsize)
	head(t, d, 7, arange(0, bsize))
	invariants(t, d, 0, 0, bsize)
	d.Append(arange(10, bsize))
	invariants(t, d, 0, 7, bsize)
	head(t, d, 7, arange(10, bsize))
	invariants(t, d, 0, 0, bsize)

	// Append to limit, but no growth.
	d.Append(arange(100, 3))
	d.Append(arange(103, 4))
	invariants(t, d, 0, 7, bsize)
	head(t, d, 7, arange(100, bsize))

	// Append with growth.
	d.Append(arange(200, 100))
	invariants(t, d, 0, 100, 100)
	head(t, d, 50, arange(200, 50))
	invariants(t, d, 50, 50, 100)
	head(t, d, 500, arange(250, 50))
	invariants(t, d, 0, 0, 100)

	// Compaction.
	d.Compact()
	invariants(t, d, 0, 0, 1)
	d.Append(arange(0, 10))
	invariants(t, d, 0, 10, 10)
	d.Compact()
	invariants(t, d, 0, 10, 10)
	head(t, d, 10, arange(0, 10))
	d.Compact()
	invariants(t, d, 0, 0, 1)

	d.Append(arange(100, 10))
	head(t, d, 8, arange(100, 8))
	d.Append(arange(110, 4))
	invariants(t, d, 8, 6, 10)
	contents(t, d, arange(108, 6))
	d.Compact()
	invariants(t, d, 0, 6, 6)
	head(t, d, 6, arange(108, 6))
}

func TestAddRemove(t *testing.T) {
	d := NewDeque[int](4)
	d.AddFirst(1)
	invariants(t, d, 3, 1, 4)
	d.AddFirst(2)
	d.AddLast(3)
	d.AddLast(4)
	invariants(t, d, 2, 4, 4)
	contents(t, d, []int{2, 1, 3, 4})

	// Growth unrolls the wrapped contents.
	d.AddFirst(5)
	invariants(t, d, 7, 5, 8)
	contents(t, d, []int{5, 2, 1, 3, 4})

	if v, ok := d.RemoveLast(); !ok || v != 4 {
		t.Errorf("got %v, %v, want 4, true", v, ok)
	}
	if v, ok := d.RemoveFirst(); !ok || v != 5 {
		t.Errorf("got %v, %v, want 5, true", v, ok)
	}
	contents(t, d, []int{2, 1, 3})
	if v, ok := d.First(); !ok || v != 2 {
		t.Errorf("got %v, %v, want 2, true", v, ok)
	}
	if v, ok := d.Last(); !ok || v != 3 {
		t.Errorf("got %v, %v, want 3, true", v, ok)
	}

	d.Reset()
	invariants(t, d, 0, 0, 8)
	contents(t, d, nil)
	for _, fn := range []func() (int, bool){d.RemoveFirst, d.RemoveLast, d.First, d.Last} {
		if v, ok := fn(); ok || v != 0 {
			t.Errorf("got %v, %v, want 0, false", v, ok)
		}
	}
	if !d.IsEmpty() {
		t.Errorf("expected an empty deque")
	}
}

func TestModel(t *testing.T) {
	// Chase the head and tail around the buffer, with and without growth,
	// comparing against a slice.
	for bsize := 1; bsize <= 12; bsize++ {
		d := NewDeque[int](bsize)
		var model []int
		next := 0
		for i := range 200 {
			switch i % 7 {
			case 0, 3:
				d.AddLast(next)
				model = append(model, next)
			case 1, 5:
				d.AddFirst(next)
				model = append([]int{next}, model...)
			case 2:
				v, ok := d.RemoveFirst()
				if len(model) > 0 {
					if !ok || v != model[0] {
						t.Fatalf("%v: got %v, %v, want %v", i, v, ok, model[0])
					}
					model = model[1:]
				}
			case 4:
				v, ok := d.RemoveLast()
				if len(model) > 0 {
					if !ok || v != model[len(model)-1] {
						t.Fatalf("%v: got %v, %v, want %v", i, v, ok, model[len(model)-1])
					}
					model = model[:len(model)-1]
				}
			case 6:
				vals := arange(next, i%4)
				d.Append(vals)
				model = append(model, vals...)
				if i%3 == 0 {
					var want []int
					if n := min(2, len(model)); n > 0 {
						want = slices.Clone(model[:n])
						model = model[n:]
					}
					head(t, d, 2, want)
				}
			}
			next++
			contents(t, d, model)
			if err := d.Validate(); err != nil {
				t.Fatalf("%v: %v", i, err)
			}
		}
	}
}

func TestZeroing(t *testing.T) {
	d := NewDeque[*int](4)
	for i := range 4 {
		d.AddLast(&i)
	}
	d.RemoveFirst()
	d.RemoveLast()
	d.Head(1)
	for i, p := range d.storage {
		if i == d.slot(0) {
			continue
		}
		if p != nil {
			t.Errorf("%v: slot not zeroed", i)
		}
	}
}

func TestEqual(t *testing.T) {
	a, b := NewDeque[string](1), NewDeque[string](10)
	for _, s := range []string{"a", "b", "c"} {
		a.AddLast(s)
	}
	b.AddFirst("c")
	b.AddFirst("b")
	b.AddFirst("a")
	if !a.Equal(a) || !a.Equal(b) || !b.Equal(a) {
		t.Errorf("should be equal")
	}
	b.RemoveLast()
	if a.Equal(b) || b.Equal(a) {
		t.Errorf("should not be equal")
	}
	var nilDeque *Deque[string]
	if a.Equal(nil) || a.Equal(nilDeque) || a.Equal("abc") {
		t.Errorf("should not be equal")
	}
}

func TestZeroValue(t *testing.T) {
	var d Deque[int]
	if err := d.Validate(); err != nil {
		t.Fatal(err)
	}
	if _, ok := d.RemoveFirst(); ok {
		t.Errorf("expected no element")
	}
	if _, ok := d.RemoveLast(); ok {
		t.Errorf("expected no element")
	}
	if _, ok := d.Get(0); ok {
		t.Errorf("expected no element")
	}
	if got := d.Head(3); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	d.AddFirst(1)
	d.AddLast(2)
	d.AddFirst(0)
	contents(t, &d, []int{0, 1, 2})
	if err := d.Validate(); err != nil {
		t.Error(err)
	}

	var a Deque[int]
	a.Append([]int{3, 4})
	contents(t, &a, []int{3, 4})

	var c Deque[int]
	c.Compact()
	c.Reset()
	c.AddLast(5)
	contents(t, &c, []int{5})
}

func TestValidate(t *testing.T) {
	var d Deque[int]
	if err := d.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	d.used = 1
	if err := d.Validate(); err == nil || !strings.Contains(err.Error(), "no storage") {
		t.Errorf("unexpected or missing error: %v", err)
	}
	d = *NewDeque[int](2)
	d.head, d.used = 2, 3
	err := d.Validate()
	if err == nil || !strings.Contains(err.Error(), "head 2") || !strings.Contains(err.Error(), "used 3") {
		t.Errorf("unexpected or missing error: %v", err)
	}
}
