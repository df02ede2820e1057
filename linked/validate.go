// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package linked

import (
	"fmt"

	"cloudeng.io/errors"
)

// Validate walks the ring and returns an error describing every broken
// invariant that it finds: nil or asymmetric links and a mismatch between
// the number of items reachable from the sentinel and Size. The walk is
// bounded by Size+1 steps. The zero value is valid.
func (d *Deque[T]) Validate() error {
	errs := &errors.M{}
	s := &d.sentinel
	if s.next == nil && s.prev == nil && d.size == 0 {
		return nil
	}
	if s.next == nil || s.prev == nil {
		errs.Append(fmt.Errorf("sentinel has a nil link"))
		return errs.Err()
	}
	if d.size == 0 {
		if s.next != s || s.prev != s {
			errs.Append(fmt.Errorf("empty deque: sentinel does not link to itself"))
		}
		return errs.Err()
	}
	n, count := s, 0
	for ; count <= d.size; count++ {
		next := n.next
		if next == nil {
			errs.Append(fmt.Errorf("item %v: nil next link", count))
			return errs.Err()
		}
		if next.prev != n {
			errs.Append(fmt.Errorf("item %v: next.prev does not link back", count))
		}
		if next == s {
			break
		}
		n = next
	}
	if count != d.size {
		errs.Append(fmt.Errorf("size is %v, but %v items are reachable", d.size, count))
	}
	if s.prev != n {
		errs.Append(fmt.Errorf("sentinel prev is not the last item"))
	}
	return errs.Err()
}
