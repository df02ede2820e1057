// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package deque defines the interfaces shared by the double-ended queue
// implementations in this module and the operations that are defined
// purely in terms of those interfaces, such as structural equality.
//
// Two implementations are provided:
//
//	linked.Deque   - a doubly linked list closed by a single sentinel node.
//	circular.Deque - a growable circular buffer with O(1) indexed access.
//
// maxdeque.Deque wraps either of these and adds selection of the
// maximum element under a caller supplied comparator.
//
// Absent values, such as removing from an empty deque or indexing out of
// range, are reported via a boolean rather than an error or a panic:
//
//	if v, ok := d.RemoveFirst(); ok {
//		...
//	}
package deque
