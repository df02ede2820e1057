// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package circular

import (
	"fmt"

	"cloudeng.io/errors"
)

// Validate returns an error describing every broken invariant of the
// deque's internal state. The zero value, with no storage allocated,
// is valid.
func (d *Deque[T]) Validate() error {
	errs := &errors.M{}
	if len(d.storage) == 0 {
		if d.head != 0 || d.used != 0 {
			errs.Append(fmt.Errorf("no storage allocated, but head is %v and used is %v", d.head, d.used))
		}
		return errs.Err()
	}
	if d.head < 0 || d.head >= len(d.storage) {
		errs.Append(fmt.Errorf("head %v is out of range [0, %v)", d.head, len(d.storage)))
	}
	if d.used < 0 || d.used > len(d.storage) {
		errs.Append(fmt.Errorf("used %v is out of range [0, %v]", d.used, len(d.storage)))
	}
	return errs.Err()
}
