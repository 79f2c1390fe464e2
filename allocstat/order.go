// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocstat

import "sort"

// An Order is the canonical ordering policy for configuration
// identifiers. It determines both the display order of columns and
// bars and the choice of baseline, which is always the first
// identifier after sorting.
//
// Ordering is a pure function of the identifier strings: identifiers
// sort into four buckets, First, then the Known list in its given
// order, then identifiers not named by the policy (by string order),
// then Last. Reordering the inputs never changes the result.
type Order struct {
	// First sorts before everything else. This is the control
	// configuration, so it anchors the comparison as the baseline.
	First string

	// Known is an explicit ordering for well-known identifiers.
	// They sort immediately after First, in this order.
	Known []string

	// Last sorts after everything else. This is the configuration
	// under study, so it anchors the far end of the comparison.
	Last string
}

// DefaultOrder is the allocator ordering policy: the no-allocator
// control first, the well-known allocators next, unknown allocators
// after them, and smalloc, the allocator under study, last.
var DefaultOrder = Order{
	First: "default",
	Known: []string{"jemalloc", "snmalloc", "mimalloc", "rpmalloc"},
	Last:  "smalloc",
}

// key returns the bucket and the position within the bucket for id.
func (o Order) key(id string) (bucket, pos int) {
	if id == o.First && id != "" {
		return 0, 0
	}
	if id == o.Last && id != "" {
		return 3, 0
	}
	for i, k := range o.Known {
		if id == k {
			return 1, i
		}
	}
	return 2, 0
}

// Less reports whether identifier a sorts before identifier b.
func (o Order) Less(a, b string) bool {
	ab, ai := o.key(a)
	bb, bi := o.key(b)
	if ab != bb {
		return ab < bb
	}
	if ai != bi {
		return ai < bi
	}
	// Ties, which can only happen among identifiers the policy
	// does not name, break by string order.
	return a < b
}

// Sort sorts ids in place into canonical order.
func (o Order) Sort(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool { return o.Less(ids[i], ids[j]) })
}

// isZero reports whether o names no identifiers at all.
func (o Order) isZero() bool {
	return o.First == "" && o.Last == "" && len(o.Known) == 0
}
