// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package strand

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Size bounds the offsets a caller is willing to pay for. Smaller unsigned
// types shrink suffix arrays and suffix-tree node ids at the cost of a lower
// ceiling on text length.
type Size = constraints.Unsigned

// Less is a strict-weak ordering predicate over symbols of type T. The
// suffix array builder and searches take one explicitly rather than
// requiring T to satisfy [constraints.Ordered], so texts of runes,
// case-folded strings, or arbitrary tokens can all be indexed. The suffix
// tree takes one only for its ordered child map.
type Less[T any] func(a, b T) bool

// Equal derives symbol equivalence from less, as !less(a,b) && !less(b,a).
// suffixarray.BuildLCP, editdistance.Zip, lcs.Copy and suffixtree.WithEqual
// take their equality predicate from the caller instead; nothing checks
// that it agrees with the less used to build the same structure, and an
// eq that disagrees with less breaks the adjacency invariant of an LCP
// array.
func Equal[T any](less Less[T]) func(a, b T) bool {
	return func(a, b T) bool { return !less(a, b) && !less(b, a) }
}

// Ingest copies a sequence of symbols into an owned, contiguous slice. It is
// the generic-text counterpart of materializing any input range into a
// concrete buffer before building a suffix array or suffix tree over it.
func Ingest[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
