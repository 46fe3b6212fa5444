// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package common finds the longest substring shared by two texts —
// contiguous, unlike lcs's subsequence — by concatenating them through a
// suffix array and scanning for the longest LCP entry whose two adjacent
// suffixes straddle the boundary between them (one starts in the first
// text, the other in the second).
package common

import (
	"math"

	"github.com/arnegrim/strand/suffixarray"
	"golang.org/x/exp/constraints"
)

// LongestCommonSubstring returns the longest substring common to r1 and
// r2. The offset type backing the internal suffix array is the smallest
// of uint8/uint16/uint32/uint64 that can index len(r1)+len(r2), so a pair
// of short texts never pays for 64-bit suffix array entries.
func LongestCommonSubstring[T comparable](r1, r2 []T, less func(a, b T) bool) []T {
	n := len(r1) + len(r2)
	switch {
	case n <= math.MaxUint8:
		return longestCommonSubstring[T, uint8](r1, r2, less)
	case n <= math.MaxUint16:
		return longestCommonSubstring[T, uint16](r1, r2, less)
	case n <= math.MaxUint32:
		return longestCommonSubstring[T, uint32](r1, r2, less)
	default:
		return longestCommonSubstring[T, uint64](r1, r2, less)
	}
}

func longestCommonSubstring[T comparable, S constraints.Unsigned](r1, r2 []T, less func(a, b T) bool) []T {
	combined := make([]T, 0, len(r1)+len(r2))
	combined = append(combined, r1...)
	mid := S(len(r1))
	combined = append(combined, r2...)

	eq := func(a, b T) bool { return !less(a, b) && !less(b, a) }
	sa := suffixarray.Build[T, S](combined, less)
	lcp := suffixarray.BuildLCP[T, S](combined, sa, eq)

	var best []T
	for i := 1; i < len(sa); i++ {
		prev, cur := sa[i-1], sa[i]
		if (prev < mid) == (cur < mid) {
			continue
		}

		pos := prev
		if cur < pos {
			pos = cur
		}

		length := lcp[i-1]
		if maxLen := mid - pos; length > maxLen {
			length = maxLen
		}
		if int(length) > len(best) {
			best = combined[pos : pos+length]
		}
	}
	return best
}
