// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package editdistance finds the optimal sequence alignment between two
// sequences, optimal under the Levenshtein distance: the sum of the costs
// of insertions, substitutions, deletions, and matches needed to turn one
// sequence into the other. It is hirschberg.Trace parameterized with the
// +1-match/-1-indel-or-substitution recurrence, run in O(N*M) time and
// O(min(N,M)) space.
package editdistance

import (
	"github.com/arnegrim/strand/hirschberg"
	"github.com/arnegrim/strand/internal/ring"
	"github.com/arnegrim/strand/sink"
)

type table[T any] struct {
	r1, r2 []T
	eq     func(T, T) bool
}

func (t *table[T]) arr1(swap bool) []T {
	if swap {
		return t.r2
	}
	return t.r1
}

func (t *table[T]) arr2(swap bool) []T {
	if swap {
		return t.r1
	}
	return t.r2
}

// LastRow fills the DP table over [a,b) x [c,d) with the recurrence
//
//	T[0][r] = -r, T[l][0] = -l
//	T[l][r] = 1 + T[l-1][r-1]                          if symbols match
//	T[l][r] = -1 + max(T[l-1][r-1], T[l-1][r], T[l][r-1])  otherwise
//
// and returns its last row, using a two-row ring buffer.
func (t *table[T]) LastRow(a, b, c, d int, fwd, swap bool) []int64 {
	s1, s2 := t.arr1(swap), t.arr2(swap)
	size1, size2 := b-a, d-c

	sym1 := func(i int) T {
		if fwd {
			return s1[a+i]
		}
		return s1[b-1-i]
	}
	sym2 := func(j int) T {
		if fwd {
			return s2[c+j]
		}
		return s2[d-1-j]
	}

	rg := ring.New[int64](size2 + 1)
	row0 := rg.Row(0)
	for r := 0; r <= size2; r++ {
		row0[r] = int64(-r)
	}
	for l := 1; l <= size1; l++ {
		prev, cur := rg.Row(l-1), rg.Row(l)
		cur[0] = int64(-l)
		for r := 1; r <= size2; r++ {
			if t.eq(sym1(l-1), sym2(r-1)) {
				cur[r] = 1 + prev[r-1]
			} else {
				cur[r] = -1 + max3(prev[r-1], prev[r], cur[r-1])
			}
		}
	}

	result := make([]int64, size2+1)
	copy(result, rg.Row(size1))
	return result
}

// max3 returns the largest of the diagonal, up and left scores. Only the
// value is returned, so the order of the comparisons has no effect on the
// alignment; gap placement is decided by hirschberg.Trace taking the first
// column with the maximal fused score and by TraceCol's pairing.
func max3(diag, up, left int64) int64 {
	m := diag
	if up > m {
		m = up
	}
	if left > m {
		m = left
	}
	return m
}

// TraceCol handles the base case where [c,d) has 0 or 1 elements: it
// consumes [a,b) in order, pairing each symbol with the lone symbol of
// [c,d) as soon as they match (or once [a,b) has only one symbol left),
// and otherwise pairing it with "no symbol".
func (t *table[T]) TraceCol(a, b, c, d int, swap bool, out sink.Sink[hirschberg.Pair[T]]) {
	s1, s2 := t.arr1(swap), t.arr2(swap)
	i, j := a, c
	for i < b {
		isLast := i+1 == b
		if j < d && (isLast || t.eq(s1[i], s2[j])) {
			emit(out, s1[i], s2[j], true, true, swap)
			i++
			j++
			continue
		}
		var none T
		emit(out, s1[i], none, true, false, swap)
		i++
	}
}

func emit[T any](out sink.Sink[hirschberg.Pair[T]], left, right T, hasLeft, hasRight, swap bool) {
	p := hirschberg.Pair[T]{Left: left, Right: right, HasLeft: hasLeft, HasRight: hasRight}
	if swap {
		p.Left, p.Right = p.Right, p.Left
		p.HasLeft, p.HasRight = p.HasRight, p.HasLeft
	}
	out.Add(p)
}

// Zip returns the optimal alignment of r1 and r2 as a sequence of pairs:
// each pair holds a symbol from r1, a symbol from r2, or one of each when
// they were matched by the alignment.
func Zip[T any](r1, r2 []T, eq func(T, T) bool) []hirschberg.Pair[T] {
	s := sink.NewSlice[hirschberg.Pair[T]](len(r1) + len(r2))
	ZipTo(r1, r2, eq, s)
	return s.Values
}

// ZipTo is Zip streamed into an arbitrary sink, e.g. a sink.Stack when the
// caller wants to process the alignment in LIFO order without an
// intermediate slice.
func ZipTo[T any](r1, r2 []T, eq func(T, T) bool, out sink.Sink[hirschberg.Pair[T]]) {
	tbl := &table[T]{r1: r1, r2: r2, eq: eq}
	hirschberg.Trace[T](tbl, 0, len(r1), 0, len(r2), out)
}
