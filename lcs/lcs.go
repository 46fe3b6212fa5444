// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package lcs finds a longest common subsequence of two sequences: the
// longest sequence of symbols, not necessarily contiguous in either input,
// that appears in both in the same relative order. Unlike editdistance, the
// output holds only the matched symbols, no gaps — it is the subsequence
// itself, not a full alignment. Built on the same hirschberg.Trace driver
// as editdistance, parameterized with the LCS scoring recurrence.
package lcs

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
//	T[0][r] = T[l][0] = 0
//	T[l][r] = 1 + T[l-1][r-1]            if symbols match
//	T[l][r] = max(T[l-1][r], T[l][r-1])  otherwise
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
	for r := range rg.Row(0) {
		rg.Row(0)[r] = 0
	}
	for l := 1; l <= size1; l++ {
		prev, cur := rg.Row(l-1), rg.Row(l)
		cur[0] = 0
		for r := 1; r <= size2; r++ {
			if t.eq(sym1(l-1), sym2(r-1)) {
				cur[r] = 1 + prev[r-1]
			} else {
				cur[r] = maxOf(prev[r], cur[r-1])
			}
		}
	}

	result := make([]int64, size2+1)
	copy(result, rg.Row(size1))
	return result
}

func maxOf(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// TraceCol handles the base case where [c,d) has fewer than two elements:
// with it empty there is nothing to match, and with exactly one element it
// emits at most one pair, for the first symbol of [a,b) that matches it.
func (t *table[T]) TraceCol(a, b, c, d int, swap bool, out sink.Sink[hirschberg.Pair[T]]) {
	if d == c {
		return
	}
	s1, s2 := t.arr1(swap), t.arr2(swap)
	needle := s2[c]
	for i := a; i < b; i++ {
		if t.eq(s1[i], needle) {
			emit(out, s1[i], needle, swap)
			return
		}
	}
}

func emit[T any](out sink.Sink[hirschberg.Pair[T]], left, right T, swap bool) {
	p := hirschberg.Pair[T]{Left: left, Right: right, HasLeft: true, HasRight: true}
	if swap {
		p.Left, p.Right = p.Right, p.Left
	}
	out.Add(p)
}

// Copy returns a longest common subsequence of r1 and r2, as the matched
// symbols of r1 (equivalently, of r2, under eq).
func Copy[T any](r1, r2 []T, eq func(T, T) bool) []T {
	s := sink.NewSlice[hirschberg.Pair[T]](min(len(r1), len(r2)))
	CopyTo(r1, r2, eq, s)
	out := make([]T, len(s.Values))
	for i, p := range s.Values {
		out[i] = p.Left
	}
	return out
}

// CopyTo is Copy streamed into an arbitrary sink of matched pairs.
func CopyTo[T any](r1, r2 []T, eq func(T, T) bool, out sink.Sink[hirschberg.Pair[T]]) {
	tbl := &table[T]{r1: r1, r2: r2, eq: eq}
	hirschberg.Trace[T](tbl, 0, len(r1), 0, len(r2), out)
}
