// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package suffixarray builds a suffix array and its companion LCP array over
// any text of comparable symbols, and answers substring queries against
// them by binary search. Construction is Manber–Myers prefix doubling:
// log N rounds, each sorting on a dense (rank1, rank2) pair so a doubling
// step only needs integer comparisons, not symbol comparisons.
package suffixarray

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Build returns the suffix array of text: a permutation of [0,len(text))
// such that text[sa[i]:] < text[sa[i+1]:] under less, for every adjacent
// pair. S bounds how large a text the caller is willing to index.
func Build[T comparable, S constraints.Unsigned](text []T, less func(T, T) bool) []S {
	n := len(text)
	sa := make([]S, n)
	if n == 0 {
		return sa
	}
	rank := make([]int, n)
	tmp := make([]int, n)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int {
		switch {
		case less(text[i], text[j]):
			return -1
		case less(text[j], text[i]):
			return 1
		default:
			return 0
		}
	})

	rank[order[0]] = 0
	for i := 1; i < n; i++ {
		rank[order[i]] = rank[order[i-1]]
		if less(text[order[i-1]], text[order[i]]) {
			rank[order[i]]++
		}
	}

	for k := 1; rank[order[n-1]] < n-1; k *= 2 {
		rank2 := func(i int) int {
			if i+k >= n {
				return -1
			}
			return rank[i+k]
		}

		slices.SortFunc(order, func(i, j int) int {
			if rank[i] != rank[j] {
				return rank[i] - rank[j]
			}
			return rank2(i) - rank2(j)
		})

		tmp[order[0]] = 0
		for i := 1; i < n; i++ {
			tmp[order[i]] = tmp[order[i-1]]
			if rank[order[i-1]] != rank[order[i]] || rank2(order[i-1]) != rank2(order[i]) {
				tmp[order[i]]++
			}
		}
		copy(rank, tmp)

		if k > n {
			break
		}
	}

	for i, idx := range order {
		sa[i] = S(idx)
	}
	return sa
}

// BuildLCP returns Kasai's LCP array over text and its suffix array sa:
// lcp[i] is the length of the longest common prefix of the suffixes at
// sa[i] and sa[i+1], with lcp[len(text)-1] defined as 0 (the last suffix
// has no successor). Amortized O(N): walking the text in position order,
// the matched prefix length never needs to drop by more than one step
// between consecutive suffixes.
func BuildLCP[T comparable, S constraints.Unsigned](text []T, sa []S, eq func(T, T) bool) []S {
	n := len(text)
	lcp := make([]S, n)
	if n == 0 {
		return lcp
	}

	rank := make([]int, n)
	for i, s := range sa {
		rank[s] = i
	}

	h := 0
	for i := 0; i < n; i++ {
		cur := rank[i]
		if cur+1 == n {
			lcp[cur] = 0
			h = 0
			continue
		}
		j := int(sa[cur+1])
		for i+h < n && j+h < n && eq(text[i+h], text[j+h]) {
			h++
		}
		lcp[cur] = S(h)
		if h > 0 {
			h--
		}
	}
	return lcp
}

// EqualRange returns the slice of sa entries whose suffix starts with
// needle, narrowing the range with len(needle) successive binary searches
// (one per needle symbol, rather than one full-suffix comparison per
// probe). A position past the end of text compares equal to whatever
// needle symbol is being matched at that depth, so the range can also hold
// suffixes that end before needle does after matching it up to the end of
// text. Such a suffix is dropped when another suffix in the range has a
// smaller symbol at that depth, so whether it is kept depends on its
// neighbours.
func EqualRange[T comparable, S constraints.Unsigned](sa []S, text []T, less func(T, T) bool, needle []T) []S {
	lo, hi := 0, len(sa)
	for depth := 0; depth < len(needle) && lo < hi; depth++ {
		symbol := needle[depth]

		lo = lowerBoundAt(sa, text, less, lo, hi, depth, symbol)
		hi = upperBoundAt(sa, text, less, lo, hi, depth, symbol)
	}
	return sa[lo:hi]
}

func symbolAt[T any](text []T, start, depth int) (T, bool) {
	pos := start + depth
	if pos >= len(text) {
		var zero T
		return zero, false
	}
	return text[pos], true
}

func lowerBoundAt[T any, S constraints.Unsigned](sa []S, text []T, less func(T, T) bool, lo, hi, depth int, symbol T) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		sym, ok := symbolAt(text, int(sa[mid]), depth)
		if ok && less(sym, symbol) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func upperBoundAt[T any, S constraints.Unsigned](sa []S, text []T, less func(T, T) bool, lo, hi, depth int, symbol T) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		sym, ok := symbolAt(text, int(sa[mid]), depth)
		if ok && less(symbol, sym) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// FindAny returns any one occurrence of needle in text, or (0, false) if it
// does not occur. An empty needle always matches, at position len(text).
func FindAny[T comparable, S constraints.Unsigned](sa []S, text []T, less func(T, T) bool, needle []T) (S, bool) {
	if len(needle) == 0 {
		return S(len(text)), true
	}
	for _, pos := range EqualRange(sa, text, less, needle) {
		if int(pos)+len(needle) <= len(text) {
			return pos, true
		}
	}
	var zero S
	return zero, false
}

// FindAll lazily yields every occurrence of needle in text, in suffix-array
// order (not text order). An empty needle matches everywhere: len(text) for
// the empty suffix first, then every suffix position.
func FindAll[T comparable, S constraints.Unsigned](sa []S, text []T, less func(T, T) bool, needle []T) iter.Seq[S] {
	return func(yield func(S) bool) {
		if len(needle) == 0 {
			if !yield(S(len(text))) {
				return
			}
		}
		for _, pos := range EqualRange(sa, text, less, needle) {
			if int(pos)+len(needle) > len(text) {
				continue
			}
			if !yield(pos) {
				return
			}
		}
	}
}
