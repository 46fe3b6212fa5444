// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package hirschberg implements Hirschberg's divide-and-conquer traceback:
// given any scoring table that can produce the last row of a DP recurrence
// and trace a 0- or 1-column base case, it reconstructs the full optimal
// alignment in O(N*M) time and O(min(N,M)) space. Both editdistance and lcs
// are this driver parameterized with a different recurrence.
package hirschberg

import "github.com/arnegrim/strand/sink"

// Pair is one aligned element: a symbol from range1, a symbol from range2,
// or one of each when they match. HasLeft/HasRight false means "no symbol"
// (a pure insertion or deletion).
type Pair[T any] struct {
	Left, Right       T
	HasLeft, HasRight bool
}

// Table is the scoring recurrence a Trace call is parameterized by. a, b, c,
// d are half-open index ranges into the two sequences the Table
// implementation was built over. swap is false while (a,b) indexes the
// first sequence and (c,d) the second; the driver flips swap (and the
// argument order) whenever it needs to split the longer of the two ranges,
// so a Table implementation must consult swap to know which underlying
// sequence (a,b) and (c,d) currently address.
type Table[T any] interface {
	// LastRow returns the final row of the DP table over [a,b) x [c,d).
	// When fwd is false, both ranges are read back to front (index b-1
	// down to a, and d-1 down to c) — the backward half of Hirschberg's
	// forward/backward split. The returned slice has length (d-c)+1 and
	// is owned by the caller.
	LastRow(a, b, c, d int, fwd, swap bool) []int64

	// TraceCol handles the base case where [c,d) has fewer than two
	// elements. TraceCol must flip each emitted Pair when swap is true,
	// so the output reflects the caller's original argument order
	// regardless of how many times the driver swapped ranges to keep the
	// split on the longer side.
	TraceCol(a, b, c, d int, swap bool, out sink.Sink[Pair[T]])
}

// Trace emits the full alignment of [a,b) and [c,d) under tbl into out.
func Trace[T any](tbl Table[T], a, b, c, d int, out sink.Sink[Pair[T]]) {
	trace(tbl, a, b, c, d, false, out)
}

func trace[T any](tbl Table[T], a, b, c, d int, swap bool, out sink.Sink[Pair[T]]) {
	size1 := b - a
	size2 := d - c

	if size1 < size2 {
		trace(tbl, c, d, a, b, !swap, out)
		return
	}
	if size2 < 2 {
		tbl.TraceCol(a, b, c, d, swap, out)
		return
	}

	midA := a + size1/2
	head := tbl.LastRow(a, midA, c, d, true, swap)
	tail := tbl.LastRow(midA, b, c, d, false, swap)

	n := d - c
	best := head[0] + tail[n]
	midOffset := 0
	for j := 1; j <= n; j++ {
		if score := head[j] + tail[n-j]; score > best {
			best = score
			midOffset = j
		}
	}
	midC := c + midOffset

	trace(tbl, a, midA, c, midC, swap, out)
	trace(tbl, midA, b, midC, d, swap, out)
}
