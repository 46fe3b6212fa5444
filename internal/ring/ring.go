// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package ring implements the two-row sliding buffer shared by the
// edit-distance and LCS scoring recurrences: O(min(N,M)) space instead of
// the full O(N*M) table, since each recurrence only ever reads the row
// immediately above the one it is filling.
package ring

// Ring is a rotating buffer of two rows of cols cells each, addressed by
// row index mod 2. Callers must never read a row whose index is more than
// one step below the most recently written row.
type Ring[T any] struct {
	rows [2][]T
}

// New returns a Ring with both rows allocated to cols cells, zero-valued.
func New[T any](cols int) *Ring[T] {
	return &Ring[T]{rows: [2][]T{make([]T, cols), make([]T, cols)}}
}

// Row returns the row at index r (mod 2).
func (g *Ring[T]) Row(r int) []T { return g.rows[r&1] }
