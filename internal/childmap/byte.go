// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package childmap

import (
	"iter"

	"github.com/arnegrim/strand/internal/bitset256"
)

// Byte is the dense, popcount-compressed child map for a text over a byte
// alphabet: a 256-bit presence set plus a packed slice holding one S per
// set bit, indexed by its rank among the set bits rather than by the byte
// value itself, so a node pays for the children it has rather than for the
// whole alphabet.
type Byte[S any] struct {
	present bitset256.BitSet256
	vals    []S
}

// NewByte returns an empty Byte child map.
func NewByte[S any]() *Byte[S] {
	return &Byte[S]{}
}

func (b *Byte[S]) Get(key byte) (S, bool) {
	k := uint(key)
	if !b.present.Test(k) {
		var zero S
		return zero, false
	}
	return b.vals[b.present.Rank0(k)], true
}

func (b *Byte[S]) Set(key byte, val S) {
	k := uint(key)
	if b.present.Test(k) {
		b.vals[b.present.Rank0(k)] = val
		return
	}

	idx := b.insertRank(key)
	b.present.MustSet(k)

	var zero S
	b.vals = append(b.vals, zero)
	copy(b.vals[idx+1:], b.vals[idx:])
	b.vals[idx] = val
}

func (b *Byte[S]) Delete(key byte) {
	k := uint(key)
	if !b.present.Test(k) {
		return
	}
	idx := b.present.Rank0(k)
	b.vals = append(b.vals[:idx], b.vals[idx+1:]...)
	b.present.MustClear(k)
}

func (b *Byte[S]) Len() int { return b.present.Size() }

func (b *Byte[S]) Keys() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		bit, ok := b.present.FirstSet()
		for ok {
			if !yield(byte(bit)) {
				return
			}
			bit, ok = b.present.NextSet(bit + 1)
		}
	}
}

// insertRank returns the position key's value belongs at in vals, counting
// only the currently-set bits below key — valid only while key's own bit
// is still clear.
func (b *Byte[S]) insertRank(key byte) int {
	if key == 0 {
		return 0
	}
	return b.present.Rank0(uint(key)-1) + 1
}
