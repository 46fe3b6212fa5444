// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset256

import "testing"

func TestSetTestClear(t *testing.T) {
	var b BitSet256
	if !b.IsEmpty() {
		t.Fatal("expected empty bitset")
	}
	b.MustSet(42)
	b.MustSet(7)
	b.MustSet(255)
	if !b.Test(42) || !b.Test(7) || !b.Test(255) {
		t.Fatal("expected bits 7, 42, 255 set")
	}
	if b.Test(43) {
		t.Fatal("bit 43 should not be set")
	}
	if b.Size() != 3 {
		t.Fatalf("expected size 3, got %d", b.Size())
	}
	b.MustClear(42)
	if b.Test(42) {
		t.Fatal("bit 42 should be cleared")
	}
	if b.Size() != 2 {
		t.Fatalf("expected size 2 after clear, got %d", b.Size())
	}
}

func TestFirstSetNextSet(t *testing.T) {
	var b BitSet256
	b.MustSet(5)
	b.MustSet(64)
	b.MustSet(200)

	first, ok := b.FirstSet()
	if !ok || first != 5 {
		t.Fatalf("FirstSet() = (%d,%v), want (5,true)", first, ok)
	}

	next, ok := b.NextSet(6)
	if !ok || next != 64 {
		t.Fatalf("NextSet(6) = (%d,%v), want (64,true)", next, ok)
	}

	next, ok = b.NextSet(65)
	if !ok || next != 200 {
		t.Fatalf("NextSet(65) = (%d,%v), want (200,true)", next, ok)
	}

	_, ok = b.NextSet(201)
	if ok {
		t.Fatal("NextSet(201) should report no further bits")
	}
}

func TestRank0(t *testing.T) {
	var b BitSet256
	b.MustSet(0)
	b.MustSet(10)
	b.MustSet(63)
	b.MustSet(64)

	if r := b.Rank0(0); r != 0 {
		t.Fatalf("Rank0(0) = %d, want 0", r)
	}
	if r := b.Rank0(10); r != 1 {
		t.Fatalf("Rank0(10) = %d, want 1", r)
	}
	if r := b.Rank0(63); r != 2 {
		t.Fatalf("Rank0(63) = %d, want 2", r)
	}
	if r := b.Rank0(64); r != 3 {
		t.Fatalf("Rank0(64) = %d, want 3", r)
	}
}

func TestAsSliceMatchesAll(t *testing.T) {
	var b BitSet256
	for _, bit := range []uint{1, 2, 3, 100, 255} {
		b.MustSet(bit)
	}
	buf := make([]uint, 0, 256)
	got := b.AsSlice(buf)
	want := b.All()
	if len(got) != len(want) {
		t.Fatalf("AsSlice len %d != All len %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("AsSlice[%d] = %d, All[%d] = %d", i, got[i], i, want[i])
		}
	}
}
