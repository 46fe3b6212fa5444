// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package strand

import "testing"

func TestIngest(t *testing.T) {
	seq := func(yield func(byte) bool) {
		for _, c := range []byte("banana") {
			if !yield(c) {
				return
			}
		}
	}
	got := Ingest(seq)
	if string(got) != "banana" {
		t.Fatalf("Ingest = %q, want %q", got, "banana")
	}
}

func TestIngestEmpty(t *testing.T) {
	got := Ingest(func(yield func(int) bool) {})
	if len(got) != 0 {
		t.Fatalf("Ingest(empty) = %v, want empty", got)
	}
}

func TestEqualDerivedFromLess(t *testing.T) {
	caseFold := func(a, b byte) bool { return a|0x20 < b|0x20 }
	eq := Equal[byte](caseFold)
	if !eq('A', 'a') {
		t.Fatal("expected 'A' and 'a' equivalent under case-folding less")
	}
	if eq('a', 'b') {
		t.Fatal("'a' and 'b' must not be equivalent")
	}
}
