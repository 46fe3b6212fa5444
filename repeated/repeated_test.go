// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package repeated

import (
	"testing"

	"github.com/arnegrim/strand/suffixarray"
	"github.com/arnegrim/strand/suffixtree"
)

func lessByte(a, b byte) bool { return a < b }
func eqByte(a, b byte) bool   { return a == b }

func TestFromSuffixArrayMississippi(t *testing.T) {
	text := []byte("mississippi")
	sa := suffixarray.Build[byte, uint32](text, lessByte)
	lcp := suffixarray.BuildLCP[byte, uint32](text, sa, eqByte)

	got := FromSuffixArray(text, sa, lcp)
	if string(got) != "issi" {
		t.Fatalf("FromSuffixArray(mississippi) = %q, want %q", got, "issi")
	}
}

func TestFromSuffixTreeMississippi(t *testing.T) {
	tr := suffixtree.New[byte, uint32]()
	for _, c := range []byte("mississippi$") {
		tr.PushBack(c)
	}

	got := FromSuffixTree(tr)
	if string(got) != "issi" {
		t.Fatalf("FromSuffixTree(mississippi$) = %q, want %q", got, "issi")
	}
}

func TestFromSuffixArrayNoRepeat(t *testing.T) {
	text := []byte("abcdef")
	sa := suffixarray.Build[byte, uint32](text, lessByte)
	lcp := suffixarray.BuildLCP[byte, uint32](text, sa, eqByte)

	if got := FromSuffixArray(text, sa, lcp); got != nil {
		t.Fatalf("expected no repeat, got %q", got)
	}
}
