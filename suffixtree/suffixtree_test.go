// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package suffixtree

import (
	"sort"
	"testing"

	"github.com/arnegrim/strand/suffixarray"
	"github.com/bits-and-blooms/bitset"
)

func buildByte(t *testing.T, text string, opts ...Option[byte, uint32]) *Tree[byte, uint32] {
	t.Helper()
	tr := New[byte, uint32](opts...)
	for i := 0; i < len(text); i++ {
		tr.PushBack(text[i])
	}
	return tr
}

func TestFindFirstMississippi(t *testing.T) {
	tr := buildByte(t, "mississippi$")
	pos, ok := tr.FindFirst([]byte("issi"))
	if !ok || pos != 1 {
		t.Fatalf("FindFirst(issi) = (%d,%v), want (1,true)", pos, ok)
	}
	if _, ok := tr.FindFirst([]byte("xyz")); ok {
		t.Fatal("expected no match for xyz")
	}
	pos, ok = tr.FindFirst(nil)
	if !ok || pos != 0 {
		t.Fatalf("FindFirst(empty) = (%d,%v), want (0,true)", pos, ok)
	}
}

func TestFindAllAabaacaadaabaaabaa(t *testing.T) {
	tr := buildByte(t, "aabaacaadaabaaabaa$")
	var got []int
	for pos := range tr.FindAll([]byte("aaba")) {
		got = append(got, int(pos))
	}
	sort.Ints(got)
	want := []int{0, 9, 13}
	if len(got) != len(want) {
		t.Fatalf("FindAll(aaba) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FindAll(aaba) = %v, want %v", got, want)
		}
	}
}

func TestFindAllEmptyNeedle(t *testing.T) {
	tr := buildByte(t, "banana$")
	n := len(tr.text)

	var got []int
	for pos := range tr.FindAll(nil) {
		got = append(got, int(pos))
	}
	if len(got) != n+1 {
		t.Fatalf("FindAll(empty) yielded %d positions, want %d", len(got), n+1)
	}
	if got[0] != n {
		t.Fatalf("FindAll(empty) first yield = %d, want %d", got[0], n)
	}
	rest := append([]int(nil), got[1:]...)
	sort.Ints(rest)
	for i, pos := range rest {
		if pos != i {
			t.Fatalf("FindAll(empty) positions = %v, want every offset in [0,%d)", rest, n)
		}
	}
}

func TestBranchEarlyExit(t *testing.T) {
	tr := buildByte(t, "mississippi$")
	count := 0
	edge, ok := tr.Branch([]byte("i"))
	if !ok {
		t.Fatal("expected a branch for 'i'")
	}
	for range tr.DepthFirstSearch(edge) {
		count++
		if count == 1 {
			break
		}
	}
	if count != 1 {
		t.Fatalf("expected DFS to stop after 1 yield, got %d", count)
	}
}

func TestOrderedChildrenDeterministicOrder(t *testing.T) {
	less := func(a, b byte) bool { return a < b }
	tr := buildByte(t, "banana$", WithOrderedChildren[byte, uint32](less))

	root := Edge[uint32]{}
	var prev byte
	first := true
	for e := range tr.DepthFirstSearch(root) {
		// Only the root's own children; ChildNode 0 is the root edge itself.
		if e.ParentNode != 0 || e.ChildNode == 0 {
			continue
		}
		lbl := tr.Label(e.ChildNode)
		sym := tr.text[lbl.First]
		if !first && sym < prev {
			t.Fatalf("ordered children not sorted: %c after %c", sym, prev)
		}
		prev, first = sym, false
	}
}

// With children visited in symbol order, the leaves of a depth-first walk
// come out in lexicographic suffix order, i.e. the suffix array of the
// same text.
func TestDFSLeafOrderMatchesSuffixArray(t *testing.T) {
	less := func(a, b byte) bool { return a < b }
	text := "mississippi$"
	tr := buildByte(t, text, WithOrderedChildren[byte, uint32](less))

	edge, ok := tr.Branch(nil)
	if !ok {
		t.Fatal("expected a root branch")
	}
	var leaves []uint32
	for e := range tr.DepthFirstSearch(edge) {
		if tr.Leaf(e.ChildNode) {
			leaves = append(leaves, tr.Labels(e).First)
		}
	}

	sa := suffixarray.Build[byte, uint32]([]byte(text), less)
	if len(leaves) != len(sa) {
		t.Fatalf("DFS yielded %d leaves, suffix array has %d entries", len(leaves), len(sa))
	}
	for i := range sa {
		if leaves[i] != sa[i] {
			t.Fatalf("leaf order %v diverges from suffix array %v at %d", leaves, sa, i)
		}
	}
}

func TestByteChildrenMatchesHashed(t *testing.T) {
	hashedTree := buildByte(t, "mississippi$")
	byteTree := buildByte(t, "mississippi$", WithByteChildren[uint32]())

	for _, needle := range []string{"i", "ss", "ssi", "ppi", "z"} {
		hPos, hOk := hashedTree.FindFirst([]byte(needle))
		bPos, bOk := byteTree.FindFirst([]byte(needle))
		if hOk != bOk || hPos != bPos {
			t.Fatalf("FindFirst(%q) mismatch: hashed=(%d,%v) byte=(%d,%v)", needle, hPos, hOk, bPos, bOk)
		}
	}
}

func TestCaseInsensitiveEqual(t *testing.T) {
	eq := func(a, b byte) bool { return a|0x20 == b|0x20 }
	tr := New[byte, uint32](WithEqual[byte, uint32](eq))
	for _, c := range []byte("MiSsIsSiPpI$") {
		tr.PushBack(c)
	}
	pos, ok := tr.FindFirst([]byte("ISSI"))
	if !ok || pos != 1 {
		t.Fatalf("case-insensitive FindFirst(ISSI) = (%d,%v), want (1,true)", pos, ok)
	}
}

// TestDepthFirstSearchVisitsEachNodeOnce is a presence-tracking property
// test: no node id should ever reach the DFS callback twice, regardless
// of which child-map strategy produced the tree. A general-purpose
// bitset is the natural fit here since node ids span the whole tree
// rather than one node's small child count.
func TestDepthFirstSearchVisitsEachNodeOnce(t *testing.T) {
	tr := buildByte(t, "aabaacaadaabaaabaa$")
	edge, ok := tr.Branch(nil)
	if !ok {
		t.Fatal("expected a root branch for an explicit tree")
	}

	seen := bitset.New(uint(len(tr.nodes)) + 1)
	for e := range tr.DepthFirstSearch(edge) {
		if tr.Leaf(e.ChildNode) {
			continue
		}
		if seen.Test(uint(e.ChildNode)) {
			t.Fatalf("node %d visited twice by depth-first search", e.ChildNode)
		}
		seen.Set(uint(e.ChildNode))
	}
	if got := seen.Count(); got != uint(len(tr.nodes)) {
		t.Fatalf("expected all %d internal nodes visited exactly once, got %d", len(tr.nodes), got)
	}
}

func TestClearThenRebuildMatchesFreshBuild(t *testing.T) {
	less := func(a, b byte) bool { return a < b }
	text := "mississippi$"

	reused := New[byte, uint32](WithOrderedChildren[byte, uint32](less))
	for _, c := range []byte("abracadabra$") {
		reused.PushBack(c)
	}
	reused.Clear()
	for i := 0; i < len(text); i++ {
		reused.PushBack(text[i])
	}
	fresh := buildByte(t, text, WithOrderedChildren[byte, uint32](less))

	collect := func(tr *Tree[byte, uint32]) []Edge[uint32] {
		edge, ok := tr.Branch(nil)
		if !ok {
			t.Fatal("expected a root branch")
		}
		var out []Edge[uint32]
		for e := range tr.DepthFirstSearch(edge) {
			out = append(out, e)
		}
		return out
	}

	got, want := collect(reused), collect(fresh)
	if len(got) != len(want) {
		t.Fatalf("edge counts diverge after Clear: %d vs %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("edge %d diverges after Clear: %+v vs %+v", i, got[i], want[i])
		}
	}
}

func TestPushBackPanicClearsTree(t *testing.T) {
	calls := 0
	eq := func(a, b byte) bool {
		calls++
		if calls == 3 {
			panic("boom")
		}
		return a == b
	}
	tr := New[byte, uint32](WithEqual[byte, uint32](eq))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected PushBack to re-panic")
		}
		if len(tr.nodes) != 0 || len(tr.text) != 0 {
			t.Fatalf("expected tree cleared after panic, nodes=%d text=%d", len(tr.nodes), len(tr.text))
		}
	}()

	for _, c := range []byte("aaaaaa") {
		tr.PushBack(c)
	}
}
