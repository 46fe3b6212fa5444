// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package repeated finds the longest substring that occurs at least twice
// in a text — contiguous, unlike the subsequence lcs finds — by scanning
// either a suffix array's LCP array or a suffix tree's internal nodes for
// the deepest repeat.
package repeated

import (
	"github.com/arnegrim/strand/suffixtree"
	"golang.org/x/exp/constraints"
)

// FromSuffixArray returns the longest repeated substring of text, given
// its suffix array sa and LCP array lcp: the LCP array's maximum entry is
// exactly the length of the longest repeat, and the suffix at that rank
// gives its starting offset. Returns nil if no substring repeats.
func FromSuffixArray[T comparable, S constraints.Unsigned](text []T, sa, lcp []S) []T {
	if len(lcp) == 0 {
		return nil
	}

	maxIdx := 0
	for i, v := range lcp {
		if v > lcp[maxIdx] {
			maxIdx = i
		}
	}
	if lcp[maxIdx] == 0 {
		return nil
	}

	pos := sa[maxIdx]
	return text[pos : pos+lcp[maxIdx]]
}

// FromSuffixTree returns the longest repeated substring found in tree,
// which must be explicit (padded with a terminal symbol that occurs
// nowhere else in the text), so every repeat ends at an internal node
// rather than running off a leaf. An internal node's LabelsLen is the
// length of the substring shared by every suffix in its subtree, so the
// deepest internal node holds the answer. Returns nil if no substring
// repeats.
func FromSuffixTree[T comparable, S constraints.Unsigned](tree *suffixtree.Tree[T, S]) []T {
	edge, ok := tree.Branch(nil)
	if !ok {
		return nil
	}

	var best []T
	for e := range tree.DepthFirstSearch(edge) {
		if tree.Leaf(e.ChildNode) || int(e.LabelsLen) <= len(best) {
			continue
		}
		labels := tree.Labels(e)
		best = tree.Text()[labels.First:labels.Second]
	}
	return best
}
