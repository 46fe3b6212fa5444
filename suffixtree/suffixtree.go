// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package suffixtree implements Ukkonen's online suffix tree construction:
// symbols are appended one at a time in amortized O(1) (O(log K) lookups
// for the ordered child map of alphabet size K), and the tree is always a valid
// suffix tree of the text seen so far. Leaves are identified implicitly,
// by the one-past-the-largest-node-id range flipped onto text offsets
// (leafID = ^S(0) - origin), so no per-leaf struct is ever allocated.
package suffixtree

import (
	"iter"

	"github.com/arnegrim/strand"
	"github.com/arnegrim/strand/internal/childmap"
	"github.com/arnegrim/strand/sink"
)

// Span is a half-open character range into the tree's text.
type Span[S strand.Size] struct {
	First, Second S
}

// Len returns the number of characters the span covers.
func (r Span[S]) Len() S { return r.Second - r.First }

// Edge identifies a node by the path from the root: ParentNode and
// ChildNode are node ids (leaf ids included), LabelsLen is the total
// number of characters along [root .. ChildNode].
type Edge[S strand.Size] struct {
	ParentNode, ChildNode S
	LabelsLen             S
}

type node[T comparable, S strand.Size] struct {
	children childmap.Map[T, S]
	label    Span[S]
	link     S
}

// Tree is a suffix tree over a text of symbols of type T, with node and
// offset ids of type S. The zero value is not usable; construct with New.
type Tree[T comparable, S strand.Size] struct {
	text   []T
	eq     func(a, b T) bool
	newMap func() childmap.Map[T, S]

	nodes    []node[T, S]
	pos, cur S
}

// Option configures a Tree at construction time.
type Option[T comparable, S strand.Size] func(*Tree[T, S])

// WithEqual overrides the default (==) symbol equivalence used when
// comparing symbols along an edge label. Child lookups do not use it: they
// go through the child map, which matches keys exactly (Hashed, Byte) or
// by its own less (Ordered), so with the default Hashed map symbols that
// eq treats as equal but that differ as keys start separate branches.
func WithEqual[T comparable, S strand.Size](eq func(a, b T) bool) Option[T, S] {
	return func(t *Tree[T, S]) { t.eq = eq }
}

// WithOrderedChildren selects the sorted-slice child map, giving
// DepthFirstSearch a deterministic, less-defined iteration order instead
// of Hashed's unspecified one.
func WithOrderedChildren[T comparable, S strand.Size](less func(a, b T) bool) Option[T, S] {
	return func(t *Tree[T, S]) {
		t.newMap = func() childmap.Map[T, S] { return childmap.NewOrdered[T, S](less) }
	}
}

// WithByteChildren selects the popcount-compressed dense child map, valid
// only for a Tree[byte, S]. It trades the generality of Hashed/Ordered for
// a child map with no per-node allocation until a node actually branches.
func WithByteChildren[S strand.Size]() Option[byte, S] {
	return func(t *Tree[byte, S]) {
		t.newMap = func() childmap.Map[byte, S] { return childmap.NewByte[S]() }
	}
}

// New returns an empty Tree. Push symbols onto it with PushBack.
func New[T comparable, S strand.Size](opts ...Option[T, S]) *Tree[T, S] {
	t := &Tree[T, S]{
		eq:     func(a, b T) bool { return a == b },
		newMap: func() childmap.Map[T, S] { return childmap.NewHashed[T, S]() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Size returns the number of symbols pushed so far.
func (t *Tree[T, S]) Size() S { return S(len(t.text)) }

// Text returns the symbols pushed so far. The caller must not mutate it.
func (t *Tree[T, S]) Text() []T { return t.text }

// Leaf reports whether node is a leaf id rather than an index into the
// internal node arena — leaf ids are always >= len(nodes).
func (t *Tree[T, S]) Leaf(node S) bool { return int(node) >= len(t.nodes) }

func flip[S strand.Size](n S) S { return ^S(0) - n }

// Label returns the character span stored directly at node: for a leaf,
// the flipped id recovers the suffix's starting offset and the span runs
// to the current text length; for an internal node, its stored span.
func (t *Tree[T, S]) Label(nd S) Span[S] {
	if t.Leaf(nd) {
		return Span[S]{flip(nd), S(len(t.text))}
	}
	return t.nodes[nd].label
}

// Labels returns the concatenation of every edge label from the root down
// to edge.ChildNode.
func (t *Tree[T, S]) Labels(edge Edge[S]) Span[S] {
	last := t.Label(edge.ChildNode).Second
	return Span[S]{last - edge.LabelsLen, last}
}

// Clear resets the tree to empty, discarding the text and every node.
func (t *Tree[T, S]) Clear() {
	t.text = nil
	t.nodes = nil
	t.pos, t.cur = 0, 0
}

// PushBack appends sym to the text and extends the tree to stay a valid
// suffix tree of the new text. If eq panics (or the node arena otherwise
// panics), PushBack recovers once, clears the tree to empty, and
// re-panics — the tree is left in no partially-extended state a caller
// could mistake for valid.
func (t *Tree[T, S]) PushBack(sym T) {
	defer func() {
		if r := recover(); r != nil {
			t.Clear()
			panic(r)
		}
	}()

	t.text = append(t.text, sym)
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node[T, S]{children: t.newMap()})
	}

	src := S(len(t.nodes))
	tie := func(dest S) {
		if !t.Leaf(src) && src != dest {
			t.nodes[src].link = dest
			src++
		}
	}

	for int(t.pos) < len(t.text) {
		child, ok := t.nodes[t.cur].children.Get(t.text[t.pos])
		if ok {
			if t.skip(child) {
				continue
			}
			newChild, didSplit := t.split(child)
			if !didSplit {
				tie(t.cur)
				return
			}
			t.nodes[t.cur].children.Set(t.text[t.pos], newChild)
			tie(S(len(t.nodes) - 1))
		} else {
			t.nodes[t.cur].children.Set(t.text[t.pos], flip(t.pos))
			tie(t.cur)
		}

		if t.cur != 0 {
			t.cur = t.nodes[t.cur].link
		} else {
			t.pos++
		}
	}
}

func (t *Tree[T, S]) skip(nd S) bool {
	length := t.Label(nd).Len()
	if S(len(t.text)) <= t.pos+length {
		return false
	}
	t.pos += length
	t.cur = nd
	return true
}

// split breaks node's edge at the active point, inserting a new internal
// node that holds the already-matched prefix and gains two children: the
// old node's remainder, and a fresh leaf for the newly appended symbol.
// It reports false (no split performed) if the text already continues the
// same way past the active point.
func (t *Tree[T, S]) split(nd S) (newID S, didSplit bool) {
	lbl := t.Label(nd)
	cut := lbl.First + S(len(t.text)) - t.pos - 1
	back := S(len(t.text)) - 1
	if t.eq(t.text[cut], t.text[back]) {
		return nd, false
	}

	old := nd
	newID = S(len(t.nodes))

	var cutChild S
	if t.Leaf(old) {
		cutChild = flip(cut)
	} else {
		cutChild = old
	}

	children := t.newMap()
	children.Set(t.text[cut], cutChild)
	children.Set(t.text[back], flip(back))

	t.nodes = append(t.nodes, node[T, S]{
		children: children,
		label:    Span[S]{lbl.First, cut},
	})

	if !t.Leaf(old) {
		t.nodes[old].label = Span[S]{cut, lbl.Second}
	}

	return newID, true
}

// Branch returns the minimum-depth edge whose path from the root starts
// with needle.
func (t *Tree[T, S]) Branch(needle []T) (Edge[S], bool) {
	if len(t.nodes) == 0 {
		return Edge[S]{}, false
	}

	var edge Edge[S]
	i := 0
	for {
		lbl := t.Label(edge.ChildNode)
		edge.LabelsLen += lbl.Len()

		j := lbl.First
		for i < len(needle) && j < lbl.Second && t.eq(needle[i], t.text[j]) {
			i++
			j++
		}
		if i == len(needle) {
			return edge, true
		}
		if j != lbl.Second || t.Leaf(edge.ChildNode) {
			return Edge[S]{}, false
		}

		child, ok := t.nodes[edge.ChildNode].children.Get(needle[i])
		if !ok {
			return Edge[S]{}, false
		}
		edge.ParentNode = edge.ChildNode
		edge.ChildNode = child
	}
}

// DepthFirstSearch walks every edge in the subtree rooted at start, an
// external iterator backed by an explicit stack rather than recursion, so
// it can be interrupted by the consumer (a range-over-func break) without
// leaving any goroutine or call stack behind. Children are pushed in
// reverse iteration order so they pop, and are yielded, in forward order.
func (t *Tree[T, S]) DepthFirstSearch(start Edge[S]) iter.Seq[Edge[S]] {
	return func(yield func(Edge[S]) bool) {
		stack := &sink.Stack[Edge[S]]{}
		stack.Add(start)

		for stack.Len() > 0 {
			edge, _ := stack.Pop()
			if !yield(edge) {
				return
			}
			if t.Leaf(edge.ChildNode) {
				continue
			}

			children := t.nodes[edge.ChildNode].children
			keys := make([]T, 0, children.Len())
			for k := range children.Keys() {
				keys = append(keys, k)
			}
			for i := len(keys) - 1; i >= 0; i-- {
				child, _ := children.Get(keys[i])
				stack.Add(Edge[S]{
					ParentNode: edge.ChildNode,
					ChildNode:  child,
					LabelsLen:  edge.LabelsLen + t.Label(child).Len(),
				})
			}
		}
	}
}

// FindFirst returns the offset of the first occurrence of needle, or
// (0, true) for an empty needle, or (0, false) if needle never occurs.
func (t *Tree[T, S]) FindFirst(needle []T) (S, bool) {
	if edge, ok := t.Branch(needle); ok {
		return t.Labels(edge).First, true
	}
	if len(needle) == 0 {
		return 0, true
	}
	var zero S
	return zero, false
}

// FindAll lazily yields the offset of every occurrence of needle. The
// tree must be explicit (its text padded with a terminal symbol that
// occurs nowhere else) for every suffix to end at a leaf. An empty needle
// matches everywhere: len(text) for the empty suffix first, then every
// leaf position.
func (t *Tree[T, S]) FindAll(needle []T) iter.Seq[S] {
	return func(yield func(S) bool) {
		if len(needle) == 0 {
			if !yield(S(len(t.text))) {
				return
			}
		}
		edge, ok := t.Branch(needle)
		if !ok {
			return
		}
		for e := range t.DepthFirstSearch(edge) {
			if t.Leaf(e.ChildNode) {
				if !yield(t.Labels(e).First) {
					return
				}
			}
		}
	}
}
