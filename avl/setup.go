// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Comparator - total order over values
//
// returns negative if a < b, zero if a == b and positive if a > b
type Comparator[T any] func(a T, b T) int

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *node[T]
	compare Comparator[T]
	count   int

	pool   *node[T] // linked list of reclaimed nodes
	pooled int      // number of nodes in the pool
}

// New - create an initially empty tree
//
// the comparator is fixed for the lifetime of the tree
func New[T any](compare func(a T, b T) int) *Tree[T] {
	return &Tree[T]{
		root:    nil,
		compare: compare,
		count:   0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

// Clear - discard all nodes
func (tree *Tree[T]) Clear() {
	tree.root = nil
	tree.count = 0
	tree.pool = nil
	tree.pooled = 0
}

// ValuesAtDepth - returns all values at a specific depth of a tree
// ordered left to right, the root is at depth zero
func (tree *Tree[T]) ValuesAtDepth(depth int) []T {
	values := []T{}
	if depth < 0 {
		return values
	}
	return valuesAtDepth(tree.root, depth, values)
}

func valuesAtDepth[T any](p *node[T], depth int, values []T) []T {
	if nil == p {
		return values
	}
	if 0 == depth {
		return append(values, p.value)
	}
	values = valuesAtDepth(p.left, depth-1, values)
	return valuesAtDepth(p.right, depth-1, values)
}
