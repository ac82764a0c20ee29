// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// limit on reclaimed nodes kept by a single tree
const maximumPooled = 256

// a node in the tree
type node[T any] struct {
	left   *node[T] // left sub-tree
	right  *node[T] // right sub-tree
	value  T        // ordered by the tree's comparator
	height int      // of the sub-tree rooted here, leaf = 1
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[T]) newNode(value T) *node[T] {
	p := tree.pool
	if nil == p {
		if 0 != tree.pooled {
			panic("pool corrupt")
		}
		return &node[T]{
			value:  value,
			height: 1,
		}
	}
	tree.pool = p.left
	tree.pooled -= 1

	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	p.value = value
	p.height = 1
	return p
}

// reclaim a node and keep it in the tree's pool
func (tree *Tree[T]) freeNode(p *node[T]) {
	var zero T
	p.right = nil
	p.value = zero
	p.height = 0

	if tree.pooled >= maximumPooled {
		p.left = nil
		return
	}
	p.left = tree.pool // use as free list pointer
	tree.pool = p
	tree.pooled += 1
}
