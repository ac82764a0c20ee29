// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, an empty sub-tree has zero height
func height[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// left height minus right height
func balanceFactor[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// children must already hold their correct heights
func updateHeight[T any](p *node[T]) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// single right rotation, p.left must exist
//
//	    p            p1
//	   / \          /  \
//	  p1  c   →    a    p
//	 /  \              / \
//	a    b            b   c
func rotateRight[T any](p *node[T]) *node[T] {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	// p is now below p1 so must be updated first
	updateHeight(p)
	updateHeight(p1)
	return p1
}

// single left rotation, p.right must exist
func rotateLeft[T any](p *node[T]) *node[T] {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	updateHeight(p)
	updateHeight(p1)
	return p1
}

// restore the AVL property at p after a change strictly below it and
// return the root of the possibly rotated sub-tree
func rebalance[T any](p *node[T]) *node[T] {
	updateHeight(p)

	switch bf := balanceFactor(p); {
	case bf > 1: // left branch too high
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)

	case bf < -1: // right branch too high
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}
	return p
}
