// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific value from the tree
//
// returns false if the value was not in the tree
func (tree *Tree[T]) Delete(value T) bool {
	removed := false
	tree.root, removed = tree.delete(value, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
//
// removed is only set where a node is actually unlinked, so a two
// child delete which recurses for its successor reports exactly one
// removal
func (tree *Tree[T]) delete(value T, p *node[T]) (*node[T], bool) {
	if nil == p { // value not in tree
		return nil, false
	}

	removed := false
	switch c := tree.compare(value, p.value); {
	case c < 0: // value < p.value
		p.left, removed = tree.delete(value, p.left)
	case c > 0: // value > p.value
		p.right, removed = tree.delete(value, p.right)
	default: // found: delete p
		if nil == p.left {
			r := p.right
			tree.freeNode(p)
			return r, true
		}
		if nil == p.right {
			l := p.left
			tree.freeNode(p)
			return l, true
		}

		// two children: p takes the in-order successor's value and
		// the successor node is unlinked from the right sub-tree
		p.value = p.right.first().value
		p.right, removed = tree.delete(p.value, p.right)
	}
	if !removed {
		return p, false
	}
	return rebalance(p), true
}
