// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new value into the tree
//
// returns false if an equal value was already present, in which case
// the tree is not changed
func (tree *Tree[T]) Insert(value T) bool {
	added := false
	tree.root, added = tree.insert(value, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
func (tree *Tree[T]) insert(value T, p *node[T]) (*node[T], bool) {
	if nil == p { // insert new node
		return tree.newNode(value), true
	}

	added := false
	switch c := tree.compare(value, p.value); {
	case c < 0: // value < p.value
		p.left, added = tree.insert(value, p.left)
	case c > 0: // value > p.value
		p.right, added = tree.insert(value, p.right)
	default:
		// duplicate: nothing below changed, so no rebalance needed
		return p, false
	}
	return rebalance(p), added
}
