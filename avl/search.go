// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if a value equal to the argument is in the tree
func (tree *Tree[T]) Contains(value T) bool {
	return nil != tree.search(value)
}

func (tree *Tree[T]) search(value T) *node[T] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(value, p.value); {
		case c < 0: // value < p.value
			p = p.left
		case c > 0: // value > p.value
			p = p.right
		default:
			return p
		}
	}
	return nil
}
