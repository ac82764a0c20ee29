// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// InOrder - all values in ascending order
func (tree *Tree[T]) InOrder() []T {
	return inOrder(tree.root, make([]T, 0, tree.count))
}

func inOrder[T any](p *node[T], values []T) []T {
	if nil == p {
		return values
	}
	values = inOrder(p.left, values)
	values = append(values, p.value)
	return inOrder(p.right, values)
}

// PreOrder - all values, each node before its sub-trees
func (tree *Tree[T]) PreOrder() []T {
	return preOrder(tree.root, make([]T, 0, tree.count))
}

func preOrder[T any](p *node[T], values []T) []T {
	if nil == p {
		return values
	}
	values = append(values, p.value)
	values = preOrder(p.left, values)
	return preOrder(p.right, values)
}

// PostOrder - all values, each node after its sub-trees
func (tree *Tree[T]) PostOrder() []T {
	return postOrder(tree.root, make([]T, 0, tree.count))
}

func postOrder[T any](p *node[T], values []T) []T {
	if nil == p {
		return values
	}
	values = postOrder(p.left, values)
	values = postOrder(p.right, values)
	return append(values, p.value)
}
