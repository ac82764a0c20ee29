// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Min - return the lowest value, false if tree is empty
func (tree *Tree[T]) Min() (T, bool) {
	p := tree.root.first()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}

// internal: lowest node in a sub-tree
func (p *node[T]) first() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Max - return the highest value, false if tree is empty
func (tree *Tree[T]) Max() (T, bool) {
	p := tree.root.last()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}

// internal: highest node in a sub-tree
func (p *node[T]) last() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Walk - call f for each value in ascending order until f returns
// false
//
// the tree must not be modified from inside f
func (tree *Tree[T]) Walk(f func(value T) bool) {
	walk(tree.root, f)
}

func walk[T any](p *node[T], f func(value T) bool) bool {
	if nil == p {
		return true
	}
	if !walk(p.left, f) {
		return false
	}
	if !f(p.value) {
		return false
	}
	return walk(p.right, f)
}
