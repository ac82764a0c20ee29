// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// Check - verify all tree invariants, returns the first failure
func (tree *Tree[T]) Check() error {
	if err := checkHeights(tree.root); nil != err {
		return err
	}
	if err := checkBalance(tree.root); nil != err {
		return err
	}
	if err := tree.checkOrder(); nil != err {
		return err
	}
	return tree.checkCount()
}

// CheckHeights - cached heights agree with the sub-trees
func (tree *Tree[T]) CheckHeights() bool {
	return nil == checkHeights(tree.root)
}

// CheckBalance - no node has sub-tree heights differing by more than one
func (tree *Tree[T]) CheckBalance() bool {
	return nil == checkBalance(tree.root)
}

// CheckOrder - in-order values are strictly increasing
func (tree *Tree[T]) CheckOrder() bool {
	return nil == tree.checkOrder()
}

// CheckCount - node count agrees with the number of reachable nodes
func (tree *Tree[T]) CheckCount() bool {
	return nil == tree.checkCount()
}

// internal: recomputes heights, so does not trust the cached values
func checkHeights[T any](p *node[T]) error {
	if nil == p {
		return nil
	}
	if err := checkHeights(p.left); nil != err {
		return err
	}
	if err := checkHeights(p.right); nil != err {
		return err
	}
	expected := 1 + height(p.left)
	if hr := 1 + height(p.right); hr > expected {
		expected = hr
	}
	if p.height != expected {
		return fmt.Errorf("height fail at node: %v  actual: %d  expected: %d", p.value, p.height, expected)
	}
	return nil
}

func checkBalance[T any](p *node[T]) error {
	if nil == p {
		return nil
	}
	if bf := balanceFactor(p); bf < -1 || bf > 1 {
		return fmt.Errorf("balance fail at node: %v  balance: %+d", p.value, bf)
	}
	if err := checkBalance(p.left); nil != err {
		return err
	}
	return checkBalance(p.right)
}

func (tree *Tree[T]) checkOrder() error {
	var err error
	first := true
	var previous T
	tree.Walk(func(value T) bool {
		if !first && tree.compare(previous, value) >= 0 {
			err = fmt.Errorf("order fail at node: %v  previous: %v", value, previous)
			return false
		}
		first = false
		previous = value
		return true
	})
	return err
}

func (tree *Tree[T]) checkCount() error {
	n := 0
	tree.Walk(func(T) bool {
		n += 1
		return true
	})
	if n != tree.count {
		return fmt.Errorf("count fail: reachable: %d  count: %d", n, tree.count)
	}
	return nil
}
