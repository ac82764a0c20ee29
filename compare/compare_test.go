// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/compare"
)

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestCompare(t *testing.T) {
	items := []struct {
		actual   int
		expected int
	}{
		{compare.Ordered(1, 2), -1},
		{compare.Ordered(2, 2), 0},
		{compare.Ordered(3.5, 2.0), 1},
		{compare.Strings("abc", "abd"), -1},
		{compare.Bytes([]byte{1, 2}, []byte{1}), 1},
		{compare.Bytes(nil, []byte{}), 0},
		{compare.Fold("Apple", "banana"), -1},
		{compare.Fold("apple", "APPLE"), 1},
		{compare.Fold("Go", "Go"), 0},
		{compare.Reverse(compare.Ordered[int])(1, 2), 1},
		{compare.Reverse(compare.Strings)("b", "a"), -1},
	}

	for i, item := range items {
		assert.Equal(t, item.expected, sign(item.actual), "%d: wrong order", i)
	}
}

func TestTreeWithComparators(t *testing.T) {
	tree := avl.New(compare.Reverse(compare.Ordered[int]))
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		tree.Insert(v)
	}
	assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1}, tree.InOrder())

	words := avl.New(compare.Fold)
	for _, w := range []string{"banana", "Apple", "cherry", "apple"} {
		words.Insert(w)
	}
	assert.Equal(t, []string{"Apple", "apple", "banana", "cherry"}, words.InOrder())
	assert.Nil(t, words.Check())
}
