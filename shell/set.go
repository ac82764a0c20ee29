// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"io"
	"strconv"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/compare"
	"github.com/bitmark-inc/avltree/fault"
)

// value types
const (
	IntegerType = "integer"
	StringType  = "string"
	FoldType    = "fold" // case-insensitive strings
)

//go:generate mockgen -destination=mocks/set.go -package=mocks github.com/bitmark-inc/avltree/shell Set

// Set - ordered set of values given in text form
type Set interface {
	Insert(value string) (bool, error)
	Delete(value string) (bool, error)
	Contains(value string) (bool, error)
	Count() int
	Height() int
	Min() (string, bool)
	Max() (string, bool)
	InOrder() []string
	PreOrder() []string
	PostOrder() []string
	Clear()
	Print(w io.Writer) int
	Check() error
}

// NewSet - create an empty set for one of the value types
func NewSet(valueType string, reverse bool) (Set, error) {
	switch valueType {
	case IntegerType:
		return newTreeSet(compare.Ordered[int64], reverse, parseInteger, formatInteger), nil
	case StringType:
		return newTreeSet(compare.Strings, reverse, parseString, formatString), nil
	case FoldType:
		return newTreeSet(compare.Fold, reverse, parseString, formatString), nil
	default:
		return nil, fault.ErrInvalidValueType
	}
}

// a tree plus conversions to and from text
type treeSet[T any] struct {
	tree   *avl.Tree[T]
	parse  func(string) (T, error)
	format func(T) string
}

func newTreeSet[T any](c func(a T, b T) int, reverse bool, parse func(string) (T, error), format func(T) string) *treeSet[T] {
	if reverse {
		c = compare.Reverse(c)
	}
	return &treeSet[T]{
		tree:   avl.New(c),
		parse:  parse,
		format: format,
	}
}

func parseInteger(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidValue
	}
	return n, nil
}

func formatInteger(n int64) string {
	return strconv.FormatInt(n, 10)
}

func parseString(s string) (string, error) {
	return s, nil
}

func formatString(s string) string {
	return s
}

func (s *treeSet[T]) Insert(value string) (bool, error) {
	v, err := s.parse(value)
	if nil != err {
		return false, err
	}
	return s.tree.Insert(v), nil
}

func (s *treeSet[T]) Delete(value string) (bool, error) {
	v, err := s.parse(value)
	if nil != err {
		return false, err
	}
	return s.tree.Delete(v), nil
}

func (s *treeSet[T]) Contains(value string) (bool, error) {
	v, err := s.parse(value)
	if nil != err {
		return false, err
	}
	return s.tree.Contains(v), nil
}

func (s *treeSet[T]) Count() int {
	return s.tree.Count()
}

func (s *treeSet[T]) Height() int {
	return s.tree.Height()
}

func (s *treeSet[T]) Min() (string, bool) {
	v, ok := s.tree.Min()
	if !ok {
		return "", false
	}
	return s.format(v), true
}

func (s *treeSet[T]) Max() (string, bool) {
	v, ok := s.tree.Max()
	if !ok {
		return "", false
	}
	return s.format(v), true
}

func (s *treeSet[T]) InOrder() []string {
	return s.strings(s.tree.InOrder())
}

func (s *treeSet[T]) PreOrder() []string {
	return s.strings(s.tree.PreOrder())
}

func (s *treeSet[T]) PostOrder() []string {
	return s.strings(s.tree.PostOrder())
}

func (s *treeSet[T]) strings(values []T) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = s.format(v)
	}
	return result
}

func (s *treeSet[T]) Clear() {
	s.tree.Clear()
}

func (s *treeSet[T]) Print(w io.Writer) int {
	return s.tree.Print(w)
}

func (s *treeSet[T]) Check() error {
	return s.tree.Check()
}
