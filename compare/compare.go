// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compare - ready made total orders for use as tree comparators
package compare

import (
	"bytes"
	"cmp"
	"strings"
)

// Ordered - natural order of any ordered type
func Ordered[T cmp.Ordered](a T, b T) int {
	return cmp.Compare(a, b)
}

// Strings - byte-wise order of strings
func Strings(a string, b string) int {
	return strings.Compare(a, b)
}

// Bytes - lexical order of byte slices
func Bytes(a []byte, b []byte) int {
	return bytes.Compare(a, b)
}

// Fold - case-insensitive order of strings
//
// strings differing only by case are then ordered byte-wise so that
// "Go" and "go" remain distinct and the order stays total
func Fold(a string, b string) int {
	if r := strings.Compare(strings.ToLower(a), strings.ToLower(b)); 0 != r {
		return r
	}
	return strings.Compare(a, b)
}

// Reverse - the opposite order of f
func Reverse[T any](f func(a T, b T) int) func(a T, b T) int {
	return func(a T, b T) int {
		return f(b, a)
	}
}
