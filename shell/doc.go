// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shell - text command interface to an ordered set
//
// a Set wraps an AVL tree of a particular value type behind string
// arguments, and a Session executes lines of commands against it:
//
//	insert 5 3 8
//	delete 3
//	inorder
//
// blank lines and lines starting with '#' are ignored.
package shell
