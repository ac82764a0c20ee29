// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding a set of distinct values
// ordered by a caller supplied comparator
//
// Note: an individual tree is not thread safe, so either access only
//
//	in a single go routine or use mutex/rwmutex to restrict
//	access.
//
// Each node caches the height of its sub-tree.  Insert and Delete
// descend recursively and on the way back up recompute the height of
// every visited node and apply a single or double rotation wherever
// the heights of the two sub-trees differ by more than one.
//
// Inserting a value that is already present does nothing and deleting
// a value that is absent does nothing; both report this with a false
// result rather than an error.
package avl
