// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/shell"
)

// build a set from the global options and insert all arguments
func load(c *cli.Context) (shell.Set, error) {

	set, err := shell.NewSet(c.GlobalString("type"), c.GlobalBool("reverse"))
	if nil != err {
		return nil, err
	}

	for _, value := range c.Args() {
		if _, err := set.Insert(value); nil != err {
			return nil, err
		}
	}
	return set, nil
}
