// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"
)

func runSort(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	set, err := load(c)
	if nil != err {
		return err
	}

	values := set.InOrder()
	if m.json {
		return printJson(m.w, values)
	}

	fmt.Fprintln(m.w, strings.Join(values, " "))
	return nil
}
