// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"

	"github.com/urfave/cli"
)

type printReply struct {
	Count   int    `json:"count"`
	Drawing string `json:"drawing"`
}

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	set, err := load(c)
	if nil != err {
		return err
	}

	if m.json {
		var buffer bytes.Buffer
		n := set.Print(&buffer)
		return printJson(m.w, printReply{Count: n, Drawing: buffer.String()})
	}

	if 0 == set.Print(m.w) {
		fmt.Fprintln(m.w, "(empty)")
	}
	return nil
}
