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

type ordersReply struct {
	InOrder   []string `json:"inOrder"`
	PreOrder  []string `json:"preOrder"`
	PostOrder []string `json:"postOrder"`
}

func runOrders(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	set, err := load(c)
	if nil != err {
		return err
	}

	reply := ordersReply{
		InOrder:   set.InOrder(),
		PreOrder:  set.PreOrder(),
		PostOrder: set.PostOrder(),
	}
	if m.json {
		return printJson(m.w, reply)
	}

	fmt.Fprintf(m.w, "in-order:   %s\n", strings.Join(reply.InOrder, " "))
	fmt.Fprintf(m.w, "pre-order:  %s\n", strings.Join(reply.PreOrder, " "))
	fmt.Fprintf(m.w, "post-order: %s\n", strings.Join(reply.PostOrder, " "))
	return nil
}
