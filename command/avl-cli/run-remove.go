// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
)

type removeReply struct {
	Removed []string `json:"removed"`
	Absent  []string `json:"absent"`
	Values  []string `json:"values"`
}

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	remove := c.StringSlice("value")
	if 0 == len(remove) {
		return fault.ErrMissingArgument
	}

	set, err := load(c)
	if nil != err {
		return err
	}

	reply := removeReply{
		Removed: make([]string, 0, len(remove)),
		Absent:  make([]string, 0),
	}
	for _, value := range remove {
		removed, err := set.Delete(value)
		if nil != err {
			return err
		}
		if removed {
			reply.Removed = append(reply.Removed, value)
		} else {
			reply.Absent = append(reply.Absent, value)
		}
	}

	if err := set.Check(); nil != err {
		return fault.ErrTreeCheckFailed
	}
	reply.Values = set.InOrder()

	if m.json {
		return printJson(m.w, reply)
	}

	for _, value := range reply.Removed {
		fmt.Fprintf(m.w, "- %s\n", value)
	}
	for _, value := range reply.Absent {
		fmt.Fprintf(m.w, "? %s\n", value)
	}
	fmt.Fprintln(m.w, strings.Join(reply.Values, " "))
	return nil
}
