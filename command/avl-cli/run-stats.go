// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/urfave/cli"
)

type statsReply struct {
	Count   int     `json:"count"`
	Height  int     `json:"height"`
	Bound   int     `json:"bound"`
	Minimum *string `json:"minimum,omitempty"`
	Maximum *string `json:"maximum,omitempty"`
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	set, err := load(c)
	if nil != err {
		return err
	}

	reply := statsReply{
		Count:  set.Count(),
		Height: set.Height(),
		Bound:  heightBound(set.Count()),
	}
	if minimum, ok := set.Min(); ok {
		reply.Minimum = &minimum
	}
	if maximum, ok := set.Max(); ok {
		reply.Maximum = &maximum
	}

	if m.json {
		return printJson(m.w, reply)
	}

	fmt.Fprintf(m.w, "count:   %d\n", reply.Count)
	fmt.Fprintf(m.w, "height:  %d\n", reply.Height)
	fmt.Fprintf(m.w, "bound:   %d\n", reply.Bound)
	if nil != reply.Minimum {
		fmt.Fprintf(m.w, "minimum: %s\n", *reply.Minimum)
	}
	if nil != reply.Maximum {
		fmt.Fprintf(m.w, "maximum: %s\n", *reply.Maximum)
	}
	return nil
}

// largest height an AVL tree of n values can reach
func heightBound(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}
