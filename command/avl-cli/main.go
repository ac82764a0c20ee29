// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	json bool
	w    io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// separate from main so that tests can capture the output
func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "load values into an AVL tree and report on it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "type, t",
			Value: "integer",
			Usage: " values are of `TYPE` [integer|string|fold]",
		},
		cli.BoolFlag{
			Name:  "reverse, r",
			Usage: " use descending order",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " JSON output",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sort",
			Usage:     "values in ascending order without duplicates",
			ArgsUsage: "VALUE…",
			Action:    runSort,
		},
		{
			Name:      "orders",
			Usage:     "in-order, pre-order and post-order traversals",
			ArgsUsage: "VALUE…",
			Action:    runOrders,
		},
		{
			Name:      "stats",
			Usage:     "count, height, height bound, lowest and highest value",
			ArgsUsage: "VALUE…",
			Action:    runStats,
		},
		{
			Name:      "print",
			Usage:     "draw the tree",
			ArgsUsage: "VALUE…",
			Action:    runPrint,
		},
		{
			Name:      "remove",
			Usage:     "insert values then delete those given by --value",
			ArgsUsage: "VALUE…",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "value, v",
					Value: &cli.StringSlice{},
					Usage: " `VALUE` to delete, may be repeated",
				},
			},
			Action: runRemove,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			json: c.GlobalBool("json"),
			w:    c.App.Writer,
		}
		return nil
	}

	return app
}
