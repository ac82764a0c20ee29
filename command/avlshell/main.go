// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/shell"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "type", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "reverse", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
		{Long: "strict", HasArg: getoptions.NO_ARGUMENT, Short: 's'},
		{Long: "echo", HasArg: getoptions.NO_ARGUMENT, Short: 'e'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] [--type=integer|string|fold] [--reverse] [--strict] [--echo] [script-file…]", program)
	}

	theConfiguration, err := configure(options)
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	set, err := shell.NewSet(theConfiguration.ValueType, theConfiguration.Reverse)
	if nil != err {
		log.Criticalf("value type: %q  error: %s", theConfiguration.ValueType, err)
		exitwithstatus.Message("%s: value type: %q  error: %s", program, theConfiguration.ValueType, err)
	}

	session := shell.NewSession(logger.New("shell"), set, os.Stdout, shell.Options{
		Strict: theConfiguration.Strict,
		Echo:   theConfiguration.Echo,
	})

	if 0 == len(arguments) {
		arguments = []string{"-"}
	}

	for _, fileName := range arguments {
		log.Infof("script: %q", fileName)
		if err := runScript(session, fileName); nil != err {
			log.Errorf("script: %q  line: %d  error: %s", fileName, session.Line(), err)
			exitwithstatus.Message("%s: %s:%d: %s", program, fileName, session.Line(), err)
		}
	}
}

// "-" reads from standard input
func runScript(session *shell.Session, fileName string) error {
	var r io.Reader = os.Stdin
	if "-" != fileName {
		f, err := os.Open(fileName)
		if nil != err {
			return err
		}
		defer f.Close()
		r = f
	}
	return session.Run(r)
}

// combine defaults, optional configuration file and command options
func configure(options map[string][]string) (*Configuration, error) {

	theConfiguration := defaultConfiguration()
	theConfiguration.Logging.Directory = os.TempDir()

	if n := len(options["config-file"]); n > 1 {
		return nil, fault.ErrTooManyArguments
	} else if 1 == n {
		c, err := getConfiguration(options["config-file"][0])
		if nil != err {
			return nil, err
		}
		theConfiguration = c
	}

	if n := len(options["type"]); n > 0 {
		theConfiguration.ValueType = options["type"][n-1]
	}
	if len(options["reverse"]) > 0 {
		theConfiguration.Reverse = true
	}
	if len(options["strict"]) > 0 {
		theConfiguration.Strict = true
	}
	if len(options["echo"]) > 0 {
		theConfiguration.Echo = true
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	if err := validate(theConfiguration); nil != err {
		return nil, err
	}
	return theConfiguration, nil
}
