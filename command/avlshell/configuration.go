// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/shell"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultValueType = shell.IntegerType

	defaultLogDirectory = "log"
	defaultLogFile      = "avlshell.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"shell":           "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - configuration file data
type Configuration struct {
	ValueType string               `gluamapper:"value_type" json:"value_type"`
	Reverse   bool                 `gluamapper:"reverse" json:"reverse"`
	Strict    bool                 `gluamapper:"strict" json:"strict"`
	Echo      bool                 `gluamapper:"echo" json:"echo"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaults used when no configuration file is given
func defaultConfiguration() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		ValueType: defaultValueType,
		Reverse:   false,
		Strict:    false,
		Echo:      false,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := validate(options); nil != err {
		return nil, err
	}

	// relative log directory is taken from the configuration file's directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.Logging.Directory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidLogDirectory
	}

	return options, nil
}

// check items that do not depend on the file system
func validate(options *Configuration) error {
	switch options.ValueType {
	case shell.IntegerType, shell.StringType, shell.FoldType:
	default:
		return fault.ErrInvalidValueType
	}
	if "" == options.Logging.Directory {
		return fault.ErrInvalidLogDirectory
	}
	return nil
}
