// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type loggingType struct {
	Size   int               `gluamapper:"size"`
	Count  int               `gluamapper:"count"`
	Levels map[string]string `gluamapper:"levels"`
}

type testConfiguration struct {
	ValueType string      `gluamapper:"value_type"`
	Reverse   bool        `gluamapper:"reverse"`
	Values    []int       `gluamapper:"values"`
	Source    string      `gluamapper:"source"`
	Logging   loggingType `gluamapper:"logging"`
}

func TestParse(t *testing.T) {
	config := &testConfiguration{
		ValueType: "integer",
	}
	err := configuration.ParseConfigurationFile("testdata/good.conf", config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "fold", config.ValueType, "value type")
	assert.True(t, config.Reverse, "reverse")
	assert.Equal(t, []int{5, 3, 8}, config.Values, "values")
	assert.Equal(t, "testdata/good.conf", config.Source, "arg[0]")
	assert.Equal(t, 1024, config.Logging.Size, "log size")
	assert.Equal(t, 3, config.Logging.Count, "log count")
	assert.Equal(t, "debug", config.Logging.Levels["shell"], "shell level")
	assert.Equal(t, "info", config.Logging.Levels["DEFAULT"], "default level")
}

func TestParseMissingFile(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile("testdata/no-such-file.conf", config)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "wrong error")
	assert.True(t, fault.IsErrNotFound(err), "error class")
}

func TestParseNotTable(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile("testdata/number.conf", config)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "wrong error")
}
