// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/offeringd/configuration"
)

type testListener struct {
	MaximumConnections int      `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type testConfiguration struct {
	DataDirectory string       `gluamapper:"data_directory"`
	Chain         string       `gluamapper:"chain"`
	File          string       `gluamapper:"file"`
	ClientRPC     testListener `gluamapper:"client_rpc"`
}

const sampleConfiguration = `
local M = {}

M.data_directory = "."
M.chain = "testing"

-- the global arg table carries the configuration file name
M.file = arg[0]

M.client_rpc = {
    maximum_connections = 50,
    listen = {
        "127.0.0.1:2230",
        "[::1]:2230",
    },
}

return M
`

func TestParseConfigurationFile(t *testing.T) {
	fileName := filepath.Join(os.TempDir(), "test-parse.conf")
	err := ioutil.WriteFile(fileName, []byte(sampleConfiguration), 0600)
	assert.Nil(t, err, "wrong configuration file write")
	defer os.Remove(fileName)

	config := &testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Nil(t, err, "wrong ParseConfigurationFile")
	assert.Equal(t, ".", config.DataDirectory, "wrong data directory")
	assert.Equal(t, "testing", config.Chain, "wrong chain")
	assert.Equal(t, fileName, config.File, "wrong arg[0]")
	assert.Equal(t, 50, config.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2230", "[::1]:2230"}, config.ClientRPC.Listen, "wrong listen")
}

func TestParseConfigurationFileWhenMissing(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile("/nonexistent.conf", config)
	assert.NotNil(t, err, "missing file did not error")
}

func TestParseConfigurationFileWhenInvalidLua(t *testing.T) {
	fileName := filepath.Join(os.TempDir(), "test-parse-invalid.conf")
	err := ioutil.WriteFile(fileName, []byte("this is not lua {{{"), 0600)
	assert.Nil(t, err, "wrong configuration file write")
	defer os.Remove(fileName)

	config := &testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.NotNil(t, err, "invalid lua did not error")
}
