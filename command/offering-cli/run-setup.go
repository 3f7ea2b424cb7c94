// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/offeringd/command/offering-cli/configuration"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	privateKey, err := checkPrivateKey(c.String("privateKey"), c.Bool("new"), m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "testnet: %t\n", m.testnet)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// the configuration directory may not exist on a first run
	configDir := path.Dir(m.file)
	isDir, err := checkFileExists(configDir)
	switch {
	case nil != err:
		if err := os.MkdirAll(configDir, 0o750); nil != err {
			return err
		}
	case !isDir:
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	config := &configuration.Configuration{
		DefaultIdentity: name,
		TestNet:         m.testnet,
		Connections:     strings.Split(connect, ","),
		Identities:      make(map[string]configuration.Identity),
	}

	if err := config.AddIdentity(name, description, privateKey, password); nil != err {
		return err
	}

	m.config = config
	m.save = true

	return nil
}
