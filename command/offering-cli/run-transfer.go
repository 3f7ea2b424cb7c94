// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/offeringd/command/offering-cli/rpccalls"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	to, successor, err := checkRecipient(c, "successor", m.config)
	if nil != err {
		return err
	}

	from, holder, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "successor: %s\n", to)
		fmt.Fprintf(m.e, "holder: %s\n", from)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	transferConfig := &rpccalls.TransferData{
		Successor: successor,
		Holder:    holder,
	}

	response, err := client.TransferAdministration(transferConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
