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

func runRecover(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetId, err := checkAssetId(c.String("asset-id"))
	if nil != err {
		return err
	}

	name, claimant, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "claimant: %s\n", name)
		fmt.Fprintf(m.e, "assetId: %s\n", assetId)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	recoverConfig := &rpccalls.RecoverData{
		AssetId:  assetId,
		Claimant: claimant,
	}

	response, err := client.RecoverTokens(recoverConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
