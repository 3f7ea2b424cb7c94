// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/offeringd/command/offering-cli/rpccalls"
	"github.com/bitmark-inc/offeringd/fault"
)

func runAsset(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetIds := c.StringSlice("asset-id")
	if 0 == len(assetIds) {
		return fault.AssetIdIsRequired
	}

	if m.verbose {
		for i, assetId := range assetIds {
			fmt.Fprintf(m.e, "asset-id[%d]: %s\n", i, assetId)
		}
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAssets(assetIds)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
