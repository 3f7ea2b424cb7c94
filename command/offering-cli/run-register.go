// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/offeringd/command/offering-cli/rpccalls"
)

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetName, err := checkAssetName(c.String("asset"))
	if nil != err {
		return err
	}

	metadata, err := checkAssetMetadata(c.String("metadata"))
	if nil != err {
		return err
	}

	supply := c.Uint64("supply")
	if supply == 0 {
		return fmt.Errorf("invalid supply: %d", supply)
	}

	name, registrant, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "registrant: %s\n", name)
		fmt.Fprintf(m.e, "assetName: %q\n", assetName)
		fmt.Fprintf(m.e, "metadata:\n")
		splitMeta := strings.Split(metadata, "\u0000")
		for i := 0; i < len(splitMeta); i += 2 {
			fmt.Fprintf(m.e, "  %q: %q\n", splitMeta[i], splitMeta[i+1])
		}
		fmt.Fprintf(m.e, "supply: %d\n", supply)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	assetConfig := &rpccalls.AssetData{
		Name:       assetName,
		Metadata:   metadata,
		Supply:     supply,
		Registrant: registrant,
	}

	response, err := client.RegisterAsset(assetConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
