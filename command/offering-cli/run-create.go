// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/command/offering-cli/rpccalls"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetA, err := checkAssetId(c.String("asset-a"))
	if nil != err {
		return err
	}

	assetB, err := checkAssetId(c.String("asset-b"))
	if nil != err {
		return err
	}

	startTime := c.Uint64("start-time")
	endTime := c.Uint64("end-time")
	privateStartTime := c.Uint64("private-start-time")
	privateEndTime := c.Uint64("private-end-time")

	isPublic := c.Bool("public")
	isPrivate := c.Bool("private")
	if !isPublic && !isPrivate {
		// default is to request both tranches
		isPublic = true
		isPrivate = true
	}

	name, proposer, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if nil != err {
		return err
	}

	// administrator defaults to the proposer
	administrator := proposer.PrivateKey.Account()
	admin := c.String("administrator")
	if "" != admin {
		var err error
		administrator, err = m.config.Account(admin)
		if nil != err {
			administrator, err = account.AccountFromBase58(admin)
			if nil != err {
				return err
			}
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "proposer: %s\n", name)
		fmt.Fprintf(m.e, "assetA: %s\n", assetA)
		fmt.Fprintf(m.e, "assetB: %s\n", assetB)
		fmt.Fprintf(m.e, "startTime: %d\n", startTime)
		fmt.Fprintf(m.e, "endTime: %d\n", endTime)
		fmt.Fprintf(m.e, "privateStartTime: %d\n", privateStartTime)
		fmt.Fprintf(m.e, "privateEndTime: %d\n", privateEndTime)
		fmt.Fprintf(m.e, "administrator: %s\n", administrator)
		fmt.Fprintf(m.e, "public: %t\n", isPublic)
		fmt.Fprintf(m.e, "private: %t\n", isPrivate)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[m.connectionOffset], m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	offeringConfig := &rpccalls.OfferingData{
		AssetA:           assetA,
		AssetB:           assetB,
		StartTime:        startTime,
		EndTime:          endTime,
		PrivateStartTime: privateStartTime,
		PrivateEndTime:   privateEndTime,
		Administrator:    administrator,
		Public:           isPublic,
		Private:          isPrivate,
		Proposer:         proposer,
	}

	response, err := client.CreateOffering(offeringConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
