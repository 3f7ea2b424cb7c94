// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/offeringd/account"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey, err := account.NewPrivateKey(m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "privateKey: %#v\n", privateKey)
	}

	rawKeyPair := struct {
		Account    string `json:"account"`
		PublicKey  string `json:"public_key"`
		PrivateKey string `json:"private_key"`
	}{
		Account:    privateKey.Account().String(),
		PublicKey:  hex.EncodeToString(privateKey.Account().PublicKeyBytes()),
		PrivateKey: privateKey.String(),
	}

	printJson(m.w, rawKeyPair)
	return nil
}
