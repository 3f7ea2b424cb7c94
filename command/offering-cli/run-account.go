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

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKey, err := checkPublicKey(c.String("publickey"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "publicKey: %s\n", publicKey)
	}

	k, err := hex.DecodeString(publicKey)
	if nil != err {
		return err
	}

	acc := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      m.testnet,
			PublicKey: k,
		},
	}

	result := struct {
		Hex    string `json:"hex"`
		Base58 string `json:"account"`
	}{
		Hex:    publicKey,
		Base58: acc.String(),
	}

	printJson(m.w, result)
	return nil
}
