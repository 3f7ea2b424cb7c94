// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/offeringd/account"
)

func runKeyPair(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, owner, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if nil != err {
		return err
	}

	type rawKeyPair struct {
		PublicKey  string `json:"public_key"`
		PrivateKey string `json:"private_key"`
	}

	type keyPairDisplay struct {
		Name       string              `json:"name"`
		Account    *account.Account    `json:"account"`
		PrivateKey *account.PrivateKey `json:"private_key"`
		KeyPair    rawKeyPair          `json:"raw"`
	}
	output := keyPairDisplay{
		Name:       name,
		Account:    owner.PrivateKey.Account(),
		PrivateKey: owner.PrivateKey,
		KeyPair: rawKeyPair{
			PublicKey:  hex.EncodeToString(owner.PrivateKey.Account().PublicKeyBytes()),
			PrivateKey: hex.EncodeToString(owner.PrivateKey.PrivateKeyBytes()),
		},
	}
	printJson(m.w, output)
	return nil
}
