// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/offeringd/fault"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	privateKey := c.String("privateKey")
	new := c.Bool("new")
	acc := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "privateKey: %s\n", privateKey)
		fmt.Fprintf(m.e, "account: %s\n", acc)
		fmt.Fprintf(m.e, "new: %t\n", new)
	}

	switch {

	// full identity: blank key means prompt, --new means generate
	case "" == acc:
		privateKey, err = checkPrivateKey(privateKey, new, m.testnet)
		if nil != err {
			return err
		}

		password := c.GlobalString("password")
		if "" == password {
			password, err = promptNewPassword()
			if nil != err {
				return err
			}
		}

		if err := m.config.AddIdentity(name, description, privateKey, password); nil != err {
			return err
		}

	// receive only identity: just the account, no key material
	case "" == privateKey && !new:
		if err := m.config.AddReceiveOnlyIdentity(name, description, acc); nil != err {
			return err
		}

	default:
		return fault.IncompatibleOptions
	}

	// require configuration update
	m.save = true
	return nil
}
