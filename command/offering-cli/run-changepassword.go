// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runChangePassword(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// verify the current password unlocks the identity
	name, owner, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if nil != err {
		return err
	}

	// prompt new password and confirm for private key encryption
	newPassword, err := promptNewPassword()
	if nil != err {
		return err
	}

	// re-encrypt the private key under the new password
	description := owner.Description
	privateKey := owner.PrivateKey.String()

	delete(m.config.Identities, name)
	err = m.config.AddIdentity(name, description, privateKey, newPassword)
	if nil != err {
		return err
	}

	m.save = true
	return nil
}
