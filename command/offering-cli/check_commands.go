// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/command/offering-cli/configuration"
	"github.com/bitmark-inc/offeringd/fault"
	"golang.org/x/crypto/ed25519"
)

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", fault.IdentityIsRequired
	}

	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", fault.ConnectIsRequired
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", fault.DescriptionIsRequired
	}

	return description, nil
}

// private key is optional,
// if blank and new is set a key is generated,
// otherwise must be a Base58 private key for the current network
func checkPrivateKey(key string, new bool, testnet bool) (string, error) {

	if new && "" == key {
		privateKey, err := account.NewPrivateKey(testnet)
		if nil != err {
			return "", err
		}
		key = privateKey.String()
	}
	if "" == key {
		return "", fault.PrivateKeyIsRequired
	}

	// ensure the key decodes and belongs to the current network
	privateKey, err := account.PrivateKeyFromBase58(key)
	if nil != err {
		return "", err
	}
	if privateKey.IsTesting() != testnet {
		return "", fault.WrongNetworkForPrivateKey
	}
	return key, nil
}

// public key is required,
// if present must be 64 hex chars
func checkPublicKey(key string) (string, error) {
	if "" == key {
		return "", fault.InvalidPublicKey
	}
	k, err := hex.DecodeString(key)
	if nil != err {
		return "", err
	}
	if len(k) != ed25519.PublicKeySize {
		return "", fault.InvalidKeyLength
	}
	return key, nil
}

// asset name is required field
func checkAssetName(name string) (string, error) {
	if "" == name {
		return "", fault.AssetNameIsRequired
	}
	return name, nil
}

// asset metadata is required field
// and must unpack to an even number of NUL separated items
func checkAssetMetadata(meta string) (string, error) {
	if "" == meta {
		return "", fault.MetadataIsNotMap
	}
	meta, err := strconv.Unquote(`"` + meta + `"`)
	if nil != err {
		return "", err
	}
	if 1 == len(strings.Split(meta, "\u0000"))%2 {
		return "", fault.MetadataIsNotMap
	}
	return meta, nil
}

// asset id is required field
func checkAssetId(assetId string) (string, error) {
	if "" == assetId {
		return "", fault.AssetIdIsRequired
	}

	return assetId, nil
}

// recipient is required
// either the name of an identity in the config file
// or a Base58 account string
func checkRecipient(c *cli.Context, name string, config *configuration.Configuration) (string, *account.Account, error) {
	recipient := c.String(name)
	if "" == recipient {
		return "", nil, fault.IdentityIsRequired
	}

	newOwner, err := config.Account(recipient)
	if nil != err {
		newOwner, err = account.AccountFromBase58(recipient)
		if nil != err {
			return "", nil, err
		}
	}

	return recipient, newOwner, nil
}

// owner is required and must unlock
// the name defaults to the default identity
// password is prompted for unless given by flag or agent
func checkOwnerWithPasswordPrompt(name string, config *configuration.Configuration, c *cli.Context) (string, *configuration.Private, error) {
	if "" == name {
		name = config.DefaultIdentity
	}

	var err error

	// get global password items
	agent := c.GlobalString("use-agent")
	clearCache := c.GlobalBool("zero-agent-cache")
	password := c.GlobalString("password")

	// check owner password
	if "" != agent {
		password, err = passwordFromAgent(name, "Sign Offering Request", agent, clearCache)
		if nil != err {
			return "", nil, err
		}
	} else if "" == password {
		password, err = promptPassword(name)
		if nil != err {
			return "", nil, err
		}
	}
	owner, err := config.Private(password, name)
	if nil != err {
		return "", nil, err
	}
	return name, owner, nil
}

// check if file exists and is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
