// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/offeringd/command/offering-cli/configuration"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/rpc/administration"
)

// RecoverData - data for a recovery request
type RecoverData struct {
	AssetId  string
	Claimant *configuration.Private
}

// RecoverTokens - sweep a stray asset balance out of the vault
// only succeeds if the claimant is the current administrator
func (client *Client) RecoverTokens(recoverConfig *RecoverData) (*administration.RecoverReply, error) {

	var assetId offeringrecord.AssetIdentifier
	err := assetId.UnmarshalText([]byte(recoverConfig.AssetId))
	if nil != err {
		return nil, err
	}

	claimant := recoverConfig.Claimant.PrivateKey.Account()

	r := offeringrecord.RecoveryParameters{
		AssetId:   assetId,
		Claimant:  claimant,
		Signature: nil,
	}

	// pack without signature
	packed, err := r.Pack(claimant)
	if fault.InvalidSignature != err {
		return nil, err
	}

	// manually sign the record and attach signature
	r.Signature = ed25519.Sign(recoverConfig.Claimant.PrivateKey.PrivateKeyBytes(), packed)

	// check that signature is correct by packing again
	if _, err = r.Pack(claimant); nil != err {
		return nil, err
	}

	client.printJson("Recover Request", r)

	var reply administration.RecoverReply
	if err := client.client.Call("Administrator.Recover", &r, &reply); nil != err {
		return nil, err
	}

	client.printJson("Recover Reply", reply)

	return &reply, nil
}
