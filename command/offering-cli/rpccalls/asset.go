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
	"github.com/bitmark-inc/offeringd/rpc/assets"
)

// AssetData - asset data for registration
type AssetData struct {
	Name       string
	Metadata   string
	Supply     uint64
	Registrant *configuration.Private
}

// RegisterAsset - build a properly signed asset registration
//
// the registrant is credited with the initial supply
func (client *Client) RegisterAsset(assetConfig *AssetData) (*assets.RegisterReply, error) {

	registrant := assetConfig.Registrant.PrivateKey.Account()

	r := offeringrecord.AssetData{
		Name:       assetConfig.Name,
		Metadata:   assetConfig.Metadata,
		Supply:     assetConfig.Supply,
		Registrant: registrant,
		Signature:  nil,
	}

	// pack without signature
	packed, err := r.Pack(registrant)
	if fault.InvalidSignature != err {
		return nil, err
	}

	// manually sign the record and attach signature
	r.Signature = ed25519.Sign(assetConfig.Registrant.PrivateKey.PrivateKeyBytes(), packed)

	// check that signature is correct by packing again
	if _, err = r.Pack(registrant); nil != err {
		return nil, err
	}

	client.printJson("Asset Request", r)

	args := assets.RegisterArguments{
		Assets: []*offeringrecord.AssetData{&r},
	}

	var reply assets.RegisterReply
	if err := client.client.Call("Asset.Register", &args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Asset Reply", reply)

	return &reply, nil
}

// GetAssets - fetch asset records for a set of identifiers
func (client *Client) GetAssets(assetIds []string) (*assets.GetReply, error) {

	ids := make([]offeringrecord.AssetIdentifier, len(assetIds))
	for i, assetId := range assetIds {
		err := ids[i].UnmarshalText([]byte(assetId))
		if nil != err {
			return nil, err
		}
	}

	args := assets.GetArguments{
		AssetIds: ids,
	}

	client.printJson("Asset Get Request", args)

	var reply assets.GetReply
	if err := client.client.Call("Asset.Get", &args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Asset Get Reply", reply)

	return &reply, nil
}
