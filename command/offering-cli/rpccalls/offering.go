// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/command/offering-cli/configuration"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/rpc/offerings"
)

// OfferingData - data for an offering creation request
type OfferingData struct {
	AssetA           string
	AssetB           string
	StartTime        uint64
	EndTime          uint64
	PrivateStartTime uint64
	PrivateEndTime   uint64
	Administrator    *account.Account
	Public           bool
	Private          bool
	Proposer         *configuration.Private
}

// CreateOffering - build a properly signed offering request
func (client *Client) CreateOffering(offeringConfig *OfferingData) (*offerings.CreateReply, error) {

	var assetA offeringrecord.AssetIdentifier
	err := assetA.UnmarshalText([]byte(offeringConfig.AssetA))
	if nil != err {
		return nil, err
	}

	var assetB offeringrecord.AssetIdentifier
	err = assetB.UnmarshalText([]byte(offeringConfig.AssetB))
	if nil != err {
		return nil, err
	}

	proposer := offeringConfig.Proposer.PrivateKey.Account()

	r := offeringrecord.OfferingParameters{
		AssetA:           assetA,
		AssetB:           assetB,
		StartTime:        offeringConfig.StartTime,
		EndTime:          offeringConfig.EndTime,
		PrivateStartTime: offeringConfig.PrivateStartTime,
		PrivateEndTime:   offeringConfig.PrivateEndTime,
		Administrator:    offeringConfig.Administrator,
		IsPublic:         offeringConfig.Public,
		IsPrivate:        offeringConfig.Private,
		Proposer:         proposer,
		Signature:        nil,
	}

	// pack without signature
	packed, err := r.Pack(proposer)
	if fault.InvalidSignature != err {
		return nil, err
	}

	// manually sign the record and attach signature
	r.Signature = ed25519.Sign(offeringConfig.Proposer.PrivateKey.PrivateKeyBytes(), packed)

	// check that signature is correct by packing again
	if _, err = r.Pack(proposer); nil != err {
		return nil, err
	}

	client.printJson("Offering Request", r)

	var reply offerings.CreateReply
	if err := client.client.Call("Offering.Create", &r, &reply); nil != err {
		return nil, err
	}

	client.printJson("Offering Reply", reply)

	return &reply, nil
}

// ListOfferings - fetch a consecutive batch of offering records
func (client *Client) ListOfferings(start uint64, count int) (*offerings.RecordsReply, error) {

	args := offerings.RecordsArguments{
		Start: start,
		Count: count,
	}

	client.printJson("Records Request", args)

	var reply offerings.RecordsReply
	if err := client.client.Call("Offering.Records", &args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Records Reply", reply)

	return &reply, nil
}
