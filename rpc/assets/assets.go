// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/ledger"
	"github.com/bitmark-inc/offeringd/messagebus"
	"github.com/bitmark-inc/offeringd/mode"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/rpc/ratelimit"
	"github.com/bitmark-inc/offeringd/storage"
)

// Asset - type for the RPC
type Asset struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	Pool           storage.Handle
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Registration   func(*offeringrecord.AssetData) (offeringrecord.AssetIdentifier, bool, error)
}

const (
	maximumAssets   = 100
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// Status - result of one registration
type Status struct {
	AssetId   *offeringrecord.AssetIdentifier `json:"id"`
	Duplicate bool                            `json:"duplicate"`
}

// RegisterArguments - arguments for RPC request
type RegisterArguments struct {
	Assets []*offeringrecord.AssetData `json:"assets"`
}

// RegisterReply - results from RPC request
type RegisterReply struct {
	Assets []Status `json:"assets"`
}

func New(
	log *logger.L,
	pools ledger.Handles,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
	registration func(*offeringrecord.AssetData) (offeringrecord.AssetIdentifier, bool, error),
) *Asset {
	return &Asset{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Pool:           pools.Assets,
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Registration:   registration,
	}
}

// Register - register some assets
func (asset *Asset) Register(arguments *RegisterArguments, reply *RegisterReply) error {

	log := asset.Log
	count := len(arguments.Assets)

	if err := ratelimit.LimitN(asset.Limiter, count, maximumAssets); nil != err {
		return err
	}

	if !asset.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	log.Infof("Asset.Register: %+v", arguments)

	assetStatus := make([]Status, count)
	for i, argument := range arguments.Assets {
		assetId, duplicate, err := asset.Registration(argument)
		if nil != err {
			return err
		}

		assetStatus[i].AssetId = &assetId
		assetStatus[i].Duplicate = duplicate

		if !duplicate {
			packed, err := argument.Pack(argument.Registrant)
			if nil != err {
				return err
			}
			// announce the new asset to subscribers
			messagebus.Bus.Broadcast.Send("asset", packed)
		}
	}

	reply.Assets = assetStatus

	return nil
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	AssetIds []offeringrecord.AssetIdentifier `json:"assetIds"`
}

// GetReply - results from get RPC request
type GetReply struct {
	Assets []Record `json:"assets"`
}

// Record - structure of asset records in the response
type Record struct {
	Record  string      `json:"record"`
	AssetId interface{} `json:"id,omitempty"`
	Data    interface{} `json:"data"`
}

// Get - RPC to fetch asset data
func (asset *Asset) Get(arguments *GetArguments, reply *GetReply) error {

	log := asset.Log
	count := len(arguments.AssetIds)

	if err := ratelimit.LimitN(asset.Limiter, count, maximumAssets); nil != err {
		return err
	}

	if !asset.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	log.Infof("Asset.Get: %+v", arguments)

	a := make([]Record, count)
loop:
	for i, assetId := range arguments.AssetIds {

		_, packedAsset := asset.Pool.GetNB(assetId[:])
		if nil == packedAsset {
			continue loop
		}

		assetData, _, err := offeringrecord.Packed(packedAsset).Unpack(asset.IsTestingChain())
		if nil != err {
			continue loop
		}

		record, _ := offeringrecord.RecordName(assetData)
		a[i] = Record{
			Record:  record,
			AssetId: assetId,
			Data:    assetData,
		}
	}

	reply.Assets = a

	return nil
}
