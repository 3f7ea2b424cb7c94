// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offering

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/offeringd/administrator"
	"github.com/bitmark-inc/offeringd/codetemplate"
	"github.com/bitmark-inc/offeringd/factory"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/ledger"
	"github.com/bitmark-inc/offeringd/messagebus"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/registry"
	"github.com/bitmark-inc/offeringd/storage"
)

// CreatedOffering - the result of a successful creation
type CreatedOffering struct {
	Index  uint64                        `json:"index,string"`
	Record offeringrecord.OfferingRecord `json:"record"`
}

// Create - instantiate the requested tranches and record them
//
// deployment identifiers derive from (assetA, assetB, startTime) and
// the template in use, repeating a creation is refused by the factory
// rather than producing a second copy
func Create(parameters *offeringrecord.OfferingParameters) (*CreatedOffering, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	// covers signature and account validity
	_, err := parameters.Pack(parameters.Proposer)
	if nil != err {
		return nil, err
	}

	err = administrator.Require(parameters.Proposer)
	if nil != err {
		return nil, err
	}

	if !ledger.Exists(parameters.AssetA) || !ledger.Exists(parameters.AssetB) {
		return nil, fault.AssetNotFound
	}

	now := time.Now()
	err = Validate(parameters, now)
	if nil != err {
		return nil, err
	}

	salt := offeringrecord.Salt{
		AssetA:    parameters.AssetA,
		AssetB:    parameters.AssetB,
		StartTime: parameters.StartTime,
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	record := offeringrecord.OfferingRecord{
		CreatedAt: uint64(now.Unix()),
	}

	if parameters.IsPublic {
		instanceId, err := factory.Deploy(trx, codetemplate.PublicTemplateId(), salt,
			offeringrecord.InitialisationArguments{
				AssetA:        parameters.AssetA,
				AssetB:        parameters.AssetB,
				StartTime:     parameters.StartTime,
				EndTime:       parameters.EndTime,
				Administrator: parameters.Administrator,
			})
		if nil != err {
			trx.Abort()
			return nil, err
		}
		record.PublicInstance = instanceId
	}

	if parameters.IsPrivate {
		instanceId, err := factory.Deploy(trx, codetemplate.PrivateTemplateId(), salt,
			offeringrecord.InitialisationArguments{
				AssetA:        parameters.AssetA,
				AssetB:        parameters.AssetB,
				StartTime:     parameters.PrivateStartTime,
				EndTime:       parameters.PrivateEndTime,
				Administrator: parameters.Administrator,
			})
		if nil != err {
			trx.Abort()
			return nil, err
		}
		record.PrivateInstance = instanceId
	}

	index, err := registry.Append(trx, &record)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("created: %d  public: %s  private: %s", index, record.PublicInstance, record.PrivateInstance)

	messagebus.Bus.Broadcast.Send("offering", announceParameters(index, &record)...)

	return &CreatedOffering{
		Index:  index,
		Record: record,
	}, nil
}

// wire form of the creation announcement
//
// an absent tranche is an empty parameter, not a zero filled one
func announceParameters(index uint64, record *offeringrecord.OfferingRecord) [][]byte {
	indexBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(indexBytes, index)

	publicId := []byte{}
	if !record.PublicInstance.IsZero() {
		publicId = record.PublicInstance[:]
	}
	privateId := []byte{}
	if !record.PrivateInstance.IsZero() {
		privateId = record.PrivateInstance[:]
	}

	return [][]byte{indexBytes, publicId, privateId}
}
