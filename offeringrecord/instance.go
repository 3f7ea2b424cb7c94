// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord

import (
	"github.com/ipfs/go-cid"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/util"
)

// InitialisationArguments - the one-time setup handed to a new instance
//
// passed by the creation flow immediately after deployment, never
// accepted again for the same instance
type InitialisationArguments struct {
	AssetA        AssetIdentifier
	AssetB        AssetIdentifier
	StartTime     uint64 // this tranche's window open (unix seconds)
	EndTime       uint64 // this tranche's window close
	Administrator *account.Account
}

// Initialise - apply the one-time arguments to an instance
//
// second and later calls fail, the first caller wins
func (instance *InstanceRecord) Initialise(arguments InitialisationArguments) error {
	if instance.Initialised {
		return fault.AlreadyInitialised
	}
	if nil == arguments.Administrator {
		return fault.InvalidOwnerOrRegistrant
	}

	instance.AssetA = arguments.AssetA
	instance.AssetB = arguments.AssetB
	instance.StartTime = arguments.StartTime
	instance.EndTime = arguments.EndTime
	instance.Administrator = arguments.Administrator
	instance.Initialised = true
	return nil
}

// Pack - pack an InstanceRecord for instance storage
//
// daemon internal so there is no signature, layout is
// Varint64(tag) followed by fields in order as struct above
func (instance *InstanceRecord) Pack() (Packed, error) {
	if nil == instance.Administrator {
		return nil, fault.InvalidOwnerOrRegistrant
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(InstanceRecordTag))
	message = appendBytes(message, instance.TemplateId.Bytes())
	message = appendBytes(message, instance.AssetA[:])
	message = appendBytes(message, instance.AssetB[:])
	message = appendUint64(message, instance.StartTime)
	message = appendUint64(message, instance.EndTime)
	message = appendAccount(message, instance.Administrator)
	message = appendBool(message, instance.Initialised)
	return message, nil
}

// UnpackInstanceRecord - decode a stored instance
func UnpackInstanceRecord(record Packed) (i *InstanceRecord, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.NotOfferingPack
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n || InstanceRecordTag != TagType(recordType) {
		return nil, fault.NotOfferingPack
	}

	// template content id
	templateIdLength, templateIdOffset := util.ClippedVarint64(record[n:], 1, 8192)
	if 0 == templateIdOffset {
		return nil, fault.NotOfferingPack
	}
	n += templateIdOffset
	templateId, err := cid.Cast(record[n : n+templateIdLength])
	if nil != err {
		return nil, err
	}
	n += templateIdLength

	// asset a
	assetALength, assetAOffset := util.ClippedVarint64(record[n:], 1, 8192)
	if 0 == assetAOffset {
		return nil, fault.NotOfferingPack
	}
	n += assetAOffset
	var assetA AssetIdentifier
	err = AssetIdentifierFromBytes(&assetA, record[n:n+assetALength])
	if nil != err {
		return nil, err
	}
	n += assetALength

	// asset b
	assetBLength, assetBOffset := util.ClippedVarint64(record[n:], 1, 8192)
	if 0 == assetBOffset {
		return nil, fault.NotOfferingPack
	}
	n += assetBOffset
	var assetB AssetIdentifier
	err = AssetIdentifierFromBytes(&assetB, record[n:n+assetBLength])
	if nil != err {
		return nil, err
	}
	n += assetBLength

	// window timestamps
	startTime, startTimeLength := util.FromVarint64(record[n:])
	if 0 == startTimeLength {
		return nil, fault.NotOfferingPack
	}
	n += startTimeLength

	endTime, endTimeLength := util.FromVarint64(record[n:])
	if 0 == endTimeLength {
		return nil, fault.NotOfferingPack
	}
	n += endTimeLength

	// administrator public key
	administratorLength, administratorOffset := util.ClippedVarint64(record[n:], 1, 8192)
	if 0 == administratorOffset {
		return nil, fault.NotOfferingPack
	}
	n += administratorOffset
	administrator, err := account.AccountFromBytes(record[n : n+administratorLength])
	if nil != err {
		return nil, err
	}
	n += administratorLength

	// one-time flag
	initialised, _, err := unpackFlag(record, n)
	if nil != err {
		return nil, err
	}

	return &InstanceRecord{
		TemplateId:    templateId,
		AssetA:        assetA,
		AssetB:        assetB,
		StartTime:     startTime,
		EndTime:       endTime,
		Administrator: administrator,
		Initialised:   initialised,
	}, nil
}
