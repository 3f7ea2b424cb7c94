// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord

import (
	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/util"
)

// Unpack - turn a byte slice into a record
//
// Note: the unpacker will access the underlying array of the packed
//       record so p[x:y].Unpack() can read past p[y] and could
//       continue up to cap(p), i.e. p[x:cap(p)].Unpack() performs the
//       same operation, elements before p[x] cannot be accessed
//       see: https://blog.golang.org/go-slices-usage-and-internals
//
// must cast result to correct type
//
// e.g.
//   asset, ok := result.(*offeringrecord.AssetData)
// or:
//   switch record := result.(type) {
//   case *offeringrecord.AssetData:
//
// only request records unpack here, registry entries and instances
// have their own unpackers as they are never client signed
func (record Packed) Unpack(testnet bool) (r Record, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.NotOfferingPack
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.NotOfferingPack
	}

unpack_switch:
	switch TagType(recordType) {

	case AssetDataTag:

		// name
		nameLength, nameOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == nameOffset {
			break unpack_switch
		}
		name := make([]byte, nameLength)
		n += nameOffset
		copy(name, record[n:n+nameLength])
		n += nameLength

		// metadata (can be zero length)
		metadataLength, metadataOffset := util.ClippedVarint64(record[n:], 0, 8192) // Note: zero is valid here
		if 0 == metadataOffset {
			break unpack_switch
		}
		metadata := make([]byte, metadataLength)
		n += metadataOffset
		copy(metadata, record[n:n+metadataLength])
		n += metadataLength

		// initial supply
		supply, supplyLength := util.FromVarint64(record[n:])
		if 0 == supplyLength {
			break unpack_switch
		}
		n += supplyLength

		// registrant public key
		registrantLength, registrantOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == registrantOffset {
			break unpack_switch
		}
		n += registrantOffset
		registrant, err := account.AccountFromBytes(record[n : n+registrantLength])
		if nil != err {
			return nil, 0, err
		}
		if registrant.IsTesting() != testnet {
			return nil, 0, fault.WrongNetworkForPublicKey
		}
		n += registrantLength

		// signature is remainder of record
		signatureLength, signatureOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == signatureOffset {
			break unpack_switch
		}
		signature := make(account.Signature, signatureLength)
		n += signatureOffset
		copy(signature, record[n:n+signatureLength])
		n += signatureLength

		r := &AssetData{
			Name:       string(name),
			Metadata:   string(metadata),
			Supply:     supply,
			Registrant: registrant,
			Signature:  signature,
		}
		return r, n, nil

	case OfferingParametersTag:

		// asset a
		assetALength, assetAOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == assetAOffset {
			break unpack_switch
		}
		n += assetAOffset
		var assetA AssetIdentifier
		err := AssetIdentifierFromBytes(&assetA, record[n:n+assetALength])
		if nil != err {
			return nil, 0, err
		}
		n += assetALength

		// asset b
		assetBLength, assetBOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == assetBOffset {
			break unpack_switch
		}
		n += assetBOffset
		var assetB AssetIdentifier
		err = AssetIdentifierFromBytes(&assetB, record[n:n+assetBLength])
		if nil != err {
			return nil, 0, err
		}
		n += assetBLength

		// window timestamps
		startTime, startTimeLength := util.FromVarint64(record[n:])
		if 0 == startTimeLength {
			break unpack_switch
		}
		n += startTimeLength

		endTime, endTimeLength := util.FromVarint64(record[n:])
		if 0 == endTimeLength {
			break unpack_switch
		}
		n += endTimeLength

		privateStartTime, privateStartTimeLength := util.FromVarint64(record[n:])
		if 0 == privateStartTimeLength {
			break unpack_switch
		}
		n += privateStartTimeLength

		privateEndTime, privateEndTimeLength := util.FromVarint64(record[n:])
		if 0 == privateEndTimeLength {
			break unpack_switch
		}
		n += privateEndTimeLength

		// administrator public key
		administratorLength, administratorOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == administratorOffset {
			break unpack_switch
		}
		n += administratorOffset
		administrator, err := account.AccountFromBytes(record[n : n+administratorLength])
		if nil != err {
			return nil, 0, err
		}
		if administrator.IsTesting() != testnet {
			return nil, 0, fault.WrongNetworkForPublicKey
		}
		n += administratorLength

		// tranche flags
		isPublic, n, err := unpackFlag(record, n)
		if nil != err {
			return nil, 0, err
		}
		isPrivate, n, err := unpackFlag(record, n)
		if nil != err {
			return nil, 0, err
		}

		// proposer public key
		proposerLength, proposerOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == proposerOffset {
			break unpack_switch
		}
		n += proposerOffset
		proposer, err := account.AccountFromBytes(record[n : n+proposerLength])
		if nil != err {
			return nil, 0, err
		}
		if proposer.IsTesting() != testnet {
			return nil, 0, fault.WrongNetworkForPublicKey
		}
		n += proposerLength

		// signature is remainder of record
		signatureLength, signatureOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == signatureOffset {
			break unpack_switch
		}
		signature := make(account.Signature, signatureLength)
		n += signatureOffset
		copy(signature, record[n:n+signatureLength])
		n += signatureLength

		r := &OfferingParameters{
			AssetA:           assetA,
			AssetB:           assetB,
			StartTime:        startTime,
			EndTime:          endTime,
			PrivateStartTime: privateStartTime,
			PrivateEndTime:   privateEndTime,
			Administrator:    administrator,
			IsPublic:         isPublic,
			IsPrivate:        isPrivate,
			Proposer:         proposer,
			Signature:        signature,
		}
		return r, n, nil

	case RecoveryParametersTag:

		// asset id
		assetIdLength, assetIdOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == assetIdOffset {
			break unpack_switch
		}
		n += assetIdOffset
		var assetId AssetIdentifier
		err := AssetIdentifierFromBytes(&assetId, record[n:n+assetIdLength])
		if nil != err {
			return nil, 0, err
		}
		n += assetIdLength

		// claimant public key
		claimantLength, claimantOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == claimantOffset {
			break unpack_switch
		}
		n += claimantOffset
		claimant, err := account.AccountFromBytes(record[n : n+claimantLength])
		if nil != err {
			return nil, 0, err
		}
		if claimant.IsTesting() != testnet {
			return nil, 0, fault.WrongNetworkForPublicKey
		}
		n += claimantLength

		// signature is remainder of record
		signatureLength, signatureOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == signatureOffset {
			break unpack_switch
		}
		signature := make(account.Signature, signatureLength)
		n += signatureOffset
		copy(signature, record[n:n+signatureLength])
		n += signatureLength

		r := &RecoveryParameters{
			AssetId:   assetId,
			Claimant:  claimant,
			Signature: signature,
		}
		return r, n, nil

	case TransferParametersTag:

		// successor public key
		successorLength, successorOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == successorOffset {
			break unpack_switch
		}
		n += successorOffset
		successor, err := account.AccountFromBytes(record[n : n+successorLength])
		if nil != err {
			return nil, 0, err
		}
		if successor.IsTesting() != testnet {
			return nil, 0, fault.WrongNetworkForPublicKey
		}
		n += successorLength

		// holder public key
		holderLength, holderOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == holderOffset {
			break unpack_switch
		}
		n += holderOffset
		holder, err := account.AccountFromBytes(record[n : n+holderLength])
		if nil != err {
			return nil, 0, err
		}
		if holder.IsTesting() != testnet {
			return nil, 0, fault.WrongNetworkForPublicKey
		}
		n += holderLength

		// signature is remainder of record
		signatureLength, signatureOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == signatureOffset {
			break unpack_switch
		}
		signature := make(account.Signature, signatureLength)
		n += signatureOffset
		copy(signature, record[n:n+signatureLength])
		n += signatureLength

		r := &TransferParameters{
			Successor: successor,
			Holder:    holder,
			Signature: signature,
		}
		return r, n, nil

	default: // also NullTag and the daemon internal tags
	}
	return nil, 0, fault.NotOfferingPack
}

// single byte flag, zero or one
func unpackFlag(record []byte, n int) (bool, int, error) {
	switch record[n] {
	case 0:
		return false, n + 1, nil
	case 1:
		return true, n + 1, nil
	default:
		return false, 0, fault.NotOfferingPack
	}
}
