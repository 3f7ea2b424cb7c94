// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord

import (
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/util"
)

// Pack - pack AssetData
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (assetData *AssetData) Pack(address *account.Account) (Packed, error) {
	if len(assetData.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if nil == assetData.Registrant || nil == address {
		return nil, fault.InvalidOwnerOrRegistrant
	}

	if utf8.RuneCountInString(assetData.Name) < minNameLength {
		return nil, fault.AssetNameTooShort
	}
	if utf8.RuneCountInString(assetData.Name) > maxNameLength {
		return nil, fault.AssetNameTooLong
	}

	if utf8.RuneCountInString(assetData.Metadata) > maxMetadataLength {
		return nil, fault.AssetMetadataTooLong
	}

	// check that metadata contains a valid map:
	// i.e.  key1 <NUL> value1 <NUL> key2 <NUL> value2 <NUL> … keyN <NUL> valueN
	// Notes: 1: no NUL after last value
	//        2: no empty key or value is allowed
	if 0 != len(assetData.Metadata) {
		splitMetadata := strings.Split(assetData.Metadata, "\u0000")
		if 1 == len(splitMetadata)%2 {
			return nil, fault.MetadataIsNotMap
		}
		for _, v := range splitMetadata {
			if 0 == len(v) {
				return nil, fault.MetadataIsNotMap
			}
		}
	}

	if 0 == assetData.Supply {
		return nil, fault.InvalidSupply
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(AssetDataTag))
	message = appendString(message, assetData.Name)
	message = appendString(message, assetData.Metadata)
	message = appendUint64(message, assetData.Supply)
	message = appendAccount(message, assetData.Registrant)

	// signature
	err := address.CheckSignature(message, assetData.Signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, assetData.Signature), nil
}

// Pack - pack OfferingParameters
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// window and tranche checks belong to the creation flow, packing only
// guards the fields needed to build a verifiable message
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (parameters *OfferingParameters) Pack(address *account.Account) (Packed, error) {
	if len(parameters.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if nil == parameters.Administrator || nil == parameters.Proposer || nil == address {
		return nil, fault.InvalidOwnerOrRegistrant
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(OfferingParametersTag))
	message = appendBytes(message, parameters.AssetA[:])
	message = appendBytes(message, parameters.AssetB[:])
	message = appendUint64(message, parameters.StartTime)
	message = appendUint64(message, parameters.EndTime)
	message = appendUint64(message, parameters.PrivateStartTime)
	message = appendUint64(message, parameters.PrivateEndTime)
	message = appendAccount(message, parameters.Administrator)
	message = appendBool(message, parameters.IsPublic)
	message = appendBool(message, parameters.IsPrivate)
	message = appendAccount(message, parameters.Proposer)

	// signature
	err := address.CheckSignature(message, parameters.Signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, parameters.Signature), nil
}

// Pack - pack RecoveryParameters
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (recovery *RecoveryParameters) Pack(address *account.Account) (Packed, error) {
	if len(recovery.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if nil == recovery.Claimant || nil == address {
		return nil, fault.InvalidOwnerOrRegistrant
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(RecoveryParametersTag))
	message = appendBytes(message, recovery.AssetId[:])
	message = appendAccount(message, recovery.Claimant)

	// signature
	err := address.CheckSignature(message, recovery.Signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, recovery.Signature), nil
}

// Pack - pack TransferParameters
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (transfer *TransferParameters) Pack(address *account.Account) (Packed, error) {
	if len(transfer.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if nil == transfer.Successor || nil == transfer.Holder || nil == address {
		return nil, fault.InvalidOwnerOrRegistrant
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(TransferParametersTag))
	message = appendAccount(message, transfer.Successor)
	message = appendAccount(message, transfer.Holder)

	// signature
	err := address.CheckSignature(message, transfer.Signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, transfer.Signature), nil
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, address *account.Account) Packed {
	data := address.Bytes()
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}

// append a flag as a single byte, one for true
func appendBool(buffer Packed, flag bool) Packed {
	b := byte(0)
	if flag {
		b = 1
	}
	return append(buffer, b)
}
