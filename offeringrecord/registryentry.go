// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord

import (
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/util"
)

// Pack - pack an OfferingRecord for registry storage
//
// daemon internal so there is no signature, layout is
// Varint64(tag) followed by fields in order as struct above
//
// a record with neither tranche present is unrepresentable, the
// creation flow refuses such a request long before this point and
// this guard keeps the registry consistent even if a caller skips
// that flow
func (offering *OfferingRecord) Pack() (Packed, error) {
	if offering.PublicInstance.IsZero() && offering.PrivateInstance.IsZero() {
		return nil, fault.NoTrancheSelected
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(OfferingRecordTag))
	message = appendBytes(message, offering.PublicInstance[:])
	message = appendBytes(message, offering.PrivateInstance[:])
	message = appendUint64(message, offering.CreatedAt)
	return message, nil
}

// UnpackOfferingRecord - decode a stored registry entry
func UnpackOfferingRecord(record Packed) (o *OfferingRecord, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.NotOfferingPack
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n || OfferingRecordTag != TagType(recordType) {
		return nil, fault.NotOfferingPack
	}

	// public instance
	publicLength, publicOffset := util.ClippedVarint64(record[n:], 1, 8192)
	if 0 == publicOffset {
		return nil, fault.NotOfferingPack
	}
	n += publicOffset
	var publicInstance InstanceIdentifier
	err := InstanceIdentifierFromBytes(&publicInstance, record[n:n+publicLength])
	if nil != err {
		return nil, err
	}
	n += publicLength

	// private instance
	privateLength, privateOffset := util.ClippedVarint64(record[n:], 1, 8192)
	if 0 == privateOffset {
		return nil, fault.NotOfferingPack
	}
	n += privateOffset
	var privateInstance InstanceIdentifier
	err = InstanceIdentifierFromBytes(&privateInstance, record[n:n+privateLength])
	if nil != err {
		return nil, err
	}
	n += privateLength

	// creation timestamp
	createdAt, createdAtLength := util.FromVarint64(record[n:])
	if 0 == createdAtLength {
		return nil, fault.NotOfferingPack
	}

	return &OfferingRecord{
		PublicInstance:  publicInstance,
		PrivateInstance: privateInstance,
		CreatedAt:       createdAt,
	}, nil
}
