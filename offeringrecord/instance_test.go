// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord_test

import (
	"reflect"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/offeringrecord"
)

// helper to make a content id the way the template store does
func makeTemplateId(t *testing.T, data []byte) cid.Cid {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if nil != err {
		t.Fatalf("multihash error: %s", err)
	}
	return cid.NewCidV1(cid.Raw, sum)
}

// initialisation is applied exactly once
func TestInstanceInitialise(t *testing.T) {

	administrator := makeKeyPair(t)

	instance := offeringrecord.InstanceRecord{
		TemplateId: makeTemplateId(t, []byte("public tranche program")),
	}

	arguments := offeringrecord.InitialisationArguments{
		AssetA:        assetIdentifier(0xa1),
		AssetB:        assetIdentifier(0xb2),
		StartTime:     1700000000,
		EndTime:       1700000000 + 3600,
		Administrator: makeAccount(administrator.publicKey),
	}

	err := instance.Initialise(arguments)
	if nil != err {
		t.Fatalf("initialise error: %s", err)
	}
	if !instance.Initialised {
		t.Fatal("instance not marked initialised")
	}
	if arguments.AssetA != instance.AssetA || arguments.AssetB != instance.AssetB {
		t.Errorf("assets: %v %v  expected: %v %v", instance.AssetA, instance.AssetB, arguments.AssetA, arguments.AssetB)
	}

	// the first caller wins
	second := arguments
	second.StartTime += 100
	if err := instance.Initialise(second); fault.AlreadyInitialised != err {
		t.Errorf("second initialise error: %s  expected: %s", err, fault.AlreadyInitialised)
	}
	if arguments.StartTime != instance.StartTime {
		t.Errorf("start time: %d  expected: %d", instance.StartTime, arguments.StartTime)
	}
}

// an administrator is required
func TestInstanceInitialiseNoAdministrator(t *testing.T) {

	instance := offeringrecord.InstanceRecord{
		TemplateId: makeTemplateId(t, []byte("private tranche program")),
	}

	arguments := offeringrecord.InitialisationArguments{
		AssetA:    assetIdentifier(0xc3),
		AssetB:    assetIdentifier(0xd4),
		StartTime: 1700000000,
		EndTime:   1700000000 + 3600,
	}

	if err := instance.Initialise(arguments); fault.InvalidOwnerOrRegistrant != err {
		t.Errorf("initialise error: %s  expected: %s", err, fault.InvalidOwnerOrRegistrant)
	}
	if instance.Initialised {
		t.Error("instance marked initialised")
	}
}

// test the packing/unpacking of an instance record
//
// ensures that pack->unpack returns the same original value
func TestPackInstanceRecord(t *testing.T) {

	administrator := makeKeyPair(t)

	r := offeringrecord.InstanceRecord{
		TemplateId:    makeTemplateId(t, []byte("public tranche program")),
		AssetA:        assetIdentifier(0xe5),
		AssetB:        assetIdentifier(0xf6),
		StartTime:     1700000000,
		EndTime:       1700000000 + 3600,
		Administrator: makeAccount(administrator.publicKey),
		Initialised:   true,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// check the record type
	if offeringrecord.InstanceRecordTag != packed.Type() {
		t.Errorf("pack record type: %x  expected: %x", packed.Type(), offeringrecord.InstanceRecordTag)
	}

	unpacked, err := offeringrecord.UnpackInstanceRecord(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	// check that structure is preserved through Pack/Unpack
	if !reflect.DeepEqual(r, *unpacked) {
		t.Fatalf("different, original: %v  recovered: %v", r, *unpacked)
	}
}

// an instance without an administrator cannot be stored
func TestPackInstanceRecordNoAdministrator(t *testing.T) {

	r := offeringrecord.InstanceRecord{
		TemplateId: makeTemplateId(t, []byte("public tranche program")),
	}

	if _, err := r.Pack(); fault.InvalidOwnerOrRegistrant != err {
		t.Errorf("pack error: %s  expected: %s", err, fault.InvalidOwnerOrRegistrant)
	}
}

// damaged storage must not unpack
func TestUnpackInstanceRecordErrors(t *testing.T) {

	administrator := makeKeyPair(t)

	r := offeringrecord.InstanceRecord{
		TemplateId:    makeTemplateId(t, []byte("public tranche program")),
		AssetA:        assetIdentifier(0x07),
		AssetB:        assetIdentifier(0x08),
		StartTime:     1700000000,
		EndTime:       1700000000 + 3600,
		Administrator: makeAccount(administrator.publicKey),
		Initialised:   true,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// truncation at every point must fail cleanly
	for n := len(packed) - 1; n >= 0; n -= 1 {
		if _, err := offeringrecord.UnpackInstanceRecord(packed[:n:n]); nil == err {
			t.Errorf("unpack of %d byte truncation did not fail", n)
		}
	}

	// a registry entry is not an instance
	entry := offeringrecord.OfferingRecord{
		PublicInstance: instanceIdentifier(0x09),
		CreatedAt:      1700000000,
	}
	packedEntry, err := entry.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	if _, err := offeringrecord.UnpackInstanceRecord(packedEntry); fault.NotOfferingPack != err {
		t.Errorf("unpack error: %s  expected: %s", err, fault.NotOfferingPack)
	}
}
