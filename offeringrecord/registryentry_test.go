// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord_test

import (
	"reflect"
	"testing"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/offeringrecord"
)

// test the packing/unpacking of a registry entry
//
// ensures that pack->unpack returns the same original value
func TestPackOfferingRecord(t *testing.T) {

	r := offeringrecord.OfferingRecord{
		PublicInstance:  instanceIdentifier(0x10),
		PrivateInstance: instanceIdentifier(0x20),
		CreatedAt:       1700000000,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// check the record type
	if offeringrecord.OfferingRecordTag != packed.Type() {
		t.Errorf("pack record type: %x  expected: %x", packed.Type(), offeringrecord.OfferingRecordTag)
	}

	unpacked, err := offeringrecord.UnpackOfferingRecord(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	// check that structure is preserved through Pack/Unpack
	if !reflect.DeepEqual(r, *unpacked) {
		t.Fatalf("different, original: %v  recovered: %v", r, *unpacked)
	}
}

// a single tranche is stored with the absent side zero
func TestPackOfferingRecordSingleTranche(t *testing.T) {

	r := offeringrecord.OfferingRecord{
		PrivateInstance: instanceIdentifier(0x30),
		CreatedAt:       1700000000,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	unpacked, err := offeringrecord.UnpackOfferingRecord(packed)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	if !unpacked.PublicInstance.IsZero() {
		t.Errorf("public instance: %v  expected zero", unpacked.PublicInstance)
	}
	if unpacked.PrivateInstance.IsZero() {
		t.Error("private instance is zero")
	}
}

// neither tranche present is unrepresentable
func TestPackOfferingRecordNoTranche(t *testing.T) {

	r := offeringrecord.OfferingRecord{
		CreatedAt: 1700000000,
	}

	if _, err := r.Pack(); fault.NoTrancheSelected != err {
		t.Errorf("pack error: %s  expected: %s", err, fault.NoTrancheSelected)
	}
}

// damaged storage must not unpack
func TestUnpackOfferingRecordErrors(t *testing.T) {

	r := offeringrecord.OfferingRecord{
		PublicInstance: instanceIdentifier(0x40),
		CreatedAt:      1700000000,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// truncation at every point must fail cleanly
	for n := len(packed) - 1; n >= 0; n -= 1 {
		if _, err := offeringrecord.UnpackOfferingRecord(packed[:n:n]); nil == err {
			t.Errorf("unpack of %d byte truncation did not fail", n)
		}
	}

	// a different record type must be refused
	if _, err := offeringrecord.UnpackOfferingRecord(offeringrecord.Packed{0xff, 0xff}); fault.NotOfferingPack != err {
		t.Errorf("unpack error: %s  expected: %s", err, fault.NotOfferingPack)
	}
}

// helper to make a distinctive instance identifier
func instanceIdentifier(fill byte) offeringrecord.InstanceIdentifier {
	var instanceId offeringrecord.InstanceIdentifier
	for i := range instanceId {
		instanceId[i] = fill
	}
	return instanceId
}
