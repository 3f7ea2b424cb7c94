// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord_test

import (
	"reflect"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/offeringrecord"
)

// test the packing/unpacking of an offering creation request
//
// ensures that pack->unpack returns the same original value
func TestPackOfferingParameters(t *testing.T) {

	proposer := makeKeyPair(t)
	administrator := makeKeyPair(t)
	proposerAccount := makeAccount(proposer.publicKey)

	r := offeringrecord.OfferingParameters{
		AssetA:           assetIdentifier(0x11),
		AssetB:           assetIdentifier(0x22),
		StartTime:        1700000000,
		EndTime:          1700000000 + 3600,
		PrivateStartTime: 1700000000 + 600,
		PrivateEndTime:   1700000000 + 1800,
		Administrator:    makeAccount(administrator.publicKey),
		IsPublic:         true,
		IsPrivate:        true,
		Proposer:         proposerAccount,
	}

	// pack without signature to obtain the signing message
	message, err := r.Pack(proposerAccount)
	if fault.InvalidSignature != err {
		t.Fatalf("pack error: %s  expected: %s", err, fault.InvalidSignature)
	}

	r.Signature = ed25519.Sign(proposer.privateKey, message)

	// test the packer
	packed, err := r.Pack(proposerAccount)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// check the record type
	if offeringrecord.OfferingParametersTag != packed.Type() {
		t.Errorf("pack record type: %x  expected: %x", packed.Type(), offeringrecord.OfferingParametersTag)
	}

	// check test-network detection
	if _, _, err := packed.Unpack(false); fault.WrongNetworkForPublicKey != err {
		t.Errorf("expected: %s  but got: %s", fault.WrongNetworkForPublicKey, err)
	}

	// test the unpacker
	unpacked, n, err := packed.Unpack(true)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Errorf("did not unpack all data: only used: %d of: %d bytes", n, len(packed))
	}

	parameters, ok := unpacked.(*offeringrecord.OfferingParameters)
	if !ok {
		t.Fatalf("did not unpack to OfferingParameters")
	}

	// check that structure is preserved through Pack/Unpack
	// note parameters is a pointer here
	if !reflect.DeepEqual(r, *parameters) {
		t.Fatalf("different, original: %v  recovered: %v", r, *parameters)
	}
}

// a single tranche request must survive the flag encoding
func TestPackOfferingParametersPrivateOnly(t *testing.T) {

	proposer := makeKeyPair(t)
	administrator := makeKeyPair(t)
	proposerAccount := makeAccount(proposer.publicKey)

	r := offeringrecord.OfferingParameters{
		AssetA:           assetIdentifier(0x33),
		AssetB:           assetIdentifier(0x44),
		PrivateStartTime: 1700000000,
		PrivateEndTime:   1700000000 + 7200,
		Administrator:    makeAccount(administrator.publicKey),
		IsPublic:         false,
		IsPrivate:        true,
		Proposer:         proposerAccount,
	}

	message, err := r.Pack(proposerAccount)
	if fault.InvalidSignature != err {
		t.Fatalf("pack error: %s  expected: %s", err, fault.InvalidSignature)
	}
	r.Signature = ed25519.Sign(proposer.privateKey, message)

	packed, err := r.Pack(proposerAccount)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	unpacked, _, err := packed.Unpack(true)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}

	parameters, ok := unpacked.(*offeringrecord.OfferingParameters)
	if !ok {
		t.Fatalf("did not unpack to OfferingParameters")
	}

	if parameters.IsPublic || !parameters.IsPrivate {
		t.Errorf("flags: public: %v private: %v  expected: false true", parameters.IsPublic, parameters.IsPrivate)
	}
}

// test the individual pack error conditions
func TestOfferingParametersPackErrors(t *testing.T) {

	proposer := makeKeyPair(t)
	administrator := makeKeyPair(t)
	proposerAccount := makeAccount(proposer.publicKey)

	base := offeringrecord.OfferingParameters{
		AssetA:        assetIdentifier(0x55),
		AssetB:        assetIdentifier(0x66),
		StartTime:     1700000000,
		EndTime:       1700000000 + 3600,
		Administrator: makeAccount(administrator.publicKey),
		IsPublic:      true,
		Proposer:      proposerAccount,
	}

	r := base
	r.Administrator = nil
	if _, err := r.Pack(proposerAccount); fault.InvalidOwnerOrRegistrant != err {
		t.Errorf("nil administrator: %s  expected: %s", err, fault.InvalidOwnerOrRegistrant)
	}

	r = base
	r.Proposer = nil
	if _, err := r.Pack(proposerAccount); fault.InvalidOwnerOrRegistrant != err {
		t.Errorf("nil proposer: %s  expected: %s", err, fault.InvalidOwnerOrRegistrant)
	}

	r = base
	if _, err := r.Pack(nil); fault.InvalidOwnerOrRegistrant != err {
		t.Errorf("nil address: %s  expected: %s", err, fault.InvalidOwnerOrRegistrant)
	}
}

// helper to make a distinctive asset identifier
func assetIdentifier(fill byte) offeringrecord.AssetIdentifier {
	var assetId offeringrecord.AssetIdentifier
	for i := range assetId {
		assetId[i] = fill
	}
	return assetId
}
