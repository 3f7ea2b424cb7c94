// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord_test

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/offeringrecord"
)

// test invalid instance identifiers
func TestInvalidInstanceIdentifiers(t *testing.T) {

	invalid := []string{
		"",
		"93",
		"933",
		"9339426aa1b61bb41c3954d574",
		"9339426aa1b61bb41c3954d5742aec97eddc4ff76a84c6c9c9943566415c57c1be190deae2317eff6ddf5ad7152f2e3248e4e46f527125ae0bf0d1b1d032a31",    // just one short
		"9339426aa1b61bb41c3954d5742aec97eddc4ff76a84c6c9c9943566415c57c1be190deae2317eff6ddf5ad7152f2e3248e4e46f527125ae0bf0d1b1d032a31f7",  // just one char over
		"9339426aa1b61bb41c3954d5742aec97eddc4ff76a84c6c9c9943566415c57c1be190deae2317eff6ddf5ad7152f2e3248e4e46f527125ae0bf0d1b1d032a31f77", // just one byte over

		"9339426aa1b61bb4zc3954d5742aec97eddc4ff76a84c6c9c9943566415c57c1be190deae2317eff6ddf5ad7152f2e3248e4e46f527125ae0bf0d1b1d032a31f", // invalid hex char z
		"9339426aa1b61bb4Zc3954d5742aec97eddc4ff76a84c6c9c9943566415c57c1be190deae2317eff6ddf5ad7152f2e3248e4e46f527125ae0bf0d1b1d032a31f", // invalid hex char Z
	}

	for i, textInstanceId := range invalid {
		var instanceId offeringrecord.InstanceIdentifier
		n, err := fmt.Sscan(textInstanceId, &instanceId)
		if fault.NotInstanceId != err {
			t.Errorf("%d: testing: %q", i, textInstanceId)
			t.Errorf("%d: expected NotInstanceId but got: %v", i, err)
			return
		}
		if 0 != n {
			t.Errorf("%d: testing: %q", i, textInstanceId)
			t.Errorf("%d: hex scanned: %d  expected: 0", i, n)
			return
		}
	}
}

// test instance id conversion
func TestInstanceIdentifierConversion(t *testing.T) {

	expectedInstanceId := offeringrecord.InstanceIdentifier{
		0x93, 0x39, 0x42, 0x6a, 0xa1, 0xb6, 0x1b, 0xb4,
		0x1c, 0x39, 0x54, 0xd5, 0x74, 0x2a, 0xec, 0x97,
		0xed, 0xdc, 0x4f, 0xf7, 0x6a, 0x84, 0xc6, 0xc9,
		0xc9, 0x94, 0x35, 0x66, 0x41, 0x5c, 0x57, 0xc1,
		0xbe, 0x19, 0x0d, 0xea, 0xe2, 0x31, 0x7e, 0xff,
		0x6d, 0xdf, 0x5a, 0xd7, 0x15, 0x2f, 0x2e, 0x32,
		0x48, 0xe4, 0xe4, 0x6f, 0x52, 0x71, 0x25, 0xae,
		0x0b, 0xf0, 0xd1, 0xb1, 0xd0, 0x32, 0xa3, 0x1f,
	}

	textInstanceId := "9339426aa1b61bb41c3954d5742aec97eddc4ff76a84c6c9c9943566415c57c1be190deae2317eff6ddf5ad7152f2e3248e4e46f527125ae0bf0d1b1d032a31f"

	if expectedInstanceId.String() != textInstanceId {
		t.Errorf("instance id(%%s): %s  expected: %s", expectedInstanceId, textInstanceId)
	}

	if fmt.Sprintf("%#v", expectedInstanceId) != "<instance:"+textInstanceId+">" {
		t.Errorf("instance id(%%#v): %#v  expected: %s", expectedInstanceId, "<instance:"+textInstanceId+">")
	}

	var instanceId offeringrecord.InstanceIdentifier
	n, err := fmt.Sscan(textInstanceId, &instanceId)
	if nil != err {
		t.Fatalf("hex to instance id error: %s", err)
	}
	if 1 != n {
		t.Fatalf("hex to instance id scanned: %d  expected: 1", n)
	}

	if instanceId != expectedInstanceId {
		t.Errorf("instance id: %#v  expected: %#v", instanceId, expectedInstanceId)
	}

	// check JSON conversion
	expectedJSON := `{"InstanceId":"` + textInstanceId + `"}`

	item := struct {
		InstanceId offeringrecord.InstanceIdentifier
	}{
		instanceId,
	}
	convertedJSON, err := json.Marshal(item)
	if nil != err {
		t.Fatalf("marshal json error: %s", err)
	}
	if expectedJSON != string(convertedJSON) {
		t.Errorf("JSON converted: %q", convertedJSON)
		t.Errorf("     expected:  %q", expectedJSON)
	}

	// test json unmarshal
	var newItem struct {
		InstanceId offeringrecord.InstanceIdentifier
	}
	err = json.Unmarshal([]byte(expectedJSON), &newItem)
	if nil != err {
		t.Fatalf("unmarshal json error: %s", err)
	}

	if newItem.InstanceId != expectedInstanceId {
		t.Errorf("instance id: %#v  expected: %#v", newItem.InstanceId, expectedInstanceId)
	}

	// byte slice conversion
	var fromBytes offeringrecord.InstanceIdentifier
	err = offeringrecord.InstanceIdentifierFromBytes(&fromBytes, expectedInstanceId[:])
	if nil != err {
		t.Fatalf("InstanceIdentifierFromBytes error: %s", err)
	}
	if fromBytes != expectedInstanceId {
		t.Fatalf("instance id expected: %v  actual: %v", expectedInstanceId, fromBytes)
	}
	err = offeringrecord.InstanceIdentifierFromBytes(&fromBytes, expectedInstanceId[1:])
	if fault.NotInstanceId != err {
		t.Fatalf("InstanceIdentifierFromBytes error: %s", err)
	}
}

// test the packed salt layout
func TestSaltPack(t *testing.T) {

	salt := offeringrecord.Salt{
		AssetA:    assetIdentifier(0x1a),
		AssetB:    assetIdentifier(0x2b),
		StartTime: 1700000000,
	}

	packed := salt.Pack()
	if 2*offeringrecord.AssetIdentifierLength+8 != len(packed) {
		t.Fatalf("packed salt length: %d  expected: %d", len(packed), 2*offeringrecord.AssetIdentifierLength+8)
	}

	if !bytes.Equal(packed[:64], salt.AssetA[:]) {
		t.Error("asset a bytes differ")
	}
	if !bytes.Equal(packed[64:128], salt.AssetB[:]) {
		t.Error("asset b bytes differ")
	}
	if salt.StartTime != binary.BigEndian.Uint64(packed[128:]) {
		t.Errorf("start time: %d  expected: %d", binary.BigEndian.Uint64(packed[128:]), salt.StartTime)
	}
}

// the identifier is computable from the creation arguments alone
func TestNewInstanceIdentifier(t *testing.T) {

	templateId := makeTemplateId(t, []byte("public tranche program"))
	otherTemplateId := makeTemplateId(t, []byte("private tranche program"))

	salt := offeringrecord.Salt{
		AssetA:    assetIdentifier(0x3c),
		AssetB:    assetIdentifier(0x4d),
		StartTime: 1700000000,
	}

	instanceId := offeringrecord.NewInstanceIdentifier(templateId, salt)
	if instanceId.IsZero() {
		t.Fatal("instance id is zero")
	}

	// deterministic
	if instanceId != offeringrecord.NewInstanceIdentifier(templateId, salt) {
		t.Error("same arguments produced a different instance id")
	}

	// a different template moves the instance
	if instanceId == offeringrecord.NewInstanceIdentifier(otherTemplateId, salt) {
		t.Error("different template produced the same instance id")
	}

	// any salt component moves the instance
	changed := salt
	changed.AssetA = assetIdentifier(0x5e)
	if instanceId == offeringrecord.NewInstanceIdentifier(templateId, changed) {
		t.Error("different asset a produced the same instance id")
	}

	changed = salt
	changed.AssetB = assetIdentifier(0x6f)
	if instanceId == offeringrecord.NewInstanceIdentifier(templateId, changed) {
		t.Error("different asset b produced the same instance id")
	}

	changed = salt
	changed.StartTime += 1
	if instanceId == offeringrecord.NewInstanceIdentifier(templateId, changed) {
		t.Error("different start time produced the same instance id")
	}

	// swapped assets are a different offering
	swapped := offeringrecord.Salt{
		AssetA:    salt.AssetB,
		AssetB:    salt.AssetA,
		StartTime: salt.StartTime,
	}
	if instanceId == offeringrecord.NewInstanceIdentifier(templateId, swapped) {
		t.Error("swapped assets produced the same instance id")
	}
}
