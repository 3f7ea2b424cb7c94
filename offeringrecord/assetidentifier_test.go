// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/offeringrecord"
)

// test invalid asset identifiers
func TestInvalidAssetIdentifiers(t *testing.T) {

	invalid := []string{
		"",
		"4b",                         // one byte
		"4bf",                        // odd number of chars
		"db019d919cc1b169dcca15bd02", // truncated
		"db019d919cc1b169dcca15bd02fb36063f08c54fda59e97fa7dc1526126d38704dbd9d8371e7f23b80158062d065cbe617fc7dbe8e45624a72f6cdc2940c0fa",    // just one short
		"db019d919cc1b169dcca15bd02fb36063f08c54fda59e97fa7dc1526126d38704dbd9d8371e7f23b80158062d065cbe617fc7dbe8e45624a72f6cdc2940c0fa77",  // just one char over
		"db019d919cc1b169dcca15bd02fb36063f08c54fda59e97fa7dc1526126d38704dbd9d8371e7f23b80158062d065cbe617fc7dbe8e45624a72f6cdc2940c0fa778", // just one byte over

		"db019d919cc1b169dxca15bd02fb36063f08c54fda59e97fa7dc1526126d38704dbd9d8371e7f23b80158062d065cbe617fc7dbe8e45624a72f6cdc2940c0fa7", // invalid hex char x
		"db019d919cc1b169dXca15bd02fb36063f08c54fda59e97fa7dc1526126d38704dbd9d8371e7f23b80158062d065cbe617fc7dbe8e45624a72f6cdc2940c0fa7", // invalid hex char X
		"db019d919cc1b169dkca15bd02fb36063f08c54fda59e97fa7dc1526126d38704dbd9d8371e7f23b80158062d065cbe617fc7dbe8e45624a72f6cdc2940c0fa7", // invalid hex char k
		"db019d919cc1b169dKca15bd02fb36063f08c54fda59e97fa7dc1526126d38704dbd9d8371e7f23b80158062d065cbe617fc7dbe8e45624a72f6cdc2940c0fa7", // invalid hex char K
	}

	for i, textAssetId := range invalid {
		var assetId offeringrecord.AssetIdentifier
		n, err := fmt.Sscan(textAssetId, &assetId)
		if fault.NotAssetId != err {
			t.Errorf("%d: testing: %q", i, textAssetId)
			t.Errorf("%d: expected NotAssetId but got: %v", i, err)
			return
		}
		if 0 != n {
			t.Errorf("%d: testing: %q", i, textAssetId)
			t.Errorf("%d: hex scanned: %d  expected: 0", i, n)
			return
		}
	}
}

// test asset id conversion
func TestAssetIdentifierConversion(t *testing.T) {

	expectedAssetId := offeringrecord.AssetIdentifier{
		0xdb, 0x01, 0x9d, 0x91, 0x9c, 0xc1, 0xb1, 0x69,
		0xdc, 0xca, 0x15, 0xbd, 0x02, 0xfb, 0x36, 0x06,
		0x3f, 0x08, 0xc5, 0x4f, 0xda, 0x59, 0xe9, 0x7f,
		0xa7, 0xdc, 0x15, 0x26, 0x12, 0x6d, 0x38, 0x70,
		0x4d, 0xbd, 0x9d, 0x83, 0x71, 0xe7, 0xf2, 0x3b,
		0x80, 0x15, 0x80, 0x62, 0xd0, 0x65, 0xcb, 0xe6,
		0x17, 0xfc, 0x7d, 0xbe, 0x8e, 0x45, 0x62, 0x4a,
		0x72, 0xf6, 0xcd, 0xc2, 0x94, 0x0c, 0x0f, 0xa7,
	}

	textAssetId := "db019d919cc1b169dcca15bd02fb36063f08c54fda59e97fa7dc1526126d38704dbd9d8371e7f23b80158062d065cbe617fc7dbe8e45624a72f6cdc2940c0fa7"

	if expectedAssetId.String() != textAssetId {
		t.Errorf("asset id(%%s): %s  expected: %s", expectedAssetId, textAssetId)
	}

	if fmt.Sprintf("%v", expectedAssetId) != textAssetId {
		t.Errorf("asset id(%%v): %v  expected: %s", expectedAssetId, textAssetId)
	}

	if fmt.Sprintf("%#v", expectedAssetId) != "<asset:"+textAssetId+">" {
		t.Errorf("asset id(%%#v): %#v  expected: %s", expectedAssetId, "<asset:"+textAssetId+">")
	}

	if expectedAssetId.IsZero() {
		t.Error("asset id is zero")
	}
	if !new(offeringrecord.AssetIdentifier).IsZero() {
		t.Error("fresh asset id is not zero")
	}

	var assetId offeringrecord.AssetIdentifier
	n, err := fmt.Sscan(textAssetId, &assetId)
	if nil != err {
		t.Fatalf("hex to asset id error: %s", err)
	}
	if 1 != n {
		t.Fatalf("hex to asset id scanned: %d  expected: 1", n)
	}

	if assetId != expectedAssetId {
		t.Errorf("asset id: %#v  expected: %#v", assetId, expectedAssetId)
	}

	// check JSON conversion
	expectedJSON := `{"AssetId":"` + textAssetId + `"}`

	item := struct {
		AssetId offeringrecord.AssetIdentifier
	}{
		assetId,
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
		AssetId offeringrecord.AssetIdentifier
	}
	err = json.Unmarshal([]byte(expectedJSON), &newItem)
	if nil != err {
		t.Fatalf("unmarshal json error: %s", err)
	}

	if newItem.AssetId != expectedAssetId {
		t.Errorf("asset id: %#v  expected: %#v", newItem.AssetId, expectedAssetId)
	}
}

// test asset id bytes
func TestAssetIdentifierFromBytes(t *testing.T) {

	expectedAssetId := offeringrecord.AssetIdentifier{
		0xdb, 0x01, 0x9d, 0x91, 0x9c, 0xc1, 0xb1, 0x69,
		0xdc, 0xca, 0x15, 0xbd, 0x02, 0xfb, 0x36, 0x06,
		0x3f, 0x08, 0xc5, 0x4f, 0xda, 0x59, 0xe9, 0x7f,
		0xa7, 0xdc, 0x15, 0x26, 0x12, 0x6d, 0x38, 0x70,
		0x4d, 0xbd, 0x9d, 0x83, 0x71, 0xe7, 0xf2, 0x3b,
		0x80, 0x15, 0x80, 0x62, 0xd0, 0x65, 0xcb, 0xe6,
		0x17, 0xfc, 0x7d, 0xbe, 0x8e, 0x45, 0x62, 0x4a,
		0x72, 0xf6, 0xcd, 0xc2, 0x94, 0x0c, 0x0f, 0xa7,
	}

	var assetId offeringrecord.AssetIdentifier
	err := offeringrecord.AssetIdentifierFromBytes(&assetId, expectedAssetId[:])
	if nil != err {
		t.Fatalf("AssetIdentifierFromBytes error: %s", err)
	}

	if assetId != expectedAssetId {
		t.Fatalf("asset id expected: %v  actual: %v", expectedAssetId, assetId)
	}

	err = offeringrecord.AssetIdentifierFromBytes(&assetId, expectedAssetId[1:])
	if fault.NotAssetId != err {
		t.Fatalf("AssetIdentifierFromBytes error: %s", err)
	}
}

// the id is the SHA3-512 of its source bytes
func TestNewAssetIdentifier(t *testing.T) {

	one := offeringrecord.NewAssetIdentifier([]byte("first"))
	two := offeringrecord.NewAssetIdentifier([]byte("second"))

	if one.IsZero() || two.IsZero() {
		t.Fatal("zero asset id")
	}
	if one == two {
		t.Error("distinct sources produced the same asset id")
	}
	if one != offeringrecord.NewAssetIdentifier([]byte("first")) {
		t.Error("same source produced a different asset id")
	}
}
