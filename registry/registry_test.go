// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/registry"
	"github.com/bitmark-inc/offeringd/storage"
)

// test database file
const (
	databaseFileName = "test"
	testingDirName   = "testing"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName + "-offering.leveldb")
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()

	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = registry.Initialise()
	if nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	_ = registry.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// helper to make an instance identifier pattern
func instanceIdentifier(fill byte) offeringrecord.InstanceIdentifier {
	var instanceId offeringrecord.InstanceIdentifier
	for i := range instanceId {
		instanceId[i] = fill
	}
	return instanceId
}

// helper to make an offering record
func makeOffering(fill byte, createdAt uint64) *offeringrecord.OfferingRecord {
	return &offeringrecord.OfferingRecord{
		PublicInstance:  instanceIdentifier(fill),
		PrivateInstance: instanceIdentifier(fill + 1),
		CreatedAt:       createdAt,
	}
}

// helper to append one record on its own transaction
func appendOne(t *testing.T, offering *offeringrecord.OfferingRecord) uint64 {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	index, err := registry.Append(trx, offering)
	if nil != err {
		trx.Abort()
		t.Fatalf("append error: %s", err)
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return index
}

// appends number densely from zero
func TestAppend(t *testing.T) {
	setup(t)
	defer teardown(t)

	if total := registry.Total(); 0 != total {
		t.Fatalf("total: %d  expected: 0", total)
	}

	for i := uint64(0); i < 3; i += 1 {
		index := appendOne(t, makeOffering(byte(0x10*i+1), 7000+i))
		if i != index {
			t.Fatalf("index: %d  expected: %d", index, i)
		}
	}

	if total := registry.Total(); 3 != total {
		t.Errorf("total: %d  expected: 3", total)
	}

	offering, err := registry.Record(1)
	if nil != err {
		t.Fatalf("record error: %s", err)
	}
	if instanceIdentifier(0x11) != offering.PublicInstance {
		t.Errorf("public instance: %v  expected: %v", offering.PublicInstance, instanceIdentifier(0x11))
	}
	if 7001 != offering.CreatedAt {
		t.Errorf("created at: %d  expected: 7001", offering.CreatedAt)
	}

	if _, err := registry.Record(3); fault.RecordNotFound != err {
		t.Errorf("record error: %s  expected: %s", err, fault.RecordNotFound)
	}
}

// two appends on one transaction take consecutive indexes
func TestAppendStaged(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	first, err := registry.Append(trx, makeOffering(0x31, 7100))
	if nil != err {
		trx.Abort()
		t.Fatalf("append error: %s", err)
	}
	second, err := registry.Append(trx, makeOffering(0x41, 7101))
	if nil != err {
		trx.Abort()
		t.Fatalf("append error: %s", err)
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if 0 != first || 1 != second {
		t.Errorf("indexes: %d %d  expected: 0 1", first, second)
	}
	if total := registry.Total(); 2 != total {
		t.Errorf("total: %d  expected: 2", total)
	}
}

// an aborted append leaves no hole in the numbering
func TestAppendAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	appendOne(t, makeOffering(0x51, 7200))

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	index, err := registry.Append(trx, makeOffering(0x61, 7201))
	if nil != err {
		trx.Abort()
		t.Fatalf("append error: %s", err)
	}
	trx.Abort()
	if 1 != index {
		t.Fatalf("index: %d  expected: 1", index)
	}
	if total := registry.Total(); 1 != total {
		t.Fatalf("total: %d  expected: 1", total)
	}

	// the abandoned index is taken by the next append
	if index := appendOne(t, makeOffering(0x71, 7202)); 1 != index {
		t.Errorf("index: %d  expected: 1", index)
	}
}

// a record must select at least one tranche
func TestAppendNoTranche(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trx.Abort()

	empty := &offeringrecord.OfferingRecord{CreatedAt: 7300}
	if _, err := registry.Append(trx, empty); fault.NoTrancheSelected != err {
		t.Errorf("append error: %s  expected: %s", err, fault.NoTrancheSelected)
	}
}

// listing gives exactly the records available
func TestRecords(t *testing.T) {
	setup(t)
	defer teardown(t)

	for i := uint64(0); i < 5; i += 1 {
		appendOne(t, makeOffering(byte(0x10*i+1), 7400+i))
	}

	// a full page
	records, err := registry.Records(0, 3)
	if nil != err {
		t.Fatalf("records error: %s", err)
	}
	if 3 != len(records) {
		t.Fatalf("records: %d  expected: 3", len(records))
	}
	for i, offering := range records {
		if expected := uint64(7400 + i); expected != offering.CreatedAt {
			t.Errorf("record: %d created at: %d  expected: %d", i, offering.CreatedAt, expected)
		}
	}

	// a count past the tail shrinks to fit
	records, err = registry.Records(3, 10)
	if nil != err {
		t.Fatalf("records error: %s", err)
	}
	if 2 != len(records) {
		t.Fatalf("records: %d  expected: 2", len(records))
	}
	if 7403 != records[0].CreatedAt || 7404 != records[1].CreatedAt {
		t.Errorf("created at: %d %d  expected: 7403 7404", records[0].CreatedAt, records[1].CreatedAt)
	}

	// a start past the tail is empty
	records, err = registry.Records(5, 1)
	if nil != err {
		t.Fatalf("records error: %s", err)
	}
	if 0 != len(records) {
		t.Errorf("records: %d  expected: 0", len(records))
	}

	// a count must be positive
	if _, err := registry.Records(0, 0); fault.InvalidCount != err {
		t.Errorf("records error: %s  expected: %s", err, fault.InvalidCount)
	}
	if _, err := registry.Records(0, -1); fault.InvalidCount != err {
		t.Errorf("records error: %s  expected: %s", err, fault.InvalidCount)
	}
}
