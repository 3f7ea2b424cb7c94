// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/storage"
)

const (
	databaseFileName = "test"
	testingDirName   = "testing"
)

// delete the database and the log directory
func removeFiles() {
	os.RemoveAll(databaseFileName + "-offering.leveldb")
	os.RemoveAll(testingDirName)
}

// open a fresh database for one test
func setup(t *testing.T) {
	removeFiles()

	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// element builder to keep the table below readable
func el(key string, value string) storage.Element {
	return storage.Element{
		Key:   []byte(key),
		Value: []byte(value),
	}
}

// committed content of the test pool in lexicographic key order
// "key-one" carries the value of its final overwrite
var expectedElements = []storage.Element{
	el("key-five", "data-five"),
	el("key-four", "data-four"),
	el("key-one", "data-one(NEW)"),
	el("key-seven", "data-seven"),
	el("key-six", "data-six"),
	el("key-three", "data-three"),
	el("key-two", "data-two"),
}

// a key that is never stored
var nonExistantKey = []byte("/nonexistant")

// one committed element for point queries
var testKey = []byte("key-two")
var testData = "data-two"
