// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

// LogCategory - logger tag shared by the RPC tests
const LogCategory = "testing"

const (
	testingDirName      = "testing"
	certificateFileName = "test.crt"
	keyFileName         = "test.key"
)

// fixed seeds so the test accounts stay stable between runs
var (
	administratorSeed = [32]byte{
		0xb0, 0xc0, 0xcb, 0xd9, 0xaa, 0x68, 0xfc, 0x5c,
		0xc0, 0x77, 0x75, 0x96, 0x57, 0x3b, 0xe3, 0xea,
		0xcc, 0x0c, 0x44, 0x99, 0x60, 0xd4, 0x49, 0x1b,
		0xf2, 0xd0, 0xae, 0x1a, 0xa6, 0x4c, 0xaa, 0x7d,
	}
	registrantSeed = [32]byte{
		0x58, 0xaf, 0x66, 0x2d, 0xc2, 0x9a, 0xbb, 0xde,
		0x31, 0x89, 0xdb, 0x62, 0xf6, 0x3c, 0x47, 0x12,
		0x35, 0x95, 0x19, 0x8e, 0xf0, 0xa1, 0x56, 0x07,
		0x7b, 0x5d, 0xe3, 0x79, 0xf1, 0xc1, 0x5e, 0x18,
	}
)

// test signing keys
var (
	// AdministratorPrivateKey - signing key for the administrator account in tests
	AdministratorPrivateKey = ed25519.NewKeyFromSeed(administratorSeed[:])

	// AdministratorPublicKey - public part of the administrator test key
	AdministratorPublicKey = AdministratorPrivateKey.Public().(ed25519.PublicKey)

	// RegistrantPrivateKey - signing key for asset registrants in tests
	RegistrantPrivateKey = ed25519.NewKeyFromSeed(registrantSeed[:])

	// RegistrantPublicKey - public part of the registrant test key
	RegistrantPublicKey = RegistrantPrivateKey.Public().(ed25519.PublicKey)
)

// SetupTestLogger - create a logger for testing
func SetupTestLogger() {
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
}

// TeardownTestLogger - remove the testing logger
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// Certificate - PEM encoded TLS certificate for testing
//
// the certificate and key files are created in dir on first use
func Certificate(dir string) string {
	return readPairFile(dir, certificateFileName)
}

// Key - PEM encoded private key matching Certificate
func Key(dir string) string {
	return readPairFile(dir, keyFileName)
}

func readPairFile(dir string, name string) string {
	ensureKeyPair(dir)
	data, err := ioutil.ReadFile(filepath.Join(dir, name))
	if nil != err {
		logger.Panicf("fixtures: cannot read: %q  error: %s", name, err)
	}
	return string(data)
}

// create a self signed pair the first time either file is wanted
func ensureKeyPair(dir string) {
	certificateFile := filepath.Join(dir, certificateFileName)
	keyFile := filepath.Join(dir, keyFileName)

	_, certificateErr := os.Stat(certificateFile)
	_, keyErr := os.Stat(keyFile)
	if nil == certificateErr && nil == keyErr {
		return
	}

	_ = os.MkdirAll(dir, 0700)

	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("offeringd testing", validUntil, false, nil)
	if nil != err {
		logger.Panicf("fixtures: cannot create certificate pair  error: %s", err)
	}

	if err := ioutil.WriteFile(certificateFile, cert, 0600); nil != err {
		logger.Panicf("fixtures: cannot write: %q  error: %s", certificateFile, err)
	}
	if err := ioutil.WriteFile(keyFile, key, 0600); nil != err {
		_ = os.Remove(certificateFile)
		logger.Panicf("fixtures: cannot write: %q  error: %s", keyFile, err)
	}
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}
