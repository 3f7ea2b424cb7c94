// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offering_test

import (
	"crypto/rand"
	"os"
	"testing"
	"time"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/administrator"
	"github.com/bitmark-inc/offeringd/chain"
	"github.com/bitmark-inc/offeringd/codetemplate"
	"github.com/bitmark-inc/offeringd/factory"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/ledger"
	"github.com/bitmark-inc/offeringd/messagebus"
	"github.com/bitmark-inc/offeringd/mode"
	"github.com/bitmark-inc/offeringd/offering"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/registry"
	"github.com/bitmark-inc/offeringd/storage"
)

// test database file
const (
	databaseFileName = "test"
	testingDirName   = "testing"
)

// key material shared by the flows under test
var (
	adminKeys keyPair
	vaultKeys keyPair
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

	_ = mode.Initialise(chain.Testing)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = codetemplate.Initialise()
	if nil != err {
		t.Fatalf("codetemplate initialise error: %s", err)
	}

	err = ledger.Initialise()
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}

	adminKeys = makeKeyPair(t)
	err = administrator.Initialise(makeAccount(adminKeys.publicKey))
	if nil != err {
		t.Fatalf("administrator initialise error: %s", err)
	}

	vaultKeys = makeKeyPair(t)
	err = factory.Initialise(makeAccount(vaultKeys.publicKey))
	if nil != err {
		t.Fatalf("factory initialise error: %s", err)
	}

	err = registry.Initialise()
	if nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}

	err = offering.Initialise()
	if nil != err {
		t.Fatalf("offering initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	messagebus.Bus.Broadcast.Release()
	_ = offering.Finalise()
	_ = registry.Finalise()
	_ = factory.Finalise()
	_ = administrator.Finalise()
	_ = ledger.Finalise()
	_ = codetemplate.Finalise()
	storage.Finalise()
	_ = mode.Finalise()
	logger.Finalise()
	removeFiles()
}

// to hold a keypair for testing
type keyPair struct {
	publicKey  []byte
	privateKey ed25519.PrivateKey
}

// helper to make a fresh keypair
func makeKeyPair(t *testing.T) keyPair {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		t.Fatalf("key pair generation error: %s", err)
	}
	return keyPair{
		publicKey:  publicKey,
		privateKey: privateKey,
	}
}

// helper to make an account
func makeAccount(publicKey []byte) *account.Account {
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}
}

// helper to register an asset and credit its supply to the registrant
func registerAsset(t *testing.T, name string, supply uint64, registrant keyPair) offeringrecord.AssetIdentifier {
	asset := &offeringrecord.AssetData{
		Name:       name,
		Metadata:   "description\x00" + name,
		Supply:     supply,
		Registrant: makeAccount(registrant.publicKey),
	}
	message, err := asset.Pack(asset.Registrant)
	if fault.InvalidSignature != err {
		t.Fatalf("pack error: %s  expected: %s", err, fault.InvalidSignature)
	}
	asset.Signature = ed25519.Sign(registrant.privateKey, message)

	assetId, _, err := ledger.Register(asset)
	if nil != err {
		t.Fatalf("register error: %s", err)
	}
	return assetId
}

// helper to sign an offering creation request
func signOffering(t *testing.T, parameters *offeringrecord.OfferingParameters, signer keyPair) {
	parameters.Signature = nil
	message, err := parameters.Pack(parameters.Proposer)
	if fault.InvalidSignature != err {
		t.Fatalf("pack error: %s  expected: %s", err, fault.InvalidSignature)
	}
	parameters.Signature = ed25519.Sign(signer.privateKey, message)
}

// helper to build a signed two tranche creation request
//
// window times are offsets in seconds from now
func makeOffering(t *testing.T, assetA offeringrecord.AssetIdentifier, assetB offeringrecord.AssetIdentifier) *offeringrecord.OfferingParameters {
	now := uint64(time.Now().Unix())
	parameters := &offeringrecord.OfferingParameters{
		AssetA:           assetA,
		AssetB:           assetB,
		StartTime:        now + 3600,
		EndTime:          now + 7200,
		PrivateStartTime: now + 1800,
		PrivateEndTime:   now + 5400,
		Administrator:    makeAccount(adminKeys.publicKey),
		IsPublic:         true,
		IsPrivate:        true,
		Proposer:         makeAccount(adminKeys.publicKey),
	}
	signOffering(t, parameters, adminKeys)
	return parameters
}
