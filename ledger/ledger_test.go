// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"crypto/rand"
	"os"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/chain"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/ledger"
	"github.com/bitmark-inc/offeringd/mode"
	"github.com/bitmark-inc/offeringd/offeringrecord"
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

	_ = mode.Initialise(chain.Testing)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = ledger.Initialise()
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	_ = ledger.Finalise()
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

// helper to make a signed registration
func makeAsset(t *testing.T, name string, supply uint64, registrant keyPair) *offeringrecord.AssetData {
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
	return asset
}

// registration credits the supply and is idempotent
func TestRegister(t *testing.T) {
	setup(t)
	defer teardown(t)

	registrant := makeKeyPair(t)
	asset := makeAsset(t, "Programme Token", 21000000, registrant)

	assetId, duplicate, err := ledger.Register(asset)
	if nil != err {
		t.Fatalf("register error: %s", err)
	}
	if duplicate {
		t.Fatal("first registration reported duplicate")
	}

	if !ledger.Exists(assetId) {
		t.Fatal("registered asset does not exist")
	}

	if balance := ledger.Balance(assetId, asset.Registrant); asset.Supply != balance {
		t.Errorf("registrant balance: %d  expected: %d", balance, asset.Supply)
	}

	stored, err := ledger.Get(assetId)
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	if stored.Name != asset.Name || stored.Supply != asset.Supply {
		t.Errorf("stored: %v  expected: %v", stored, asset)
	}

	// identical registration is a no-op
	again, duplicate, err := ledger.Register(asset)
	if nil != err {
		t.Fatalf("register error: %s", err)
	}
	if !duplicate {
		t.Error("repeat registration not reported duplicate")
	}
	if assetId != again {
		t.Errorf("repeat asset id: %v  expected: %v", again, assetId)
	}
	if balance := ledger.Balance(assetId, asset.Registrant); asset.Supply != balance {
		t.Errorf("balance after repeat: %d  expected: %d", balance, asset.Supply)
	}
}

// the same identifier with different data is refused
func TestRegisterConflict(t *testing.T) {
	setup(t)
	defer teardown(t)

	registrant := makeKeyPair(t)
	asset := makeAsset(t, "Programme Token", 1000, registrant)

	if _, _, err := ledger.Register(asset); nil != err {
		t.Fatalf("register error: %s", err)
	}

	// same name and registrant, different supply, same id
	conflicting := makeAsset(t, "Programme Token", 2000, registrant)
	if conflicting.AssetId() != asset.AssetId() {
		t.Fatal("asset ids differ")
	}
	if _, _, err := ledger.Register(conflicting); fault.AssetAlreadyRegistered != err {
		t.Errorf("register error: %s  expected: %s", err, fault.AssetAlreadyRegistered)
	}
}

// a bad signature never reaches storage
func TestRegisterBadSignature(t *testing.T) {
	setup(t)
	defer teardown(t)

	registrant := makeKeyPair(t)
	forger := makeKeyPair(t)

	asset := &offeringrecord.AssetData{
		Name:       "Programme Token",
		Metadata:   "description\x00Programme Token",
		Supply:     1000,
		Registrant: makeAccount(registrant.publicKey),
	}
	message, err := asset.Pack(asset.Registrant)
	if fault.InvalidSignature != err {
		t.Fatalf("pack error: %s  expected: %s", err, fault.InvalidSignature)
	}
	asset.Signature = ed25519.Sign(forger.privateKey, message)

	assetId, _, err := ledger.Register(asset)
	if fault.InvalidSignature != err {
		t.Fatalf("register error: %s  expected: %s", err, fault.InvalidSignature)
	}
	if ledger.Exists(assetId) {
		t.Error("forged asset exists")
	}
}

// balances move by transfer and never over-draw
func TestTransfer(t *testing.T) {
	setup(t)
	defer teardown(t)

	registrant := makeKeyPair(t)
	receiver := makeKeyPair(t)

	asset := makeAsset(t, "Programme Token", 1000, registrant)
	receiverAccount := makeAccount(receiver.publicKey)

	assetId, _, err := ledger.Register(asset)
	if nil != err {
		t.Fatalf("register error: %s", err)
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	err = ledger.Transfer(trx, assetId, asset.Registrant, receiverAccount, 300)
	if nil != err {
		trx.Abort()
		t.Fatalf("transfer error: %s", err)
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if balance := ledger.Balance(assetId, asset.Registrant); 700 != balance {
		t.Errorf("registrant balance: %d  expected: 700", balance)
	}
	if balance := ledger.Balance(assetId, receiverAccount); 300 != balance {
		t.Errorf("receiver balance: %d  expected: 300", balance)
	}

	// over-draw is refused and stages nothing
	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	err = ledger.Transfer(trx, assetId, asset.Registrant, receiverAccount, 701)
	trx.Abort()
	if fault.InsufficientFunds != err {
		t.Fatalf("transfer error: %s  expected: %s", err, fault.InsufficientFunds)
	}
	if balance := ledger.Balance(assetId, asset.Registrant); 700 != balance {
		t.Errorf("registrant balance: %d  expected: 700", balance)
	}

	// moving the whole remainder clears the holding
	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	err = ledger.Transfer(trx, assetId, asset.Registrant, receiverAccount, 700)
	if nil != err {
		trx.Abort()
		t.Fatalf("transfer error: %s", err)
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if balance := ledger.Balance(assetId, asset.Registrant); 0 != balance {
		t.Errorf("registrant balance: %d  expected: 0", balance)
	}
	if balance := ledger.Balance(assetId, receiverAccount); 1000 != balance {
		t.Errorf("receiver balance: %d  expected: 1000", balance)
	}
}

// unknown assets are clean errors
func TestMissingAsset(t *testing.T) {
	setup(t)
	defer teardown(t)

	holder := makeKeyPair(t)
	var assetId offeringrecord.AssetIdentifier
	for i := range assetId {
		assetId[i] = 0x5a
	}

	if ledger.Exists(assetId) {
		t.Fatal("unknown asset exists")
	}
	if _, err := ledger.Get(assetId); fault.AssetNotFound != err {
		t.Errorf("get error: %s  expected: %s", err, fault.AssetNotFound)
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trx.Abort()
	holderAccount := makeAccount(holder.publicKey)
	if err := ledger.Transfer(trx, assetId, holderAccount, holderAccount, 1); fault.AssetNotFound != err {
		t.Errorf("transfer error: %s  expected: %s", err, fault.AssetNotFound)
	}
}
