// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord_test

import (
	"crypto/rand"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/offeringd/account"
)

// to hold a keypair for testing
type keyPair struct {
	publicKey  []byte
	privateKey ed25519.PrivateKey
}

// helper to make a fresh keypair
//
// records are packed unsigned first and the returned message signed,
// so no fixed key material is needed
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
