// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/util"
)

// PrivateKey - base type for PrivateKey
type PrivateKey struct {
	PrivateKeyInterface
}

// PrivateKeyInterface - interface type for private key methods
type PrivateKeyInterface interface {
	Account() *Account
	KeyType() int
	PrivateKeyBytes() []byte
	Bytes() []byte
	String() string
	IsTesting() bool
	MarshalText() ([]byte, error)
}

// ED25519PrivateKey - for ed25519 keys
type ED25519PrivateKey struct {
	Test       bool
	PrivateKey []byte
}

// NothingPrivateKey - just for debugging
type NothingPrivateKey struct {
	Test       bool
	PrivateKey []byte
}

// NewPrivateKey - generate a fresh ed25519 private key
//
// the test flag marks the key and its derived account as test network
// only
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		PrivateKeyInterface: &ED25519PrivateKey{
			Test:       test,
			PrivateKey: priv,
		},
	}, nil
}

// PrivateKeyFromBase58 - decode a Base58 text form private key
//
// the concrete key type is wrapped in the base PrivateKey so the
// interface methods can be used directly
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	privateKeyDecoded := util.FromBase58(privateKeyBase58Encoded)
	if 0 == len(privateKeyDecoded) {
		return nil, fault.CannotDecodePrivateKey
	}

	// a set public bit means this is not a private key at all
	keyVariant, keyVariantLength := util.FromVarint64(privateKeyDecoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotPrivateKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	keyLength := len(privateKeyDecoded) - keyVariantLength - checksumLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	checksumStart := len(privateKeyDecoded) - checksumLength
	checksum := sha3.Sum256(privateKeyDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], privateKeyDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return assemblePrivateKey(keyAlgorithm, isTest, privateKeyDecoded[keyVariantLength:checksumStart])
}

// PrivateKeyFromBytes - decode a binary form private key, i.e. the
// Base58 form without its checksum
func PrivateKeyFromBytes(privateKeyBytes []byte) (*PrivateKey, error) {

	keyVariant, keyVariantLength := util.FromVarint64(privateKeyBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotPrivateKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	return assemblePrivateKey(keyAlgorithm, isTest, privateKeyBytes[keyVariantLength:])
}

// wrap validated private key bytes in their concrete key type
func assemblePrivateKey(keyAlgorithm uint64, isTest bool, priv []byte) (*PrivateKey, error) {
	switch keyAlgorithm {
	case ED25519:
		if ed25519.PrivateKeySize != len(priv) {
			return nil, fault.InvalidKeyLength
		}
		return &PrivateKey{
			PrivateKeyInterface: &ED25519PrivateKey{
				Test:       isTest,
				PrivateKey: priv,
			},
		}, nil

	case Nothing:
		if 2 != len(priv) {
			return nil, fault.InvalidKeyLength
		}
		return &PrivateKey{
			PrivateKeyInterface: &NothingPrivateKey{
				Test:       isTest,
				PrivateKey: priv,
			},
		}, nil

	default:
		return nil, fault.InvalidKeyType
	}
}

// UnmarshalText - decode a JSON string form private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	a, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	privateKey.PrivateKeyInterface = a.PrivateKeyInterface
	return nil
}

// Sign - sign a message with the private key
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(privateKey.PrivateKeyBytes(), message))
}

// prefix private key bytes with their key variant byte, note the
// public bit stays clear
func packPrivateKey(algorithm int, test bool, priv []byte) []byte {
	keyVariant := byte(algorithm << algorithmShift)
	if test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, priv...)
}

// ED25519
// -------

// IsTesting - true for a test network key
func (privateKey *ED25519PrivateKey) IsTesting() bool {
	return privateKey.Test
}

// KeyType - key type code (see enumeration in account.go)
func (privateKey *ED25519PrivateKey) KeyType() int {
	return ED25519
}

// Account - the account of the embedded public key
func (privateKey *ED25519PrivateKey) Account() *Account {
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      privateKey.Test,
			PublicKey: privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:],
		},
	}
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *ED25519PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Bytes - binary form of the key
func (privateKey *ED25519PrivateKey) Bytes() []byte {
	return packPrivateKey(ED25519, privateKey.Test, privateKey.PrivateKey[:])
}

// String - Base58 text form of the key
func (privateKey *ED25519PrivateKey) String() string {
	return base58WithChecksum(privateKey.Bytes())
}

// MarshalText - Base58 JSON form of the key
func (privateKey ED25519PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// Nothing
// -------

// IsTesting - true for a test network key
func (privateKey *NothingPrivateKey) IsTesting() bool {
	return privateKey.Test
}

// KeyType - key type code (see enumeration in account.go)
func (privateKey *NothingPrivateKey) KeyType() int {
	return Nothing
}

// Account - there is no usable account for this key type
func (privateKey *NothingPrivateKey) Account() *Account {
	return nil
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *NothingPrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Bytes - binary form of the key
func (privateKey *NothingPrivateKey) Bytes() []byte {
	return packPrivateKey(Nothing, privateKey.Test, privateKey.PrivateKey[:])
}

// String - Base58 text form of the key
func (privateKey *NothingPrivateKey) String() string {
	return base58WithChecksum(privateKey.Bytes())
}

// MarshalText - Base58 JSON form of the key
func (privateKey NothingPrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}
