// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype **Just for Testing**
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02
	spare1KeyCode = 0x04
	spare2KeyCode = 0x08

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - base type for accounts
type Account struct {
	AccountInterface
}

// AccountInterface - interface type for account methods
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
	IsZero() bool
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// NothingAccount - just for debugging
type NothingAccount struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - decode a Base58 text form account
//
// the concrete account type is wrapped in the base Account so the
// interface methods can be used directly
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	keyVariant, keyVariantLength := util.FromVarint64(accountDecoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	// room must remain for at least one key byte
	keyLength := len(accountDecoded) - keyVariantLength - checksumLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	// checksum is the leading bytes of SHA3-256 over all preceding bytes
	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return assembleAccount(keyAlgorithm, isTest, accountDecoded[keyVariantLength:checksumStart])
}

// AccountFromBytes - decode a binary form account, i.e. the Base58
// form without its checksum
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	return assembleAccount(keyAlgorithm, isTest, accountBytes[keyVariantLength:])
}

// wrap a validated public key in its concrete account type
func assembleAccount(keyAlgorithm uint64, isTest bool, publicKey []byte) (*Account, error) {
	switch keyAlgorithm {
	case ED25519:
		if ed25519.PublicKeySize != len(publicKey) {
			return nil, fault.InvalidKeyLength
		}
		return &Account{
			AccountInterface: &ED25519Account{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}, nil

	case Nothing:
		if 2 != len(publicKey) {
			return nil, fault.InvalidKeyLength
		}
		return &Account{
			AccountInterface: &NothingAccount{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}, nil

	default:
		return nil, fault.InvalidKeyType
	}
}

// UnmarshalText - decode a JSON string form account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// prefix a public key with its key variant byte
func packAccount(algorithm int, test bool, publicKey []byte) []byte {
	keyVariant := byte(algorithm<<algorithmShift) | publicKeyCode
	if test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, publicKey...)
}

// attach the checksum and convert to Base58 text
func base58WithChecksum(encoded []byte) string {
	digest := sha3.Sum256(encoded)
	return util.ToBase58(append(encoded, digest[:checksumLength]...))
}

func allZero(buffer []byte) bool {
	for _, b := range buffer {
		if 0 != b {
			return false
		}
	}
	return true
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}

	if !ed25519.Verify(account.PublicKey[:], message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - binary form of the account
func (account *ED25519Account) Bytes() []byte {
	return packAccount(ED25519, account.Test, account.PublicKey[:])
}

// String - Base58 text form of the account
func (account *ED25519Account) String() string {
	return base58WithChecksum(account.Bytes())
}

// MarshalText - Base58 JSON form of the account
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - true for a test network account
func (account ED25519Account) IsTesting() bool {
	return account.Test
}

// IsZero - true if the public key is all zero
func (account ED25519Account) IsZero() bool {
	return allZero(account.PublicKey)
}

// Nothing
// -------

// KeyType - key type code (see enumeration above)
func (account *NothingAccount) KeyType() int {
	return Nothing
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *NothingAccount) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - always fails, this key type cannot sign
func (account *NothingAccount) CheckSignature(message []byte, signature Signature) error {
	return fault.InvalidSignature
}

// Bytes - binary form of the account
func (account *NothingAccount) Bytes() []byte {
	return packAccount(Nothing, account.Test, account.PublicKey[:])
}

// String - Base58 text form of the account
func (account *NothingAccount) String() string {
	return base58WithChecksum(account.Bytes())
}

// MarshalText - Base58 JSON form of the account
func (account NothingAccount) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - true for a test network account
func (account NothingAccount) IsTesting() bool {
	return account.Test
}

// IsZero - true if the public key is all zero
func (account NothingAccount) IsZero() bool {
	return allZero(account.PublicKey)
}
