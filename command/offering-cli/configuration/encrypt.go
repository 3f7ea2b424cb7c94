// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/fault"
)

// nonce is stored as a prefix of the encrypted data
const nonceSize = 24

// data size limits before encryption
const (
	minimumDataLength = 32
	maximumDataLength = 16384
)

// Private - decrypted identity secrets
type Private struct {
	PrivateKey  *account.PrivateKey `json:"privateKey"`
	Description string              `json:"description"`
}

// decryptIdentity - recover the private key of an identity using its password
func decryptIdentity(password string, identity *Identity) (*Private, error) {

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(identity.Salt))
	if nil != err || "" == identity.Data {
		return nil, fault.NotPrivateKey
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}

	base58PrivateKey, err := decryptData(identity.Data, key)
	if nil != err {
		return nil, fault.WrongPassword
	}

	privateKey, err := account.PrivateKeyFromBase58(base58PrivateKey)
	if nil != err {
		return nil, err
	}

	return &Private{
		PrivateKey:  privateKey,
		Description: identity.Description,
	}, nil
}

// make a fresh salt and derive the corresponding secret key
func hashPassword(password string) (*Salt, *[32]byte, error) {
	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}

	secretKey, err := generateKey(password, salt)
	if nil != err {
		return nil, nil, err
	}

	return salt, secretKey, nil
}

// derive a 256 bit secret key from password and salt
func generateKey(password string, salt *Salt) (*[32]byte, error) {

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), salt.Bytes())
	if nil != err {
		return nil, err
	}

	var secretKey [32]byte
	copy(secretKey[:], hash)

	return &secretKey, nil
}

// seal a string, result is hex of nonce followed by ciphertext
func encryptData(data string, secretKey *[32]byte) (string, error) {

	if len(data) < minimumDataLength || len(data) >= maximumDataLength {
		return "", fault.CryptoFailed
	}

	// a 192 bit random nonce will not repeat for the same key
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return "", fault.CryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], []byte(data), &nonce, secretKey)

	return hex.EncodeToString(ciphertext), nil
}

// open hex sealed data, the nonce prefix selects the right nonce
func decryptData(ciphertext string, secretKey *[32]byte) (string, error) {

	if "" == ciphertext {
		return "", fault.CryptoFailed
	}

	encrypted, err := hex.DecodeString(ciphertext)
	if nil != err {
		return "", err
	}
	if len(encrypted) <= nonceSize {
		return "", fault.CryptoFailed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], encrypted[:nonceSize])

	decrypted, ok := secretbox.Open(nil, encrypted[nonceSize:], &nonce, secretKey)
	if !ok {
		return "", fault.CryptoFailed
	}

	return string(decrypted), nil
}
