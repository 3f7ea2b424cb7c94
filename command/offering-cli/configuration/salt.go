// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/offeringd/fault"
)

const (
	saltSize = 16
)

// Salt - per identity random value so equal passwords derive
// different keys
type Salt [saltSize]byte

// MakeSalt - a freshly randomised salt
func MakeSalt() (*Salt, error) {
	salt := new(Salt)
	if _, err := io.ReadFull(rand.Reader, salt[:]); nil != err {
		return salt, err
	}
	return salt, nil
}

// Bytes - the salt as a byte slice
func (salt Salt) Bytes() []byte {
	return salt[:]
}

// String - hex form for the fmt package %s verb
func (salt Salt) String() string {
	return hex.EncodeToString(salt.Bytes())
}

// MarshalText - hex encode a salt
func (salt *Salt) MarshalText() []byte {
	buffer := make([]byte, hex.EncodedLen(saltSize))
	hex.Encode(buffer, salt.Bytes())
	return buffer
}

// UnmarshalText - hex decode a salt of exactly the right size
func (salt *Salt) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if saltSize != byteCount {
		return fault.CryptoFailed
	}
	copy(salt[:], buffer)
	return nil
}
