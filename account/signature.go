// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"fmt"
)

// Signature - raw signature bytes, externally always hex
type Signature []byte

// String - hex form for the fmt package %s verb
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - tagged hex form for the fmt package %#v verb
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// Scan - read a hex token as a signature for the fmt package scan routines
func (signature *Signature) Scan(state fmt.ScanState, verb rune) error {
	isHexDigit := func(c rune) bool {
		switch {
		case c >= '0' && c <= '9':
			return true
		case c >= 'A' && c <= 'F':
			return true
		case c >= 'a' && c <= 'f':
			return true
		}
		return false
	}

	token, err := state.Token(true, isHexDigit)
	if nil != err {
		return err
	}

	sig := make([]byte, hex.DecodedLen(len(token)))
	byteCount, err := hex.Decode(sig, token)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}

// MarshalText - hex encode a signature
func (signature Signature) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - hex decode a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}
