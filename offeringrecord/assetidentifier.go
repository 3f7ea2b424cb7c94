// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/offeringd/fault"
)

// limits
const (
	AssetIdentifierLength = 64
)

// AssetIdentifier - the SHA3-512 digest of the asset registration data
//
// fixed length binary internally, hex text in JSON, use assetId[:]
// for the raw bytes
type AssetIdentifier [AssetIdentifierLength]byte

// NewAssetIdentifier - hash a packed asset record to its identifier
func NewAssetIdentifier(record []byte) AssetIdentifier {
	return AssetIdentifier(sha3.Sum512(record))
}

// String - hex form for the fmt package %s verb
func (assetId AssetIdentifier) String() string {
	return hex.EncodeToString(assetId[:])
}

// GoString - tagged hex form for the fmt package %#v verb
func (assetId AssetIdentifier) GoString() string {
	return "<asset:" + hex.EncodeToString(assetId[:]) + ">"
}

// IsZero - true if every byte of the identifier is zero
func (assetId AssetIdentifier) IsZero() bool {
	for _, b := range assetId {
		if 0 != b {
			return false
		}
	}
	return true
}

// Scan - read a hex token as an identifier for the fmt package scan routines
func (assetId *AssetIdentifier) Scan(state fmt.ScanState, verb rune) error {
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
	if hex.EncodedLen(AssetIdentifierLength) != len(token) {
		return fault.NotAssetId
	}

	byteCount, err := hex.Decode(assetId[:], token)
	if nil != err {
		return err
	}
	if AssetIdentifierLength != byteCount {
		return fault.NotAssetId
	}
	return nil
}

// MarshalText - hex encode an identifier
func (assetId AssetIdentifier) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(assetId)))
	hex.Encode(buffer, assetId[:])
	return buffer, nil
}

// UnmarshalText - hex decode an identifier of exactly the right size
func (assetId *AssetIdentifier) UnmarshalText(s []byte) error {
	if len(assetId) != hex.DecodedLen(len(s)) {
		return fault.NotAssetId
	}
	byteCount, err := hex.Decode(assetId[:], s)
	if nil != err {
		return err
	}
	if AssetIdentifierLength != byteCount {
		return fault.NotAssetId
	}
	return nil
}

// AssetIdentifierFromBytes - copy and validate a binary identifier
func AssetIdentifierFromBytes(assetId *AssetIdentifier, buffer []byte) error {
	if AssetIdentifierLength != len(buffer) {
		return fault.NotAssetId
	}
	copy(assetId[:], buffer)
	return nil
}
