// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/ipfs/go-cid"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/offeringd/fault"
)

// limits
const (
	InstanceIdentifierLength = 64
)

// InstanceIdentifier - the type for a deployed instance identifier
// stored as fixed length byte array
// represented as hex text for JSON encoding
// to get bytes value just use instanceId[:]
type InstanceIdentifier [InstanceIdentifierLength]byte

// Salt - the derivation inputs that pin an instance identifier
//
// the same salt with the same template always derives the same
// identifier, so a second creation attempt lands on the occupied
// slot instead of a fresh one
type Salt struct {
	AssetA    AssetIdentifier
	AssetB    AssetIdentifier
	StartTime uint64 // unix seconds, the public window open
}

// Pack - canonical fixed width packed form of a salt
//
// assetA then assetB then big endian start time, so any client
// holding the creation arguments can reproduce it
func (salt Salt) Pack() []byte {
	buffer := make([]byte, 0, 2*AssetIdentifierLength+8)
	buffer = append(buffer, salt.AssetA[:]...)
	buffer = append(buffer, salt.AssetB[:]...)
	timestamp := make([]byte, 8)
	binary.BigEndian.PutUint64(timestamp, salt.StartTime)
	return append(buffer, timestamp...)
}

// NewInstanceIdentifier - derive the identifier for an instance
//
// SHA3-512 over the packed salt followed by the template content id
// bytes; pure, so the identifier is computable before the instance
// exists
func NewInstanceIdentifier(templateId cid.Cid, salt Salt) InstanceIdentifier {
	return InstanceIdentifier(sha3.Sum512(append(salt.Pack(), templateId.Bytes()...)))
}

// String - convert a binary instanceId to hex string for use by the fmt package (for %s)
func (instanceId InstanceIdentifier) String() string {
	return hex.EncodeToString(instanceId[:])
}

// GoString - convert a binary instanceId to hex string for use by the fmt package (for %#v)
func (instanceId InstanceIdentifier) GoString() string {
	return "<instance:" + hex.EncodeToString(instanceId[:]) + ">"
}

// IsZero - return true if the identifier is all zero
//
// a zero identifier marks an absent tranche in a registry entry
func (instanceId InstanceIdentifier) IsZero() bool {
	for _, b := range instanceId {
		if 0 != b {
			return false
		}
	}
	return true
}

// Scan - convert a hex text representation to an instanceId for use by the format package scan routines
func (instanceId *InstanceIdentifier) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(InstanceIdentifierLength) {
		return fault.NotInstanceId
	}

	byteCount, err := hex.Decode(instanceId[:], token)
	if nil != err {
		return err
	}

	if InstanceIdentifierLength != byteCount {
		return fault.NotInstanceId
	}
	return nil
}

// MarshalText - convert instanceId to hex text
func (instanceId InstanceIdentifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(instanceId))
	buffer := make([]byte, size)
	hex.Encode(buffer, instanceId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an instanceId
func (instanceId *InstanceIdentifier) UnmarshalText(s []byte) error {
	if len(instanceId) != hex.DecodedLen(len(s)) {
		return fault.NotInstanceId
	}
	byteCount, err := hex.Decode(instanceId[:], s)
	if nil != err {
		return err
	}
	if InstanceIdentifierLength != byteCount {
		return fault.NotInstanceId
	}
	return nil
}

// InstanceIdentifierFromBytes - convert and validate a binary byte slice to an instanceId
func InstanceIdentifierFromBytes(instanceId *InstanceIdentifier, buffer []byte) error {
	if InstanceIdentifierLength != len(buffer) {
		return fault.NotInstanceId
	}
	copy(instanceId[:], buffer)
	return nil
}
