// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offeringrecord

import (
	"encoding/hex"

	"github.com/ipfs/go-cid"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/util"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	AssetDataTag          = TagType(iota) // register an asset
	OfferingParametersTag = TagType(iota) // request creation of an offering
	RecoveryParametersTag = TagType(iota) // request sweep of a stray balance
	TransferParametersTag = TagType(iota) // hand the administrator role to a successor
	OfferingRecordTag     = TagType(iota) // registry entry (daemon internal)
	InstanceRecordTag     = TagType(iota) // deployed instance (daemon internal)

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic signed record interface
type Record interface {
	Pack(account *account.Account) (Packed, error)
}

// byte sizes for various fields
const (
	minNameLength      = 1
	maxNameLength      = 64
	maxMetadataLength  = 2048
	maxSignatureLength = 1024
)

// AssetData - the unpacked asset registration structure
type AssetData struct {
	Name       string            `json:"name"`          // utf-8
	Metadata   string            `json:"metadata"`      // utf-8
	Supply     uint64            `json:"supply,string"` // credited to registrant, > 0
	Registrant *account.Account  `json:"registrant"`    // base58
	Signature  account.Signature `json:"signature"`     // hex
}

// OfferingParameters - the unpacked offering creation request
//
// the administrator field is the account handed to each new instance,
// the proposer is the caller and must hold the factory administrator
// role when the request is processed
type OfferingParameters struct {
	AssetA           AssetIdentifier   `json:"assetA"`                  // link to asset record
	AssetB           AssetIdentifier   `json:"assetB"`                  // link to asset record
	StartTime        uint64            `json:"startTime,string"`        // public window open (unix seconds)
	EndTime          uint64            `json:"endTime,string"`          // public window close
	PrivateStartTime uint64            `json:"privateStartTime,string"` // private window open
	PrivateEndTime   uint64            `json:"privateEndTime,string"`   // private window close
	Administrator    *account.Account  `json:"administrator"`           // base58: handed to the instances
	IsPublic         bool              `json:"isPublic"`                // request the public tranche
	IsPrivate        bool              `json:"isPrivate"`               // request the private tranche
	Proposer         *account.Account  `json:"proposer"`                // base58: the caller
	Signature        account.Signature `json:"signature"`               // hex: corresponds to proposer
}

// RecoveryParameters - the unpacked sweep request
type RecoveryParameters struct {
	AssetId   AssetIdentifier   `json:"assetId"`   // link to asset record
	Claimant  *account.Account  `json:"claimant"`  // base58: receives the swept balance
	Signature account.Signature `json:"signature"` // hex: corresponds to claimant
}

// TransferParameters - the unpacked administrator transfer request
type TransferParameters struct {
	Successor *account.Account  `json:"successor"` // base58: the new administrator
	Holder    *account.Account  `json:"holder"`    // base58: the current administrator
	Signature account.Signature `json:"signature"` // hex: corresponds to holder
}

// OfferingRecord - one registry entry
//
// a zero identifier marks an absent tranche, at least one identifier
// is always present
type OfferingRecord struct {
	PublicInstance  InstanceIdentifier `json:"publicInstance"`
	PrivateInstance InstanceIdentifier `json:"privateInstance"`
	CreatedAt       uint64             `json:"createdAt,string"` // unix seconds
}

// InstanceRecord - a deployed offering instance
//
// keyed in storage by its instance identifier, which is derived from
// the salt and template id rather than from this content
type InstanceRecord struct {
	TemplateId    cid.Cid           `json:"templateId"`       // content id of the program
	AssetA        AssetIdentifier   `json:"assetA"`           // link to asset record
	AssetB        AssetIdentifier   `json:"assetB"`           // link to asset record
	StartTime     uint64            `json:"startTime,string"` // this tranche's window open
	EndTime       uint64            `json:"endTime,string"`   // this tranche's window close
	Administrator *account.Account  `json:"administrator"`    // base58
	Initialised   bool              `json:"initialised"`      // one-time flag
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *AssetData, AssetData:
		return "AssetData", true

	case *OfferingParameters, OfferingParameters:
		return "OfferingParameters", true

	case *RecoveryParameters, RecoveryParameters:
		return "RecoveryParameters", true

	case *TransferParameters, TransferParameters:
		return "TransferParameters", true

	case *OfferingRecord, OfferingRecord:
		return "OfferingRecord", true

	case *InstanceRecord, InstanceRecord:
		return "InstanceRecord", true

	default:
		return "*unknown*", false
	}
}

// AssetId - compute an asset id
//
// the id covers name and registrant so a registrant can only hold one
// asset of a given name, re-registering different data under the same
// name is refused elsewhere
func (assetData *AssetData) AssetId() AssetIdentifier {
	message := appendString(Packed{}, assetData.Name)
	message = appendAccount(message, assetData.Registrant)
	return NewAssetIdentifier(message)
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed to its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
