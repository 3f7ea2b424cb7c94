// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++            = concatenation of byte data
// 3. timestamp     = unix time as big endian uint64 (8 bytes)
// 4. asset id      = fingerprint digest as 64 byte SHA3-512(packed asset)
// 5. instance id   = derivation digest as 64 byte SHA3-512(salt ++ template id)
// 6. record index  = successive index value as big endian uint64 (8 bytes)
// 7. owner         = account (32 byte public key)
// 8. template id   = binary CID of the template content
// 9. *others*      = byte values of various length
//
// Assets:
//
//   A ++ asset id              - registered asset
//                                data: registration timestamp ++ packed asset data
//
// Balances:
//
//   B ++ asset id ++ owner     - current holding of owner in asset units
//                                data: balance (big endian uint64, 8 bytes)
//
// Instances:
//
//   I ++ instance id           - deployed offering instance
//                                data: deployment timestamp ++ packed instance record
//
// Registry:
//
//   R ++ record index          - appended offering record
//                                data: packed offering record
//
// State:
//
//   S ++ name                  - daemon state
//                                data: depends on the name
//                                'administrator' -> current administrator (32 byte public key)
//
// Templates:
//
//   T ++ template id           - content addressed program template
//                                data: template bytes
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
