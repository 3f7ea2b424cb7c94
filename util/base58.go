// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// FromBase58 - convert a base58 encoded string to its binary form
//
// the result is empty if the string is not valid base58
func FromBase58(s string) []byte {
	b, err := base58.Decode(s)
	if nil != err {
		return []byte{}
	}
	return b
}

// ToBase58 - convert a binary value to its base58 string form
func ToBase58(b []byte) string {
	return base58.Encode(b)
}
