// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// chain selects key network and the set of databases
const (
	Bitmark = "bitmark" // live chain
	Testing = "testing" // public test chain
	Local   = "local"   // local regression chain
)

// Valid - check a chain name is one of the known chains
func Valid(name string) bool {
	switch name {
	case Bitmark, Testing, Local:
		return true
	}
	return false
}
