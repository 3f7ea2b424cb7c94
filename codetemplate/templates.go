// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codetemplate

// the built in tranche programs
//
// opaque blobs as far as this daemon is concerned, they are stored
// and named by content id only, fixed at build time so every daemon
// built from the same source derives the same instance identifiers
var (
	publicTemplate = []byte(`offering-program: 1
tranche: public
entry: initialise(assetA, assetB, startTime, endTime, administrator)
guards: once
access: open
`)

	privateTemplate = []byte(`offering-program: 1
tranche: private
entry: initialise(assetA, assetB, startTime, endTime, administrator)
guards: once
access: allow-list
`)
)
