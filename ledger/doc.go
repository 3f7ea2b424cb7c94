// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - registered assets and their balances
//
// an asset is registered once, signed by its registrant, and the
// whole initial supply is credited to the registrant, after that
// balances only move by transfer
//
// recently registered assets are kept in a memory cache so repeated
// registrations and the existence probes of offering creation do not
// touch the database, a background process evicts stale entries
package ledger
