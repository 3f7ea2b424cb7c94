// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - the JSON RPC interface of offeringd
//
// sets up the TLS listeners and the HTTPS gateway and registers all
// service objects, the standard golang net/rpc client works against
// these services
package rpc
