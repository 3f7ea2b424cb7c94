// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package offering - the creation, recovery and transfer flows
//
// every flow verifies the request signature, checks administrator
// rights and stages all of its writes on a single transaction so a
// failure at any step leaves no partial state
package offering
