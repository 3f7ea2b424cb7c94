// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - append-only numbering of created offerings
//
// every creation appends one record, records are never updated or
// removed so the index doubles as a stable external reference
package registry
