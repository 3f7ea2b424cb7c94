// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - shared error values
//
// All errors are predeclared so callers can compare against a single
// instance rather than matching message text
package fault
