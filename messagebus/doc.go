// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queues linking the daemon internals
//
// carries both internal control messages and the announcements that
// the publisher relays to its subscribers
package messagebus
