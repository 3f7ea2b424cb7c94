// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - run a Lua configuration file
//
// the daemon configuration is a Lua program that returns a table,
// base Lua stays available so a file can read keys from disk or pick
// up environment items with getenv before returning its table.
package configuration
