// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package factory - deterministic deployment of offering instances
//
// an instance lives at an identifier derived only from the deployment
// salt and the content id of its program so the address of a planned
// offering can be computed before it exists
package factory
