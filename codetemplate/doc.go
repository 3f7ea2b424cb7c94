// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codetemplate - content addressed pool of instance programs
//
// a template is an opaque program blob named by its CIDv1, the daemon
// only stores and retrieves the bytes, execution belongs to whatever
// engine eventually runs a tranche
//
// the public and private tranche programs are built in and stored at
// start up, their ids never change between daemons built from the
// same source
package codetemplate
