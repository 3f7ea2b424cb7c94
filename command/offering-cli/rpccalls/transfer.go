// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/command/offering-cli/configuration"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/rpc/administration"
)

// TransferData - data for an administrator transfer request
type TransferData struct {
	Successor *account.Account
	Holder    *configuration.Private
}

// TransferAdministration - hand the administrator role to a successor
func (client *Client) TransferAdministration(transferConfig *TransferData) (*administration.TransferReply, error) {

	holder := transferConfig.Holder.PrivateKey.Account()

	r := offeringrecord.TransferParameters{
		Successor: transferConfig.Successor,
		Holder:    holder,
		Signature: nil,
	}

	// pack without signature
	packed, err := r.Pack(holder)
	if fault.InvalidSignature != err {
		return nil, err
	}

	// manually sign the record and attach signature
	r.Signature = ed25519.Sign(transferConfig.Holder.PrivateKey.PrivateKeyBytes(), packed)

	// check that signature is correct by packing again
	if _, err = r.Pack(holder); nil != err {
		return nil, err
	}

	client.printJson("Transfer Request", r)

	var reply administration.TransferReply
	if err := client.client.Call("Administrator.Transfer", &r, &reply); nil != err {
		return nil, err
	}

	client.printJson("Transfer Reply", reply)

	return &reply, nil
}
