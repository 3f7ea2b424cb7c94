// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offering

import (
	"github.com/bitmark-inc/offeringd/administrator"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/messagebus"
	"github.com/bitmark-inc/offeringd/offeringrecord"
)

// TransferAdministrator - hand the administrator role to a successor
//
// rights checks and persistence are the administrator package's, this
// flow adds the signature verification and the announcement
func TransferAdministrator(parameters *offeringrecord.TransferParameters) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	// covers signature and account validity
	_, err := parameters.Pack(parameters.Holder)
	if nil != err {
		return err
	}

	err = administrator.Transfer(parameters.Successor, parameters.Holder)
	if nil != err {
		return err
	}

	globalData.log.Infof("administrator: %s", parameters.Successor)

	messagebus.Bus.Broadcast.Send("admin", parameters.Successor.Bytes())

	return nil
}
