// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offering

import (
	"encoding/binary"

	"github.com/bitmark-inc/offeringd/administrator"
	"github.com/bitmark-inc/offeringd/factory"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/ledger"
	"github.com/bitmark-inc/offeringd/messagebus"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/storage"
)

// Recover - sweep a stray asset balance out of the vault
//
// the whole balance moves to the claimant, there is no partial sweep
func Recover(parameters *offeringrecord.RecoveryParameters) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	// covers signature and account validity
	_, err := parameters.Pack(parameters.Claimant)
	if nil != err {
		return 0, err
	}

	err = administrator.Require(parameters.Claimant)
	if nil != err {
		return 0, err
	}

	if !ledger.Exists(parameters.AssetId) {
		return 0, fault.AssetNotFound
	}

	vault := factory.Vault()
	amount := ledger.Balance(parameters.AssetId, vault)
	if 0 == amount {
		return 0, fault.NothingToRecover
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	err = ledger.Transfer(trx, parameters.AssetId, vault, parameters.Claimant, amount)
	if nil != err {
		trx.Abort()
		return 0, err
	}
	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	globalData.log.Infof("recovered: %d of %s", amount, parameters.AssetId)

	amountBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(amountBytes, amount)
	messagebus.Bus.Broadcast.Send("recovered", parameters.AssetId[:], amountBytes)

	return amount, nil
}
