// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package factory

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/mode"
)

// globalDataType - globals for factory
type globalDataType struct {
	sync.RWMutex // to allow locking

	log   *logger.L
	vault *account.Account

	// set once during initialise
	initialised bool
}

// global data
var globalData globalDataType

// Initialise - start the factory with its vault account
//
// the vault holds any balances swept to the factory and is the
// source account for recovery payouts
func Initialise(vault *account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("factory")
	globalData.log.Info("starting…")

	if nil == vault || nil == vault.AccountInterface || vault.IsZero() {
		return fault.InvalidOwnerOrRegistrant
	}
	if vault.IsTesting() != mode.IsTesting() {
		return fault.WrongNetworkForPublicKey
	}

	globalData.vault = vault
	globalData.log.Infof("vault: %s", vault)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the factory
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()

	globalData.vault = nil
	globalData.initialised = false

	return nil
}

// Vault - the account holding factory balances
func Vault() *account.Account {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.vault
}
