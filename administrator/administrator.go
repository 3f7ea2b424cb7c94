// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package administrator - the account holding privileged rights
//
// the configured account only seeds the very first start, any
// transfer is persisted and takes precedence from then on
package administrator

import (
	"bytes"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/mode"
	"github.com/bitmark-inc/offeringd/storage"
)

// key of the persisted administrator account in the state pool
var stateKey = []byte("administrator")

// globalDataType - globals for administrator
type globalDataType struct {
	sync.RWMutex // to allow locking

	log     *logger.L
	current *account.Account

	// set once during initialise
	initialised bool
}

// global data
var globalData globalDataType

// Initialise - load the administrator account
func Initialise(administrator *account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("administrator")
	globalData.log.Info("starting…")

	current := administrator
	if stored := storage.Pool.State.Get(stateKey); nil != stored {
		persisted, err := account.AccountFromBytes(stored)
		if nil != err {
			return err
		}
		current = persisted
	}

	if nil == current || nil == current.AccountInterface || current.IsZero() {
		return fault.InvalidAdministrator
	}
	if current.IsTesting() != mode.IsTesting() {
		return fault.WrongNetworkForPublicKey
	}

	globalData.current = current
	globalData.log.Infof("administrator: %s", current)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the administrator system
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()

	globalData.current = nil
	globalData.initialised = false

	return nil
}

// Current - the account currently holding administrator rights
func Current() *account.Account {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.current
}

// Require - ensure that the caller holds administrator rights
func Require(caller *account.Account) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	return globalData.require(caller)
}

// internal check, hold at least read lock before calling
func (data *globalDataType) require(caller *account.Account) error {
	if nil == caller || nil == caller.AccountInterface {
		return fault.NotAdministrator
	}
	if !bytes.Equal(caller.Bytes(), data.current.Bytes()) {
		return fault.NotAdministrator
	}
	return nil
}

// Transfer - hand administrator rights to a successor account
//
// effective immediately and durable across restarts
func Transfer(successor *account.Account, caller *account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if err := globalData.require(caller); nil != err {
		return err
	}
	if nil == successor || nil == successor.AccountInterface || successor.IsZero() {
		return fault.InvalidAdministrator
	}
	if successor.IsTesting() != mode.IsTesting() {
		return fault.WrongNetworkForPublicKey
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.State, stateKey, successor.Bytes())
	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.current = successor
	globalData.log.Infof("administrator: %s", successor)

	return nil
}
