// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offering

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/fault"
)

// globalDataType - globals for offering
type globalDataType struct {
	sync.RWMutex // to allow locking

	log *logger.L

	// set once during initialise
	initialised bool
}

// global data
var globalData globalDataType

// Initialise - start the offering flows
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("offering")
	globalData.log.Info("starting…")

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the offering flows
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}
