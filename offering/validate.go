// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offering

import (
	"time"

	"github.com/bitmark-inc/offeringd/constants"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/offeringrecord"
)

// Validate - check creation parameters against the clock
//
// pure check without side effects, checks are ordered and the first
// failure wins: duplicate assets, then each requested window, then
// the tranche selection
func Validate(parameters *offeringrecord.OfferingParameters, now time.Time) error {

	if parameters.AssetA == parameters.AssetB {
		return fault.DuplicateAsset
	}

	if parameters.IsPublic {
		err := validateWindow(parameters.StartTime, parameters.EndTime, now)
		if nil != err {
			return err
		}
	}

	if parameters.IsPrivate {
		err := validateWindow(parameters.PrivateStartTime, parameters.PrivateEndTime, now)
		if nil != err {
			return err
		}
	}

	if !parameters.IsPublic && !parameters.IsPrivate {
		return fault.NoTrancheSelected
	}

	return nil
}

// ordered checks for one subscription window
//
// required: endTime < now + maximum duration
//           startTime < endTime
//           startTime > now
func validateWindow(startTime uint64, endTime uint64, now time.Time) error {
	if endTime >= uint64(now.Add(constants.MaximumWindowDuration).Unix()) {
		return fault.WindowEndsTooFarAhead
	}
	if startTime >= endTime {
		return fault.WindowInverted
	}
	if startTime <= uint64(now.Unix()) {
		return fault.WindowNotInFuture
	}
	return nil
}
