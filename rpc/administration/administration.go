// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package administration

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/mode"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/rpc/ratelimit"
)

const (
	rateLimitAdministrator = 200
	rateBurstAdministrator = 100
)

// Administrator - type for the RPC
type Administrator struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Recovery     func(*offeringrecord.RecoveryParameters) (uint64, error)
	Handover     func(*offeringrecord.TransferParameters) error
}

func New(
	log *logger.L,
	isNormalMode func(mode.Mode) bool,
	recovery func(*offeringrecord.RecoveryParameters) (uint64, error),
	handover func(*offeringrecord.TransferParameters) error,
) *Administrator {
	return &Administrator{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAdministrator, rateBurstAdministrator),
		IsNormalMode: isNormalMode,
		Recovery:     recovery,
		Handover:     handover,
	}
}

// RecoverReply - results from recover RPC
type RecoverReply struct {
	Amount uint64 `json:"amount,string"`
}

// Recover - sweep a stray asset balance out of the vault
func (administrator *Administrator) Recover(arguments *offeringrecord.RecoveryParameters, reply *RecoverReply) error {

	if err := ratelimit.Limit(administrator.Limiter); nil != err {
		return err
	}

	if !administrator.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	administrator.Log.Infof("Administrator.Recover: %+v", arguments)

	amount, err := administrator.Recovery(arguments)
	if nil != err {
		return err
	}

	reply.Amount = amount

	return nil
}

// ---

// TransferReply - results from transfer RPC
type TransferReply struct {
	Administrator *account.Account `json:"administrator"`
}

// Transfer - hand the administrator role to a successor
func (administrator *Administrator) Transfer(arguments *offeringrecord.TransferParameters, reply *TransferReply) error {

	if err := ratelimit.Limit(administrator.Limiter); nil != err {
		return err
	}

	if !administrator.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	administrator.Log.Infof("Administrator.Transfer: %+v", arguments)

	err := administrator.Handover(arguments)
	if nil != err {
		return err
	}

	reply.Administrator = arguments.Successor

	return nil
}
