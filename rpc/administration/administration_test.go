// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package administration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/mode"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/rpc/administration"
	"github.com/bitmark-inc/offeringd/rpc/fixtures"
)

func TestAdministratorRecover(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	a := administration.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		func(_ *offeringrecord.RecoveryParameters) (uint64, error) { return 42, nil },
		func(_ *offeringrecord.TransferParameters) error { return nil },
	)

	arg := offeringrecord.RecoveryParameters{
		AssetId: offeringrecord.AssetIdentifier{1, 2, 3},
		Claimant: &account.Account{
			AccountInterface: &account.ED25519Account{
				Test:      true,
				PublicKey: fixtures.AdministratorPublicKey,
			},
		},
	}

	var reply administration.RecoverReply
	err := a.Recover(&arg, &reply)
	assert.Nil(t, err, "wrong Recover")
	assert.Equal(t, uint64(42), reply.Amount, "wrong amount")
}

func TestAdministratorRecoverWhenNotInNormal(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	a := administration.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return false },
		func(_ *offeringrecord.RecoveryParameters) (uint64, error) { return 0, nil },
		func(_ *offeringrecord.TransferParameters) error { return nil },
	)

	var reply administration.RecoverReply
	err := a.Recover(&offeringrecord.RecoveryParameters{}, &reply)
	assert.Equal(t, fault.NotAvailableDuringSynchronise, err, "wrong error")
}

func TestAdministratorRecoverWhenNothingToRecover(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	a := administration.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		func(_ *offeringrecord.RecoveryParameters) (uint64, error) {
			return 0, fault.NothingToRecover
		},
		func(_ *offeringrecord.TransferParameters) error { return nil },
	)

	var reply administration.RecoverReply
	err := a.Recover(&offeringrecord.RecoveryParameters{}, &reply)
	assert.Equal(t, fault.NothingToRecover, err, "wrong error")
}

func TestAdministratorTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	a := administration.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		func(_ *offeringrecord.RecoveryParameters) (uint64, error) { return 0, nil },
		func(_ *offeringrecord.TransferParameters) error { return nil },
	)

	successor := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: fixtures.RegistrantPublicKey,
		},
	}

	arg := offeringrecord.TransferParameters{
		Successor: successor,
		Holder: &account.Account{
			AccountInterface: &account.ED25519Account{
				Test:      true,
				PublicKey: fixtures.AdministratorPublicKey,
			},
		},
	}

	var reply administration.TransferReply
	err := a.Transfer(&arg, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, successor, reply.Administrator, "wrong administrator")
}

func TestAdministratorTransferWhenNotInNormal(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	a := administration.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return false },
		func(_ *offeringrecord.RecoveryParameters) (uint64, error) { return 0, nil },
		func(_ *offeringrecord.TransferParameters) error { return nil },
	)

	var reply administration.TransferReply
	err := a.Transfer(&offeringrecord.TransferParameters{}, &reply)
	assert.Equal(t, fault.NotAvailableDuringSynchronise, err, "wrong error")
}

func TestAdministratorTransferWhenNotAdministrator(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	a := administration.New(
		logger.New(fixtures.LogCategory),
		func(_ mode.Mode) bool { return true },
		func(_ *offeringrecord.RecoveryParameters) (uint64, error) { return 0, nil },
		func(_ *offeringrecord.TransferParameters) error { return fault.NotAdministrator },
	)

	var reply administration.TransferReply
	err := a.Transfer(&offeringrecord.TransferParameters{}, &reply)
	assert.Equal(t, fault.NotAdministrator, err, "wrong error")
}
