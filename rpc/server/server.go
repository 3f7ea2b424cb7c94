// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/offeringd/counter"
	"github.com/bitmark-inc/offeringd/ledger"
	"github.com/bitmark-inc/offeringd/mode"
	"github.com/bitmark-inc/offeringd/offering"
	"github.com/bitmark-inc/offeringd/registry"
	"github.com/bitmark-inc/offeringd/rpc/administration"
	"github.com/bitmark-inc/offeringd/rpc/assets"
	"github.com/bitmark-inc/offeringd/rpc/node"
	"github.com/bitmark-inc/offeringd/rpc/offerings"
	"github.com/bitmark-inc/offeringd/storage"
)

func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	// pool handles are only usable after the database is open
	pools := ledger.Handles{}
	if storage.IsInitialised() {
		pools = ledger.Handles{
			Assets:   storage.Pool.Assets,
			Balances: storage.Pool.Balances,
			Registry: storage.Pool.Registry,
		}
	}

	server := rpc.NewServer()

	_ = server.Register(offerings.New(log, mode.Is, offering.Create, registry.Records, registry.Total))
	_ = server.Register(administration.New(log, mode.Is, offering.Recover, offering.TransferAdministrator))
	_ = server.Register(assets.New(log, pools, mode.Is, mode.IsTesting, ledger.Register))
	_ = server.Register(node.New(log, pools, start, version, rpcCount))

	return server
}
