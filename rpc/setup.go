// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/offeringd/rpc/handler"
	"github.com/bitmark-inc/offeringd/rpc/listeners"

	"github.com/bitmark-inc/offeringd/rpc/certificate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/offeringd/counter"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/rpc/server"
)

const (
	tlsName   = "client_rpc"
	httpsName = "http_rpc"
)

// counts the connected RPC clients, shared with the servers so the
// node info call can report it
var connectionCountRPC counter.Counter

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the client RPC listeners and the HTTPS gateway
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	// servers
	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	err = initialiseHTTPS(httpsConfiguration, version)
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// start the gateway serving the same methods over HTTPS
func initialiseHTTPS(configuration *listeners.HTTPSConfiguration, version string) error {

	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil
	}

	tlsConfiguration, fingerprint, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	hdlr := handler.New(
		log,
		server.Create(log, version, &connectionCountRPC),
		time.Now(),
		version,
		configuration.MaximumConnections,
	)

	httpsListener, err := listeners.NewHTTPS(configuration, log, tlsConfiguration, hdlr)
	if nil != err {
		return err
	}

	return httpsListener.Serve()
}
