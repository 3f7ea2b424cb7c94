// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/hex"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/background"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/util"
	"github.com/bitmark-inc/offeringd/zmqutil"
)

// Configuration - a block of configuration data
// this is read from the configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting offerings, assets etc.

	publicKey []byte

	endpoints []string

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start the broadcast background process
func Initialise(configuration *Configuration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	// read the keys
	privateKey, err := zmqutil.ReadPrivateKey(configuration.PrivateKey)
	if nil != err {
		globalData.log.Errorf("read private key: error: %s", err)
		return err
	}
	publicKey, err := zmqutil.ReadPublicKey(configuration.PublicKey)
	if nil != err {
		globalData.log.Errorf("read public key: error: %s", err)
		return err
	}
	globalData.log.Tracef("private key: %q", privateKey)
	globalData.log.Tracef("public key:  %q", publicKey)

	globalData.publicKey = publicKey

	// keep the canonical form of the bind addresses for the gateway
	// status page
	connections, err := util.NewConnections(configuration.Broadcast)
	if nil != err {
		globalData.log.Errorf("broadcast addresses error: %s", err)
		return err
	}
	endpoints := make([]string, len(connections))
	for i, connection := range connections {
		endpoints[i], _ = connection.CanonicalIPandPort("")
	}
	globalData.endpoints = endpoints

	if err := zmqutil.StartAuthentication(); nil != err {
		globalData.log.Errorf("zmq.AuthStart: error: %s", err)
		return err
	}

	if err := globalData.brdc.initialise(privateKey, publicKey, connections); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.publicKey = nil
	globalData.endpoints = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// PublicKey - the broadcaster's public key as hex
//
// empty until the publisher is initialised
func PublicKey() string {
	globalData.RLock()
	defer globalData.RUnlock()

	if 0 == len(globalData.publicKey) {
		return ""
	}
	return hex.EncodeToString(globalData.publicKey)
}

// Endpoints - the canonical broadcast bind addresses
func Endpoints() []string {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.endpoints
}
