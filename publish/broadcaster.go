// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/constants"
	"github.com/bitmark-inc/offeringd/messagebus"
	"github.com/bitmark-inc/offeringd/util"
	"github.com/bitmark-inc/offeringd/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	heartbeatInterval    = 60 * time.Second
	heartbeatCommand     = "heart"
	subscriberQueueSize  = 50
)

var heartbeatParameters = [][]byte{[]byte("beat")}

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, connections []*util.Connection) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	// allocate IPv4 and IPv6 sockets
	err := error(nil)
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, connections)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// Run - wait for new offerings, recoveries and administrator changes
// and relay them to all subscribers
//
// cached announcements are periodically repeated so a subscriber that
// connected late still receives them, and a heartbeat is published
// when the bus stays quiet so subscribers can detect a stalled
// connection
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := messagebus.Bus.Broadcast.Chan(subscriberQueueSize)

	rebroadcast := time.NewTicker(constants.RebroadcastInterval)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case item := <-queue:
			log.Infof("sending: %q  parameters: %x", item.Command, item.Parameters)
			brdc.publish(item.Command, item.Parameters)

		case <-rebroadcast.C:
			for _, item := range messagebus.Bus.Broadcast.Cached() {
				log.Debugf("repeating: %q  parameters: %x", item.Command, item.Parameters)
				brdc.publish(item.Command, item.Parameters)
			}

		case <-time.After(heartbeatInterval):
			brdc.publish(heartbeatCommand, heartbeatParameters)
		}
	}

	rebroadcast.Stop()

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send one message to both address families
func (brdc *broadcaster) publish(command string, parameters [][]byte) {
	if nil != brdc.socket4 {
		brdc.send(brdc.socket4, command, parameters)
	}
	if nil != brdc.socket6 {
		brdc.send(brdc.socket6, command, parameters)
	}
}

// send a command and its parameters as a multipart message
func (brdc *broadcaster) send(socket *zmq.Socket, command string, parameters [][]byte) {

	last := len(parameters) - 1
	if last < 0 {
		_, err := socket.Send(command, 0)
		if nil != err {
			brdc.log.Errorf("send: %q  error: %s", command, err)
		}
		return
	}

	_, err := socket.Send(command, zmq.SNDMORE)
	if nil != err {
		brdc.log.Errorf("send: %q  error: %s", command, err)
		return
	}
	for i, parameter := range parameters {
		flag := zmq.SNDMORE
		if i == last {
			flag = 0
		}
		_, err := socket.SendBytes(parameter, flag)
		if nil != err {
			brdc.log.Errorf("send: %q parameter: %d  error: %s", command, i, err)
			return
		}
	}
}
