// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/util"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// NewBind - bind a list of addresses
//
// at most two sockets are produced, one carrying all IPv4 listeners
// and one carrying all IPv6 listeners
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []*util.Connection) (*zmq.Socket, *zmq.Socket, error) {

	socket4 := (*zmq.Socket)(nil)
	socket6 := (*zmq.Socket)(nil)

	closeAll := func() {
		if nil != socket4 {
			socket4.Close()
		}
		if nil != socket6 {
			socket6.Close()
		}
	}

	for i, address := range listen {
		bindTo, v6 := address.CanonicalIPandPort("tcp://")

		socket := socket4
		if v6 {
			socket = socket6
		}
		if nil == socket {
			s, err := NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				closeAll()
				return nil, nil, err
			}
			socket = s
			if v6 {
				socket6 = s
			} else {
				socket4 = s
			}
		}

		if err := socket.Bind(bindTo); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %v", i, bindTo, err)
			closeAll()
			return nil, nil, err
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}

	return socket4, socket6, nil
}

// NewServerSocket - create a socket for the server side of a CURVE
// encrypted connection
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	// any client public key is acceptable
	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	socket.SetCurveServer(1)
	socket.SetCurveSecretkey(string(privateKey))

	socket.SetZapDomain(zapDomain)

	// the public key doubles as the socket identity
	socket.SetIdentity(string(publicKey))

	socket.SetIpv6(v6)

	socket.SetHeartbeatIvl(heartbeatInterval)
	socket.SetHeartbeatTimeout(heartbeatTimeout)
	socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil
}
