// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/counter"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/util"
)

const (
	logName      = "client_rpc"
	minBandwidth = 1000000 // 1Mbps
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Bandwidth          float64  `gluamapper:"bandwidth" json:"bandwidth"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	Announce           []string `gluamapper:"announce" json:"announce"`
}

type rpcListener struct {
	log             *logger.L
	listener        net.Listener
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// Serve - accept connections on every configured listen address
func (r rpcListener) Serve() error {
	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)

		listener, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listener = listener

		go acceptRPC(listener, r.server, r.maxConnections, r.log, r.count)
	}
	return nil
}

func acceptRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Errorf("rpc.server terminated: accept error: %s", err)
			break
		}

		// connections beyond the limit are dropped straight away
		if count.Increment() > maximumConnections {
			count.Decrement()
			_ = conn.Close()
			continue
		}

		go func() {
			server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			count.Decrement()
		}()
	}
	_ = listen.Close()
	log.Error("RPC accept terminated")
}

func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if configuration.Bandwidth <= minBandwidth {
		log.Errorf("invalid %s bandwidth: %v bps < 1Mbps", logName, configuration.Bandwidth)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	// announced public addresses end up in the node's dns-txt record
	// so check them now
	for _, address := range configuration.Announce {
		if "" == address {
			continue
		}
		canonical, err := util.CanonicalIPandPort("", address)
		if nil != err {
			log.Errorf("invalid %s listen announce: %q  error: %s", logName, address, err)
			return nil, err
		}
		log.Infof("%s: announce: %s", logName, canonical)
	}

	ipType, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	return &rpcListener{
		log:             log,
		maxConnections:  configuration.MaximumConnections,
		listenIPAndPort: configuration.Listen,
		server:          server,
		count:           count,
		tlsConfig:       tlsConfig,
		ipType:          ipType,
	}, nil
}

// classify each listen address as tcp4 or tcp6, expanding a leading
// "*" to the dual stack wildcard
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		switch {
		case '*' == listen[0]:
			addrs[i] = "[::]" + ":" + strings.Split(listen, ":")[1]
			listen = "::"
			parsed[i] = "tcp"
		case '[' == listen[0]:
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		default:
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}
