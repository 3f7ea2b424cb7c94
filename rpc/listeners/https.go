// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/rpc/handler"
)

const (
	httpsLogName       = "http_rpc"
	minConnectionCount = 1
	httpsTimeout       = 10 * time.Second
	keepAlivePeriod    = 3 * time.Minute
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	log             *logger.L
	listenIPAndPort []string
	tlsConfig       *tls.Config
	mux             *http.ServeMux
}

// Serve - start one HTTPS server per configured listen address
func (h httpsListener) Serve() error {
	for _, listen := range h.listenIPAndPort {
		h.log.Infof("starting server: %s on: %q", httpsLogName, listen)

		// a leading "*" means all interfaces, convert to the
		// dual stack wildcard form
		if '*' == listen[0] {
			listen = "[::]" + strings.TrimPrefix(listen, "*")
		}

		go serveHTTPS(listen, h.mux, h.tlsConfig)
	}

	return nil
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

// Accept - accept with TCP keep alive turned on so dead gateway
// clients are eventually dropped
func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	conn, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = conn.SetKeepAlive(true)
	_ = conn.SetKeepAlivePeriod(keepAlivePeriod)
	return conn, nil
}

func serveHTTPS(addr string, handler http.Handler, cfg *tls.Config) {
	cfg.NextProtos = []string{"http/1.1"}

	server := &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    httpsTimeout,
		WriteTimeout:   httpsTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	listen, err := net.Listen("tcp", addr)
	if nil != err {
		return
	}

	_ = server.Serve(tls.NewListener(tcpKeepAliveListener{listen.(*net.TCPListener)}, cfg))
}

// NewHTTPS - create the gateway serving the RPC and status endpoints
//
// a nil listener is returned when no listen addresses are configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	// per path CIDR access control, matched against http.Request.RemoteAddr
	allow := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				return nil, err
			}
			set[i] = cidr
		}
		allow[path] = set
	}
	hdlr.SetAllow(allow)

	mux := http.NewServeMux()
	mux.HandleFunc("/offeringd/rpc", hdlr.RPC)
	mux.HandleFunc("/offeringd/details", hdlr.Details)
	mux.HandleFunc("/offeringd/broadcasts", hdlr.Broadcasts)
	mux.HandleFunc("/", hdlr.Root)

	return &httpsListener{
		log:             log,
		listenIPAndPort: configuration.Listen,
		tlsConfig:       tlsConfig,
		mux:             mux,
	}, nil
}
