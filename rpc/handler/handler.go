// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/counter"
	"github.com/bitmark-inc/offeringd/mode"
	"github.com/bitmark-inc/offeringd/publish"
	"github.com/bitmark-inc/offeringd/registry"
)

// Handler - the name based access to the gateway handlers
type Handler interface {
	SetAllow(allow map[string][]*net.IPNet)
	Root(w http.ResponseWriter, r *http.Request)
	RPC(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
	Broadcasts(w http.ResponseWriter, r *http.Request)
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type httpHandler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	maximumConnections uint64
	allow              map[string][]*net.IPNet
	count              counter.Counter
}

// New - create the gateway handler
func New(
	log *logger.L,
	server *rpc.Server,
	start time.Time,
	version string,
	maximumConnections uint64,
) Handler {
	return &httpHandler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		maximumConnections: maximumConnections,
	}
}

// SetAllow - set the IP ranges allowed for each restricted api
func (s *httpHandler) SetAllow(allow map[string][]*net.IPNet) {
	s.allow = allow
}

// Root - matches anything not matched and returns error
func (s *httpHandler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (s *httpHandler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if s.count.Increment() > s.maximumConnections {
		s.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer s.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		sendInternalServerError(w)
		return
	}
}

// Details - to allow a GET for the same response as Node.Info RPC
func (s *httpHandler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("details", r) {
		s.log.Warnf("detail deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if s.count.Increment() > s.maximumConnections {
		s.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer s.count.Decrement()

	type theReply struct {
		Chain     string `json:"chain"`
		Mode      string `json:"mode"`
		Offerings uint64 `json:"offerings"`
		RPCs      uint64 `json:"rpcs"`
		Version   string `json:"version"`
		Uptime    string `json:"uptime"`
	}

	reply := theReply{
		Chain:     mode.ChainName(),
		Mode:      mode.String(),
		Offerings: registry.Total(),
		RPCs:      s.count.Uint64(),
		Version:   s.version,
		Uptime:    time.Since(s.start).String(),
	}

	sendReply(w, reply)
}

// Broadcasts - GET the subscription endpoints of the notification publisher
//
// subscribers need the bound addresses and the CURVE server public key
func (s *httpHandler) Broadcasts(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("broadcasts", r) {
		s.log.Warnf("broadcasts deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if s.count.Increment() > s.maximumConnections {
		s.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer s.count.Decrement()

	type theReply struct {
		PublicKey string   `json:"publicKey"`
		Addresses []string `json:"addresses"`
	}

	reply := theReply{
		PublicKey: publish.PublicKey(),
		Addresses: publish.Endpoints(),
	}

	sendReply(w, reply)
}

// check the remote address of a request against the allowed ranges of an api
func (s *httpHandler) isAllowed(api string, r *http.Request) bool {
	last := strings.LastIndex(r.RemoteAddr, ":")
	if last < 0 {
		return false
	}

	host := strings.Trim(r.RemoteAddr[:last], "[]")
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}

	set, ok := s.allow[api]
	if !ok {
		return false
	}

	for _, cidr := range set {
		if cidr.Contains(ip) {
			return true
		}
	}

	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, "Too Many Requests", http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
