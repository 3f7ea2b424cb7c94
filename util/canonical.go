// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/offeringd/fault"
)

// CanonicalIPandPort - make the IP:Port canonical
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//
// the prefix is prepended to the result, e.g. "tcp://" for a ZMQ
// connection string
func CanonicalIPandPort(prefix string, hostPort string) (string, error) {

	host, port, err := net.SplitHostPort(hostPort)
	if nil != err {
		return "", fault.InvalidIpAddress
	}

	IP := net.ParseIP(strings.Trim(host, " "))
	if nil == IP {
		return "", fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.Trim(port, " "))
	if nil != err {
		return "", err
	}
	if numericPort < 1 || numericPort > 65535 {
		return "", fault.InvalidPortNumber
	}

	if nil != IP.To4() {
		return prefix + IP.String() + ":" + strconv.Itoa(numericPort), nil
	}
	return prefix + "[" + IP.String() + "]:" + strconv.Itoa(numericPort), nil
}

// Connection - type to hold an IP and Port
type Connection struct {
	ip   net.IP
	port uint16
}

// NewConnection - convert a host:port string to a connection
func NewConnection(hostPort string) (*Connection, error) {

	host, port, err := net.SplitHostPort(hostPort)
	if nil != err {
		return nil, fault.InvalidIpAddress
	}

	IP := net.ParseIP(strings.Trim(host, " "))
	if nil == IP {
		return nil, fault.InvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.Trim(port, " "))
	if nil != err {
		return nil, err
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}
	c := &Connection{
		ip:   IP,
		port: uint16(numericPort),
	}
	return c, nil
}

// NewConnections - convert an array of host:port strings to connections
func NewConnections(hostPorts []string) ([]*Connection, error) {
	if 0 == len(hostPorts) {
		return nil, fault.MissingParameters
	}
	c := make([]*Connection, len(hostPorts))
	for i, hp := range hostPorts {
		err := error(nil)
		c[i], err = NewConnection(hp)
		if nil != err {
			return nil, err
		}
	}
	return c, nil
}

// CanonicalIPandPort - make the IP:Port canonical
//
// returns the connection as a prefixed string and a flag for IPv6
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {

	port := strconv.Itoa(int(conn.port))
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + port, false
	}
	return prefix + "[" + conn.ip.String() + "]:" + port, true
}

// String - representation of a connection
func (conn Connection) String() string {
	s, _ := conn.CanonicalIPandPort("")
	return s
}
