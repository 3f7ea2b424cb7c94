// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - holds an open connection to one offeringd node
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	testnet bool
	verbose bool
	handle  io.Writer // verbose request/reply records go here
}

// NewClient - dial an offeringd node and wrap the stream in JSON RPC
//
// the server certificate is self signed so verification is skipped,
// the caller is expected to have selected the node deliberately
func NewClient(testnet bool, connect string, verbose bool, handle io.Writer) (*Client, error) {

	conn, err := tls.Dial("tcp", connect, &tls.Config{
		InsecureSkipVerify: true,
	})
	if nil != err {
		return nil, err
	}

	client := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		testnet: testnet,
		verbose: verbose,
		handle:  handle,
	}
	return client, nil
}

// Close - finish with the node, dropping the underlying connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}
