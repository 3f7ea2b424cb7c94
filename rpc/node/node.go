// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/offeringd/fault"

	"github.com/bitmark-inc/offeringd/counter"

	"github.com/bitmark-inc/offeringd/rpc/ratelimit"

	"github.com/bitmark-inc/offeringd/storage"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/offeringd/administrator"
	"github.com/bitmark-inc/offeringd/codetemplate"
	"github.com/bitmark-inc/offeringd/ledger"
	"github.com/bitmark-inc/offeringd/mode"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Pool    storage.Handle
	counter *counter.Counter
}

func New(log *logger.L, pools ledger.Handles, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Pool:    pools.Registry,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain         string   `json:"chain"`
	Mode          string   `json:"mode"`
	Offerings     uint64   `json:"offerings"`
	Administrator string   `json:"administrator"`
	Templates     []string `json:"templates"`
	RPCs          uint64   `json:"rpcs"`
	Version       string   `json:"Version"`
	Uptime        string   `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if node.Pool == nil {
		return fault.DatabaseIsNotSet
	}

	offerings := uint64(0)
	if element, found := node.Pool.LastElement(); found {
		offerings = binary.BigEndian.Uint64(element.Key) + 1
	}

	current := ""
	if holder := administrator.Current(); nil != holder {
		current = holder.String()
	}

	templates := make([]string, 0, 2)
	if templateId := codetemplate.PublicTemplateId(); templateId.Defined() {
		templates = append(templates, templateId.String())
	}
	if templateId := codetemplate.PrivateTemplateId(); templateId.Defined() {
		templates = append(templates, templateId.String())
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Offerings = offerings
	reply.Administrator = current
	reply.Templates = templates
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
