// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package offerings

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/mode"
	"github.com/bitmark-inc/offeringd/offering"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/rpc/ratelimit"
)

const (
	rateLimitOffering = 200
	rateBurstOffering = 100
)

// limit for the records listing
const maximumRecords = 100

// Offering - type for the RPC
type Offering struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Creation     func(*offeringrecord.OfferingParameters) (*offering.CreatedOffering, error)
	Listing      func(uint64, int) ([]offeringrecord.OfferingRecord, error)
	Count        func() uint64
}

func New(
	log *logger.L,
	isNormalMode func(mode.Mode) bool,
	creation func(*offeringrecord.OfferingParameters) (*offering.CreatedOffering, error),
	listing func(uint64, int) ([]offeringrecord.OfferingRecord, error),
	count func() uint64,
) *Offering {
	return &Offering{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitOffering, rateBurstOffering),
		IsNormalMode: isNormalMode,
		Creation:     creation,
		Listing:      listing,
		Count:        count,
	}
}

// CreateReply - results from create RPC
type CreateReply struct {
	Index           uint64                            `json:"index,string"`
	Record          offeringrecord.OfferingRecord     `json:"record"`
	PublicInstance  offeringrecord.InstanceIdentifier `json:"publicInstance"`
	PrivateInstance offeringrecord.InstanceIdentifier `json:"privateInstance"`
}

// Create - create the requested offering tranches
func (offering *Offering) Create(arguments *offeringrecord.OfferingParameters, reply *CreateReply) error {

	if err := ratelimit.Limit(offering.Limiter); nil != err {
		return err
	}

	if !offering.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringSynchronise
	}

	offering.Log.Infof("Offering.Create: %+v", arguments)

	created, err := offering.Creation(arguments)
	if nil != err {
		return err
	}

	offering.Log.Infof("Offering.Create: index: %d", created.Index)

	reply.Index = created.Index
	reply.Record = created.Record
	reply.PublicInstance = created.Record.PublicInstance
	reply.PrivateInstance = created.Record.PrivateInstance

	return nil
}

// ---

// RecordsArguments - arguments for RPC
type RecordsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// RecordsReply - result from RPC
type RecordsReply struct {
	Records   []offeringrecord.OfferingRecord `json:"records"`
	NextStart uint64                          `json:"nextStart,string"`
	Total     uint64                          `json:"total,string"`
}

// Records - list offerings in creation order
func (offering *Offering) Records(arguments *RecordsArguments, reply *RecordsReply) error {

	if err := ratelimit.LimitN(offering.Limiter, arguments.Count, maximumRecords); nil != err {
		return err
	}

	offering.Log.Infof("Offering.Records: %+v", arguments)

	records, err := offering.Listing(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Records = records
	reply.NextStart = arguments.Start + uint64(len(records))
	reply.Total = offering.Count()

	return nil
}
