// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/storage"
)

// globalDataType - globals for registry
type globalDataType struct {
	sync.RWMutex // to allow locking

	log *logger.L

	// set once during initialise
	initialised bool
}

// global data
var globalData globalDataType

// Initialise - start the registry
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	globalData.log.Infof("records: %d", Total())

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the registry
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}

// turn an index into its big endian key
func indexKey(index uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, index)
	return key
}

// Append - stage one offering record at the next free index
//
// numbering continues from the durable tail, stepping over any
// records already staged on the same transaction
func Append(trx storage.Transaction, offering *offeringrecord.OfferingRecord) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	packed, err := offering.Pack()
	if nil != err {
		return 0, err
	}

	index := uint64(0)
	if element, found := storage.Pool.Registry.LastElement(); found {
		index = binary.BigEndian.Uint64(element.Key) + 1
	}
	key := indexKey(index)
	for trx.Has(storage.Pool.Registry, key) {
		index += 1
		key = indexKey(index)
	}

	trx.Put(storage.Pool.Registry, key, packed)
	globalData.log.Infof("offering: %d", index)

	return index, nil
}

// Total - the number of offerings created so far
func Total() uint64 {
	if element, found := storage.Pool.Registry.LastElement(); found {
		return binary.BigEndian.Uint64(element.Key) + 1
	}
	return 0
}

// Record - fetch a single offering record by index
func Record(index uint64) (*offeringrecord.OfferingRecord, error) {
	packed := storage.Pool.Registry.Get(indexKey(index))
	if nil == packed {
		return nil, fault.RecordNotFound
	}
	offering, err := offeringrecord.UnpackOfferingRecord(packed)
	if nil != err {
		return nil, fault.CorruptRecord
	}
	return offering, nil
}

// Records - list offering records in creation order
//
// the result holds exactly the records available, a count reaching
// past the tail shrinks to fit and a start past the tail is empty
func Records(start uint64, count int) ([]offeringrecord.OfferingRecord, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	total := Total()
	if start >= total {
		return []offeringrecord.OfferingRecord{}, nil
	}
	if remaining := total - start; uint64(count) > remaining {
		count = int(remaining)
	}

	cursor := storage.Pool.Registry.NewFetchCursor().Seek(indexKey(start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]offeringrecord.OfferingRecord, len(elements))
	for i, element := range elements {
		offering, err := offeringrecord.UnpackOfferingRecord(element.Value)
		if nil != err {
			return nil, fault.CorruptRecord
		}
		records[i] = *offering
	}
	return records, nil
}
