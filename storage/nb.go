// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
)

// PoolNB - handle for a pool where each record is a big endian
// uint64 followed by arbitrary bytes
type PoolNB struct {
	pool *PoolHandle
}

// store a key/value pair with its uint64 prefix
//
// only for use inside a transaction
func (p *PoolNB) putNB(key []byte, nValue uint64, bValue []byte) {
	if 0 == len(bValue) {
		logger.Panic("poolNB.putNB 3rd parameter must not be empty")
		return
	}
	data := make([]byte, 8, 8+len(bValue))
	binary.BigEndian.PutUint64(data, nValue)
	p.pool.put(key, append(data, bValue...))
}

// remove a key
//
// only for use inside a transaction
func (p *PoolNB) remove(key []byte) {
	p.pool.remove(key)
}

// GetNB - read a record and decode first 8 bytes as big endian uint64
// and return the rest of the record as byte slice
//
// second parameter is nil if record was not found
// panics if not 9 (or more) bytes in the record
// this returns the actual element in the second parameter - copy the result if it must be preserved
func (p *PoolNB) GetNB(key []byte) (uint64, []byte) {
	return p.pool.GetNB(key)
}

// Get - read a value for a given key
func (p *PoolNB) Get(key []byte) []byte {
	return p.pool.Get(key)
}

// GetN - read the first 8 bytes of a record as big endian uint64
func (p *PoolNB) GetN(key []byte) (uint64, bool) {
	return p.pool.GetN(key)
}

// Has - check if a key exists
func (p *PoolNB) Has(key []byte) bool {
	return p.pool.Has(key)
}

// LastElement - get the last element in a pool
func (p *PoolNB) LastElement() (Element, bool) {
	return p.pool.LastElement()
}
