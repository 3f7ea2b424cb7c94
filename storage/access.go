// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/offeringd/fault"
)

// DataAccess - writes are batched until commit, reads see
// uncommitted values through the cache
type DataAccess interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	DumpTx() []byte
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

type accessData struct {
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) DataAccess {
	return &accessData{
		inUse: false,
		db:    db,
		batch: batch,
		cache: cache,
	}
}

// Begin - mark the access as owned by one transaction
func (access *accessData) Begin() error {
	if access.inUse {
		return fault.TransactionInUse
	}
	access.inUse = true
	return nil
}

// Put - stage a write, visible immediately through Get
func (access *accessData) Put(key []byte, value []byte) {
	access.cache.Set(dbPut, string(key), value)
	access.batch.Put(key, value)
}

// Delete - stage a removal
func (access *accessData) Delete(key []byte) {
	access.cache.Set(dbDelete, string(key), []byte{})
	access.batch.Delete(key)
}

// Commit - write all staged operations in one leveldb batch
func (access *accessData) Commit() error {
	if err := access.db.Write(access.batch, nil); nil != err {
		return err
	}
	access.clear()
	return nil
}

// DumpTx - raw dump of the pending batch for diagnostics
func (access *accessData) DumpTx() []byte {
	return access.batch.Dump()
}

// Get - staged value when present, otherwise the committed value
func (access *accessData) Get(key []byte) ([]byte, error) {
	if value, found := access.cache.Get(string(key)); found {
		return value, nil
	}
	return access.db.Get(key, nil)
}

// Has - true when the key is staged or committed
func (access *accessData) Has(key []byte) (bool, error) {
	if _, found := access.cache.Get(string(key)); found {
		return true, nil
	}
	return access.db.Has(key, nil)
}

// Iterator - committed values only, staged writes are not visible
func (access *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return access.db.NewIterator(searchRange, nil)
}

func (access *accessData) InUse() bool {
	return access.inUse
}

// Abort - drop all staged operations
func (access *accessData) Abort() {
	access.clear()
}

func (access *accessData) clear() {
	access.batch.Reset()
	access.cache.Clear()
	access.inUse = false
}
