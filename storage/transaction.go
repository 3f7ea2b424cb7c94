// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// Transaction - the write access to the pools
//
// every mutation is staged on the transaction and becomes durable,
// all of it or none of it, at Commit
type Transaction interface {
	Begin() error
	Abort()
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	PutNB(*PoolNB, []byte, uint64, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	GetNB(*PoolNB, []byte) (uint64, []byte)
	Has(*PoolHandle, []byte) bool
	Commit() error
}

type transactionData struct {
	sync.Mutex
	dataAccess []DataAccess
}

func newTransaction(access []DataAccess) Transaction {
	return &transactionData{
		dataAccess: access,
	}
}

// Begin - take exclusive write access
//
// blocks until any concurrent transaction commits or aborts
func (t *transactionData) Begin() error {
	t.Lock()
	for _, access := range t.dataAccess {
		err := access.Begin()
		if nil != err {
			t.Unlock()
			return err
		}
	}
	return nil
}

// InUse - check writes are being staged
func (t *transactionData) InUse() bool {
	for _, access := range t.dataAccess {
		if access.InUse() {
			return true
		}
	}
	return false
}

// Abort - throw away all staged writes
func (t *transactionData) Abort() {
	for _, access := range t.dataAccess {
		access.Abort()
	}
	t.Unlock()
}

// Commit - make all staged writes durable
func (t *transactionData) Commit() error {
	defer t.Unlock()
	for _, access := range t.dataAccess {
		err := access.Commit()
		if nil != err {
			access.Abort()
			return err
		}
	}
	return nil
}

// Put - stage a key/value write
func (t *transactionData) Put(h *PoolHandle, key []byte, value []byte) {
	h.put(key, value)
}

// PutN - stage a key write with a big endian uint64 value
func (t *transactionData) PutN(h *PoolHandle, key []byte, value uint64) {
	h.putN(key, value)
}

// PutNB - stage a key write with a number and bytes value
func (t *transactionData) PutNB(h *PoolNB, key []byte, nValue uint64, bValue []byte) {
	h.putNB(key, nValue, bValue)
}

// Delete - stage a key removal
func (t *transactionData) Delete(h *PoolHandle, key []byte) {
	h.remove(key)
}

// Get - read a value, seeing any staged write
func (t *transactionData) Get(h *PoolHandle, key []byte) []byte {
	return h.Get(key)
}

// GetN - read a big endian uint64 value, seeing any staged write
func (t *transactionData) GetN(h *PoolHandle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

// GetNB - read a number and bytes value, seeing any staged write
func (t *transactionData) GetNB(h *PoolNB, key []byte) (uint64, []byte) {
	return h.GetNB(key)
}

// Has - check a key exists, seeing any staged write
func (t *transactionData) Has(h *PoolHandle, key []byte) bool {
	return h.Has(key)
}
