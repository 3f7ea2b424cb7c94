// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - in-memory view of the writes staged by a transaction
type Cache interface {
	Get(string) ([]byte, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

const (
	cacheExpiry   = 1 * time.Minute
	cacheLifetime = 2 * time.Minute
)

// staged value together with the operation that produced it
type stagedItem struct {
	op    dbOperation
	value []byte
}

type memCache struct {
	cache *cache.Cache
}

func newCache() Cache {
	return &memCache{
		cache: cache.New(cacheExpiry, cacheLifetime),
	}
}

// Get - a staged delete reads as not found
func (c *memCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return []byte{}, false
	}

	item := obj.(stagedItem)
	if dbDelete == item.op {
		return []byte{}, false
	}

	return item.value, true
}

func (c *memCache) Set(op dbOperation, key string, value []byte) {
	c.cache.Set(key, stagedItem{op: op, value: value}, cacheLifetime)
}

func (c *memCache) Clear() {
	c.cache.Flush()
}
