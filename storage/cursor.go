// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"math/big"

	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/offeringd/fault"
)

// FetchCursor - remembers the key range of an in-progress scan
type FetchCursor struct {
	pool   *PoolHandle
	window util.Range
}

// NewFetchCursor - a cursor spanning a whole pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {

	return &FetchCursor{
		pool: p,
		window: util.Range{
			Start: []byte{p.prefix}, // included in the range
			Limit: p.limit,          // excluded from the range
		},
	}
}

// NewFetchCursor - a cursor spanning a whole pool
func (p *PoolNB) NewFetchCursor() *FetchCursor {
	return p.pool.NewFetchCursor()
}

// Seek - reposition the cursor to a specific key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.window.Start = cursor.pool.prefixKey(key)
	return cursor
}

var one = big.NewInt(1)

// Fetch - up to count elements from the cursor position
//
// the cursor advances past the last element returned so repeated
// calls walk the whole range
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	if nil == cursor.pool.dataAccess {
		return nil, nil
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.window)

	elements := make([]Element, 0, count)
	n := 0
fetching:
	for iter.Next() {

		// iterator slices are only valid until the next call to
		// Next so both key and value need copying out
		key := iter.Key()
		value := iter.Value()

		element := Element{
			Key:   make([]byte, len(key)-1), // prefix stripped
			Value: make([]byte, len(value)),
		}
		copy(element.Key, key[1:])
		copy(element.Value, value)

		elements = append(elements, element)
		n += 1
		if n >= count {
			break fetching
		}
	}
	iter.Release()
	err := iter.Error()

	if n > 0 {
		cursor.advancePast(elements[n-1].Key)
	}
	return elements, err
}

// move the window start to lastKey+1, right aligned so fixed width
// big endian keys with leading zero bytes step correctly
func (cursor *FetchCursor) advancePast(lastKey []byte) {
	start := make([]byte, len(lastKey)+1)
	start[0] = cursor.pool.prefix

	next := new(big.Int).SetBytes(lastKey)
	next.Add(next, one)
	b := next.Bytes()
	if len(b) > len(lastKey) {
		b = b[len(b)-len(lastKey):] // carry out of a full width key
	}
	copy(start[1+len(lastKey)-len(b):], b)

	cursor.window.Start = start
}

// Map - run a function over every element left in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	if nil == cursor.pool.dataAccess {
		return nil
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.window)

	var err error
scanning:
	for iter.Next() {

		// copy out, see Fetch
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1)
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break scanning
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
