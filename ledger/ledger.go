// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/background"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/mode"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/storage"
)

// the cached data
type cacheData struct {
	packed   offeringrecord.Packed // stored record bytes
	lastSeen time.Time             // refreshed by duplicate registrations
}

// expiry background
type expiryData struct {
	log   *logger.L
	queue chan offeringrecord.AssetIdentifier
}

// globals
type globalDataType struct {
	sync.RWMutex
	log        *logger.L
	expiry     expiryData
	background *background.T
	cache      map[offeringrecord.AssetIdentifier]*cacheData
}

// global storage
var globalData globalDataType

// Initialise - start the asset ledger
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.cache {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	// for expiry requests, only a small queue should be sufficient
	globalData.expiry.log = logger.New("ledger-expiry")
	globalData.expiry.queue = make(chan offeringrecord.AssetIdentifier, 10)

	globalData.cache = make(map[offeringrecord.AssetIdentifier]*cacheData)

	// list of background processes to start
	processes := background.Processes{
		&globalData.expiry,
	}

	globalData.background = background.Start(processes, nil)

	return nil
}

// Finalise - stop the asset ledger
func Finalise() error {
	if nil == globalData.cache {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	globalData.background.Stop()

	globalData.Lock()
	globalData.cache = nil
	globalData.Unlock()

	return nil
}

// Register - store a signed asset registration
//
// the registrant's signature is verified by packing, the packed
// record becomes the stored form and the whole supply is credited to
// the registrant
//
// re-registration of identical data is a no-op reporting duplicate,
// the same identifier with different data is refused
func Register(asset *offeringrecord.AssetData) (offeringrecord.AssetIdentifier, bool, error) {
	assetId := asset.AssetId()

	packedAsset, err := asset.Pack(asset.Registrant)
	if nil != err {
		return assetId, false, err
	}

	// fast path, recently seen
	globalData.Lock()
	if entry, ok := globalData.cache[assetId]; ok {
		same := bytes.Equal(entry.packed, packedAsset)
		if same {
			entry.lastSeen = time.Now()
		}
		globalData.Unlock()
		if !same {
			return assetId, false, fault.AssetAlreadyRegistered
		}
		return assetId, true, nil
	}
	globalData.Unlock()

	// already durable
	if _, stored := storage.Pool.Assets.GetNB(assetId[:]); nil != stored {
		if !bytes.Equal(stored, packedAsset) {
			return assetId, false, fault.AssetAlreadyRegistered
		}
		cacheAsset(assetId, stored)
		return assetId, true, nil
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return assetId, false, err
	}

	trx.PutNB(storage.Pool.Assets, assetId[:], uint64(time.Now().Unix()), packedAsset)
	trx.PutN(storage.Pool.Balances, balanceKey(assetId, asset.Registrant), asset.Supply)

	err = trx.Commit()
	if nil != err {
		return assetId, false, err
	}

	globalData.log.Infof("registered: %s  supply: %d", assetId, asset.Supply)
	cacheAsset(assetId, packedAsset)

	return assetId, false, nil
}

// add to the cache and schedule eviction
func cacheAsset(assetId offeringrecord.AssetIdentifier, packed offeringrecord.Packed) {
	globalData.Lock()
	globalData.cache[assetId] = &cacheData{
		packed:   packed,
		lastSeen: time.Now(),
	}
	globalData.Unlock()
	globalData.expiry.queue <- assetId
}

// Exists - check an asset has been registered
func Exists(assetId offeringrecord.AssetIdentifier) bool {
	globalData.RLock()
	_, ok := globalData.cache[assetId]
	globalData.RUnlock()
	if ok {
		return true
	}
	return storage.Pool.Assets.Has(assetId[:])
}

// Get - fetch a registered asset
func Get(assetId offeringrecord.AssetIdentifier) (*offeringrecord.AssetData, error) {
	globalData.RLock()
	entry, ok := globalData.cache[assetId]
	globalData.RUnlock()

	var packed offeringrecord.Packed
	if ok {
		packed = entry.packed
	} else {
		_, stored := storage.Pool.Assets.GetNB(assetId[:])
		if nil == stored {
			return nil, fault.AssetNotFound
		}
		packed = stored
	}

	unpacked, _, err := packed.Unpack(mode.IsTesting())
	if nil != err {
		return nil, err
	}
	asset, ok := unpacked.(*offeringrecord.AssetData)
	if !ok {
		return nil, fault.CorruptRecord
	}
	return asset, nil
}

// Balance - current holding of an account for one asset
func Balance(assetId offeringrecord.AssetIdentifier, owner *account.Account) uint64 {
	balance, _ := storage.Pool.Balances.GetN(balanceKey(assetId, owner))
	return balance
}

// Transfer - move part of a holding between accounts
//
// all writes are staged on the caller's transaction so a transfer
// commits together with whatever operation required it
func Transfer(trx storage.Transaction, assetId offeringrecord.AssetIdentifier, from *account.Account, to *account.Account, amount uint64) error {
	if !Exists(assetId) {
		return fault.AssetNotFound
	}
	if 0 == amount {
		return nil
	}

	fromKey := balanceKey(assetId, from)
	balance, _ := trx.GetN(storage.Pool.Balances, fromKey)
	if balance < amount {
		return fault.InsufficientFunds
	}

	// a self transfer must not stage a delete and a put on the same key
	if bytes.Equal(from.Bytes(), to.Bytes()) {
		return nil
	}

	if balance == amount {
		trx.Delete(storage.Pool.Balances, fromKey)
	} else {
		trx.PutN(storage.Pool.Balances, fromKey, balance-amount)
	}

	toKey := balanceKey(assetId, to)
	current, _ := trx.GetN(storage.Pool.Balances, toKey)
	trx.PutN(storage.Pool.Balances, toKey, current+amount)

	return nil
}

// balance pool key, asset id then the owner's account bytes
func balanceKey(assetId offeringrecord.AssetIdentifier, owner *account.Account) []byte {
	return append(assetId[:], owner.Bytes()...)
}
