// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"container/list"
	"time"

	"github.com/bitmark-inc/offeringd/offeringrecord"
)

// how long an unreferenced asset stays cached
const (
	cacheTimeout = 60 * time.Minute
)

// to control eviction
type expiry struct {
	assetId offeringrecord.AssetIdentifier // item to remove
	expires time.Time                      // remove the record after this time
}

// eviction loop
//
// entries refreshed by duplicate registrations are requeued for the
// remainder of their extended lifetime, the durable record is never
// touched
func (state *expiryData) Run(args interface{}, shutdown <-chan struct{}) {

	log := state.log

	l := list.New()
	delay := time.After(time.Minute)
loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop

		case assetId := <-state.queue:
			log.Debugf("received: asset id: %s", assetId)
			l.PushBack(expiry{
				assetId: assetId,
				expires: time.Now().Add(cacheTimeout),
			})

		case <-delay:
			for {
				e := l.Front()
				if nil == e {
					delay = time.After(time.Minute)
					break
				}
				item := e.Value.(expiry)
				d := time.Since(item.expires)
				if d < 0 {
					delay = time.After(-d)
					break
				}
				l.Remove(e)

				globalData.Lock()
				entry, ok := globalData.cache[item.assetId]
				if ok {
					stale := time.Since(entry.lastSeen.Add(cacheTimeout))
					if stale < 0 {
						// seen again, keep for the extended lifetime
						item.expires = entry.lastSeen.Add(cacheTimeout)
						l.PushBack(item)
					} else {
						log.Debugf("evicted: asset id: %s", item.assetId)
						delete(globalData.cache, item.assetId)
					}
				}
				globalData.Unlock()
			}
		}
	}
}
