// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codetemplate

import (
	"bytes"
	"sync"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/storage"
)

// globals for background process
type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	publicId    cid.Cid
	privateId   cid.Cid
	initialised bool
}

// global storage
var globalData globalDataType

// Initialise - open the template pool and store the built in programs
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("codetemplate")
	globalData.log.Info("starting…")

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	publicId, err := store(trx, publicTemplate)
	if nil != err {
		trx.Abort()
		return err
	}
	privateId, err := store(trx, privateTemplate)
	if nil != err {
		trx.Abort()
		return err
	}
	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.publicId = publicId
	globalData.privateId = privateId

	globalData.log.Infof("public template:  %s", publicId)
	globalData.log.Infof("private template: %s", privateId)

	globalData.initialised = true
	return nil
}

// Finalise - shut down the template pool
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// ContentId - derive the content id of a template blob
//
// CIDv1, raw codec over a sha2-256 multihash, computable by any
// client holding the program bytes
func ContentId(blob []byte) cid.Cid {
	sum, err := multihash.Sum(blob, multihash.SHA2_256, -1)
	logger.PanicIfError("codetemplate: multihash", err)
	return cid.NewCidV1(cid.Raw, sum)
}

// Store - add a template blob to the pool
//
// idempotent, storing the same bytes again is a no-op returning the
// same id, writes are staged on the caller's transaction
func Store(trx storage.Transaction, blob []byte) (cid.Cid, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return cid.Undef, fault.NotInitialised
	}
	return store(trx, blob)
}

// store without the initialisation check, for use during Initialise
func store(trx storage.Transaction, blob []byte) (cid.Cid, error) {
	if 0 == len(blob) {
		return cid.Undef, fault.TemplateNotFound
	}

	templateId := ContentId(blob)
	key := templateId.Bytes()

	if stored := trx.Get(storage.Pool.Templates, key); nil != stored {
		// content addressing makes differing stored bytes impossible
		if !bytes.Equal(stored, blob) {
			return cid.Undef, fault.DataInconsistent
		}
		return templateId, nil
	}

	trx.Put(storage.Pool.Templates, key, blob)
	return templateId, nil
}

// Get - fetch a template blob by its content id
func Get(templateId cid.Cid) ([]byte, error) {
	blob := storage.Pool.Templates.Get(templateId.Bytes())
	if nil == blob {
		return nil, fault.TemplateNotFound
	}
	return blob, nil
}

// Has - check a template is in the pool
func Has(templateId cid.Cid) bool {
	return storage.Pool.Templates.Has(templateId.Bytes())
}

// PublicTemplateId - content id of the built in public tranche program
func PublicTemplateId() cid.Cid {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.publicId
}

// PrivateTemplateId - content id of the built in private tranche program
func PrivateTemplateId() cid.Cid {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.privateId
}
