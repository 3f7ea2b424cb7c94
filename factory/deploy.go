// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package factory

import (
	"time"

	"github.com/ipfs/go-cid"

	"github.com/bitmark-inc/offeringd/codetemplate"
	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/offeringrecord"
	"github.com/bitmark-inc/offeringd/storage"
)

// Deploy - stage a new instance of a template on a transaction
//
// the identifier depends only on the salt and the template content
// id, deploying the same combination twice is refused
func Deploy(trx storage.Transaction, templateId cid.Cid, salt offeringrecord.Salt, arguments offeringrecord.InitialisationArguments) (offeringrecord.InstanceIdentifier, error) {

	globalData.RLock()
	defer globalData.RUnlock()

	instanceId := offeringrecord.NewInstanceIdentifier(templateId, salt)

	if !globalData.initialised {
		return instanceId, fault.NotInitialised
	}

	if !codetemplate.Has(templateId) {
		return instanceId, fault.TemplateNotFound
	}

	if _, occupied := trx.GetNB(storage.Pool.Instances, instanceId[:]); nil != occupied {
		return instanceId, fault.InstanceAlreadyDeployed
	}

	instance := &offeringrecord.InstanceRecord{
		TemplateId: templateId,
	}
	err := instance.Initialise(arguments)
	if nil != err {
		return instanceId, err
	}

	packed, err := instance.Pack()
	if nil != err {
		return instanceId, err
	}

	trx.PutNB(storage.Pool.Instances, instanceId[:], uint64(time.Now().Unix()), packed)
	globalData.log.Infof("deployed: %s", instanceId)

	return instanceId, nil
}

// Exists - check if an instance occupies an identifier
func Exists(instanceId offeringrecord.InstanceIdentifier) bool {
	_, packed := storage.Pool.Instances.GetNB(instanceId[:])
	return nil != packed
}

// Instance - fetch a deployed instance
func Instance(instanceId offeringrecord.InstanceIdentifier) (*offeringrecord.InstanceRecord, error) {
	_, packed := storage.Pool.Instances.GetNB(instanceId[:])
	if nil == packed {
		return nil, fault.InstanceNotFound
	}
	instance, err := offeringrecord.UnpackInstanceRecord(packed)
	if nil != err {
		return nil, fault.CorruptRecord
	}
	return instance, nil
}
