// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/offeringd/account"
	"github.com/bitmark-inc/offeringd/fault"
)

// Configuration - JSON data for the client configuration file
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	TestNet         bool                `json:"testnet"`
	Connections     []string            `json:"connections"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - public fields plus the password encrypted private key
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// Load - decode a configuration file
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	if err := json.NewDecoder(f).Decode(options); nil != err {
		return nil, err
	}

	return options, nil
}

// Identity - look up a named identity
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.IdentityNameNotFound
	}

	return &id, nil
}

// Account - look up a named identity and decode its account
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return account.AccountFromBase58(id.Account)
}

// Private - look up a named identity and decrypt its private key
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - encrypt a private key under the password and store
// the result as a named identity
func (config *Configuration) AddIdentity(name string, description string, privateKey string, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	private, err := account.PrivateKeyFromBase58(privateKey)
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(privateKey, secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     private.Account().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}

	return nil
}

// AddReceiveOnlyIdentity - store a named identity that has no
// private part, only the account
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	if _, err := account.AccountFromBase58(acc); nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
		Data:        "",
		Salt:        "",
	}

	return nil
}
