// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/offeringd/fault"
	"github.com/bitmark-inc/offeringd/util"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
	publicLength  = 32
	privateLength = 32
)

// MakeKeyPair - generate a CURVE keypair, each half written to its
// own tagged hex file
//
// refuses to overwrite either file if it already exists
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	for _, name := range []string{publicKeyFileName, privateKeyFileName} {
		if util.EnsureFileExists(name) {
			return fault.KeyFileAlreadyExists
		}
	}

	// ZMQ produces the pair in Z85 (ZeroMQ Base-85 Encoding)
	// see: http://rfc.zeromq.org/spec:32
	z85Public, z85Private, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	err = writeKeyFile(publicKeyFileName, taggedPublic, z85Public, 0666)
	if nil != err {
		return err
	}

	err = writeKeyFile(privateKeyFileName, taggedPrivate, z85Private, 0600)
	if nil != err {
		os.Remove(publicKeyFileName)
		return err
	}

	return nil
}

// convert one Z85 key half to its tagged hex file
func writeKeyFile(name string, tag string, z85 string, mode os.FileMode) error {
	line := tag + hex.EncodeToString([]byte(zmq.Z85decode(z85))) + "\n"
	return ioutil.WriteFile(name, []byte(line), mode)
}

// ReadPublicKey - decode a tagged public key string to its 32 bytes
func ReadPublicKey(key string) ([]byte, error) {
	data, isPrivate, err := ParseKey(key)
	switch {
	case nil != err:
		return []byte{}, err
	case isPrivate:
		return []byte{}, fault.NotPublicKey
	}
	return data, nil
}

// ReadPrivateKey - decode a tagged private key string to its 32 bytes
func ReadPrivateKey(key string) ([]byte, error) {
	data, isPrivate, err := ParseKey(key)
	switch {
	case nil != err:
		return []byte{}, err
	case !isPrivate:
		return []byte{}, fault.NotPrivateKey
	}
	return data, nil
}

// ParseKey - decode a tagged key string, the bool is true for a
// private key
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	switch {
	case strings.HasPrefix(s, taggedPrivate):
		h, err := decodeTagged(s[len(taggedPrivate):], privateLength, fault.InvalidPrivateKey)
		if nil != err {
			return []byte{}, false, err
		}
		return h, true, nil

	case strings.HasPrefix(s, taggedPublic):
		h, err := decodeTagged(s[len(taggedPublic):], publicLength, fault.InvalidPublicKey)
		if nil != err {
			return []byte{}, false, err
		}
		return h, false, nil
	}

	return []byte{}, false, fault.NotPublicKey
}

// hex part of a tagged key with an exact length check
func decodeTagged(hexPart string, keyLength int, invalid error) ([]byte, error) {
	h, err := hex.DecodeString(hexPart)
	if nil != err {
		return []byte{}, err
	}
	if keyLength != len(h) {
		return []byte{}, invalid
	}
	return h, nil
}
