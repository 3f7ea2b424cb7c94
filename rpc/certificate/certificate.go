// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Get - build the TLS configuration for a listener from PEM data
//
// the second return is the certificate fingerprint used in listen
// announcements
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	fin = fingerprint(keyPair.Certificate[0])

	return &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}, fin, nil
}

// SHA3-256 over the DER form
//
// FreeBSD: openssl x509 -outform DER -in offeringd-local-rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
