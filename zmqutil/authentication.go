// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"
)

// the ZMQ authentication handler can only be started once per process
var authStart sync.Once

// StartAuthentication - start the ZMQ CURVE security handler
func StartAuthentication() error {

	err := error(nil)
	authStart.Do(func() {
		zmq.AuthSetVerbose(false)
		err = zmq.AuthStart()
	})

	return err
}
