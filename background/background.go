// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - the interface for a background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for the stop
type T struct {
	sync.WaitGroup
	finalise []chan struct{}
}

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.finalise = make([]chan struct{}, len(processes))

	// start each background
	for i, p := range processes {
		shutdown := make(chan struct{})
		register.finalise[i] = shutdown
		register.Add(1)
		go func(p Process, shutdown <-chan struct{}) {
			// pass the shutdown to the Run loop for shutdown signalling
			p.Run(args, shutdown)
			// flag for the stop routine to wait for shutdown
			register.Done()
		}(p, shutdown)
	}
	return register
}

// Stop - stop a set of background processes
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, shutdown := range t.finalise {
		close(shutdown)
	}

	// wait for all backgrounds to finish
	t.Wait()
}
