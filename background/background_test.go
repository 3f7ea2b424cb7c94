// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/offeringd/background"
)

type stepper struct {
	current int
	final   int
}

const (
	firstStart  = 135
	firstStop   = 1122334455
	secondStart = 579
	secondStop  = 2013141516
)

func TestBackground(t *testing.T) {

	first := &stepper{
		current: firstStart,
		final:   firstStop,
	}
	second := &stepper{
		current: secondStart,
		final:   secondStop,
	}

	p := background.Start(background.Processes{
		first,
		second,
	}, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	// Stop only returns after every Run has finished
	if firstStop != first.current {
		t.Fatalf("shutdown not recorded: count: %d  expected: %d", first.current, firstStop)
	}
	if secondStop != second.current {
		t.Fatalf("shutdown not recorded: count: %d  expected: %d", second.current, secondStop)
	}
}

func (state *stepper) Run(args interface{}, shutdown <-chan struct{}) {

	t := args.(*testing.T)

	if firstStart != state.current && secondStart != state.current {
		t.Errorf("run started with unexpected count: %d", state.current)
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.current += 5
		t.Logf("count: %d", state.current)
		time.Sleep(time.Millisecond)
	}

	// record that the shutdown was seen
	state.current = state.final
}
