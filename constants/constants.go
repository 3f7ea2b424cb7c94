// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// the longest a subscription window may remain open
const (
	MaximumWindowDuration = 7 * 24 * time.Hour
)

// the time between re-broadcasts of cached announcements
const (
	RebroadcastInterval = 1 * time.Minute
)
