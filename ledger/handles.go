// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/offeringd/storage"
)

// Handles - the storage pools handed to the RPC services
type Handles struct {
	Assets   storage.Handle
	Balances storage.Handle
	Registry storage.Handle
}
