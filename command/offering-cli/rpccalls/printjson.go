// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
)

// trace a request or reply as indented JSON, only in verbose mode
func (client *Client) printJson(title string, message interface{}) error {

	if !client.verbose {
		return nil
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	prefix := ""
	if "" != title {
		prefix = title + ":\n"
	}
	_, err = fmt.Fprintf(client.handle, "%s%s\n", prefix, b)
	return err
}
