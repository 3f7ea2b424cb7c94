// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os/exec"
)

const (
	passwordTag = "offering-cli:password:"
)

// run an askpass style agent to obtain the password
//
// the agent receives:
//   --clear             - only when dropping a cached password
//   --confirm=1         - ask twice and compare
//   cache-id            - key for the agent password cache
//   error-message       - blank
//   prompt              - names the identity
//   description         - shows the operation being authorised
func passwordFromAgent(name string, title string, agent string, clear bool) (string, error) {

	arguments := []string{}
	if clear {
		arguments = append(arguments, "--clear")
	}
	arguments = append(arguments,
		"--confirm=1",
		passwordTag+name,
		"",
		"Password for: "+name,
		"Enter password to: "+title,
	)

	out, err := exec.Command(agent, arguments...).Output()
	return string(out), err
}
