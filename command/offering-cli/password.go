// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/offeringd/fault"
)

var passwordConsole *terminal.Terminal

func getTerminal() (*terminal.Terminal, int, *terminal.State) {
	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		panic(err)
	}

	if nil != passwordConsole {
		return passwordConsole, 0, oldState
	}

	tmpIO, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		panic("No console")
	}

	passwordConsole = terminal.NewTerminal(tmpIO, "offering-cli: ")

	return passwordConsole, 0, oldState
}

// prompt for a new password and verify the re-entry matches
func promptNewPassword() (string, error) {
	console, fd, state := getTerminal()
	password, err := console.ReadPassword("set identity password(length >= 8): ")
	if nil != err {
		fmt.Printf("get password fail: %s\n", err)
		return "", err
	}
	terminal.Restore(fd, state)

	passwordLen := len(password)
	if passwordLen < 8 {
		return "", fault.InvalidPasswordLength
	}

	console, fd, state = getTerminal()
	verifyPassword, err := console.ReadPassword("verify password: ")
	if nil != err {
		fmt.Printf("verify failed: %s\n", err)
		return "", fault.PasswordMismatch
	}
	terminal.Restore(fd, state)

	if password != verifyPassword {
		return "", fault.PasswordMismatch
	}

	return password, nil
}

// prompt for the password of an existing identity
func promptPassword(name string) (string, error) {
	console, fd, state := getTerminal()
	password, err := console.ReadPassword("password for \"" + name + "\": ")
	if nil != err {
		fmt.Printf("get password fail: %s\n", err)
		return "", err
	}
	terminal.Restore(fd, state)

	return password, nil
}
