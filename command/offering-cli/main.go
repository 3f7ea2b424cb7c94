// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/offeringd/command/offering-cli/configuration"
)

type metadata struct {
	file             string
	config           *configuration.Configuration
	connectionOffset int
	save             bool
	testnet          bool
	verbose          bool
	e                io.Writer
	w                io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "offering-cli"
	// app.Usage = ""
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to offering `NETWORK` [bitmark|testing|local]",
		},
		cli.IntFlag{
			Name:  "connection, c",
			Value: 0,
			Usage: " connection offset `N` [0…]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.StringFlag{
			Name:  "use-agent, u",
			Value: "",
			Usage: " executable program that returns the password `EXE`",
		},
		cli.BoolFlag{
			Name:  "zero-agent-cache, z",
			Usage: " force re-entry of agent password",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate private key, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise offering-cli configuration",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*offeringd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: "+use existing private key `KEY`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new private key",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: "+use existing private key `KEY`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new private key",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+add a receive only account `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "register",
			Usage:     "register a new asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "metadata, m",
					Value: "",
					Usage: "*asset metadata `META`",
				},
				cli.Uint64Flag{
					Name:  "supply, q",
					Value: 0,
					Usage: "*initial supply credited to registrant `NUMBER`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "asset",
			Usage:     "display asset records",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "asset-id, a",
					Usage: "*asset id `HEX` (can be repeated)",
				},
			},
			Action: runAsset,
		},
		{
			Name:      "create",
			Usage:     "create a new offering",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset-a, a",
					Value: "",
					Usage: "*offered asset id `HEX`",
				},
				cli.StringFlag{
					Name:  "asset-b, b",
					Value: "",
					Usage: "*raising asset id `HEX`",
				},
				cli.Uint64Flag{
					Name:  "start-time, s",
					Value: 0,
					Usage: "*public window open `UNIX-SECONDS`",
				},
				cli.Uint64Flag{
					Name:  "end-time, e",
					Value: 0,
					Usage: "*public window close `UNIX-SECONDS`",
				},
				cli.Uint64Flag{
					Name:  "private-start-time, S",
					Value: 0,
					Usage: " private window open `UNIX-SECONDS`",
				},
				cli.Uint64Flag{
					Name:  "private-end-time, E",
					Value: 0,
					Usage: " private window close `UNIX-SECONDS`",
				},
				cli.StringFlag{
					Name:  "administrator, A",
					Value: "",
					Usage: " identity or account to administer the instances `ACCOUNT` [proposer]",
				},
				cli.BoolFlag{
					Name:  "public, P",
					Usage: "+request the public tranche",
				},
				cli.BoolFlag{
					Name:  "private, R",
					Usage: "+request the private tranche",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "records",
			Usage:     "list offering records in creation order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runRecords,
		},
		{
			Name:      "recover",
			Usage:     "recover stray tokens from the vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset-id, a",
					Value: "",
					Usage: "*asset id to sweep `HEX`",
				},
			},
			Action: runRecover,
		},
		{
			Name:      "transfer",
			Usage:     "transfer the administrator role to a successor",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "successor, s",
					Value: "",
					Usage: "*identity or account of the new administrator `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "account",
			Usage:     "display account from a public key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publickey, p",
					Value: "",
					Usage: "*hex public `KEY`",
				},
			},
			Action: runAccount,
		},
		{
			Name:   "info",
			Usage:  "display offering-cli status",
			Action: runInfo,
		},
		{
			Name:   "offeringdInfo",
			Usage:  "display offeringd status",
			Action: runOfferingdInfo,
		},
		{
			Name:   "keypair",
			Usage:  "get default identity's raw key pair",
			Action: runKeyPair,
		},
		{
			Name:   "password",
			Usage:  "change default identity's password",
			Action: runChangePassword,
		},
		{
			Name:  "version",
			Usage: "display offering-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "bitmark", "live":
			network = "bitmark"
		case "testing", "test":
			network = "testing"
		case "local", "regression":
			network = "local"
		default:
			return fmt.Errorf("network: %q can only be bitmark/testing/local", network)
		}

		connectionOffset := c.GlobalInt("connection")
		if connectionOffset < 0 {
			return fmt.Errorf("invalid connection offset: %d", connectionOffset)
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: network != "bitmark",
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configuration, err := configuration.Load(file)
			if nil != err {
				return err
			}

			if connectionOffset >= len(configuration.Connections) {
				return fmt.Errorf("invalid connection offset: %d", connectionOffset)
			}

			c.App.Metadata["config"] = &metadata{
				file:             file,
				config:           configuration,
				connectionOffset: connectionOffset,
				testnet:          configuration.TestNet,
				save:             false,
				verbose:          verbose,
				e:                e,
				w:                w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
