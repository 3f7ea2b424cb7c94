// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sort"

	"github.com/urfave/cli"
)

// restricted view of an identity, excludes all encrypted items
type infoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	ReceiveOnly bool   `json:"receive_only"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identities := m.config.Identities

	names := make([]string, len(identities))
	i := 0
	for name := range identities {
		names[i] = name
		i += 1
	}
	sort.Strings(names)

	infoIdentities := make([]infoIdentity, 0, len(names))
	for _, name := range names {
		infoIdentities = append(infoIdentities, infoIdentity{
			Name:        name,
			Description: identities[name].Description,
			Account:     identities[name].Account,
			ReceiveOnly: 0 == len(identities[name].Salt),
		})
	}

	info := struct {
		DefaultIdentity string         `json:"default_identity"`
		TestNet         bool           `json:"testnet"`
		Connections     []string       `json:"connections"`
		Identities      []infoIdentity `json:"identities"`
	}{
		DefaultIdentity: m.config.DefaultIdentity,
		TestNet:         m.config.TestNet,
		Connections:     m.config.Connections,
		Identities:      infoIdentities,
	}

	printJson(m.w, info)
	return nil
}
