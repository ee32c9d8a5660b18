// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/documents/account"
)

type generateResult struct {
	Address    account.Address `json:"address"`
	PrivateKey string          `json:"privateKey"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := account.NewKeyPair(rand.Reader)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "public key: %x\n", keyPair.PublicKey)
	}

	return m.print(generateResult{
		Address:    keyPair.Address(),
		PrivateKey: keyPair.PrivateKeyString(),
	})
}
