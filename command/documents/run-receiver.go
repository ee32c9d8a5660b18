// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/documents/account"
)

type receiverResult struct {
	Wallet           account.Address `json:"wallet"`
	Address          account.Address `json:"address"`
	DocumentsCounter uint32          `json:"documentsCounter"`
	Created          bool            `json:"created,omitempty"`
}

func runCreateReceiver(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	funder, err := identityFromString(c.String("funder"))
	if nil != err {
		return err
	}
	wallet, err := addressFromString("wallet", c.String("wallet"))
	if nil != err {
		return err
	}

	created, err := m.client.CreateReceiver(funder, wallet)
	if nil != err {
		return err
	}
	if m.verbose && !created {
		fmt.Fprintf(m.e, "receiver already exists\n")
	}

	r, address, err := m.bank.Query(m.config.Program).Receiver(wallet)
	if nil != err {
		return err
	}

	return m.print(receiverResult{
		Wallet:           wallet,
		Address:          address,
		DocumentsCounter: r.DocumentsCounter,
		Created:          created,
	})
}

func runReceiver(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	wallet, err := addressFromString("wallet", c.String("wallet"))
	if nil != err {
		return err
	}

	r, address, err := m.bank.Query(m.config.Program).Receiver(wallet)
	if nil != err {
		return err
	}

	return m.print(receiverResult{
		Wallet:           wallet,
		Address:          address,
		DocumentsCounter: r.DocumentsCounter,
	})
}
