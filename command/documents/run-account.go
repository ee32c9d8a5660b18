// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/ledger"
)

type accountResult struct {
	Address  account.Address `json:"address"`
	Lamports uint64          `json:"lamports"`
	Owner    account.Address `json:"owner"`
	Size     int             `json:"size"`
	Data     string          `json:"data"`
}

func newAccountResult(address account.Address, acc *ledger.Account) accountResult {
	return accountResult{
		Address:  address,
		Lamports: acc.Lamports,
		Owner:    acc.Owner,
		Size:     len(acc.Data),
		Data:     hex.EncodeToString(acc.Data),
	}
}

func runAirdrop(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := addressFromString("address", c.String("address"))
	if nil != err {
		return err
	}

	acc, err := m.bank.Airdrop(address, c.Uint64("lamports"))
	if nil != err {
		return err
	}

	return m.print(newAccountResult(address, acc))
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := addressFromString("address", c.String("address"))
	if nil != err {
		return err
	}

	acc, err := m.bank.Account(address)
	if nil != err {
		return err
	}

	return m.print(newAccountResult(address, acc))
}

func runAccounts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	results := make([]accountResult, 0, 10)
	err := m.bank.Accounts(func(address account.Address, acc *ledger.Account) error {
		results = append(results, newAccountResult(address, acc))
		return nil
	})
	if nil != err {
		return err
	}

	return m.print(results)
}
