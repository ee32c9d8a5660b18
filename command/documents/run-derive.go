// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/processor"
	"github.com/bitmark-inc/documents/state"
)

type derived struct {
	Address account.Address `json:"address"`
	Bump    byte            `json:"bump"`
}

type deriveResult struct {
	Program  account.Address `json:"program"`
	Wallet   account.Address `json:"wallet"`
	Index    uint32          `json:"index"`
	Receiver derived         `json:"receiver"`
	Document derived         `json:"document"`
}

func runDerive(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	wallet, err := addressFromString("wallet", c.String("wallet"))
	if nil != err {
		return err
	}

	index, err := indexFromInt(c.Int("index"))
	if nil != err {
		return err
	}

	program := processor.ProgramID
	if "" != c.String("program") {
		program, err = addressFromString("program", c.String("program"))
		if nil != err {
			return err
		}
	}

	result := deriveResult{
		Program: program,
		Wallet:  wallet,
		Index:   index,
	}

	result.Receiver.Address, result.Receiver.Bump, err = state.FindReceiverAddress(wallet, program)
	if nil != err {
		return err
	}
	result.Document.Address, result.Document.Bump, err = state.FindDocumentAddress(index, wallet, program)
	if nil != err {
		return err
	}

	return m.print(result)
}
