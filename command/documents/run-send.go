// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"time"
	"unicode/utf8"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/processor"
)

type documentResult struct {
	Index    uint32          `json:"index"`
	Address  account.Address `json:"address"`
	Sender   account.Address `json:"sender"`
	Size     int             `json:"size"`
	Text     string          `json:"text,omitempty"`
	Data     []byte          `json:"data,omitempty"`
	SentAt   string          `json:"sentAt"`
	OpenedAt string          `json:"openedAt,omitempty"`
}

func newDocumentResult(d *processor.IndexedDocument) documentResult {
	r := documentResult{
		Index:   d.Index,
		Address: d.Address,
		Sender:  d.Sender,
		Size:    len(d.Data),
		SentAt:  time.Unix(d.SentAt, 0).UTC().Format(time.RFC3339),
	}
	if utf8.Valid(d.Data) {
		r.Text = string(d.Data)
	} else {
		r.Data = d.Data
	}
	if d.IsOpened() {
		r.OpenedAt = time.Unix(d.OpenedAt, 0).UTC().Format(time.RFC3339)
	}
	return r
}

func runSend(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := identityFromString(c.String("sender"))
	if nil != err {
		return err
	}
	wallet, err := addressFromString("wallet", c.String("wallet"))
	if nil != err {
		return err
	}

	text := c.String("data")
	file := c.String("file")

	var data []byte
	switch {
	case "" != text && "" != file:
		return fmt.Errorf("only one of data or file is allowed")
	case "" != file:
		data, err = ioutil.ReadFile(file)
		if nil != err {
			return err
		}
	case "" != text:
		data = []byte(text)
	default:
		return fmt.Errorf("data or file is required")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sending: %d bytes from: %s to: %s\n", len(data), sender, wallet)
	}

	index, err := m.client.SendDocument(sender, wallet, data)
	if nil != err {
		return err
	}

	d, err := m.bank.Query(m.config.Program).Document(wallet, index)
	if nil != err {
		return err
	}

	return m.print(newDocumentResult(d))
}

func runDocument(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	wallet, err := addressFromString("wallet", c.String("wallet"))
	if nil != err {
		return err
	}
	index, err := indexFromInt(c.Int("index"))
	if nil != err {
		return err
	}

	d, err := m.bank.Query(m.config.Program).Document(wallet, index)
	if nil != err {
		return err
	}

	return m.print(newDocumentResult(d))
}

func runDocuments(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	wallet, err := addressFromString("wallet", c.String("wallet"))
	if nil != err {
		return err
	}

	documents, err := m.client.Documents(wallet)
	if nil != err {
		return err
	}

	results := make([]documentResult, 0, len(documents))
	for _, d := range documents {
		results = append(results, newDocumentResult(d))
	}
	return m.print(results)
}
