// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package client - send and list documents through a host
package client

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/instruction"
	"github.com/bitmark-inc/documents/ledger"
	"github.com/bitmark-inc/documents/processor"
)

// attempts at sending when other senders keep advancing the counter
const maximumSendAttempts = 10

// Host - executes instructions and answers queries
type Host interface {
	Process(account.Address, []ledger.Meta, []byte) error
	Query(account.Address) *processor.Processor
}

// Client - documents operations for one program
type Client struct {
	host      Host
	programID account.Address
	log       *logger.L
}

// New - client for programID running on host
func New(host Host, programID account.Address) *Client {
	return &Client{
		host:      host,
		programID: programID,
		log:       logger.New("client"),
	}
}

// CreateReceiver - create the receiver of a wallet unless it exists
//
// returns true if this call created it
func (c *Client) CreateReceiver(funder account.Address, wallet account.Address) (bool, error) {
	_, address, err := c.host.Query(c.programID).Receiver(wallet)
	if nil == err {
		c.log.Debugf("receiver: %s already exists", address)
		return false, nil
	}
	if fault.ErrNotInitialised != err {
		return false, err
	}

	metas, err := instruction.CreateReceiverAccountMetas(funder, wallet, c.programID)
	if nil != err {
		return false, err
	}

	err = c.host.Process(c.programID, metas, (&instruction.CreateReceiverAccount{}).Pack())
	if fault.ErrAlreadyInitialised == err {
		return false, nil
	}
	if nil != err {
		return false, err
	}
	return true, nil
}

// SendDocument - send data to a wallet, creating its receiver first if necessary
//
// returns the index the document was stored at
func (c *Client) SendDocument(sender account.Address, wallet account.Address, data []byte) (uint32, error) {
	_, err := c.CreateReceiver(sender, wallet)
	if nil != err {
		return 0, err
	}

	packed := (&instruction.SendDocument{Data: data}).Pack()

	for attempt := 1; attempt <= maximumSendAttempts; attempt += 1 {
		r, _, err := c.host.Query(c.programID).Receiver(wallet)
		if nil != err {
			return 0, err
		}
		index := r.DocumentsCounter

		metas, err := instruction.SendDocumentMetas(sender, wallet, index, c.programID)
		if nil != err {
			return 0, err
		}

		err = c.host.Process(c.programID, metas, packed)
		if nil == err {
			return index, nil
		}

		// another sender took this index
		if fault.ErrAddressDerivationMismatch != err {
			return 0, err
		}
		c.log.Debugf("index: %d taken, attempt: %d", index, attempt)
	}
	return 0, fault.ErrAddressDerivationMismatch
}

// Documents - all documents of a wallet in index order
func (c *Client) Documents(wallet account.Address) ([]*processor.IndexedDocument, error) {
	return c.host.Query(c.programID).Documents(wallet)
}
