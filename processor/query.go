// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/state"
)

// IndexedDocument - a document together with its position and address
type IndexedDocument struct {
	Index   uint32          `json:"index"`
	Address account.Address `json:"address"`
	state.Document
}

// Receiver - the receiver record of a wallet
func (p *Processor) Receiver(wallet account.Address) (*state.Receiver, account.Address, error) {
	address, _, err := state.FindReceiverAddress(wallet, p.programID)
	if nil != err {
		return nil, address, err
	}

	acc, err := p.store.Get(address)
	if nil != err {
		return nil, address, err
	}
	if !acc.IsInitialised() {
		return nil, address, fault.ErrNotInitialised
	}
	if p.programID != acc.Owner {
		return nil, address, fault.ErrWrongOwner
	}

	r, err := state.UnpackReceiver(acc.Data)
	return r, address, err
}

// Document - the document of a wallet at a specific index
func (p *Processor) Document(wallet account.Address, index uint32) (*IndexedDocument, error) {
	address, _, err := state.FindDocumentAddress(index, wallet, p.programID)
	if nil != err {
		return nil, err
	}

	acc, err := p.store.Get(address)
	if nil != err {
		return nil, err
	}
	if !acc.IsInitialised() {
		return nil, fault.ErrNotInitialised
	}
	if p.programID != acc.Owner {
		return nil, fault.ErrWrongOwner
	}

	d, err := state.UnpackDocument(acc.Data)
	if nil != err {
		return nil, err
	}

	return &IndexedDocument{
		Index:    index,
		Address:  address,
		Document: *d,
	}, nil
}

// Documents - every document of a wallet in index order
//
// a wallet without a receiver has no documents
func (p *Processor) Documents(wallet account.Address) ([]*IndexedDocument, error) {
	r, _, err := p.Receiver(wallet)
	if fault.ErrNotInitialised == err {
		return []*IndexedDocument{}, nil
	}
	if nil != err {
		return nil, err
	}

	documents := make([]*IndexedDocument, 0, r.DocumentsCounter)
	for i := uint32(0); i < r.DocumentsCounter; i += 1 {
		d, err := p.Document(wallet, i)
		if nil != err {
			return nil, err
		}
		documents = append(documents, d)
	}
	return documents, nil
}
