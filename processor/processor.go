// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - the documents program
//
// Two operations:
//
//	CreateReceiverAccount  create the per wallet counter, once
//	SendDocument           create the next document and advance the counter
//
// Every check runs before any mutation, and the counter is written
// last so that a failed document write never consumes an index.
package processor

import (
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/instruction"
	"github.com/bitmark-inc/documents/ledger"
	"github.com/bitmark-inc/documents/pda"
	"github.com/bitmark-inc/documents/state"
	"github.com/bitmark-inc/documents/system"
	"github.com/bitmark-inc/documents/sysvar"
	"github.com/bitmark-inc/documents/validator"
)

// ProgramID - default identity of the deployed program
var ProgramID = mustDecode("A2zNDj1tMdLscxaNzLetdUVRi6E6Jjr54iaQkk7axMcG")

// Processor - executes instructions against a store
type Processor struct {
	programID account.Address
	store     ledger.Store
	validator *validator.Validator
	log       *logger.L
}

// New - processor for programID using store
func New(programID account.Address, store ledger.Store, log *logger.L) *Processor {
	return &Processor{
		programID: programID,
		store:     store,
		validator: validator.New(programID, store),
		log:       log,
	}
}

// Process - decode the instruction data and route it
func (p *Processor) Process(accounts []ledger.Meta, data []byte) error {
	i, err := instruction.Packed(data).Unpack()
	if nil != err {
		return p.reject(err, "malformed instruction: %x", data)
	}

	switch ins := i.(type) {
	case *instruction.CreateReceiverAccount:
		return p.CreateReceiverAccount(accounts)
	case *instruction.SendDocument:
		return p.SendDocument(accounts, ins.Data)
	default:
		return p.reject(fault.ErrDecode, "unhandled instruction: %T", i)
	}
}

// CreateReceiverAccount - allocate the receiver for a wallet with a zero counter
func (p *Processor) CreateReceiverAccount(accounts []ledger.Meta) error {
	funder, err := ledger.Next(&accounts)
	if nil != err {
		return err
	}
	receiverMeta, err := ledger.Next(&accounts)
	if nil != err {
		return err
	}
	wallet, err := ledger.Next(&accounts)
	if nil != err {
		return err
	}
	rentMeta, err := ledger.Next(&accounts)
	if nil != err {
		return err
	}
	systemMeta, err := ledger.Next(&accounts)
	if nil != err {
		return err
	}

	rent, err := sysvar.RentFromAccount(rentMeta, p.store)
	if nil != err {
		return p.reject(err, "rent account: %s", rentMeta.Address)
	}

	receiverAddress, bump, err := state.FindReceiverAddress(wallet.Address, p.programID)
	if nil != err {
		return err
	}

	_, err = p.validator.Check(receiverMeta, validator.Requirement{
		Derived:   &receiverAddress,
		Lifecycle: validator.MustBeAbsent,
		Writable:  true,
	})
	if nil != err {
		return p.reject(err, "receiver: %s for wallet: %s", receiverMeta.Address, wallet.Address)
	}

	if err := validator.CheckSystemFact(systemMeta, sysvar.SystemProgramID); nil != err {
		return p.reject(err, "system account: %s", systemMeta.Address)
	}

	seeds := pda.WithBump(state.ReceiverSeeds(wallet.Address), bump)
	err = system.New(p.store, rent).CreateAccount(funder, receiverMeta, state.ReceiverSize, p.programID, p.programID, seeds)
	if nil != err {
		return p.reject(err, "create receiver: %s", receiverMeta.Address)
	}

	receiver := &state.Receiver{
		DocumentsCounter: 0,
	}
	if err := ledger.Write(p.store, receiverMeta, receiver.Pack()); nil != err {
		return err
	}

	p.log.Infof("created receiver: %s for wallet: %s", receiverMeta.Address, wallet.Address)
	return nil
}

// SendDocument - create the document at the receiver's current counter
func (p *Processor) SendDocument(accounts []ledger.Meta, data []byte) error {
	sender, err := ledger.Next(&accounts)
	if nil != err {
		return err
	}
	receiverMeta, err := ledger.Next(&accounts)
	if nil != err {
		return err
	}
	documentMeta, err := ledger.Next(&accounts)
	if nil != err {
		return err
	}
	wallet, err := ledger.Next(&accounts)
	if nil != err {
		return err
	}
	rentMeta, err := ledger.Next(&accounts)
	if nil != err {
		return err
	}
	clockMeta, err := ledger.Next(&accounts)
	if nil != err {
		return err
	}
	systemMeta, err := ledger.Next(&accounts)
	if nil != err {
		return err
	}

	receiverAddress, _, err := state.FindReceiverAddress(wallet.Address, p.programID)
	if nil != err {
		return err
	}

	receiverAccount, err := p.validator.Check(receiverMeta, validator.Requirement{
		Derived:   &receiverAddress,
		Lifecycle: validator.MustExist,
		Writable:  true,
	})
	if nil != err {
		return p.reject(err, "receiver: %s for wallet: %s", receiverMeta.Address, wallet.Address)
	}

	receiver, err := state.UnpackReceiver(receiverAccount.Data)
	if nil != err {
		return p.reject(err, "receiver data: %x", receiverAccount.Data)
	}
	index := receiver.DocumentsCounter

	documentAddress, bump, err := state.FindDocumentAddress(index, wallet.Address, p.programID)
	if nil != err {
		return err
	}

	_, err = p.validator.Check(documentMeta, validator.Requirement{
		Derived:   &documentAddress,
		Lifecycle: validator.MustBeAbsent,
		Writable:  true,
	})
	if nil != err {
		return p.reject(err, "document: %s index: %d", documentMeta.Address, index)
	}

	if err := validator.CheckSigner(sender); nil != err {
		return p.reject(err, "sender: %s", sender.Address)
	}

	if err := validator.CheckOwner(receiverAccount, p.programID); nil != err {
		return p.reject(err, "receiver owner: %s", receiverAccount.Owner)
	}

	rent, err := sysvar.RentFromAccount(rentMeta, p.store)
	if nil != err {
		return p.reject(err, "rent account: %s", rentMeta.Address)
	}
	clock, err := sysvar.ClockFromAccount(clockMeta, p.store)
	if nil != err {
		return p.reject(err, "clock account: %s", clockMeta.Address)
	}
	if err := validator.CheckSystemFact(systemMeta, sysvar.SystemProgramID); nil != err {
		return p.reject(err, "system account: %s", systemMeta.Address)
	}

	if err := validator.CheckRentExempt(receiverAccount, rent); nil != err {
		return p.reject(err, "receiver: %s balance: %d", receiverMeta.Address, receiverAccount.Lamports)
	}

	if math.MaxUint32 == index {
		return p.reject(fault.ErrDocumentsCounterOverflow, "receiver: %s", receiverMeta.Address)
	}

	seeds := pda.WithBump(state.DocumentSeeds(index, wallet.Address), bump)
	err = system.New(p.store, rent).CreateAccount(sender, documentMeta, state.DocumentSize(len(data)), p.programID, p.programID, seeds)
	if nil != err {
		return p.reject(err, "create document: %s", documentMeta.Address)
	}

	document := &state.Document{
		Sender:   sender.Address,
		Data:     data,
		SentAt:   clock.UnixTimestamp,
		OpenedAt: 0,
	}
	if err := ledger.Write(p.store, documentMeta, document.Pack()); nil != err {
		return err
	}

	// must be last
	receiver.DocumentsCounter = index + 1
	if err := ledger.Write(p.store, receiverMeta, receiver.Pack()); nil != err {
		return err
	}

	p.log.Infof("document: %d sent to wallet: %s by: %s", index, wallet.Address, sender.Address)
	return nil
}

// ProgramIdentity - the program this processor runs as
func (p *Processor) ProgramIdentity() account.Address {
	return p.programID
}

func (p *Processor) reject(err error, format string, arguments ...interface{}) error {
	p.log.Warnf("%s: "+format, append([]interface{}{err}, arguments...)...)
	return err
}

func mustDecode(s string) account.Address {
	a, err := account.AddressFromBase58(s)
	fault.PanicIfError("program identity: "+s, err)
	return a
}
