// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the account table seen by a program
//
// The processor never owns the account table.  It computes keys,
// validates contents and reads or writes through the Store interface
// supplied by its host.
package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
)

//go:generate mockgen -source=ledger.go -destination=mocks/mock_store.go -package=mocks

// Account - the stored state at one address
//
// an address that was never created reads as an Account with zero
// lamports, empty data and the system program (zero address) as owner
type Account struct {
	Lamports uint64          `json:"lamports"`
	Owner    account.Address `json:"owner"`
	Data     []byte          `json:"data"`
}

// Meta - an address supplied to an instruction with its access flags
type Meta struct {
	Address    account.Address `json:"address"`
	IsSigner   bool            `json:"isSigner"`
	IsWritable bool            `json:"isWritable"`
}

// Store - get and put accounts by address
type Store interface {
	Get(account.Address) (*Account, error)
	Put(account.Address, *Account) error
}

// header: lamports(8) ++ owner(32)
const headerLength = 8 + account.AddressLength

// IsInitialised - true if data has been allocated
func (acc *Account) IsInitialised() bool {
	return 0 != len(acc.Data)
}

// IsUnused - true for an address that has never been created
func (acc *Account) IsUnused() bool {
	return 0 == acc.Lamports && 0 == len(acc.Data) && acc.Owner.IsZero()
}

// Copy - a deep copy so that callers cannot alias stored data
func (acc *Account) Copy() *Account {
	data := make([]byte, len(acc.Data))
	copy(data, acc.Data)
	return &Account{
		Lamports: acc.Lamports,
		Owner:    acc.Owner,
		Data:     data,
	}
}

// Pack - persistent form: lamports(8, LE) ++ owner(32) ++ data
func (acc *Account) Pack() []byte {
	buffer := make([]byte, headerLength, headerLength+len(acc.Data))
	binary.LittleEndian.PutUint64(buffer[:8], acc.Lamports)
	copy(buffer[8:headerLength], acc.Owner[:])
	return append(buffer, acc.Data...)
}

// UnpackAccount - inverse of Pack
func UnpackAccount(buffer []byte) (*Account, error) {
	if len(buffer) < headerLength {
		return nil, fault.ErrDecode
	}
	acc := &Account{
		Lamports: binary.LittleEndian.Uint64(buffer[:8]),
		Data:     make([]byte, len(buffer)-headerLength),
	}
	copy(acc.Owner[:], buffer[8:headerLength])
	copy(acc.Data, buffer[headerLength:])
	return acc, nil
}

// Write - copy data into the allocated buffer of a writable account
func Write(store Store, meta Meta, data []byte) error {
	if !meta.IsWritable {
		return fault.ErrAccountNotWritable
	}
	acc, err := store.Get(meta.Address)
	if nil != err {
		return err
	}
	if len(data) > len(acc.Data) {
		return fault.ErrAccountDataTooSmall
	}
	copy(acc.Data, data)
	return store.Put(meta.Address, acc)
}

// Next - take the next account from a positional list
//
// the list is shortened so that successive calls walk the list in order
func Next(metas *[]Meta) (Meta, error) {
	if 0 == len(*metas) {
		return Meta{}, fault.ErrNotEnoughAccountKeys
	}
	m := (*metas)[0]
	*metas = (*metas)[1:]
	return m, nil
}
