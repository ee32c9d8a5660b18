// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank

import (
	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/ledger"
	"github.com/bitmark-inc/documents/storage"
	"github.com/bitmark-inc/documents/sysvar"
)

// accounts read and written through a storage transaction
type accountStore struct {
	trx storage.Transaction
}

func (s *accountStore) Get(address account.Address) (*ledger.Account, error) {
	buffer, err := s.trx.Get(storage.Pool.Accounts, address.Bytes())
	if nil != err {
		return nil, err
	}
	return unpack(buffer)
}

// an unused account is removed rather than stored
func (s *accountStore) Put(address account.Address, acc *ledger.Account) error {
	if acc.IsUnused() {
		s.trx.Delete(storage.Pool.Accounts, address.Bytes())
		return nil
	}
	s.trx.Put(storage.Pool.Accounts, address.Bytes(), acc.Pack())
	return nil
}

// read only view of committed accounts
type committedStore struct{}

func (committedStore) Get(address account.Address) (*ledger.Account, error) {
	buffer, err := storage.Pool.Accounts.Get(address.Bytes())
	if nil != err {
		return nil, err
	}
	return unpack(buffer)
}

func (committedStore) Put(address account.Address, acc *ledger.Account) error {
	return fault.ErrAccountNotWritable
}

func unpack(buffer []byte) (*ledger.Account, error) {
	if nil == buffer {
		return &ledger.Account{}, nil
	}
	return ledger.UnpackAccount(buffer)
}

// presents the rent and clock accounts over another store
type sysvarStore struct {
	ledger.Store
	rent  sysvar.Rent
	clock sysvar.Clock
}

func (s *sysvarStore) Get(address account.Address) (*ledger.Account, error) {
	switch address {
	case sysvar.RentID:
		return sysvarAccount(s.rent.Pack()), nil
	case sysvar.ClockID:
		return sysvarAccount(s.clock.Pack()), nil
	default:
		return s.Store.Get(address)
	}
}

func (s *sysvarStore) Put(address account.Address, acc *ledger.Account) error {
	if isSysvar(address) {
		return fault.ErrAccountNotWritable
	}
	return s.Store.Put(address, acc)
}

func sysvarAccount(data []byte) *ledger.Account {
	return &ledger.Account{
		Lamports: 1,
		Owner:    sysvar.SystemProgramID,
		Data:     data,
	}
}

func isSysvar(address account.Address) bool {
	return sysvar.RentID == address || sysvar.ClockID == address
}
