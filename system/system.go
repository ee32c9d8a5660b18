// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package system - the allocator service
//
// Creates an account once: tops the target up to the rent exempt
// minimum from the funder, allocates zero filled data and assigns the
// owner.  A target that only holds lamports is still uncreated.  A
// program-derived target cannot sign, so the creating program proves
// its right by presenting the seeds that derive the target.
package system

import (
	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/ledger"
	"github.com/bitmark-inc/documents/pda"
	"github.com/bitmark-inc/documents/sysvar"
)

// MaxAccountDataLength - largest allocation permitted
const MaxAccountDataLength = sysvar.MaxAccountDataLength

// Allocator - creates accounts in a store
type Allocator struct {
	store ledger.Store
	rent  sysvar.Rent
}

// New - allocator funding accounts to the rent exempt minimum
func New(store ledger.Store, rent sysvar.Rent) *Allocator {
	return &Allocator{
		store: store,
		rent:  rent,
	}
}

// CreateAccount - fund, size and assign a new account
//
// signerSeeds must include the bump; they are ignored when the target
// itself signed
func (a *Allocator) CreateAccount(funder ledger.Meta, target ledger.Meta, space int, owner account.Address, programID account.Address, signerSeeds [][]byte) error {

	if !funder.IsSigner {
		return fault.ErrMissingAuthorization
	}

	if !target.IsSigner {
		derived, err := pda.CreateAddress(signerSeeds, programID)
		if nil != err || derived != target.Address {
			return fault.ErrMissingAuthorization
		}
	}

	if !funder.IsWritable || !target.IsWritable {
		return fault.ErrAccountNotWritable
	}

	if space < 0 || space > MaxAccountDataLength {
		return fault.ErrInvalidAccountDataLength
	}

	targetAccount, err := a.store.Get(target.Address)
	if nil != err {
		return err
	}
	if 0 != len(targetAccount.Data) || !targetAccount.Owner.IsZero() {
		return fault.ErrAccountAlreadyInUse
	}

	lamports := a.rent.MinimumBalance(space)
	if 0 == lamports {
		lamports = 1
	}

	transfer := uint64(0)
	if targetAccount.Lamports < lamports {
		transfer = lamports - targetAccount.Lamports
	}

	funderAccount, err := a.store.Get(funder.Address)
	if nil != err {
		return err
	}
	if funderAccount.Lamports < transfer {
		return fault.ErrInsufficientFunds
	}
	funderAccount.Lamports -= transfer

	created := &ledger.Account{
		Lamports: targetAccount.Lamports + transfer,
		Owner:    owner,
		Data:     make([]byte, space),
	}

	if 0 != transfer {
		if err := a.store.Put(funder.Address, funderAccount); nil != err {
			return err
		}
	}
	return a.store.Put(target.Address, created)
}

// Rent - the rent used for funding
func (a *Allocator) Rent() sysvar.Rent {
	return a.rent
}
