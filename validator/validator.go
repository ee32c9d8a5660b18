// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package validator - check supplied accounts against expectations
//
// Checks always run in the same order:
//
//  1. address matches the derived address
//  2. lifecycle state (absent or initialised)
//  3. writable
//  4. signer
//  5. owner is the program
//  6. rent exemption
//
// so an account failing several checks reports the earliest one.
package validator

import (
	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/ledger"
	"github.com/bitmark-inc/documents/sysvar"
)

// Lifecycle - expected initialisation state
type Lifecycle int

// possible lifecycle expectations
const (
	AnyState Lifecycle = iota
	MustBeAbsent
	MustExist
)

// Requirement - what an account must satisfy
type Requirement struct {
	Derived    *account.Address // nil to skip the address check
	Lifecycle  Lifecycle
	Writable   bool
	Signer     bool
	Owned      bool
	RentExempt *sysvar.Rent // nil to skip the exemption check
}

// Validator - checks accounts for one program
type Validator struct {
	programID account.Address
	store     ledger.Store
}

// New - validator reading accounts from store
func New(programID account.Address, store ledger.Store) *Validator {
	return &Validator{
		programID: programID,
		store:     store,
	}
}

// Check - load the account and apply every requested check in order
func (v *Validator) Check(meta ledger.Meta, r Requirement) (*ledger.Account, error) {

	if nil != r.Derived {
		if err := CheckAddress(meta, *r.Derived); nil != err {
			return nil, err
		}
	}

	acc, err := v.store.Get(meta.Address)
	if nil != err {
		return nil, err
	}

	if err := CheckLifecycle(acc, r.Lifecycle); nil != err {
		return nil, err
	}

	if r.Writable {
		if err := CheckWritable(meta); nil != err {
			return nil, err
		}
	}

	if r.Signer {
		if err := CheckSigner(meta); nil != err {
			return nil, err
		}
	}

	if r.Owned {
		if err := CheckOwner(acc, v.programID); nil != err {
			return nil, err
		}
	}

	if nil != r.RentExempt {
		if err := CheckRentExempt(acc, *r.RentExempt); nil != err {
			return nil, err
		}
	}

	return acc, nil
}

// CheckAddress - supplied address must equal the derived one
func CheckAddress(meta ledger.Meta, derived account.Address) error {
	if derived != meta.Address {
		return fault.ErrAddressDerivationMismatch
	}
	return nil
}

// CheckLifecycle - absent means no data has been allocated yet
func CheckLifecycle(acc *ledger.Account, l Lifecycle) error {
	switch l {
	case MustBeAbsent:
		if acc.IsInitialised() {
			return fault.ErrAlreadyInitialised
		}
	case MustExist:
		if !acc.IsInitialised() {
			return fault.ErrNotInitialised
		}
	}
	return nil
}

// CheckWritable - account was declared writable
func CheckWritable(meta ledger.Meta) error {
	if !meta.IsWritable {
		return fault.ErrAccountNotWritable
	}
	return nil
}

// CheckSigner - the party presented a signature
func CheckSigner(meta ledger.Meta) error {
	if !meta.IsSigner {
		return fault.ErrMissingAuthorization
	}
	return nil
}

// CheckOwner - only the program may mutate the account
func CheckOwner(acc *ledger.Account, programID account.Address) error {
	if programID != acc.Owner {
		return fault.ErrWrongOwner
	}
	return nil
}

// CheckRentExempt - balance keeps the account alive indefinitely
func CheckRentExempt(acc *ledger.Account, rent sysvar.Rent) error {
	if !rent.IsExempt(acc.Lamports, len(acc.Data)) {
		return fault.ErrNotRentExempt
	}
	return nil
}

// CheckSystemFact - the canonical system account was supplied
func CheckSystemFact(meta ledger.Meta, id account.Address) error {
	if id != meta.Address {
		return fault.ErrInvalidSystemFact
	}
	return nil
}
