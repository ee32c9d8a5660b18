// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validator_test

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/ledger"
	"github.com/bitmark-inc/documents/ledger/mocks"
	"github.com/bitmark-inc/documents/sysvar"
	"github.com/bitmark-inc/documents/validator"
)

var (
	programID = account.Address{0x50, 0x52, 0x4f, 0x47}
	derived   = account.Address{0xde, 0xad}
	other     = account.Address{0xbe, 0xef}
	rent      = sysvar.DefaultRent()
)

// build a store holding one account at derived
func storeWith(acc *ledger.Account) ledger.Store {
	store := ledger.NewMemoryStore()
	if nil != acc {
		_ = store.Put(derived, acc)
	}
	return store
}

func exemptAccount() *ledger.Account {
	return &ledger.Account{
		Lamports: rent.MinimumBalance(4),
		Owner:    programID,
		Data:     make([]byte, 4),
	}
}

func TestCheckPasses(t *testing.T) {
	v := validator.New(programID, storeWith(exemptAccount()))
	acc, err := v.Check(
		ledger.Meta{Address: derived, IsSigner: true, IsWritable: true},
		validator.Requirement{
			Derived:    &derived,
			Lifecycle:  validator.MustExist,
			Writable:   true,
			Signer:     true,
			Owned:      true,
			RentExempt: &rent,
		},
	)
	assert.Nil(t, err, "valid account rejected")
	assert.Equal(t, 4, len(acc.Data), "loaded account")
}

func TestSingleFailures(t *testing.T) {
	poor := exemptAccount()
	poor.Lamports -= 1

	foreign := exemptAccount()
	foreign.Owner = other

	items := []struct {
		name string
		acc  *ledger.Account
		meta ledger.Meta
		req  validator.Requirement
		err  error
	}{
		{
			name: "address",
			acc:  exemptAccount(),
			meta: ledger.Meta{Address: other},
			req:  validator.Requirement{Derived: &derived},
			err:  fault.ErrAddressDerivationMismatch,
		},
		{
			name: "absent",
			acc:  exemptAccount(),
			meta: ledger.Meta{Address: derived},
			req:  validator.Requirement{Lifecycle: validator.MustBeAbsent},
			err:  fault.ErrAlreadyInitialised,
		},
		{
			name: "exists",
			acc:  nil,
			meta: ledger.Meta{Address: derived},
			req:  validator.Requirement{Lifecycle: validator.MustExist},
			err:  fault.ErrNotInitialised,
		},
		{
			name: "writable",
			acc:  exemptAccount(),
			meta: ledger.Meta{Address: derived},
			req:  validator.Requirement{Writable: true},
			err:  fault.ErrAccountNotWritable,
		},
		{
			name: "signer",
			acc:  exemptAccount(),
			meta: ledger.Meta{Address: derived},
			req:  validator.Requirement{Signer: true},
			err:  fault.ErrMissingAuthorization,
		},
		{
			name: "owner",
			acc:  foreign,
			meta: ledger.Meta{Address: derived},
			req:  validator.Requirement{Owned: true},
			err:  fault.ErrWrongOwner,
		},
		{
			name: "rent",
			acc:  poor,
			meta: ledger.Meta{Address: derived},
			req:  validator.Requirement{RentExempt: &rent},
			err:  fault.ErrNotRentExempt,
		},
	}

	for _, item := range items {
		v := validator.New(programID, storeWith(item.acc))
		_, err := v.Check(item.meta, item.req)
		assert.Equal(t, item.err, err, item.name)
	}
}

// inputs failing two checks report the earlier check
func TestOrdering(t *testing.T) {
	poorForeign := &ledger.Account{Lamports: 1, Owner: other, Data: make([]byte, 4)}

	all := validator.Requirement{
		Derived:    &derived,
		Lifecycle:  validator.MustExist,
		Writable:   true,
		Signer:     true,
		Owned:      true,
		RentExempt: &rent,
	}

	items := []struct {
		name string
		acc  *ledger.Account
		meta ledger.Meta
		err  error
	}{
		{"address before state", nil, ledger.Meta{Address: other}, fault.ErrAddressDerivationMismatch},
		{"state before signer", nil, ledger.Meta{Address: derived, IsWritable: true}, fault.ErrNotInitialised},
		{"writable before signer", poorForeign, ledger.Meta{Address: derived}, fault.ErrAccountNotWritable},
		{"signer before owner", poorForeign, ledger.Meta{Address: derived, IsWritable: true}, fault.ErrMissingAuthorization},
		{"owner before rent", poorForeign, ledger.Meta{Address: derived, IsWritable: true, IsSigner: true}, fault.ErrWrongOwner},
	}

	for _, item := range items {
		v := validator.New(programID, storeWith(item.acc))
		_, err := v.Check(item.meta, all)
		assert.Equal(t, item.err, err, item.name)
	}
}

func TestAddressCheckedBeforeLoad(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no store calls are expected
	store := mocks.NewMockStore(ctl)

	v := validator.New(programID, store)
	_, err := v.Check(ledger.Meta{Address: other}, validator.Requirement{Derived: &derived, Lifecycle: validator.MustExist})
	assert.Equal(t, fault.ErrAddressDerivationMismatch, err, "wrong error")
}

func TestStoreError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := fmt.Errorf("read failed")
	store := mocks.NewMockStore(ctl)
	store.EXPECT().Get(derived).Return(nil, e).Times(1)

	v := validator.New(programID, store)
	_, err := v.Check(ledger.Meta{Address: derived}, validator.Requirement{Lifecycle: validator.MustExist})
	assert.Equal(t, e, err, "wrong error")
}

func TestSystemFact(t *testing.T) {
	assert.Nil(t, validator.CheckSystemFact(ledger.Meta{Address: sysvar.RentID}, sysvar.RentID), "rent")
	assert.Equal(t, fault.ErrInvalidSystemFact, validator.CheckSystemFact(ledger.Meta{Address: sysvar.ClockID}, sysvar.RentID), "clock as rent")
}
