// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/fixtures"
)

// name the class an error belongs to, or "" if it matches none or several
func classOf(err error) string {
	classes := []struct {
		name string
		is   func(error) bool
	}{
		{"exists", fault.IsErrExists},
		{"invalid", fault.IsErrInvalid},
		{"length", fault.IsErrLength},
		{"not found", fault.IsErrNotFound},
		{"process", fault.IsErrProcess},
		{"record", fault.IsErrRecord},
	}
	found := ""
	for _, c := range classes {
		if c.is(err) {
			if "" != found {
				return ""
			}
			found = c.name
		}
	}
	return found
}

func TestClasses(t *testing.T) {
	tests := []struct {
		err   error
		class string
	}{
		{fault.ExistsError("made up"), "exists"},
		{fault.RecordError("made up"), "record"},
		{fault.ErrAccountAlreadyInUse, "exists"},
		{fault.ErrAlreadyInitialised, "exists"},
		{fault.ErrAddressDerivationMismatch, "invalid"},
		{fault.ErrWrongOwner, "invalid"},
		{fault.ErrAccountDataTooSmall, "length"},
		{fault.ErrMaxSeedLengthExceeded, "length"},
		{fault.ErrNotEnoughAccountKeys, "not found"},
		{fault.ErrNotInitialised, "not found"},
		{fault.ErrPanicLogAlreadyOpen, "exists"},
		{fault.ErrInvalidRent, "invalid"},
		{fault.ErrDerivationExhausted, "process"},
		{fault.ErrDocumentsCounterOverflow, "process"},
		{fault.ErrDatabaseVersion, "record"},
		{fault.ErrDecode, "record"},
		{errors.New("plain"), ""},
	}

	for i, item := range tests {
		assert.Equal(t, item.class, classOf(item.err), "%d: class of %q", i, item.err)
	}
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("nothing", nil) }, "nil error")

	defer func() {
		assert.Contains(t, recover(), "setup failed with error: cannot decode data", "panic value")
	}()
	fault.PanicIfError("setup", fault.ErrDecode)
	t.Error("expected a panic")
}

// every validation failure must be distinguishable by its message
func TestDistinctMessages(t *testing.T) {
	taxonomy := []error{
		fault.ErrAddressDerivationMismatch,
		fault.ErrAlreadyInitialised,
		fault.ErrNotInitialised,
		fault.ErrMissingAuthorization,
		fault.ErrWrongOwner,
		fault.ErrNotRentExempt,
		fault.ErrInvalidSystemFact,
		fault.ErrDecode,
		fault.ErrDerivationExhausted,
		fault.ErrNotEnoughAccountKeys,
		fault.ErrAccountNotWritable,
		fault.ErrPanicLogAlreadyOpen,
		fault.ErrStorageAlreadyInitialised,
	}

	seen := make(map[string]int)
	for i, err := range taxonomy {
		if j, ok := seen[err.Error()]; ok {
			t.Errorf("%d: message %q duplicates entry: %d", i, err, j)
		}
		seen[err.Error()] = i
	}
}

// runs last: leaves the PANIC channel open on a finalised logger
func TestInitialiseTwice(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	defer fault.Finalise()

	assert.Nil(t, fault.Initialise(), "first")
	err := fault.Initialise()
	assert.Equal(t, fault.ErrPanicLogAlreadyOpen, err, "second")
	assert.NotEqual(t, fault.ErrAlreadyInitialised, err, "distinct from account lifecycle")
}
