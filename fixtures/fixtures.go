// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/ledger"
	"github.com/bitmark-inc/documents/sysvar"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed clock used by every test ledger
const UnixTimestamp = 1609459200

// SetupTestLogger - critical only file logger in a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// Clock - the clock every test ledger carries
func Clock() sysvar.Clock {
	return sysvar.Clock{
		Slot:          100,
		Epoch:         1,
		UnixTimestamp: UnixTimestamp,
	}
}

// NewLedger - memory store holding default rent, the fixed clock and
// the given funded accounts
func NewLedger(funded map[account.Address]uint64) *ledger.MemoryStore {
	store := ledger.NewMemoryStore()
	_ = store.Put(sysvar.RentID, &ledger.Account{Lamports: 1, Owner: sysvar.SystemProgramID, Data: sysvar.DefaultRent().Pack()})
	_ = store.Put(sysvar.ClockID, &ledger.Account{Lamports: 1, Owner: sysvar.SystemProgramID, Data: Clock().Pack()})
	for address, lamports := range funded {
		_ = store.Put(address, &ledger.Account{Lamports: lamports})
	}
	return store
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
