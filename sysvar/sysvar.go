// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sysvar - externally supplied facts and well known identities
//
// The rent and clock values are not computed here; the host places
// them in accounts at fixed identities and the processor only checks
// that the caller supplied those exact accounts.
package sysvar

import (
	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
)

// well known identities
var (
	SystemProgramID = mustDecode("11111111111111111111111111111111")
	RentID          = mustDecode("SysvarRent111111111111111111111111111111111")
	ClockID         = mustDecode("SysvarC1ock11111111111111111111111111111111")
)

func mustDecode(s string) account.Address {
	a, err := account.AddressFromBase58(s)
	fault.PanicIfError("sysvar identity: "+s, err)
	return a
}
