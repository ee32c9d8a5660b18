// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bank - execute instructions against the persistent ledger
//
// Each instruction runs inside its own storage transaction: it is
// committed only if the program succeeds, otherwise every write it
// made is discarded.
//
// Instructions whose writable accounts overlap are serialised by
// locking every writable account before the program starts.  This is
// what makes the receiver counter produce a gap free index sequence
// when several senders target the same wallet.
//
// The rent and clock accounts are not stored; they are presented to
// the program from the bank's own configuration and clock source.
package bank
