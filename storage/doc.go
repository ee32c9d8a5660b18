// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte account address
// 4. lamports     = little endian uint64 (8 bytes)
//
// Accounts:
//
//	A ++ address               - ledger account
//	                             data: lamports ++ owner address ++ account data
//
// Version:
//
//	0x00 ++ "VERSION"          - database version as big endian uint32
//
// All writes go through a Transaction: the writes are collected in a
// LevelDB batch and applied in one atomic write on Commit.  Reads made
// through the transaction see its own uncommitted writes.
package storage
