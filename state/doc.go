// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package state - layout of the program owned accounts
//
// All integers are little endian.
//
//	Receiver:  documents_counter(u32)
//
//	Document:  sender(32) ++ data_length(u32) ++ data
//	           ++ sent_at(i64) ++ opened_at(i64)
//
// Addresses:
//
//	Receiver:  derive(wallet ++ "receiver")
//	Document:  derive(wallet ++ decimal(index) ++ "document")
package state
