// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pda - program-derived addresses
//
// An address is derived from a list of seeds and the program identity:
//
//	address = SHA-256(seed[0] ++ … ++ seed[n] ++ program ++ "ProgramDerivedAddress")
//
// A result that decodes as an ed25519 point is rejected, so FindAddress
// appends a one byte "bump" seed and searches downwards from 255 for
// the first value that yields an off-curve address.
package pda
