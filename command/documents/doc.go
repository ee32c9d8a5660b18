// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// documents - command line access to a local documents ledger
//
// every command except generate, derive and version needs a Lua
// configuration file given by --config-file
//
// identities given to --funder and --sender are treated as having
// signed the instruction; either an address or a base58 private key
// from generate is accepted
package main
