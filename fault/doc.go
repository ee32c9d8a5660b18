// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Every error is a single typed instance so callers compare with ==.
// The type of an error gives its class, tested by the IsErr*
// functions:
//
//	ExistsError    something is already present
//	InvalidError   an account or argument failed a check
//	LengthError    a size limit was exceeded
//	NotFoundError  something required is absent
//	ProcessError   an operation could not proceed
//	RecordError    stored or wire data could not be decoded
//
// Unrecoverable startup errors go through PanicIfError so the reason
// reaches the log file before the process stops.
package fault
