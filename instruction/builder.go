// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/ledger"
	"github.com/bitmark-inc/documents/state"
	"github.com/bitmark-inc/documents/sysvar"
)

// CreateReceiverAccountMetas - account list for CreateReceiverAccount
func CreateReceiverAccountMetas(funder account.Address, wallet account.Address, programID account.Address) ([]ledger.Meta, error) {
	receiver, _, err := state.FindReceiverAddress(wallet, programID)
	if nil != err {
		return nil, err
	}

	return []ledger.Meta{
		{Address: funder, IsSigner: true, IsWritable: true},
		{Address: receiver, IsWritable: true},
		{Address: wallet},
		{Address: sysvar.RentID},
		{Address: sysvar.SystemProgramID},
	}, nil
}

// SendDocumentMetas - account list for SendDocument
//
// index must be the receiver's current documents counter
func SendDocumentMetas(sender account.Address, wallet account.Address, index uint32, programID account.Address) ([]ledger.Meta, error) {
	receiver, _, err := state.FindReceiverAddress(wallet, programID)
	if nil != err {
		return nil, err
	}
	document, _, err := state.FindDocumentAddress(index, wallet, programID)
	if nil != err {
		return nil, err
	}

	return []ledger.Meta{
		{Address: sender, IsSigner: true, IsWritable: true},
		{Address: receiver, IsWritable: true},
		{Address: document, IsWritable: true},
		{Address: wallet},
		{Address: sysvar.RentID},
		{Address: sysvar.ClockID},
		{Address: sysvar.SystemProgramID},
	}, nil
}
