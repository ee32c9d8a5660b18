// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"encoding/binary"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/pda"
)

// ReceiverSeed - domain tag for receiver addresses
const ReceiverSeed = "receiver"

// ReceiverSize - bytes in a packed receiver
const ReceiverSize = 4

// Receiver - per wallet count of documents received
type Receiver struct {
	DocumentsCounter uint32 `json:"documentsCounter"`
}

// Pack - fixed four byte layout
func (r *Receiver) Pack() []byte {
	buffer := make([]byte, ReceiverSize)
	binary.LittleEndian.PutUint32(buffer, r.DocumentsCounter)
	return buffer
}

// UnpackReceiver - decode exactly four bytes
func UnpackReceiver(buffer []byte) (*Receiver, error) {
	if ReceiverSize != len(buffer) {
		return nil, fault.ErrDecode
	}
	return &Receiver{
		DocumentsCounter: binary.LittleEndian.Uint32(buffer),
	}, nil
}

// ReceiverSeeds - seeds, without bump, for a wallet's receiver
func ReceiverSeeds(wallet account.Address) [][]byte {
	return [][]byte{
		wallet.Bytes(),
		[]byte(ReceiverSeed),
	}
}

// FindReceiverAddress - receiver address and bump for a wallet
func FindReceiverAddress(wallet account.Address, programID account.Address) (account.Address, byte, error) {
	return pda.FindAddress(ReceiverSeeds(wallet), programID)
}
