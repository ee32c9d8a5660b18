// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - wire form of the program's operations
//
//	CreateReceiverAccount:  0x00
//	SendDocument:           0x01 ++ data_length(u32, LE) ++ data
package instruction

import (
	"encoding/binary"

	"github.com/bitmark-inc/documents/fault"
)

// TagType - first byte of a packed instruction
type TagType byte

// enumerate the possible instructions
const (
	CreateReceiverAccountTag TagType = iota
	SendDocumentTag          TagType = iota

	// this item must be last
	InvalidTag TagType = iota
)

// Packed - packed instruction
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Pack() Packed
}

// CreateReceiverAccount - create the receiver account for a wallet
//
// accounts expected:
//
//  0. [signer]   funder
//  1. [writable] receiver address derived from the wallet
//  2. []         wallet of the receiver
//  3. []         rent sysvar
//  4. []         system program
type CreateReceiverAccount struct{}

// SendDocument - create the next document account for a wallet
//
// accounts expected:
//
//  0. [signer]   sender and funder
//  1. [writable] receiver address derived from the wallet
//  2. [writable] document address derived from the wallet and counter
//  3. []         wallet of the receiver
//  4. []         rent sysvar
//  5. []         clock sysvar
//  6. []         system program
type SendDocument struct {
	Data []byte `json:"data"`
}

// Pack - a single tag byte
func (c *CreateReceiverAccount) Pack() Packed {
	return Packed{byte(CreateReceiverAccountTag)}
}

// Pack - tag followed by length prefixed data
func (s *SendDocument) Pack() Packed {
	buffer := make(Packed, 5, 5+len(s.Data))
	buffer[0] = byte(SendDocumentTag)
	binary.LittleEndian.PutUint32(buffer[1:5], uint32(len(s.Data)))
	return append(buffer, s.Data...)
}

// Unpack - turn a byte slice into an instruction
//
// the whole slice must be consumed
//
// must cast result to correct type
//
// e.g.
//
//	switch i := result.(type) {
//	case *instruction.SendDocument:
func (record Packed) Unpack() (Instruction, error) {
	if 0 == len(record) {
		return nil, fault.ErrDecode
	}

	switch TagType(record[0]) {

	case CreateReceiverAccountTag:
		if 1 != len(record) {
			return nil, fault.ErrDecode
		}
		return &CreateReceiverAccount{}, nil

	case SendDocumentTag:
		if len(record) < 5 {
			return nil, fault.ErrDecode
		}
		dataLength := uint64(binary.LittleEndian.Uint32(record[1:5]))
		if uint64(len(record)) != 5+dataLength {
			return nil, fault.ErrDecode
		}
		data := make([]byte, dataLength)
		copy(data, record[5:])
		return &SendDocument{Data: data}, nil

	default:
		return nil, fault.ErrDecode
	}
}
