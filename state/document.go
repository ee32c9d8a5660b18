// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"encoding/binary"
	"strconv"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/pda"
)

// DocumentSeed - domain tag for document addresses
const DocumentSeed = "document"

// sender(32) ++ data_length(4) ++ sent_at(8) ++ opened_at(8)
const documentFixedSize = account.AddressLength + 4 + 8 + 8

// Document - one item sent to a receiver
//
// OpenedAt of zero means not yet opened
type Document struct {
	Sender   account.Address `json:"sender"`
	Data     []byte          `json:"data"`
	SentAt   int64           `json:"sentAt"`
	OpenedAt int64           `json:"openedAt"`
}

// NewDocument - zero filled document with room for dataSize bytes
func NewDocument(dataSize int) *Document {
	return &Document{
		Data: make([]byte, dataSize),
	}
}

// DocumentSize - bytes needed to store a document with dataSize bytes of data
//
// always equal to len(NewDocument(dataSize).Pack())
func DocumentSize(dataSize int) int {
	return documentFixedSize + dataSize
}

// Pack - concatenate fields in layout order
func (d *Document) Pack() []byte {
	buffer := make([]byte, 0, DocumentSize(len(d.Data)))
	buffer = append(buffer, d.Sender[:]...)
	buffer = appendUint32(buffer, uint32(len(d.Data)))
	buffer = append(buffer, d.Data...)
	buffer = appendUint64(buffer, uint64(d.SentAt))
	buffer = appendUint64(buffer, uint64(d.OpenedAt))
	return buffer
}

// UnpackDocument - decode a whole buffer, trailing bytes are an error
func UnpackDocument(buffer []byte) (*Document, error) {
	if len(buffer) < documentFixedSize {
		return nil, fault.ErrDecode
	}

	d := &Document{}
	n := copy(d.Sender[:], buffer)

	dataLength := uint64(binary.LittleEndian.Uint32(buffer[n:]))
	n += 4

	if uint64(len(buffer)) != uint64(documentFixedSize)+dataLength {
		return nil, fault.ErrDecode
	}

	d.Data = make([]byte, dataLength)
	n += copy(d.Data, buffer[n:])

	d.SentAt = int64(binary.LittleEndian.Uint64(buffer[n:]))
	n += 8
	d.OpenedAt = int64(binary.LittleEndian.Uint64(buffer[n:]))

	return d, nil
}

// IsOpened - true once an opened time has been recorded
func (d *Document) IsOpened() bool {
	return 0 != d.OpenedAt
}

// DocumentSeeds - seeds, without bump, for a wallet's index'th document
func DocumentSeeds(index uint32, wallet account.Address) [][]byte {
	return [][]byte{
		wallet.Bytes(),
		[]byte(strconv.FormatUint(uint64(index), 10) + DocumentSeed),
	}
}

// FindDocumentAddress - document address and bump
func FindDocumentAddress(index uint32, wallet account.Address, programID account.Address) (account.Address, byte, error) {
	return pda.FindAddress(DocumentSeeds(index, wallet), programID)
}

func appendUint32(buffer []byte, value uint32) []byte {
	b := [4]byte{}
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	b := [8]byte{}
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}
