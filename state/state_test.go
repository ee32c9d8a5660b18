// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/pda"
	"github.com/bitmark-inc/documents/state"
)

var (
	programID = account.Address{0xa2, 0x7d, 0x13}
	wallet    = account.Address{0x31, 0x41, 0x59, 0x26}
	sender    = account.Address{0x27, 0x18, 0x28, 0x18}
)

func TestReceiverRoundTrip(t *testing.T) {
	for _, n := range []uint32{0, 1, 255, 256, math.MaxUint32} {
		r := &state.Receiver{DocumentsCounter: n}
		packed := r.Pack()
		assert.Equal(t, state.ReceiverSize, len(packed), "packed size")

		unpacked, err := state.UnpackReceiver(packed)
		assert.Nil(t, err, "unpack %d", n)
		assert.Equal(t, r, unpacked, "round trip %d", n)
	}

	assert.Equal(t, []byte{0x01, 0x02, 0x00, 0x00}, (&state.Receiver{DocumentsCounter: 0x0201}).Pack(), "little endian")
}

func TestReceiverDecodeErrors(t *testing.T) {
	for _, b := range [][]byte{nil, {}, {1, 2, 3}, {1, 2, 3, 4, 5}} {
		_, err := state.UnpackReceiver(b)
		assert.Equal(t, fault.ErrDecode, err, "buffer: %x", b)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	for _, size := range []int{0, 1, 10000} {
		d := &state.Document{
			Sender:   sender,
			Data:     bytes.Repeat([]byte{0x5a}, size),
			SentAt:   1634567890,
			OpenedAt: 0,
		}
		packed := d.Pack()
		assert.Equal(t, state.DocumentSize(size), len(packed), "size law for %d", size)

		unpacked, err := state.UnpackDocument(packed)
		assert.Nil(t, err, "unpack %d", size)
		assert.Equal(t, d, unpacked, "round trip %d", size)
		assert.False(t, unpacked.IsOpened(), "opened")
	}
}

func TestDocumentSizeMatchesZeroDocument(t *testing.T) {
	for _, size := range []int{0, 1, 2, 31, 32, 33, 1000} {
		assert.Equal(t, len(state.NewDocument(size).Pack()), state.DocumentSize(size), "size %d", size)
	}
	assert.Equal(t, 52, state.DocumentSize(0), "fixed part")
}

func TestDocumentLayout(t *testing.T) {
	d := &state.Document{
		Sender:   sender,
		Data:     []byte("hi"),
		SentAt:   -1,
		OpenedAt: 2,
	}
	packed := d.Pack()

	assert.Equal(t, sender[:], packed[:32], "sender first")
	assert.Equal(t, []byte{2, 0, 0, 0}, packed[32:36], "length prefix")
	assert.Equal(t, []byte("hi"), packed[36:38], "data")
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 8), packed[38:46], "sent at")
	assert.Equal(t, []byte{2, 0, 0, 0, 0, 0, 0, 0}, packed[46:54], "opened at")
}

func TestDocumentDecodeErrors(t *testing.T) {
	good := (&state.Document{Sender: sender, Data: []byte("hello")}).Pack()

	items := [][]byte{
		nil,
		{},
		good[:10],
		good[:len(good)-1],
		append(append([]byte{}, good...), 0x00),
	}
	for i, b := range items {
		_, err := state.UnpackDocument(b)
		assert.Equal(t, fault.ErrDecode, err, "%d: length: %d", i, len(b))
	}

	// length prefix far larger than the buffer
	bad := append([]byte{}, good...)
	bad[32], bad[33], bad[34], bad[35] = 0xff, 0xff, 0xff, 0xff
	_, err := state.UnpackDocument(bad)
	assert.Equal(t, fault.ErrDecode, err, "oversized length prefix")
}

func TestSeeds(t *testing.T) {
	seeds := state.ReceiverSeeds(wallet)
	assert.Equal(t, 2, len(seeds), "receiver seed count")
	assert.Equal(t, wallet[:], seeds[0], "receiver identity seed")
	assert.Equal(t, []byte("receiver"), seeds[1], "receiver tag")

	seeds = state.DocumentSeeds(0, wallet)
	assert.Equal(t, []byte("0document"), seeds[1], "document 0 tag")

	seeds = state.DocumentSeeds(4294967295, wallet)
	assert.Equal(t, []byte("4294967295document"), seeds[1], "largest index tag")
}

func TestAddresses(t *testing.T) {
	r1, b1, err := state.FindReceiverAddress(wallet, programID)
	assert.Nil(t, err, "receiver")
	r2, b2, _ := state.FindReceiverAddress(wallet, programID)
	assert.Equal(t, r1, r2, "receiver not deterministic")
	assert.Equal(t, b1, b2, "receiver bump not deterministic")

	created, err := pda.CreateAddress(pda.WithBump(state.ReceiverSeeds(wallet), b1), programID)
	assert.Nil(t, err, "create receiver")
	assert.Equal(t, r1, created, "receiver signer seeds")

	seen := map[account.Address]uint32{r1: math.MaxUint32}
	for i := uint32(0); i < 20; i += 1 {
		d, _, err := state.FindDocumentAddress(i, wallet, programID)
		assert.Nil(t, err, "document %d", i)
		if previous, ok := seen[d]; ok {
			t.Errorf("document %d collides with %d", i, previous)
		}
		seen[d] = i
	}
}
