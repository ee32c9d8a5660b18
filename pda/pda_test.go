// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pda_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/pda"
)

var programID = account.Address{
	0x88, 0x5d, 0x2e, 0x3b, 0x01, 0x72, 0xa4, 0x4f,
	0x11, 0x09, 0xc3, 0x5e, 0x6a, 0x90, 0x27, 0xdd,
	0x40, 0x3c, 0x5b, 0x7e, 0xf1, 0x02, 0x99, 0x18,
	0x62, 0xab, 0x3d, 0xe4, 0x55, 0x07, 0xc8, 0x1a,
}

var wallet = account.Address{
	0x60, 0xb3, 0xc6, 0xe2, 0x0c, 0xff, 0xf7, 0x09,
	0x1a, 0x86, 0x48, 0x8b, 0x16, 0x56, 0xb9, 0x6e,
	0xc0, 0xa2, 0xf6, 0x99, 0x07, 0xe2, 0xc0, 0x35,
	0x17, 0x59, 0x18, 0xf4, 0x2c, 0x37, 0xd7, 0x2e,
}

func TestFindIsDeterministic(t *testing.T) {
	seeds := [][]byte{wallet[:], []byte("receiver")}

	a1, b1, err := pda.FindAddress(seeds, programID)
	assert.Nil(t, err, "first derivation")

	a2, b2, err := pda.FindAddress(seeds, programID)
	assert.Nil(t, err, "second derivation")

	assert.Equal(t, a1, a2, "address differs")
	assert.Equal(t, b1, b2, "bump differs")
	assert.False(t, a1.IsOnCurve(), "derived address is on the curve")
}

func TestFindMatchesCreate(t *testing.T) {
	seeds := [][]byte{wallet[:], []byte("7document")}

	address, bump, err := pda.FindAddress(seeds, programID)
	assert.Nil(t, err, "find")

	created, err := pda.CreateAddress(pda.WithBump(seeds, bump), programID)
	assert.Nil(t, err, "create")
	assert.Equal(t, address, created, "create with found bump")

	// every higher bump must have landed on the curve
	for b := 255; b > int(bump); b -= 1 {
		_, err := pda.CreateAddress(pda.WithBump(seeds, byte(b)), programID)
		assert.Equal(t, fault.ErrInvalidSeeds, err, "bump %d should be on curve", b)
	}
}

func TestSeedsSeparateAddressSpaces(t *testing.T) {
	receiver, _, err := pda.FindAddress([][]byte{wallet[:], []byte("receiver")}, programID)
	assert.Nil(t, err, "receiver")

	document0, _, err := pda.FindAddress([][]byte{wallet[:], []byte("0document")}, programID)
	assert.Nil(t, err, "document 0")

	document1, _, err := pda.FindAddress([][]byte{wallet[:], []byte("1document")}, programID)
	assert.Nil(t, err, "document 1")

	otherProgram := programID
	otherProgram[0] ^= 0xff
	foreign, _, err := pda.FindAddress([][]byte{wallet[:], []byte("receiver")}, otherProgram)
	assert.Nil(t, err, "foreign")

	assert.NotEqual(t, receiver, document0, "receiver and document collide")
	assert.NotEqual(t, document0, document1, "documents collide")
	assert.NotEqual(t, receiver, foreign, "program scope ignored")
}

func TestSeedLimits(t *testing.T) {
	long := bytes.Repeat([]byte{'x'}, pda.MaxSeedLength+1)
	_, _, err := pda.FindAddress([][]byte{long}, programID)
	assert.Equal(t, fault.ErrMaxSeedLengthExceeded, err, "long seed")

	exact := bytes.Repeat([]byte{'x'}, pda.MaxSeedLength)
	_, _, err = pda.FindAddress([][]byte{exact}, programID)
	assert.Nil(t, err, "seed at limit")

	many := make([][]byte, pda.MaxSeeds)
	for i := range many {
		many[i] = []byte{byte(i)}
	}
	_, _, err = pda.FindAddress(many, programID)
	assert.Equal(t, fault.ErrMaxSeedLengthExceeded, err, "no room for bump")

	_, err = pda.CreateAddress(append(many, []byte{0}), programID)
	assert.Equal(t, fault.ErrMaxSeedLengthExceeded, err, "too many seeds")
}

func TestWithBumpDoesNotAlias(t *testing.T) {
	seeds := make([][]byte, 1, 4)
	seeds[0] = []byte("a")

	first := pda.WithBump(seeds, 1)
	second := pda.WithBump(seeds, 2)
	assert.Equal(t, []byte{1}, first[1], "first bump overwritten")
	assert.Equal(t, []byte{2}, second[1], "second bump")
}
