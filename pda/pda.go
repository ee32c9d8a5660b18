// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pda

import (
	"crypto/sha256"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
)

// limits on seeds
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

const marker = "ProgramDerivedAddress"

// CreateAddress - hash the seeds with the program identity
//
// the seeds must already include any bump byte
func CreateAddress(seeds [][]byte, programID account.Address) (account.Address, error) {
	if len(seeds) > MaxSeeds {
		return account.Address{}, fault.ErrMaxSeedLengthExceeded
	}

	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return account.Address{}, fault.ErrMaxSeedLengthExceeded
		}
		h.Write(seed)
	}
	h.Write(programID[:])
	h.Write([]byte(marker))

	address := account.Address{}
	copy(address[:], h.Sum(nil))

	if address.IsOnCurve() {
		return account.Address{}, fault.ErrInvalidSeeds
	}
	return address, nil
}

// FindAddress - search for the highest bump that gives an off-curve address
//
// returns the address and the bump byte that produced it
func FindAddress(seeds [][]byte, programID account.Address) (account.Address, byte, error) {

	// one slot is needed for the bump
	if len(seeds) >= MaxSeeds {
		return account.Address{}, 0, fault.ErrMaxSeedLengthExceeded
	}

	bumped := make([][]byte, len(seeds)+1)
	copy(bumped, seeds)

	bump := [1]byte{}
	for b := 255; b >= 0; b -= 1 {
		bump[0] = byte(b)
		bumped[len(seeds)] = bump[:]

		address, err := CreateAddress(bumped, programID)
		switch err {
		case nil:
			return address, bump[0], nil
		case fault.ErrInvalidSeeds:
			// try next bump
		default:
			return account.Address{}, 0, err
		}
	}
	return account.Address{}, 0, fault.ErrDerivationExhausted
}

// WithBump - seeds with the bump appended, as used for signing a creation
func WithBump(seeds [][]byte, bump byte) [][]byte {
	result := make([][]byte, len(seeds)+1)
	copy(result, seeds)
	result[len(seeds)] = []byte{bump}
	return result
}
