// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sysvar

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/ledger"
)

// defaults for the rent parameters
const (
	DefaultLamportsPerByteYear = 1000000000 / 100 * 365 / (1024 * 1024) // 3480
	DefaultExemptionThreshold  = 2.0
	DefaultBurnPercent         = 50

	// bytes charged for every account in addition to its data
	AccountStorageOverhead = 128

	// largest account data allocation
	MaxAccountDataLength = 10 * 1024 * 1024

	// lamports_per_byte_year(8) ++ exemption_threshold(8) ++ burn_percent(1)
	RentLength = 17
)

// Rent - parameters for the minimum balance of a persistent account
type Rent struct {
	LamportsPerByteYear uint64  `json:"lamportsPerByteYear"`
	ExemptionThreshold  float64 `json:"exemptionThreshold"`
	BurnPercent         uint8   `json:"burnPercent"`
}

// DefaultRent - the rent used when none is configured
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: DefaultLamportsPerByteYear,
		ExemptionThreshold:  DefaultExemptionThreshold,
		BurnPercent:         DefaultBurnPercent,
	}
}

// MinimumBalance - lamports needed for an account of size bytes to be exempt
//
// saturates at the largest balance when the parameters are out of range
func (r Rent) MinimumBalance(size int) uint64 {
	hi, product := bits.Mul64(uint64(AccountStorageOverhead+size), r.LamportsPerByteYear)
	if 0 != hi {
		return math.MaxUint64
	}
	balance := float64(product) * r.ExemptionThreshold
	switch {
	case math.IsNaN(balance), balance >= float64(math.MaxUint64):
		return math.MaxUint64
	case balance <= 0:
		return 0
	}
	return uint64(balance)
}

// Validate - check that the largest allocation has a representable minimum balance
func (r Rent) Validate() error {
	threshold := r.ExemptionThreshold
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 || r.BurnPercent > 100 {
		return fault.ErrInvalidRent
	}
	hi, product := bits.Mul64(AccountStorageOverhead+MaxAccountDataLength, r.LamportsPerByteYear)
	if 0 != hi || float64(product)*threshold >= float64(math.MaxUint64) {
		return fault.ErrInvalidRent
	}
	return nil
}

// IsExempt - true if balance keeps an account of size bytes alive
func (r Rent) IsExempt(balance uint64, size int) bool {
	return balance >= r.MinimumBalance(size)
}

// Pack - little endian fixed layout
func (r Rent) Pack() []byte {
	buffer := make([]byte, RentLength)
	binary.LittleEndian.PutUint64(buffer[0:8], r.LamportsPerByteYear)
	binary.LittleEndian.PutUint64(buffer[8:16], math.Float64bits(r.ExemptionThreshold))
	buffer[16] = r.BurnPercent
	return buffer
}

// UnpackRent - decode the fixed layout
func UnpackRent(buffer []byte) (Rent, error) {
	if RentLength != len(buffer) {
		return Rent{}, fault.ErrDecode
	}
	return Rent{
		LamportsPerByteYear: binary.LittleEndian.Uint64(buffer[0:8]),
		ExemptionThreshold:  math.Float64frombits(binary.LittleEndian.Uint64(buffer[8:16])),
		BurnPercent:         buffer[16],
	}, nil
}

// RentFromAccount - read rent from the canonical rent account
func RentFromAccount(meta ledger.Meta, store ledger.Store) (Rent, error) {
	if RentID != meta.Address {
		return Rent{}, fault.ErrInvalidSystemFact
	}
	acc, err := store.Get(meta.Address)
	if nil != err {
		return Rent{}, err
	}
	return UnpackRent(acc.Data)
}
