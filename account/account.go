// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - identities and addresses
//
// An address is a raw 32 byte value.  For an external party it is an
// ed25519 public key, i.e. a point on the curve; for a program-derived
// record it is a hash that is deliberately not a point on the curve,
// so no private key can ever control it.
package account

import (
	"bytes"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/documents/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 32

// Address - a public key or a program-derived address
type Address [AddressLength]byte

// AddressFromBytes - copy a byte slice into an address
func AddressFromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if AddressLength != len(buffer) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], buffer)
	return a, nil
}

// AddressFromBase58 - decode the text form of an address
func AddressFromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.ErrInvalidAddressLength
	}
	return AddressFromBytes(buffer)
}

// Bytes - the address as a byte slice
func (a Address) Bytes() []byte {
	return a[:]
}

// String - base58 encoding of the address
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert a base58 JSON form to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// IsZero - true for the all zero address
func (a Address) IsZero() bool {
	return a == Address{}
}

// Compare - byte order comparison, for sorting
func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

// IsOnCurve - true if the address decodes as an ed25519 point
func (a Address) IsOnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}
