// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/documents/fault"
)

// KeyPair - an ed25519 identity
type KeyPair struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// NewKeyPair - generate a key pair from a random source
func NewKeyPair(random io.Reader) (*KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

// KeyPairFromBase58 - recreate a key pair from the base58 private key
func KeyPairFromBase58(s string) (*KeyPair, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return nil, err
	}
	if ed25519.PrivateKeySize != len(buffer) {
		return nil, fault.ErrInvalidAddressLength
	}
	privateKey := ed25519.PrivateKey(buffer)
	return &KeyPair{
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		PrivateKey: privateKey,
	}, nil
}

// Address - the public key as an address
func (k *KeyPair) Address() Address {
	a := Address{}
	copy(a[:], k.PublicKey)
	return a
}

// PrivateKeyString - base58 of the full private key
func (k *KeyPair) PrivateKeyString() string {
	return base58.Encode(k.PrivateKey)
}
