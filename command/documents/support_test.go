// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/processor"
	"github.com/bitmark-inc/documents/state"
)

func TestIdentityFromString(t *testing.T) {
	keyPair, err := account.NewKeyPair(rand.Reader)
	assert.Nil(t, err, "key pair")

	a, err := identityFromString(keyPair.Address().String())
	assert.Nil(t, err, "address")
	assert.Equal(t, keyPair.Address(), a, "from address")

	a, err = identityFromString(keyPair.PrivateKeyString())
	assert.Nil(t, err, "private key")
	assert.Equal(t, keyPair.Address(), a, "from private key")

	_, err = identityFromString("")
	assert.NotNil(t, err, "blank")

	_, err = identityFromString("not-base58-0OIl")
	assert.NotNil(t, err, "junk")
}

func TestIndexFromInt(t *testing.T) {
	i, err := indexFromInt(7)
	assert.Nil(t, err, "in range")
	assert.Equal(t, uint32(7), i, "value")

	_, err = indexFromInt(-1)
	assert.NotNil(t, err, "negative")
}

func TestDocumentResult(t *testing.T) {
	d := &processor.IndexedDocument{
		Index: 3,
		Document: state.Document{
			Sender: account.Address{1},
			Data:   []byte("hello"),
			SentAt: 1609459200,
		},
	}
	r := newDocumentResult(d)
	assert.Equal(t, "hello", r.Text, "text")
	assert.Nil(t, r.Data, "no binary")
	assert.Equal(t, "2021-01-01T00:00:00Z", r.SentAt, "sent at")
	assert.Equal(t, "", r.OpenedAt, "not opened")

	d.Data = []byte{0xff, 0xfe}
	d.OpenedAt = 1609459260
	r = newDocumentResult(d)
	assert.Equal(t, "", r.Text, "no text")
	assert.Equal(t, []byte{0xff, 0xfe}, r.Data, "binary")
	assert.Equal(t, "2021-01-01T00:01:00Z", r.OpenedAt, "opened at")
}

func TestPrintJson(t *testing.T) {
	var b bytes.Buffer
	err := printJson(&b, generateResult{PrivateKey: "key"})
	assert.Nil(t, err, "print")
	assert.Contains(t, b.String(), `"privateKey": "key"`, "field")
	assert.Contains(t, b.String(), `"address": "11111111111111111111111111111111"`, "text address")
}
