// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/storage"
)

func TestDoubleInitialise(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.InitialiseMemory()
	assert.Equal(t, fault.ErrStorageAlreadyInitialised, err, "second initialise")
}

func TestNotInitialised(t *testing.T) {
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrStorageNotInitialised, err, "transaction")

	_, err = storage.Pool.Accounts.Get([]byte("key"))
	assert.Equal(t, fault.ErrStorageNotInitialised, err, "get")
}

func TestFileReopen(t *testing.T) {
	removeFiles()
	defer removeFiles()

	err := storage.Initialise(databaseFileName, storage.ReadOnly)
	assert.NotNil(t, err, "read only open of missing database")

	err = storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "create")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction")
	trx.Put(storage.Pool.Accounts, []byte("persist"), []byte("value"))
	assert.Nil(t, trx.Commit(), "commit")
	storage.Finalise()

	err = storage.Initialise(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "reopen")
	defer storage.Finalise()

	value, err := storage.Pool.Accounts.Get([]byte("persist"))
	assert.Nil(t, err, "get")
	assert.Equal(t, []byte("value"), value, "persisted value")
}

func TestRange(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()
	for _, k := range []string{"c", "a", "b"} {
		trx.Put(storage.Pool.Accounts, []byte(k), []byte("value-"+k))
	}
	assert.Nil(t, trx.Commit(), "commit")

	keys := []string{}
	err := storage.Pool.Accounts.Range(nil, func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		assert.Equal(t, "value-"+string(key), string(value), "value")
		return nil
	})
	assert.Nil(t, err, "range")
	assert.Equal(t, []string{"a", "b", "c"}, keys, "ordered keys")

	keys = []string{}
	err = storage.Pool.Accounts.Range([]byte("b"), func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "range from b")
	assert.Equal(t, []string{"b", "c"}, keys, "keys from b")

	err = storage.Pool.Accounts.Range(nil, func(key []byte, value []byte) error {
		return fault.ErrDecode
	})
	assert.Equal(t, fault.ErrDecode, err, "stop on error")
}
