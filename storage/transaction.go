// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/documents/fault"
)

// Transaction - batched writes applied atomically on Commit
type Transaction interface {
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) ([]byte, error)
	Put(*PoolHandle, []byte, []byte)
}

type transaction struct {
	sync.Mutex
	finished bool
	batch    *leveldb.Batch
	cache    Cache
}

// NewDBTransaction - start a new transaction
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return nil, fault.ErrStorageNotInitialised
	}

	return &transaction{
		batch: new(leveldb.Batch),
		cache: newCache(),
	}, nil
}

// Put - queue a write
func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()

	k := handle.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)

	t.cache.Set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

// Delete - queue a removal
func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()

	k := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

// Get - read through the pending writes, then the database
//
// returns nil if the key is not present
func (t *transaction) Get(handle *PoolHandle, key []byte) ([]byte, error) {
	t.Lock()
	value, found, deleted := t.cache.Get(string(handle.prefixKey(key)))
	t.Unlock()

	if deleted {
		return nil, nil
	}
	if found {
		v := make([]byte, len(value))
		copy(v, value)
		return v, nil
	}
	return handle.Get(key)
}

// Commit - write all pending changes in one batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.finished {
		return fault.ErrTransactionFinished
	}
	t.finished = true

	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return fault.ErrStorageNotInitialised
	}

	err := poolData.db.Write(t.batch, nil)
	t.batch.Reset()
	t.cache.Clear()
	return err
}

// Abort - discard all pending changes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.finished = true
	t.batch.Reset()
	t.cache.Clear()
}
