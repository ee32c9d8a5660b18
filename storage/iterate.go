// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/documents/fault"
)

// Range - call f with each committed element whose key is at or after
// start, in key order
//
// a nil start covers the whole pool; iteration stops at the first
// error returned by f
func (p *PoolHandle) Range(start []byte, f func(key []byte, value []byte) error) error {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return fault.ErrStorageNotInitialised
	}

	bounds := &util.Range{
		Start: p.prefixKey(start),
		Limit: p.limit,
	}
	iter := poolData.db.NewIterator(bounds, nil)
	defer iter.Release()

	for iter.Next() {
		// iterator slices are reused by Next
		key := append([]byte{}, iter.Key()[1:]...)
		value := append([]byte{}, iter.Value()...)
		if err := f(key, value); nil != err {
			return err
		}
	}
	return iter.Error()
}
