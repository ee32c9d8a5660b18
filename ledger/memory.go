// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/documents/account"
)

// MemoryStore - a map backed store for tests and tools
type MemoryStore struct {
	sync.RWMutex
	accounts map[account.Address]*Account
}

// NewMemoryStore - empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[account.Address]*Account),
	}
}

// Get - a copy of the account, or an unused account if absent
func (m *MemoryStore) Get(address account.Address) (*Account, error) {
	m.RLock()
	defer m.RUnlock()

	acc, ok := m.accounts[address]
	if !ok {
		return &Account{}, nil
	}
	return acc.Copy(), nil
}

// Put - store a copy of the account
func (m *MemoryStore) Put(address account.Address, acc *Account) error {
	m.Lock()
	defer m.Unlock()

	m.accounts[address] = acc.Copy()
	return nil
}

// Len - number of stored accounts
func (m *MemoryStore) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.accounts)
}
