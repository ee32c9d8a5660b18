// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank

import (
	"sort"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/ledger"
	"github.com/bitmark-inc/documents/processor"
	"github.com/bitmark-inc/documents/storage"
	"github.com/bitmark-inc/documents/sysvar"
)

// number of account lock stripes
const lockStripes = 256

// ClockSource - supplies the clock for each instruction
type ClockSource func() sysvar.Clock

// SystemClock - wall clock time, all other fields zero
func SystemClock() sysvar.Clock {
	return sysvar.Clock{
		UnixTimestamp: time.Now().Unix(),
	}
}

// Statistics - counts of executed instructions
type Statistics struct {
	Processed uint64 `json:"processed"`
	Failed    uint64 `json:"failed"`
}

// Bank - the host for program execution
type Bank struct {
	rent  sysvar.Rent
	clock ClockSource
	locks [lockStripes]sync.Mutex

	log          *logger.L
	processorLog *logger.L
	metrics      *metrics
}

// New - bank over the already initialised storage
func New(rent sysvar.Rent, clock ClockSource) *Bank {
	if nil == clock {
		clock = SystemClock
	}
	return &Bank{
		rent:         rent,
		clock:        clock,
		log:          logger.New("bank"),
		processorLog: logger.New("processor"),
		metrics:      newMetrics(),
	}
}

// Process - run one instruction of programID atomically
func (b *Bank) Process(programID account.Address, metas []ledger.Meta, data []byte) error {
	unlock := b.lock(writable(metas))
	defer unlock()

	timer := prometheus.NewTimer(b.metrics.duration)
	defer timer.ObserveDuration()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	view := &sysvarStore{
		Store: &accountStore{trx: trx},
		rent:  b.rent,
		clock: b.clock(),
	}

	err = processor.New(programID, view, b.processorLog).Process(metas, data)
	if nil != err {
		trx.Abort()
		b.metrics.instructions.WithLabelValues(resultFailed).Inc()
		b.log.Debugf("abort: %s", err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		b.metrics.instructions.WithLabelValues(resultFailed).Inc()
		b.log.Errorf("commit: %s", err)
		return err
	}

	b.metrics.instructions.WithLabelValues(resultCommitted).Inc()
	b.log.Debugf("committed instruction: %x", data)
	return nil
}

// Airdrop - credit lamports to an account
func (b *Bank) Airdrop(address account.Address, lamports uint64) (*ledger.Account, error) {
	if isSysvar(address) {
		return nil, fault.ErrInvalidSystemFact
	}

	unlock := b.lock([]account.Address{address})
	defer unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	store := &accountStore{trx: trx}
	acc, err := store.Get(address)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	if acc.Lamports+lamports < acc.Lamports {
		trx.Abort()
		return nil, fault.ErrLamportsOverflow
	}
	acc.Lamports += lamports

	err = store.Put(address, acc)
	if nil == err {
		err = trx.Commit()
	} else {
		trx.Abort()
	}
	if nil != err {
		return nil, err
	}

	b.metrics.airdrops.Add(float64(lamports))
	b.log.Infof("airdrop: %d to: %s balance: %d", lamports, address, acc.Lamports)
	return acc, nil
}

// Account - committed state of an account, sysvars included
func (b *Bank) Account(address account.Address) (*ledger.Account, error) {
	return b.committed().Get(address)
}

// Accounts - call f for every stored account in address order
func (b *Bank) Accounts(f func(account.Address, *ledger.Account) error) error {
	return storage.Pool.Accounts.Range(nil, func(key []byte, value []byte) error {
		address, err := account.AddressFromBytes(key)
		if nil != err {
			return err
		}
		acc, err := ledger.UnpackAccount(value)
		if nil != err {
			return err
		}
		return f(address, acc)
	})
}

// Query - read only processor over committed state
func (b *Bank) Query(programID account.Address) *processor.Processor {
	return processor.New(programID, b.committed(), b.processorLog)
}

// Rent - the rent parameters presented to programs
func (b *Bank) Rent() sysvar.Rent {
	return b.rent
}

// Statistics - current instruction counts
func (b *Bank) Statistics() Statistics {
	return Statistics{
		Processed: b.metrics.count(resultCommitted),
		Failed:    b.metrics.count(resultFailed),
	}
}

// Registry - the bank's metrics
func (b *Bank) Registry() *prometheus.Registry {
	return b.metrics.registry
}

// WriteMetrics - save the metrics in the text exposition format
func (b *Bank) WriteMetrics(fileName string) error {
	return prometheus.WriteToTextfile(fileName, b.metrics.registry)
}

func (b *Bank) committed() ledger.Store {
	return &sysvarStore{
		Store: committedStore{},
		rent:  b.rent,
		clock: b.clock(),
	}
}

// lock the stripes of all addresses in ascending order and return
// the matching unlock
func (b *Bank) lock(addresses []account.Address) func() {
	seen := make(map[int]struct{})
	stripes := make([]int, 0, len(addresses))
	for _, a := range addresses {
		s := stripe(a)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		stripes = append(stripes, s)
	}
	sort.Ints(stripes)

	for _, s := range stripes {
		b.locks[s].Lock()
	}
	return func() {
		for i := len(stripes) - 1; i >= 0; i -= 1 {
			b.locks[stripes[i]].Unlock()
		}
	}
}

func stripe(a account.Address) int {
	h := byte(0)
	for _, c := range a {
		h ^= c
	}
	return int(h) % lockStripes
}

func writable(metas []ledger.Meta) []account.Address {
	addresses := make([]account.Address, 0, len(metas))
	for _, m := range metas {
		if m.IsWritable {
			addresses = append(addresses, m.Address)
		}
	}
	return addresses
}
