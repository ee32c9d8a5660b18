// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sysvar

import (
	"encoding/binary"

	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/ledger"
)

// slot(8) ++ epoch_start_timestamp(8) ++ epoch(8) ++ leader_schedule_epoch(8) ++ unix_timestamp(8)
const ClockLength = 40

// Clock - the host's notion of current time
type Clock struct {
	Slot                uint64 `json:"slot"`
	EpochStartTimestamp int64  `json:"epochStartTimestamp"`
	Epoch               uint64 `json:"epoch"`
	LeaderScheduleEpoch uint64 `json:"leaderScheduleEpoch"`
	UnixTimestamp       int64  `json:"unixTimestamp"`
}

// Pack - little endian fixed layout
func (c Clock) Pack() []byte {
	buffer := make([]byte, ClockLength)
	binary.LittleEndian.PutUint64(buffer[0:8], c.Slot)
	binary.LittleEndian.PutUint64(buffer[8:16], uint64(c.EpochStartTimestamp))
	binary.LittleEndian.PutUint64(buffer[16:24], c.Epoch)
	binary.LittleEndian.PutUint64(buffer[24:32], c.LeaderScheduleEpoch)
	binary.LittleEndian.PutUint64(buffer[32:40], uint64(c.UnixTimestamp))
	return buffer
}

// UnpackClock - decode the fixed layout
func UnpackClock(buffer []byte) (Clock, error) {
	if ClockLength != len(buffer) {
		return Clock{}, fault.ErrDecode
	}
	return Clock{
		Slot:                binary.LittleEndian.Uint64(buffer[0:8]),
		EpochStartTimestamp: int64(binary.LittleEndian.Uint64(buffer[8:16])),
		Epoch:               binary.LittleEndian.Uint64(buffer[16:24]),
		LeaderScheduleEpoch: binary.LittleEndian.Uint64(buffer[24:32]),
		UnixTimestamp:       int64(binary.LittleEndian.Uint64(buffer[32:40])),
	}, nil
}

// ClockFromAccount - read the clock from the canonical clock account
func ClockFromAccount(meta ledger.Meta, store ledger.Store) (Clock, error) {
	if ClockID != meta.Address {
		return Clock{}, fault.ErrInvalidSystemFact
	}
	acc, err := store.Get(meta.Address)
	if nil != err {
		return Clock{}, err
	}
	return UnpackClock(acc.Data)
}
