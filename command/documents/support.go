// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/documents/account"
)

// an identity is either an address or a base58 private key
func identityFromString(s string) (account.Address, error) {
	if "" == s {
		return account.Address{}, fmt.Errorf("identity is required")
	}
	if a, err := account.AddressFromBase58(s); nil == err {
		return a, nil
	}
	k, err := account.KeyPairFromBase58(s)
	if nil != err {
		return account.Address{}, fmt.Errorf("identity: %q is neither address nor private key", s)
	}
	return k.Address(), nil
}

func addressFromString(name string, s string) (account.Address, error) {
	if "" == s {
		return account.Address{}, fmt.Errorf("%s is required", name)
	}
	a, err := account.AddressFromBase58(s)
	if nil != err {
		return account.Address{}, fmt.Errorf("%s: %q is not a valid address: %s", name, s, err)
	}
	return a, nil
}

func indexFromInt(i int) (uint32, error) {
	if i < 0 || int64(i) > math.MaxUint32 {
		return 0, fmt.Errorf("index: %d is out of range", i)
	}
	return uint32(i), nil
}
