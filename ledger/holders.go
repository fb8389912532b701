// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/fault"
)

// Holding - a committed balance record
type Holding struct {
	Holder common.Address `json:"holder"`
	Amount uint64         `json:"amount"`
}

// Holders - committed balance records of a tranche in address order
//
// records that have gone to zero are included
func (l *Ledger) Holders(class bondid.ClassId, nonce bondid.NonceId) ([]Holding, error) {
	holdings := make([]Holding, 0, 16)
	err := l.balances.NewFetchCursor().Prefix(bondid.TrancheKey(class, nonce)).Map(func(key []byte, value []byte) error {
		_, _, rest, ok := bondid.SplitTrancheKey(key)
		if !ok || common.AddressLength != len(rest) || 8 != len(value) {
			return fault.ErrInvalidCursor
		}
		holdings = append(holdings, Holding{
			Holder: common.BytesToAddress(rest),
			Amount: binary.BigEndian.Uint64(value),
		})
		return nil
	})
	return holdings, err
}

// Tranches - visit the committed supply of every tranche in key order
func (l *Ledger) Tranches(f func(bondid.Tranche, Supply) error) error {
	return l.supply.NewFetchCursor().Map(func(key []byte, value []byte) error {
		class, nonce, _, ok := bondid.SplitTrancheKey(key)
		if !ok {
			return fault.ErrInvalidCursor
		}
		return f(bondid.Tranche{Class: class, Nonce: nonce}, unpackSupply(key, value))
	})
}
