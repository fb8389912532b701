// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/storage"
)

const supplyLength = 3 * 8

// Supply - the counters of a single tranche
type Supply struct {
	Active   uint64 `json:"active"`
	Burned   uint64 `json:"burned"`
	Redeemed uint64 `json:"redeemed"`
}

// Total - all time issued amount
func (s Supply) Total() uint64 {
	return s.Active + s.Burned + s.Redeemed
}

func (s Supply) pack() []byte {
	buffer := make([]byte, supplyLength)
	binary.BigEndian.PutUint64(buffer[0:8], s.Active)
	binary.BigEndian.PutUint64(buffer[8:16], s.Burned)
	binary.BigEndian.PutUint64(buffer[16:24], s.Redeemed)
	return buffer
}

func unpackSupply(key []byte, buffer []byte) Supply {
	if nil == buffer {
		return Supply{}
	}
	if supplyLength != len(buffer) {
		logger.Panicf("ledger: corrupt supply for: %x: %x", key, buffer)
	}
	return Supply{
		Active:   binary.BigEndian.Uint64(buffer[0:8]),
		Burned:   binary.BigEndian.Uint64(buffer[8:16]),
		Redeemed: binary.BigEndian.Uint64(buffer[16:24]),
	}
}

// Ledger - balances and supply pools
type Ledger struct {
	balances *storage.PoolHandle
	supply   *storage.PoolHandle
}

// New - create a ledger over the database pools
func New(pools *storage.Pools) *Ledger {
	return &Ledger{
		balances: pools.Balances,
		supply:   pools.Supply,
	}
}

// Balance - active balance of a holder, zero if no record
func (l *Ledger) Balance(rd storage.Reader, class bondid.ClassId, nonce bondid.NonceId, holder common.Address) uint64 {
	n, _ := rd.GetN(l.balances, bondid.HolderKey(class, nonce, holder))
	return n
}

// Supply - counters of a tranche, all zero if never issued
func (l *Ledger) Supply(rd storage.Reader, class bondid.ClassId, nonce bondid.NonceId) Supply {
	key := bondid.TrancheKey(class, nonce)
	return unpackSupply(key, rd.Get(l.supply, key))
}

// CreditActive - newly issued amount for a holder
func (l *Ledger) CreditActive(trx storage.Transaction, class bondid.ClassId, nonce bondid.NonceId, holder common.Address, amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	supply := l.Supply(trx, class, nonce)
	total := supply.Total()
	if total+amount < total {
		return fault.ErrAmountOverflow
	}

	// balance never exceeds the active supply so cannot overflow here
	balance := l.Balance(trx, class, nonce, holder)

	supply.Active += amount
	l.putSupply(trx, class, nonce, supply)
	trx.PutN(l.balances, bondid.HolderKey(class, nonce, holder), balance+amount)
	return nil
}

// MoveActive - transfer between holders, supply is unchanged
func (l *Ledger) MoveActive(trx storage.Transaction, class bondid.ClassId, nonce bondid.NonceId, from common.Address, to common.Address, amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	fromBalance := l.Balance(trx, class, nonce, from)
	if fromBalance < amount {
		return fault.ErrInsufficientBalance
	}
	if from == to {
		return nil
	}

	toBalance := l.Balance(trx, class, nonce, to)

	trx.PutN(l.balances, bondid.HolderKey(class, nonce, from), fromBalance-amount)
	trx.PutN(l.balances, bondid.HolderKey(class, nonce, to), toBalance+amount)
	return nil
}

// BurnActive - destroy part of a holder's balance
func (l *Ledger) BurnActive(trx storage.Transaction, class bondid.ClassId, nonce bondid.NonceId, holder common.Address, amount uint64) error {
	return l.retire(trx, class, nonce, holder, amount, func(s *Supply) {
		s.Burned += amount
	})
}

// RedeemActive - settle part of a holder's balance
func (l *Ledger) RedeemActive(trx storage.Transaction, class bondid.ClassId, nonce bondid.NonceId, holder common.Address, amount uint64) error {
	return l.retire(trx, class, nonce, holder, amount, func(s *Supply) {
		s.Redeemed += amount
	})
}

// move amount out of the active partition into a terminal one
func (l *Ledger) retire(trx storage.Transaction, class bondid.ClassId, nonce bondid.NonceId, holder common.Address, amount uint64, terminal func(*Supply)) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	balance := l.Balance(trx, class, nonce, holder)
	if balance < amount {
		return fault.ErrInsufficientBalance
	}

	supply := l.Supply(trx, class, nonce)
	if supply.Active < amount {
		logger.Panicf("ledger: active supply: %d below balance: %d for class: %d  nonce: %d", supply.Active, balance, class, nonce)
	}
	supply.Active -= amount
	terminal(&supply)

	l.putSupply(trx, class, nonce, supply)
	trx.PutN(l.balances, bondid.HolderKey(class, nonce, holder), balance-amount)
	return nil
}

func (l *Ledger) putSupply(trx storage.Transaction, class bondid.ClassId, nonce bondid.NonceId, supply Supply) {
	trx.Put(l.supply, bondid.TrancheKey(class, nonce), supply.pack())
}
