// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bond

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/ledger"
	"github.com/leonimella/bondd/metadata"
)

// queries read committed state only and never take the engine lock;
// an unknown class, nonce or holder reads as zero or absent

// Supply - all counters of a tranche
func (e *Engine) Supply(class bondid.ClassId, nonce bondid.NonceId) ledger.Supply {
	return e.ledger.Supply(e.database.Committed(), class, nonce)
}

// ActiveSupply - units neither burned nor redeemed
func (e *Engine) ActiveSupply(class bondid.ClassId, nonce bondid.NonceId) uint64 {
	return e.Supply(class, nonce).Active
}

// BurnedSupply - units burned
func (e *Engine) BurnedSupply(class bondid.ClassId, nonce bondid.NonceId) uint64 {
	return e.Supply(class, nonce).Burned
}

// RedeemedSupply - units redeemed
func (e *Engine) RedeemedSupply(class bondid.ClassId, nonce bondid.NonceId) uint64 {
	return e.Supply(class, nonce).Redeemed
}

// TotalSupply - all units ever issued
func (e *Engine) TotalSupply(class bondid.ClassId, nonce bondid.NonceId) uint64 {
	return e.Supply(class, nonce).Total()
}

// BalanceOf - active balance of a holder
func (e *Engine) BalanceOf(holder common.Address, class bondid.ClassId, nonce bondid.NonceId) uint64 {
	return e.ledger.Balance(e.database.Committed(), class, nonce, holder)
}

// Allowance - amount spender may still move for owner
func (e *Engine) Allowance(owner common.Address, spender common.Address, class bondid.ClassId, nonce bondid.NonceId) uint64 {
	return e.permissions.Allowance(e.database.Committed(), owner, spender, class, nonce)
}

// IsApprovedFor - operator approval of owner for a class
func (e *Engine) IsApprovedFor(owner common.Address, operator common.Address, class bondid.ClassId) bool {
	return e.permissions.IsApprovedFor(e.database.Committed(), owner, operator, class)
}

// Symbol - the class symbol, empty if not set
func (e *Engine) Symbol(class bondid.ClassId) string {
	v := e.ClassValue(class, metadata.KeySymbol)
	if metadata.KindString != v.Kind {
		return ""
	}
	return v.Text
}

// ClassValue - class metadata or the absent value
func (e *Engine) ClassValue(class bondid.ClassId, key string) metadata.Value {
	return e.registry.ClassValue(e.database.Committed(), class, key)
}

// NonceValue - nonce metadata or the absent value
func (e *Engine) NonceValue(class bondid.ClassId, nonce bondid.NonceId, key string) metadata.Value {
	return e.registry.NonceValue(e.database.Committed(), class, nonce, key)
}

// ClassMetadata - every value stored for a class
func (e *Engine) ClassMetadata(class bondid.ClassId) ([]metadata.Entry, error) {
	return e.registry.ClassEntries(class)
}

// NonceMetadata - every value stored for a nonce
func (e *Engine) NonceMetadata(class bondid.ClassId, nonce bondid.NonceId) ([]metadata.Entry, error) {
	return e.registry.NonceEntries(class, nonce)
}

// IsRedeemable - redemption is open for the tranche at the current time
func (e *Engine) IsRedeemable(class bondid.ClassId, nonce bondid.NonceId) bool {
	return e.registry.IsRedeemable(e.database.Committed(), class, nonce, e.clock())
}

// Holders - balance records of a tranche including those at zero
func (e *Engine) Holders(class bondid.ClassId, nonce bondid.NonceId) ([]ledger.Holding, error) {
	return e.ledger.Holders(class, nonce)
}

// Nonces - issued nonces of a class
func (e *Engine) Nonces(class bondid.ClassId) ([]bondid.NonceId, error) {
	return e.registry.Nonces(class)
}

// Tranches - visit every issued tranche and its supply
func (e *Engine) Tranches(f func(bondid.Tranche, ledger.Supply) error) error {
	return e.ledger.Tranches(f)
}
