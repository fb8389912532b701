// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package permission - spending allowances and operator approvals
package permission

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/storage"
)

var (
	approved    = []byte{0x01}
	notApproved = []byte{0x00}
)

// Permissions - allowance and operator pools
type Permissions struct {
	allowances *storage.PoolHandle
	operators  *storage.PoolHandle
}

// New - create the permission layer over the database pools
func New(pools *storage.Pools) *Permissions {
	return &Permissions{
		allowances: pools.Allowances,
		operators:  pools.Operators,
	}
}

// Allowance - amount spender may move from owner's tranche balance
func (p *Permissions) Allowance(rd storage.Reader, owner common.Address, spender common.Address, class bondid.ClassId, nonce bondid.NonceId) uint64 {
	n, _ := rd.GetN(p.allowances, bondid.AllowanceKey(owner, spender, class, nonce))
	return n
}

// IsApprovedFor - operator may act on all of owner's balances in the class
func (p *Permissions) IsApprovedFor(rd storage.Reader, owner common.Address, operator common.Address, class bondid.ClassId) bool {
	flag := rd.Get(p.operators, bondid.OperatorKey(owner, operator, class))
	return 1 == len(flag) && 0x01 == flag[0]
}

// ApproveAllowance - overwrite the allowance, it is not added to
func (p *Permissions) ApproveAllowance(trx storage.Transaction, owner common.Address, spender common.Address, class bondid.ClassId, nonce bondid.NonceId, amount uint64) {
	trx.PutN(p.allowances, bondid.AllowanceKey(owner, spender, class, nonce), amount)
}

// SetOperatorApproval - grant or revoke class wide operator rights
func (p *Permissions) SetOperatorApproval(trx storage.Transaction, owner common.Address, operator common.Address, class bondid.ClassId, flag bool) {
	value := notApproved
	if flag {
		value = approved
	}
	trx.Put(p.operators, bondid.OperatorKey(owner, operator, class), value)
}

// ConsumeAllowance - decrement by exactly amount
func (p *Permissions) ConsumeAllowance(trx storage.Transaction, owner common.Address, spender common.Address, class bondid.ClassId, nonce bondid.NonceId, amount uint64) error {
	current := p.Allowance(trx, owner, spender, class, nonce)
	if current < amount {
		return fault.ErrInsufficientAllowance
	}
	trx.PutN(p.allowances, bondid.AllowanceKey(owner, spender, class, nonce), current-amount)
	return nil
}

// Authorise - check caller may act on amount of owner's balance
//
// the owner and approved operators are always allowed; otherwise an
// allowance covering the amount is consumed. A spender that was never
// given an allowance is unauthorised, one whose allowance is too small
// (or used up) gets an insufficient allowance error
func (p *Permissions) Authorise(trx storage.Transaction, caller common.Address, owner common.Address, class bondid.ClassId, nonce bondid.NonceId, amount uint64) error {
	if caller == owner {
		return nil
	}
	if p.IsApprovedFor(trx, owner, caller, class) {
		return nil
	}

	if !trx.Has(p.allowances, bondid.AllowanceKey(owner, caller, class, nonce)) {
		return fault.ErrUnauthorised
	}
	return p.ConsumeAllowance(trx, owner, caller, class, nonce, amount)
}
