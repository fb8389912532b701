// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bond

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/messagebus"
	"github.com/leonimella/bondd/storage"
)

// Approve - set the amount spender may move from the caller's
// tranche balance, replacing any previous allowance
func (e *Engine) Approve(caller common.Address, request ApprovalRequest) error {
	return e.execute("approve", 1, func(trx storage.Transaction, now time.Time, o *outcome) error {
		return e.approve(trx, now, caller, request, o)
	})
}

// ApproveBatch - all or nothing approval of several entries
func (e *Engine) ApproveBatch(caller common.Address, requests []ApprovalRequest) error {
	if err := e.checkBatch(len(requests)); nil != err {
		return err
	}
	return e.execute("approveBatch", len(requests), func(trx storage.Transaction, now time.Time, o *outcome) error {
		for i, request := range requests {
			if err := e.approve(trx, now, caller, request, o); nil != err {
				return &fault.BatchError{Index: i, Err: err}
			}
		}
		return nil
	})
}

func (e *Engine) approve(trx storage.Transaction, now time.Time, caller common.Address, request ApprovalRequest, o *outcome) error {
	if bondid.IsZero(caller) || bondid.IsZero(request.Spender) {
		return fault.ErrInvalidAddress
	}

	e.permissions.ApproveAllowance(trx, caller, request.Spender, request.Class, request.Nonce, request.Amount)

	event := messagebus.NewEvent(messagebus.Approval, now, caller)
	event.From = caller
	event.To = request.Spender
	event.Class = request.Class
	event.Nonce = request.Nonce
	event.Amount = request.Amount
	o.add(event, 0)
	return nil
}

// SetApprovalFor - grant or revoke class wide operator rights over
// the caller's balances
func (e *Engine) SetApprovalFor(caller common.Address, operator common.Address, class bondid.ClassId, approved bool) error {
	if bondid.IsZero(caller) || bondid.IsZero(operator) {
		return fault.ErrInvalidAddress
	}
	return e.execute("setApprovalFor", 1, func(trx storage.Transaction, now time.Time, o *outcome) error {
		e.permissions.SetOperatorApproval(trx, caller, operator, class, approved)

		event := messagebus.NewEvent(messagebus.ApprovalFor, now, caller)
		event.From = caller
		event.To = operator
		event.Class = class
		event.Approved = approved
		o.add(event, 0)
		return nil
	})
}
