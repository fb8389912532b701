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

// Redeem - settle bonds once the tranche is redeemable
func (e *Engine) Redeem(caller common.Address, request RedeemRequest) error {
	return e.execute("redeem", 1, func(trx storage.Transaction, now time.Time, o *outcome) error {
		return e.redeem(trx, now, caller, request, o)
	})
}

// RedeemBatch - all or nothing redemption of several entries
func (e *Engine) RedeemBatch(caller common.Address, requests []RedeemRequest) error {
	if err := e.checkBatch(len(requests)); nil != err {
		return err
	}
	return e.execute("redeemBatch", len(requests), func(trx storage.Transaction, now time.Time, o *outcome) error {
		for i, request := range requests {
			if err := e.redeem(trx, now, caller, request, o); nil != err {
				return &fault.BatchError{Index: i, Err: err}
			}
		}
		return nil
	})
}

// Burn - destroy bonds
func (e *Engine) Burn(caller common.Address, request BurnRequest) error {
	return e.execute("burn", 1, func(trx storage.Transaction, now time.Time, o *outcome) error {
		return e.burn(trx, now, caller, request, o)
	})
}

// BurnBatch - all or nothing burn of several entries
func (e *Engine) BurnBatch(caller common.Address, requests []BurnRequest) error {
	if err := e.checkBatch(len(requests)); nil != err {
		return err
	}
	return e.execute("burnBatch", len(requests), func(trx storage.Transaction, now time.Time, o *outcome) error {
		for i, request := range requests {
			if err := e.burn(trx, now, caller, request, o); nil != err {
				return &fault.BatchError{Index: i, Err: err}
			}
		}
		return nil
	})
}

func (e *Engine) redeem(trx storage.Transaction, now time.Time, caller common.Address, request RedeemRequest, o *outcome) error {
	if bondid.IsZero(request.Holder) {
		return fault.ErrInvalidAddress
	}
	if 0 == request.Amount {
		return fault.ErrInvalidAmount
	}

	err := e.permissions.Authorise(trx, caller, request.Holder, request.Class, request.Nonce, request.Amount)
	if nil != err {
		return err
	}

	if !e.registry.IsRedeemable(trx, request.Class, request.Nonce, now) {
		return fault.ErrNotRedeemable
	}

	err = e.ledger.RedeemActive(trx, request.Class, request.Nonce, request.Holder, request.Amount)
	if nil != err {
		return err
	}

	event := messagebus.NewEvent(messagebus.Redeem, now, caller)
	event.From = request.Holder
	event.Class = request.Class
	event.Nonce = request.Nonce
	event.Amount = request.Amount
	o.add(event, request.Amount)
	return nil
}

func (e *Engine) burn(trx storage.Transaction, now time.Time, caller common.Address, request BurnRequest, o *outcome) error {
	if bondid.IsZero(request.Holder) {
		return fault.ErrInvalidAddress
	}
	if 0 == request.Amount {
		return fault.ErrInvalidAmount
	}

	err := e.permissions.Authorise(trx, caller, request.Holder, request.Class, request.Nonce, request.Amount)
	if nil != err {
		return err
	}

	err = e.ledger.BurnActive(trx, request.Class, request.Nonce, request.Holder, request.Amount)
	if nil != err {
		return err
	}

	event := messagebus.NewEvent(messagebus.Burn, now, caller)
	event.From = request.Holder
	event.Class = request.Class
	event.Nonce = request.Nonce
	event.Amount = request.Amount
	o.add(event, request.Amount)
	return nil
}
