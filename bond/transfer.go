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

// TransferFrom - move bonds from one holder to another
//
// a caller that is neither the holder nor an approved operator
// consumes the allowance the holder gave it
func (e *Engine) TransferFrom(caller common.Address, request TransferRequest) error {
	return e.execute("transfer", 1, func(trx storage.Transaction, now time.Time, o *outcome) error {
		return e.transfer(trx, now, caller, request, o)
	})
}

// TransferBatch - all or nothing transfer of several entries
func (e *Engine) TransferBatch(caller common.Address, requests []TransferRequest) error {
	if err := e.checkBatch(len(requests)); nil != err {
		return err
	}
	return e.execute("transferBatch", len(requests), func(trx storage.Transaction, now time.Time, o *outcome) error {
		for i, request := range requests {
			if err := e.transfer(trx, now, caller, request, o); nil != err {
				return &fault.BatchError{Index: i, Err: err}
			}
		}
		return nil
	})
}

func (e *Engine) transfer(trx storage.Transaction, now time.Time, caller common.Address, request TransferRequest, o *outcome) error {
	if bondid.IsZero(request.From) || bondid.IsZero(request.To) {
		return fault.ErrInvalidAddress
	}
	if 0 == request.Amount {
		return fault.ErrInvalidAmount
	}

	err := e.permissions.Authorise(trx, caller, request.From, request.Class, request.Nonce, request.Amount)
	if nil != err {
		return err
	}

	err = e.ledger.MoveActive(trx, request.Class, request.Nonce, request.From, request.To, request.Amount)
	if nil != err {
		return err
	}

	event := messagebus.NewEvent(messagebus.Transfer, now, caller)
	event.From = request.From
	event.To = request.To
	event.Class = request.Class
	event.Nonce = request.Nonce
	event.Amount = request.Amount
	o.add(event, request.Amount)
	return nil
}
