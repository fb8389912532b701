// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bond

import (
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/messagebus"
	"github.com/leonimella/bondd/metadata"
	"github.com/leonimella/bondd/storage"
)

// Issue - create bonds for a holder, issuer only
func (e *Engine) Issue(caller common.Address, request IssueRequest) error {
	if err := e.checkIssuer(caller); nil != err {
		return err
	}
	return e.execute("issue", 1, func(trx storage.Transaction, now time.Time, o *outcome) error {
		return e.issue(trx, now, caller, request, o)
	})
}

// IssueBatch - all or nothing issue of several entries
func (e *Engine) IssueBatch(caller common.Address, requests []IssueRequest) error {
	if err := e.checkIssuer(caller); nil != err {
		return err
	}
	if err := e.checkBatch(len(requests)); nil != err {
		return err
	}
	return e.execute("issueBatch", len(requests), func(trx storage.Transaction, now time.Time, o *outcome) error {
		for i, request := range requests {
			if err := e.issue(trx, now, caller, request, o); nil != err {
				return &fault.BatchError{Index: i, Err: err}
			}
		}
		return nil
	})
}

func (e *Engine) issue(trx storage.Transaction, now time.Time, caller common.Address, request IssueRequest, o *outcome) error {
	if bondid.IsZero(request.Holder) {
		return fault.ErrInvalidAddress
	}
	if 0 == request.Amount {
		return fault.ErrInvalidAmount
	}

	classCreated, nonceCreated := e.registry.EnsureTranche(trx, request.Class, request.Nonce, now)

	if classCreated {
		err := seed(request.ClassMetadata, func(key string, value metadata.Value) error {
			return e.registry.SetClassValue(trx, request.Class, key, value)
		})
		if nil != err {
			return err
		}
	}
	if nonceCreated {
		err := seed(request.NonceMetadata, func(key string, value metadata.Value) error {
			return e.registry.SetNonceValue(trx, request.Class, request.Nonce, key, value)
		})
		if nil != err {
			return err
		}
	}

	if err := e.ledger.CreditActive(trx, request.Class, request.Nonce, request.Holder, request.Amount); nil != err {
		return err
	}

	event := messagebus.NewEvent(messagebus.Issue, now, caller)
	event.To = request.Holder
	event.Class = request.Class
	event.Nonce = request.Nonce
	event.Amount = request.Amount
	o.add(event, request.Amount)
	return nil
}

// apply seed metadata in key order so errors are reproducible
func seed(values map[string]metadata.Value, set func(string, metadata.Value) error) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := set(key, values[key]); nil != err {
			return err
		}
	}
	return nil
}
