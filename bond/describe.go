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
	"github.com/leonimella/bondd/metadata"
	"github.com/leonimella/bondd/storage"
)

// SetClassMetadata - store a class value, issuer only
//
// a class may be described before its first issue, the maturity period
// is frozen once any nonce of the class is redeemable
func (e *Engine) SetClassMetadata(caller common.Address, class bondid.ClassId, key string, value metadata.Value) error {
	if err := e.checkIssuer(caller); nil != err {
		return err
	}
	return e.execute("setClassMetadata", 1, func(trx storage.Transaction, now time.Time, o *outcome) error {
		if metadata.KeyMaturityPeriod == key {
			frozen, err := e.anyRedeemable(trx, class, now)
			if nil != err {
				return err
			}
			if frozen {
				return fault.ErrMetadataFrozen
			}
		}
		if err := e.registry.SetClassValue(trx, class, key, value); nil != err {
			return err
		}

		event := messagebus.NewEvent(messagebus.ClassMetadata, now, caller)
		event.Class = class
		event.Key = key
		o.add(event, 0)
		return nil
	})
}

// SetNonceMetadata - store a nonce value, issuer only
//
// nonce values are frozen once the nonce is redeemable
func (e *Engine) SetNonceMetadata(caller common.Address, class bondid.ClassId, nonce bondid.NonceId, key string, value metadata.Value) error {
	if err := e.checkIssuer(caller); nil != err {
		return err
	}
	return e.execute("setNonceMetadata", 1, func(trx storage.Transaction, now time.Time, o *outcome) error {
		if e.registry.IsRedeemable(trx, class, nonce, now) {
			return fault.ErrMetadataFrozen
		}
		if err := e.registry.SetNonceValue(trx, class, nonce, key, value); nil != err {
			return err
		}

		event := messagebus.NewEvent(messagebus.NonceMetadata, now, caller)
		event.Class = class
		event.Nonce = nonce
		event.Key = key
		o.add(event, 0)
		return nil
	})
}

// nonces are listed from committed state, the engine lock keeps that
// equal to the transaction snapshot
func (e *Engine) anyRedeemable(trx storage.Transaction, class bondid.ClassId, now time.Time) (bool, error) {
	nonces, err := e.registry.Nonces(class)
	if nil != err {
		return false, err
	}
	for _, nonce := range nonces {
		if e.registry.IsRedeemable(trx, class, nonce, now) {
			return true, nil
		}
	}
	return false, nil
}
