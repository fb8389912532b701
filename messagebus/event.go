// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/leonimella/bondd/bondid"
)

// Kind - what happened
type Kind string

// all event kinds
const (
	Issue         Kind = "issue"
	Transfer      Kind = "transfer"
	Redeem        Kind = "redeem"
	Burn          Kind = "burn"
	Approval      Kind = "approval"
	ApprovalFor   Kind = "approvalFor"
	ClassMetadata Kind = "classMetadata"
	NonceMetadata Kind = "nonceMetadata"
)

// Event - a single committed ledger change
//
// From and To follow the token convention: the zero address is
// used as From on issue and as To on burn and redeem
type Event struct {
	Id        uuid.UUID      `json:"id"`
	Kind      Kind           `json:"kind"`
	Timestamp time.Time      `json:"timestamp"`
	Operator  common.Address `json:"operator"`
	From      common.Address `json:"from"`
	To        common.Address `json:"to"`
	Class     bondid.ClassId `json:"classId"`
	Nonce     bondid.NonceId `json:"nonceId"`
	Amount    uint64         `json:"amount,omitempty"`
	Approved  bool           `json:"approved,omitempty"`
	Key       string         `json:"key,omitempty"`
}

// NewEvent - event with a fresh identifier
func NewEvent(kind Kind, timestamp time.Time, operator common.Address) Event {
	return Event{
		Id:        uuid.New(),
		Kind:      kind,
		Timestamp: timestamp.UTC(),
		Operator:  operator,
	}
}
