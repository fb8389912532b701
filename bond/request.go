// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bond

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/metadata"
)

// IssueRequest - credit new bonds to a holder
//
// the metadata is only applied when the call creates the class or
// the nonce respectively
type IssueRequest struct {
	Class         bondid.ClassId            `json:"classId"`
	Nonce         bondid.NonceId            `json:"nonceId"`
	Holder        common.Address            `json:"holder"`
	Amount        uint64                    `json:"amount"`
	ClassMetadata map[string]metadata.Value `json:"classMetadata,omitempty"`
	NonceMetadata map[string]metadata.Value `json:"nonceMetadata,omitempty"`
}

// TransferRequest - move bonds between holders
type TransferRequest struct {
	From   common.Address `json:"from"`
	To     common.Address `json:"to"`
	Class  bondid.ClassId `json:"classId"`
	Nonce  bondid.NonceId `json:"nonceId"`
	Amount uint64         `json:"amount"`
}

// RedeemRequest - settle bonds of a redeemable tranche
type RedeemRequest struct {
	Holder common.Address `json:"holder"`
	Class  bondid.ClassId `json:"classId"`
	Nonce  bondid.NonceId `json:"nonceId"`
	Amount uint64         `json:"amount"`
}

// BurnRequest - destroy bonds
type BurnRequest struct {
	Holder common.Address `json:"holder"`
	Class  bondid.ClassId `json:"classId"`
	Nonce  bondid.NonceId `json:"nonceId"`
	Amount uint64         `json:"amount"`
}

// ApprovalRequest - allow a spender to move the caller's bonds
type ApprovalRequest struct {
	Spender common.Address `json:"spender"`
	Class   bondid.ClassId `json:"classId"`
	Nonce   bondid.NonceId `json:"nonceId"`
	Amount  uint64         `json:"amount"`
}
