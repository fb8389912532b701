// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package query - the read only RPC calls
package query

import (
	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/ledger"
	"github.com/leonimella/bondd/metadata"
	"github.com/leonimella/bondd/rpc/ratelimit"
)

const (
	rateLimitQuery = 500
	rateBurstQuery = 200
)

// Ledger - the committed state visible to clients
type Ledger interface {
	Supply(bondid.ClassId, bondid.NonceId) ledger.Supply
	BalanceOf(common.Address, bondid.ClassId, bondid.NonceId) uint64
	Allowance(common.Address, common.Address, bondid.ClassId, bondid.NonceId) uint64
	IsApprovedFor(common.Address, common.Address, bondid.ClassId) bool
	Symbol(bondid.ClassId) string
	ClassValue(bondid.ClassId, string) metadata.Value
	NonceValue(bondid.ClassId, bondid.NonceId, string) metadata.Value
	ClassMetadata(bondid.ClassId) ([]metadata.Entry, error)
	NonceMetadata(bondid.ClassId, bondid.NonceId) ([]metadata.Entry, error)
	IsRedeemable(bondid.ClassId, bondid.NonceId) bool
	Holders(bondid.ClassId, bondid.NonceId) ([]ledger.Holding, error)
	Nonces(bondid.ClassId) ([]bondid.NonceId, error)
}

// Query - type for the RPC
type Query struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
}

// New - create the service
func New(log *logger.L, l Ledger) *Query {
	return &Query{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitQuery, rateBurstQuery),
		Ledger:  l,
	}
}

// ClassArguments - select a class
type ClassArguments struct {
	Class bondid.ClassId `json:"classId"`
}

// TrancheArguments - select a nonce of a class
type TrancheArguments struct {
	Class bondid.ClassId `json:"classId"`
	Nonce bondid.NonceId `json:"nonceId"`
}

// Balance
// -------

// BalanceArguments - holder and tranche
type BalanceArguments struct {
	Holder common.Address `json:"holder"`
	Class  bondid.ClassId `json:"classId"`
	Nonce  bondid.NonceId `json:"nonceId"`
}

// BalanceReply - active balance of the holder
type BalanceReply struct {
	Balance uint64 `json:"balance"`
}

// Balance - active balance of a holder
func (query *Query) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}
	reply.Balance = query.Ledger.BalanceOf(arguments.Holder, arguments.Class, arguments.Nonce)
	return nil
}

// Supply
// ------

// SupplyReply - supply counters of a tranche
type SupplyReply struct {
	Active   uint64 `json:"active"`
	Burned   uint64 `json:"burned"`
	Redeemed uint64 `json:"redeemed"`
	Total    uint64 `json:"total"`
}

// Supply - active, burned, redeemed and total supply
func (query *Query) Supply(arguments *TrancheArguments, reply *SupplyReply) error {
	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}
	s := query.Ledger.Supply(arguments.Class, arguments.Nonce)
	reply.Active = s.Active
	reply.Burned = s.Burned
	reply.Redeemed = s.Redeemed
	reply.Total = s.Total()
	return nil
}

// Permissions
// -----------

// AllowanceArguments - owner, spender and tranche
type AllowanceArguments struct {
	Owner   common.Address `json:"owner"`
	Spender common.Address `json:"spender"`
	Class   bondid.ClassId `json:"classId"`
	Nonce   bondid.NonceId `json:"nonceId"`
}

// AllowanceReply - remaining allowance
type AllowanceReply struct {
	Amount uint64 `json:"amount"`
}

// Allowance - remaining amount a spender may move
func (query *Query) Allowance(arguments *AllowanceArguments, reply *AllowanceReply) error {
	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}
	reply.Amount = query.Ledger.Allowance(arguments.Owner, arguments.Spender, arguments.Class, arguments.Nonce)
	return nil
}

// ApprovedForArguments - owner, operator and class
type ApprovedForArguments struct {
	Owner    common.Address `json:"owner"`
	Operator common.Address `json:"operator"`
	Class    bondid.ClassId `json:"classId"`
}

// ApprovedForReply - operator status
type ApprovedForReply struct {
	Approved bool `json:"approved"`
}

// ApprovedFor - whether an operator may act for an owner
func (query *Query) ApprovedFor(arguments *ApprovedForArguments, reply *ApprovedForReply) error {
	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}
	reply.Approved = query.Ledger.IsApprovedFor(arguments.Owner, arguments.Operator, arguments.Class)
	return nil
}

// Metadata
// --------

// SymbolReply - class symbol
type SymbolReply struct {
	Symbol string `json:"symbol"`
}

// Symbol - the class symbol, empty if not set
func (query *Query) Symbol(arguments *ClassArguments, reply *SymbolReply) error {
	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}
	reply.Symbol = query.Ledger.Symbol(arguments.Class)
	return nil
}

// ValueArguments - a single metadata key
//
// a nil nonce selects class metadata
type ValueArguments struct {
	Class bondid.ClassId  `json:"classId"`
	Nonce *bondid.NonceId `json:"nonceId,omitempty"`
	Key   string          `json:"key"`
}

// ValueReply - the value, kind none when absent
type ValueReply struct {
	Value metadata.Value `json:"value"`
}

// Value - one class or nonce metadata value
func (query *Query) Value(arguments *ValueArguments, reply *ValueReply) error {
	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}
	if "" == arguments.Key {
		return fault.ErrInvalidMetadataKey
	}
	if nil == arguments.Nonce {
		reply.Value = query.Ledger.ClassValue(arguments.Class, arguments.Key)
	} else {
		reply.Value = query.Ledger.NonceValue(arguments.Class, *arguments.Nonce, arguments.Key)
	}
	return nil
}

// MetadataReply - every stored entry
type MetadataReply struct {
	Entries []metadata.Entry `json:"entries"`
}

// ClassMetadata - every value stored for a class
func (query *Query) ClassMetadata(arguments *ClassArguments, reply *MetadataReply) error {
	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}
	entries, err := query.Ledger.ClassMetadata(arguments.Class)
	if nil != err {
		query.Log.Errorf("Query.ClassMetadata: class: %d  error: %s", arguments.Class, err)
		return err
	}
	reply.Entries = entries
	return nil
}

// NonceMetadata - every value stored for a nonce
func (query *Query) NonceMetadata(arguments *TrancheArguments, reply *MetadataReply) error {
	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}
	entries, err := query.Ledger.NonceMetadata(arguments.Class, arguments.Nonce)
	if nil != err {
		query.Log.Errorf("Query.NonceMetadata: class: %d  nonce: %d  error: %s", arguments.Class, arguments.Nonce, err)
		return err
	}
	reply.Entries = entries
	return nil
}

// RedeemableReply - redemption status
type RedeemableReply struct {
	Redeemable bool `json:"redeemable"`
}

// Redeemable - whether redemption is open now
func (query *Query) Redeemable(arguments *TrancheArguments, reply *RedeemableReply) error {
	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}
	reply.Redeemable = query.Ledger.IsRedeemable(arguments.Class, arguments.Nonce)
	return nil
}

// Listings
// --------

// HoldersReply - balance records of a tranche
type HoldersReply struct {
	Holders []ledger.Holding `json:"holders"`
}

// Holders - every balance record of a tranche
func (query *Query) Holders(arguments *TrancheArguments, reply *HoldersReply) error {
	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}
	holders, err := query.Ledger.Holders(arguments.Class, arguments.Nonce)
	if nil != err {
		query.Log.Errorf("Query.Holders: class: %d  nonce: %d  error: %s", arguments.Class, arguments.Nonce, err)
		return err
	}
	reply.Holders = holders
	return nil
}

// NoncesReply - issued nonces
type NoncesReply struct {
	Nonces []bondid.NonceId `json:"nonces"`
}

// Nonces - issued nonces of a class
func (query *Query) Nonces(arguments *ClassArguments, reply *NoncesReply) error {
	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}
	nonces, err := query.Ledger.Nonces(arguments.Class)
	if nil != err {
		query.Log.Errorf("Query.Nonces: class: %d  error: %s", arguments.Class, err)
		return err
	}
	reply.Nonces = nonces
	return nil
}
