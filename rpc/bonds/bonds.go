// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bonds - the mutating RPC calls
//
// every call carries a bearer token which is resolved to the caller
// address before the engine is invoked
package bonds

import (
	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/leonimella/bondd/bond"
	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/metadata"
	"github.com/leonimella/bondd/rpc/ratelimit"
)

const (
	rateLimitBonds = 200
)

// Engine - the ledger operations exposed by this service
type Engine interface {
	Issue(common.Address, bond.IssueRequest) error
	IssueBatch(common.Address, []bond.IssueRequest) error
	TransferFrom(common.Address, bond.TransferRequest) error
	TransferBatch(common.Address, []bond.TransferRequest) error
	Redeem(common.Address, bond.RedeemRequest) error
	RedeemBatch(common.Address, []bond.RedeemRequest) error
	Burn(common.Address, bond.BurnRequest) error
	BurnBatch(common.Address, []bond.BurnRequest) error
	Approve(common.Address, bond.ApprovalRequest) error
	ApproveBatch(common.Address, []bond.ApprovalRequest) error
	SetApprovalFor(common.Address, common.Address, bondid.ClassId, bool) error
	SetClassMetadata(common.Address, bondid.ClassId, string, metadata.Value) error
	SetNonceMetadata(common.Address, bondid.ClassId, bondid.NonceId, string, metadata.Value) error
	MaximumBatch() int
}

// Principals - token to caller resolution
type Principals interface {
	Resolve(token string) (common.Address, error)
}

// Bonds - type for the RPC
type Bonds struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Engine     Engine
	Principals Principals
}

// New - create the service
func New(log *logger.L, engine Engine, principals Principals) *Bonds {
	return &Bonds{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitBonds, engine.MaximumBatch()),
		Engine:     engine,
		Principals: principals,
	}
}

// Reply - result of every mutating call
type Reply struct {
	Caller  common.Address `json:"caller"`
	Entries int            `json:"entries"`
}

// authorise a single call
func (bonds *Bonds) caller(name string, token string) (common.Address, error) {
	if err := ratelimit.Limit(bonds.Limiter); nil != err {
		return common.Address{}, err
	}
	return bonds.resolve(name, token)
}

// authorise a batch call, charging one slot per entry
//
// the count is clipped so that the engine reports the batch size error
func (bonds *Bonds) batchCaller(name string, token string, count int) (common.Address, error) {
	maximum := bonds.Engine.MaximumBatch()
	if count > maximum {
		count = maximum
	}
	if count < 1 {
		count = 1
	}
	if err := ratelimit.LimitN(bonds.Limiter, count, maximum); nil != err {
		return common.Address{}, err
	}
	return bonds.resolve(name, token)
}

func (bonds *Bonds) resolve(name string, token string) (common.Address, error) {
	caller, err := bonds.Principals.Resolve(token)
	if nil != err {
		bonds.Log.Warnf("%s: %s", name, err)
		return common.Address{}, err
	}
	return caller, nil
}

func (bonds *Bonds) done(name string, caller common.Address, entries int, err error, reply *Reply) error {
	if nil != err {
		bonds.Log.Infof("%s: caller: %s  error: %s", name, caller.Hex(), err)
		return err
	}
	reply.Caller = caller
	reply.Entries = entries
	return nil
}

// Issue
// -----

// IssueArguments - arguments for a single issue
type IssueArguments struct {
	Token string `json:"token"`
	bond.IssueRequest
}

// Issue - credit new bonds, issuer only
func (bonds *Bonds) Issue(arguments *IssueArguments, reply *Reply) error {
	caller, err := bonds.caller("Bonds.Issue", arguments.Token)
	if nil != err {
		return err
	}
	bonds.Log.Debugf("Bonds.Issue: %+v", arguments.IssueRequest)
	err = bonds.Engine.Issue(caller, arguments.IssueRequest)
	return bonds.done("Bonds.Issue", caller, 1, err, reply)
}

// IssueBatchArguments - arguments for an issue batch
type IssueBatchArguments struct {
	Token  string              `json:"token"`
	Issues []bond.IssueRequest `json:"issues"`
}

// IssueBatch - credit several tranches in one transaction
func (bonds *Bonds) IssueBatch(arguments *IssueBatchArguments, reply *Reply) error {
	caller, err := bonds.batchCaller("Bonds.IssueBatch", arguments.Token, len(arguments.Issues))
	if nil != err {
		return err
	}
	err = bonds.Engine.IssueBatch(caller, arguments.Issues)
	return bonds.done("Bonds.IssueBatch", caller, len(arguments.Issues), err, reply)
}

// Transfer
// --------

// TransferArguments - arguments for a single transfer
type TransferArguments struct {
	Token string `json:"token"`
	bond.TransferRequest
}

// Transfer - move bonds as owner, operator or spender
func (bonds *Bonds) Transfer(arguments *TransferArguments, reply *Reply) error {
	caller, err := bonds.caller("Bonds.Transfer", arguments.Token)
	if nil != err {
		return err
	}
	bonds.Log.Debugf("Bonds.Transfer: %+v", arguments.TransferRequest)
	err = bonds.Engine.TransferFrom(caller, arguments.TransferRequest)
	return bonds.done("Bonds.Transfer", caller, 1, err, reply)
}

// TransferBatchArguments - arguments for a transfer batch
type TransferBatchArguments struct {
	Token     string                 `json:"token"`
	Transfers []bond.TransferRequest `json:"transfers"`
}

// TransferBatch - several transfers in one transaction
func (bonds *Bonds) TransferBatch(arguments *TransferBatchArguments, reply *Reply) error {
	caller, err := bonds.batchCaller("Bonds.TransferBatch", arguments.Token, len(arguments.Transfers))
	if nil != err {
		return err
	}
	err = bonds.Engine.TransferBatch(caller, arguments.Transfers)
	return bonds.done("Bonds.TransferBatch", caller, len(arguments.Transfers), err, reply)
}

// Redeem
// ------

// RedeemArguments - arguments for a single redemption
type RedeemArguments struct {
	Token string `json:"token"`
	bond.RedeemRequest
}

// Redeem - settle bonds of a redeemable tranche
func (bonds *Bonds) Redeem(arguments *RedeemArguments, reply *Reply) error {
	caller, err := bonds.caller("Bonds.Redeem", arguments.Token)
	if nil != err {
		return err
	}
	err = bonds.Engine.Redeem(caller, arguments.RedeemRequest)
	return bonds.done("Bonds.Redeem", caller, 1, err, reply)
}

// RedeemBatchArguments - arguments for a redemption batch
type RedeemBatchArguments struct {
	Token       string               `json:"token"`
	Redemptions []bond.RedeemRequest `json:"redemptions"`
}

// RedeemBatch - several redemptions in one transaction
func (bonds *Bonds) RedeemBatch(arguments *RedeemBatchArguments, reply *Reply) error {
	caller, err := bonds.batchCaller("Bonds.RedeemBatch", arguments.Token, len(arguments.Redemptions))
	if nil != err {
		return err
	}
	err = bonds.Engine.RedeemBatch(caller, arguments.Redemptions)
	return bonds.done("Bonds.RedeemBatch", caller, len(arguments.Redemptions), err, reply)
}

// Burn
// ----

// BurnArguments - arguments for a single burn
type BurnArguments struct {
	Token string `json:"token"`
	bond.BurnRequest
}

// Burn - destroy bonds
func (bonds *Bonds) Burn(arguments *BurnArguments, reply *Reply) error {
	caller, err := bonds.caller("Bonds.Burn", arguments.Token)
	if nil != err {
		return err
	}
	err = bonds.Engine.Burn(caller, arguments.BurnRequest)
	return bonds.done("Bonds.Burn", caller, 1, err, reply)
}

// BurnBatchArguments - arguments for a burn batch
type BurnBatchArguments struct {
	Token string             `json:"token"`
	Burns []bond.BurnRequest `json:"burns"`
}

// BurnBatch - several burns in one transaction
func (bonds *Bonds) BurnBatch(arguments *BurnBatchArguments, reply *Reply) error {
	caller, err := bonds.batchCaller("Bonds.BurnBatch", arguments.Token, len(arguments.Burns))
	if nil != err {
		return err
	}
	err = bonds.Engine.BurnBatch(caller, arguments.Burns)
	return bonds.done("Bonds.BurnBatch", caller, len(arguments.Burns), err, reply)
}

// Approvals
// ---------

// ApproveArguments - arguments for a single allowance
type ApproveArguments struct {
	Token string `json:"token"`
	bond.ApprovalRequest
}

// Approve - set the caller's allowance for a spender
func (bonds *Bonds) Approve(arguments *ApproveArguments, reply *Reply) error {
	caller, err := bonds.caller("Bonds.Approve", arguments.Token)
	if nil != err {
		return err
	}
	err = bonds.Engine.Approve(caller, arguments.ApprovalRequest)
	return bonds.done("Bonds.Approve", caller, 1, err, reply)
}

// ApproveBatchArguments - arguments for an allowance batch
type ApproveBatchArguments struct {
	Token     string                 `json:"token"`
	Approvals []bond.ApprovalRequest `json:"approvals"`
}

// ApproveBatch - several allowances in one transaction
func (bonds *Bonds) ApproveBatch(arguments *ApproveBatchArguments, reply *Reply) error {
	caller, err := bonds.batchCaller("Bonds.ApproveBatch", arguments.Token, len(arguments.Approvals))
	if nil != err {
		return err
	}
	err = bonds.Engine.ApproveBatch(caller, arguments.Approvals)
	return bonds.done("Bonds.ApproveBatch", caller, len(arguments.Approvals), err, reply)
}

// SetApprovalForArguments - arguments for an operator approval
type SetApprovalForArguments struct {
	Token    string         `json:"token"`
	Operator common.Address `json:"operator"`
	Class    bondid.ClassId `json:"classId"`
	Approved bool           `json:"approved"`
}

// SetApprovalFor - grant or revoke an operator over one class
func (bonds *Bonds) SetApprovalFor(arguments *SetApprovalForArguments, reply *Reply) error {
	caller, err := bonds.caller("Bonds.SetApprovalFor", arguments.Token)
	if nil != err {
		return err
	}
	err = bonds.Engine.SetApprovalFor(caller, arguments.Operator, arguments.Class, arguments.Approved)
	return bonds.done("Bonds.SetApprovalFor", caller, 1, err, reply)
}

// Metadata
// --------

// ClassMetadataArguments - arguments for a class metadata write
type ClassMetadataArguments struct {
	Token string         `json:"token"`
	Class bondid.ClassId `json:"classId"`
	Key   string         `json:"key"`
	Value metadata.Value `json:"value"`
}

// SetClassMetadata - write one class value, issuer only
func (bonds *Bonds) SetClassMetadata(arguments *ClassMetadataArguments, reply *Reply) error {
	caller, err := bonds.caller("Bonds.SetClassMetadata", arguments.Token)
	if nil != err {
		return err
	}
	err = bonds.Engine.SetClassMetadata(caller, arguments.Class, arguments.Key, arguments.Value)
	return bonds.done("Bonds.SetClassMetadata", caller, 1, err, reply)
}

// NonceMetadataArguments - arguments for a nonce metadata write
type NonceMetadataArguments struct {
	Token string         `json:"token"`
	Class bondid.ClassId `json:"classId"`
	Nonce bondid.NonceId `json:"nonceId"`
	Key   string         `json:"key"`
	Value metadata.Value `json:"value"`
}

// SetNonceMetadata - write one nonce value, issuer only
func (bonds *Bonds) SetNonceMetadata(arguments *NonceMetadataArguments, reply *Reply) error {
	caller, err := bonds.caller("Bonds.SetNonceMetadata", arguments.Token)
	if nil != err {
		return err
	}
	err = bonds.Engine.SetNonceMetadata(caller, arguments.Class, arguments.Nonce, arguments.Key, arguments.Value)
	return bonds.done("Bonds.SetNonceMetadata", caller, 1, err, reply)
}
