// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/rpc/node"
	"github.com/leonimella/bondd/rpc/query"
)

// Info - request status from bondd
func (c *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Balance - active balance of a holder
func (c *Client) Balance(holder common.Address, class bondid.ClassId, nonce bondid.NonceId) (*query.BalanceReply, error) {
	arguments := query.BalanceArguments{
		Holder: holder,
		Class:  class,
		Nonce:  nonce,
	}
	var reply query.BalanceReply
	if err := c.call("Query.Balance", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Supply - the supply counters of a tranche
func (c *Client) Supply(class bondid.ClassId, nonce bondid.NonceId) (*query.SupplyReply, error) {
	var reply query.SupplyReply
	if err := c.call("Query.Supply", tranche(class, nonce), &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Allowance - what a spender may still move
func (c *Client) Allowance(owner common.Address, spender common.Address, class bondid.ClassId, nonce bondid.NonceId) (*query.AllowanceReply, error) {
	arguments := query.AllowanceArguments{
		Owner:   owner,
		Spender: spender,
		Class:   class,
		Nonce:   nonce,
	}
	var reply query.AllowanceReply
	if err := c.call("Query.Allowance", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ApprovedFor - operator status for a class
func (c *Client) ApprovedFor(owner common.Address, operator common.Address, class bondid.ClassId) (*query.ApprovedForReply, error) {
	arguments := query.ApprovedForArguments{
		Owner:    owner,
		Operator: operator,
		Class:    class,
	}
	var reply query.ApprovedForReply
	if err := c.call("Query.ApprovedFor", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Symbol - the symbol of a class
func (c *Client) Symbol(class bondid.ClassId) (*query.SymbolReply, error) {
	var reply query.SymbolReply
	if err := c.call("Query.Symbol", &query.ClassArguments{Class: class}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Value - one metadata value, nonce is nil for class metadata
func (c *Client) Value(class bondid.ClassId, nonce *bondid.NonceId, key string) (*query.ValueReply, error) {
	arguments := query.ValueArguments{
		Class: class,
		Nonce: nonce,
		Key:   key,
	}
	var reply query.ValueReply
	if err := c.call("Query.Value", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ClassMetadata - every metadata entry of a class
func (c *Client) ClassMetadata(class bondid.ClassId) (*query.MetadataReply, error) {
	var reply query.MetadataReply
	if err := c.call("Query.ClassMetadata", &query.ClassArguments{Class: class}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// NonceMetadata - every metadata entry of a tranche
func (c *Client) NonceMetadata(class bondid.ClassId, nonce bondid.NonceId) (*query.MetadataReply, error) {
	var reply query.MetadataReply
	if err := c.call("Query.NonceMetadata", tranche(class, nonce), &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Redeemable - whether a tranche may be redeemed now
func (c *Client) Redeemable(class bondid.ClassId, nonce bondid.NonceId) (*query.RedeemableReply, error) {
	var reply query.RedeemableReply
	if err := c.call("Query.Redeemable", tranche(class, nonce), &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Holders - every holder of a tranche with a non-zero balance
func (c *Client) Holders(class bondid.ClassId, nonce bondid.NonceId) (*query.HoldersReply, error) {
	var reply query.HoldersReply
	if err := c.call("Query.Holders", tranche(class, nonce), &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Nonces - the tranches of a class
func (c *Client) Nonces(class bondid.ClassId) (*query.NoncesReply, error) {
	var reply query.NoncesReply
	if err := c.call("Query.Nonces", &query.ClassArguments{Class: class}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

func tranche(class bondid.ClassId, nonce bondid.NonceId) *query.TrancheArguments {
	return &query.TrancheArguments{
		Class: class,
		Nonce: nonce,
	}
}
