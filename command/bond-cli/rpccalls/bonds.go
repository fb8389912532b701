// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/leonimella/bondd/bond"
	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/metadata"
	"github.com/leonimella/bondd/rpc/bonds"
)

// Issue - credit new bonds
func (c *Client) Issue(request bond.IssueRequest) (*bonds.Reply, error) {
	arguments := bonds.IssueArguments{
		Token:        c.token,
		IssueRequest: request,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.Issue", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// IssueBatch - credit several tranches at once
func (c *Client) IssueBatch(requests []bond.IssueRequest) (*bonds.Reply, error) {
	arguments := bonds.IssueBatchArguments{
		Token:  c.token,
		Issues: requests,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.IssueBatch", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Transfer - move bonds between holders
func (c *Client) Transfer(request bond.TransferRequest) (*bonds.Reply, error) {
	arguments := bonds.TransferArguments{
		Token:           c.token,
		TransferRequest: request,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.Transfer", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TransferBatch - several transfers, all or none
func (c *Client) TransferBatch(requests []bond.TransferRequest) (*bonds.Reply, error) {
	arguments := bonds.TransferBatchArguments{
		Token:     c.token,
		Transfers: requests,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.TransferBatch", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Redeem - settle bonds of a redeemable tranche
func (c *Client) Redeem(request bond.RedeemRequest) (*bonds.Reply, error) {
	arguments := bonds.RedeemArguments{
		Token:         c.token,
		RedeemRequest: request,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.Redeem", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RedeemBatch - several redemptions, all or none
func (c *Client) RedeemBatch(requests []bond.RedeemRequest) (*bonds.Reply, error) {
	arguments := bonds.RedeemBatchArguments{
		Token:       c.token,
		Redemptions: requests,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.RedeemBatch", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Burn - destroy bonds
func (c *Client) Burn(request bond.BurnRequest) (*bonds.Reply, error) {
	arguments := bonds.BurnArguments{
		Token:       c.token,
		BurnRequest: request,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.Burn", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// BurnBatch - several burns, all or none
func (c *Client) BurnBatch(requests []bond.BurnRequest) (*bonds.Reply, error) {
	arguments := bonds.BurnBatchArguments{
		Token: c.token,
		Burns: requests,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.BurnBatch", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Approve - set an allowance
func (c *Client) Approve(request bond.ApprovalRequest) (*bonds.Reply, error) {
	arguments := bonds.ApproveArguments{
		Token:           c.token,
		ApprovalRequest: request,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.Approve", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ApproveBatch - several allowances, all or none
func (c *Client) ApproveBatch(requests []bond.ApprovalRequest) (*bonds.Reply, error) {
	arguments := bonds.ApproveBatchArguments{
		Token:     c.token,
		Approvals: requests,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.ApproveBatch", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SetApprovalFor - grant or revoke an operator for a class
func (c *Client) SetApprovalFor(operator common.Address, class bondid.ClassId, approved bool) (*bonds.Reply, error) {
	arguments := bonds.SetApprovalForArguments{
		Token:    c.token,
		Operator: operator,
		Class:    class,
		Approved: approved,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.SetApprovalFor", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SetClassMetadata - write one class metadata value
func (c *Client) SetClassMetadata(class bondid.ClassId, key string, value metadata.Value) (*bonds.Reply, error) {
	arguments := bonds.ClassMetadataArguments{
		Token: c.token,
		Class: class,
		Key:   key,
		Value: value,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.SetClassMetadata", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SetNonceMetadata - write one nonce metadata value
func (c *Client) SetNonceMetadata(class bondid.ClassId, nonce bondid.NonceId, key string, value metadata.Value) (*bonds.Reply, error) {
	arguments := bonds.NonceMetadataArguments{
		Token: c.token,
		Class: class,
		Nonce: nonce,
		Key:   key,
		Value: value,
	}
	var reply bonds.Reply
	if err := c.call("Bonds.SetNonceMetadata", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
