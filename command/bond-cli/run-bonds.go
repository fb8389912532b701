// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/leonimella/bondd/bond"
	bondmetadata "github.com/leonimella/bondd/metadata"
)

func runIssue(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, nonce := checkTranche(c)
	holder, err := checkAddress(c, "holder")
	if nil != err {
		return err
	}
	amount, err := checkAmount(c)
	if nil != err {
		return err
	}

	request := bond.IssueRequest{
		Class:  class,
		Nonce:  nonce,
		Holder: holder,
		Amount: amount,
	}
	if symbol := c.String("symbol"); "" != symbol {
		request.ClassMetadata = map[string]bondmetadata.Value{
			bondmetadata.KeySymbol: bondmetadata.StringValue(symbol),
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "class: %d  nonce: %d\n", class, nonce)
		fmt.Fprintf(m.e, "holder: %s\n", holder.Hex())
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Issue(request)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, nonce := checkTranche(c)
	from, err := checkAddress(c, "from")
	if nil != err {
		return err
	}
	to, err := checkAddress(c, "to")
	if nil != err {
		return err
	}
	amount, err := checkAmount(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(bond.TransferRequest{
		From:   from,
		To:     to,
		Class:  class,
		Nonce:  nonce,
		Amount: amount,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRedeem(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, nonce := checkTranche(c)
	holder, err := checkAddress(c, "holder")
	if nil != err {
		return err
	}
	amount, err := checkAmount(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Redeem(bond.RedeemRequest{
		Holder: holder,
		Class:  class,
		Nonce:  nonce,
		Amount: amount,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBurn(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, nonce := checkTranche(c)
	holder, err := checkAddress(c, "holder")
	if nil != err {
		return err
	}
	amount, err := checkAmount(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Burn(bond.BurnRequest{
		Holder: holder,
		Class:  class,
		Nonce:  nonce,
		Amount: amount,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runApprove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, nonce := checkTranche(c)
	spender, err := checkAddress(c, "spender")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Approve(bond.ApprovalRequest{
		Spender: spender,
		Class:   class,
		Nonce:   nonce,
		Amount:  c.Uint64("amount"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runApproveFor(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, _ := checkTranche(c)
	operator, err := checkAddress(c, "operator")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetApprovalFor(operator, class, !c.Bool("revoke"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSetClassMetadata(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, _ := checkTranche(c)
	key, value, err := checkValue(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetClassMetadata(class, key, value)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSetNonceMetadata(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, nonce := checkTranche(c)
	key, value, err := checkValue(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetNonceMetadata(class, nonce, key, value)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
