// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/leonimella/bondd/bondid"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Info()
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Connection string      `json:"_connection"`
		Info       interface{} `json:"info"`
	}{
		Connection: m.connect,
		Info:       response,
	})
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, nonce := checkTranche(c)
	holder, err := checkAddress(c, "holder")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(holder, class, nonce)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSupply(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, nonce := checkTranche(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Supply(class, nonce)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAllowance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, nonce := checkTranche(c)
	owner, err := checkAddress(c, "owner")
	if nil != err {
		return err
	}
	spender, err := checkAddress(c, "spender")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Allowance(owner, spender, class, nonce)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runApprovedFor(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, _ := checkTranche(c)
	owner, err := checkAddress(c, "owner")
	if nil != err {
		return err
	}
	operator, err := checkAddress(c, "operator")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ApprovedFor(owner, operator, class)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSymbol(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, _ := checkTranche(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Symbol(class)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runValue(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, n := checkTranche(c)
	key := strings.TrimSpace(c.String("key"))
	if "" == key {
		return fmt.Errorf("key is required")
	}

	var nonce *bondid.NonceId
	if c.IsSet("nonce") {
		nonce = &n
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Value(class, nonce, key)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runClassMetadata(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, _ := checkTranche(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ClassMetadata(class)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runNonceMetadata(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, nonce := checkTranche(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.NonceMetadata(class, nonce)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRedeemable(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, nonce := checkTranche(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Redeemable(class, nonce)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runHolders(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, nonce := checkTranche(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Holders(class, nonce)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runNonces(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	class, _ := checkTranche(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Nonces(class)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
