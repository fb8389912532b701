// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/command/bond-cli/rpccalls"
	bondmetadata "github.com/leonimella/bondd/metadata"
)

// connect using the global options
func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.token, m.verbose, m.e)
}

// a required address flag
func checkAddress(c *cli.Context, name string) (common.Address, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return common.Address{}, fmt.Errorf("%s is required", name)
	}
	address, err := bondid.ParseAddress(s)
	if nil != err {
		return common.Address{}, fmt.Errorf("%s: %q error: %s", name, s, err)
	}
	return address, nil
}

// a non-zero amount flag
func checkAmount(c *cli.Context) (uint64, error) {
	amount := c.Uint64("amount")
	if 0 == amount {
		return 0, fmt.Errorf("amount must be greater than zero")
	}
	return amount, nil
}

func checkTranche(c *cli.Context) (bondid.ClassId, bondid.NonceId) {
	return bondid.ClassId(c.Uint64("class")), bondid.NonceId(c.Uint64("nonce"))
}

// the key and typed value flags
func checkValue(c *cli.Context) (string, bondmetadata.Value, error) {
	key := strings.TrimSpace(c.String("key"))
	if "" == key {
		return "", bondmetadata.Value{}, fmt.Errorf("key is required")
	}
	value, err := bondmetadata.ParseValue(c.String("kind"), c.String("value"))
	if nil != err {
		return "", bondmetadata.Value{}, fmt.Errorf("value: %q of kind: %q error: %s", c.String("value"), c.String("kind"), err)
	}
	return key, value, nil
}

// decode a JSON file, "-" is stdin
func readJSON(fileName string, stdin io.Reader, v interface{}) error {
	r := stdin
	if "-" != fileName {
		f, err := os.Open(fileName)
		if nil != err {
			return err
		}
		defer f.Close()
		r = f
	}

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
