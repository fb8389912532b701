// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/leonimella/bondd/bond"
	"github.com/leonimella/bondd/command/bond-cli/rpccalls"
	"github.com/leonimella/bondd/rpc/bonds"
)

// a decoded batch ready to send
type batchSender func(client *rpccalls.Client) (*bonds.Reply, error)

func runBatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	send, count, err := decodeBatch(c.String("kind"), c.String("file"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "kind: %s  entries: %d\n", c.String("kind"), count)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := send(client)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// read a JSON array of the requests of one kind
func decodeBatch(kind string, fileName string) (batchSender, int, error) {
	switch kind {
	case "issue":
		var requests []bond.IssueRequest
		if err := readJSON(fileName, os.Stdin, &requests); nil != err {
			return nil, 0, err
		}
		return func(client *rpccalls.Client) (*bonds.Reply, error) {
			return client.IssueBatch(requests)
		}, len(requests), nil

	case "transfer":
		var requests []bond.TransferRequest
		if err := readJSON(fileName, os.Stdin, &requests); nil != err {
			return nil, 0, err
		}
		return func(client *rpccalls.Client) (*bonds.Reply, error) {
			return client.TransferBatch(requests)
		}, len(requests), nil

	case "redeem":
		var requests []bond.RedeemRequest
		if err := readJSON(fileName, os.Stdin, &requests); nil != err {
			return nil, 0, err
		}
		return func(client *rpccalls.Client) (*bonds.Reply, error) {
			return client.RedeemBatch(requests)
		}, len(requests), nil

	case "burn":
		var requests []bond.BurnRequest
		if err := readJSON(fileName, os.Stdin, &requests); nil != err {
			return nil, 0, err
		}
		return func(client *rpccalls.Client) (*bonds.Reply, error) {
			return client.BurnBatch(requests)
		}, len(requests), nil

	case "approve":
		var requests []bond.ApprovalRequest
		if err := readJSON(fileName, os.Stdin, &requests); nil != err {
			return nil, 0, err
		}
		return func(client *rpccalls.Client) (*bonds.Reply, error) {
			return client.ApproveBatch(requests)
		}, len(requests), nil

	default:
		return nil, 0, fmt.Errorf("kind: %q can only be issue/transfer/redeem/burn/approve", kind)
	}
}
