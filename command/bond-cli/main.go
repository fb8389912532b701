// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	token   string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2130"

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "bond-cli"
	app.Usage = "issue, move and inspect bonds held by a bondd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			EnvVar: "BOND_CONNECT",
			Usage:  " bondd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:   "token, t",
			Value:  "",
			EnvVar: "BOND_TOKEN",
			Usage:  " principal `TOKEN` for changes",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display bondd status",
			Action: runInfo,
		},
		{
			Name:      "issue",
			Usage:     "issue new bonds to a holder",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				classFlag(),
				nonceFlag(),
				addressFlag("holder, H", "*holder to receive the bonds"),
				amountFlag(),
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: " class symbol, only on first issue `STRING`",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "transfer",
			Usage:     "move bonds between holders",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				classFlag(),
				nonceFlag(),
				addressFlag("from, f", "*current holder"),
				addressFlag("to, r", "*receiving holder"),
				amountFlag(),
			},
			Action: runTransfer,
		},
		{
			Name:      "redeem",
			Usage:     "redeem bonds of a redeemable tranche",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				classFlag(),
				nonceFlag(),
				addressFlag("holder, H", "*holder of the bonds"),
				amountFlag(),
			},
			Action: runRedeem,
		},
		{
			Name:      "burn",
			Usage:     "destroy bonds",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				classFlag(),
				nonceFlag(),
				addressFlag("holder, H", "*holder of the bonds"),
				amountFlag(),
			},
			Action: runBurn,
		},
		{
			Name:      "approve",
			Usage:     "set the allowance of a spender",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				classFlag(),
				nonceFlag(),
				addressFlag("spender, S", "*spender to allow"),
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: " allowance, zero revokes `NUMBER`",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "approve-for",
			Usage:     "grant or revoke an operator for a whole class",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				classFlag(),
				addressFlag("operator, o", "*operator"),
				cli.BoolFlag{
					Name:  "revoke, x",
					Usage: " revoke instead of grant",
				},
			},
			Action: runApproveFor,
		},
		{
			Name:      "set-class-meta",
			Usage:     "write a class metadata value (issuer only)",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{classFlag()}, valueFlags()...),
			Action:    runSetClassMetadata,
		},
		{
			Name:      "set-nonce-meta",
			Usage:     "write a nonce metadata value (issuer only)",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{classFlag(), nonceFlag()}, valueFlags()...),
			Action:    runSetNonceMetadata,
		},
		{
			Name:      "batch",
			Usage:     "send a JSON array of requests, all succeed or none",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "",
					Usage: "*request kind [issue|transfer|redeem|burn|approve] `KIND`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "-",
					Usage: " JSON `FILE`, - for stdin",
				},
			},
			Action: runBatch,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of a holder",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				classFlag(),
				nonceFlag(),
				addressFlag("holder, H", "*holder"),
			},
			Action: runBalance,
		},
		{
			Name:      "supply",
			Usage:     "display the supply of a tranche",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{classFlag(), nonceFlag()},
			Action:    runSupply,
		},
		{
			Name:      "allowance",
			Usage:     "display what a spender may still move",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				classFlag(),
				nonceFlag(),
				addressFlag("owner, o", "*owner"),
				addressFlag("spender, S", "*spender"),
			},
			Action: runAllowance,
		},
		{
			Name:      "approved-for",
			Usage:     "display whether an operator is approved for a class",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				classFlag(),
				addressFlag("owner, o", "*owner"),
				addressFlag("operator, O", "*operator"),
			},
			Action: runApprovedFor,
		},
		{
			Name:      "symbol",
			Usage:     "display the symbol of a class",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{classFlag()},
			Action:    runSymbol,
		},
		{
			Name:      "value",
			Usage:     "display one metadata value, class value unless nonce is given",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				classFlag(),
				nonceFlag(),
				cli.StringFlag{
					Name:  "key, K",
					Value: "",
					Usage: "*metadata `KEY`",
				},
			},
			Action: runValue,
		},
		{
			Name:      "class-meta",
			Usage:     "display all metadata of a class",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{classFlag()},
			Action:    runClassMetadata,
		},
		{
			Name:      "nonce-meta",
			Usage:     "display all metadata of a tranche",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{classFlag(), nonceFlag()},
			Action:    runNonceMetadata,
		},
		{
			Name:      "redeemable",
			Usage:     "display whether a tranche may be redeemed",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{classFlag(), nonceFlag()},
			Action:    runRedeemable,
		},
		{
			Name:      "holders",
			Usage:     "list the holders of a tranche",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{classFlag(), nonceFlag()},
			Action:    runHolders,
		},
		{
			Name:      "nonces",
			Usage:     "list the tranches of a class",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{classFlag()},
			Action:    runNonces,
		},
		{
			Name:  "version",
			Usage: "display bond-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect: c.GlobalString("connect"),
			token:   c.GlobalString("token"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		if "" == m.connect {
			return fmt.Errorf("missing connect address")
		}
		if m.verbose {
			fmt.Fprintf(m.e, "connect: %q\n", m.connect)
		}
		c.App.Metadata["config"] = m
		return nil
	}

	return app
}

func classFlag() cli.Flag {
	return cli.Uint64Flag{
		Name:  "class, C",
		Value: 0,
		Usage: "*class id `NUMBER`",
	}
}

func nonceFlag() cli.Flag {
	return cli.Uint64Flag{
		Name:  "nonce, N",
		Value: 0,
		Usage: "*nonce id `NUMBER`",
	}
}

func amountFlag() cli.Flag {
	return cli.Uint64Flag{
		Name:  "amount, a",
		Value: 0,
		Usage: "*amount of bonds `NUMBER`",
	}
}

func addressFlag(name string, usage string) cli.Flag {
	return cli.StringFlag{
		Name:  name,
		Value: "",
		Usage: usage + " `ADDRESS`",
	}
}

func valueFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "key, K",
			Value: "",
			Usage: "*metadata `KEY`",
		},
		cli.StringFlag{
			Name:  "kind, k",
			Value: "string",
			Usage: " value kind [string|uint|address|bool|decimal] `KIND`",
		},
		cli.StringFlag{
			Name:  "value, V",
			Value: "",
			Usage: "*metadata `VALUE`",
		},
	}
}
