// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/leonimella/bondd/audit"
	"github.com/leonimella/bondd/bond"
	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/ledger"
	"github.com/leonimella/bondd/rpc/certificate"
	"github.com/leonimella/bondd/rpc/principal"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-token", "token":
		token, digest, err := principal.NewToken()
		if nil != err {
			fmt.Printf("generate token error: %s\n", err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("token:  %s\n", token)
		fmt.Printf("digest: %s\n", digest)
		fmt.Printf("give the token to the client and put the digest in the principals table\n")

	case "start", "run":
		return false // continue processing

	case "audit", "tranches", "holders":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-token                  (token)  - create a client token and its digest\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  audit                               - compare holder balances with active supply\n")
		fmt.Printf("\n")

		fmt.Printf("  tranches                            - list every tranche and its supply\n")
		fmt.Printf("\n")

		fmt.Printf("  holders CLASS NONCE                 - list the holders of a tranche\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger database is open so these commands can read it
func processDataCommand(log *logger.L, arguments []string, engine *bond.Engine) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "audit":
		mismatches, tranches, err := audit.Check(engine)
		if nil != err {
			exitwithstatus.Message("audit error: %s", err)
		}
		log.Infof("audit: tranches: %d  mismatches: %d", tranches, len(mismatches))
		printJSON(struct {
			Tranches   int              `json:"tranches"`
			Mismatches []audit.Mismatch `json:"mismatches"`
		}{
			Tranches:   tranches,
			Mismatches: mismatches,
		})
		if 0 != len(mismatches) {
			exitwithstatus.Exit(1)
		}

	case "tranches":
		type entry struct {
			bondid.Tranche
			ledger.Supply
			Total uint64 `json:"total"`
		}
		entries := []entry{}
		err := engine.Tranches(func(t bondid.Tranche, s ledger.Supply) error {
			entries = append(entries, entry{
				Tranche: t,
				Supply:  s,
				Total:   s.Total(),
			})
			return nil
		})
		if nil != err {
			exitwithstatus.Message("tranches error: %s", err)
		}
		printJSON(entries)

	case "holders":
		if len(arguments) < 2 {
			exitwithstatus.Message("missing class and nonce arguments")
		}
		class, err := strconv.ParseUint(arguments[0], 10, 64)
		if nil != err {
			exitwithstatus.Message("error in class: %s", err)
		}
		nonce, err := strconv.ParseUint(arguments[1], 10, 64)
		if nil != err {
			exitwithstatus.Message("error in nonce: %s", err)
		}
		holders, err := engine.Holders(bondid.ClassId(class), bondid.NonceId(nonce))
		if nil != err {
			exitwithstatus.Message("holders error: %s", err)
		}
		printJSON(holders)

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

func printJSON(data interface{}) {
	b, err := json.MarshalIndent(data, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	_, _ = os.Stdout.Write(b)
	_, _ = os.Stdout.WriteString("\n")
}
