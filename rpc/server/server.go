// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register the RPC services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/leonimella/bondd/counter"
	"github.com/leonimella/bondd/rpc/bonds"
	"github.com/leonimella/bondd/rpc/node"
	"github.com/leonimella/bondd/rpc/query"
)

// Engine - everything the services need from the ledger
type Engine interface {
	bonds.Engine
	query.Ledger
}

// Create - an RPC server offering Bonds, Query and Node
func Create(log *logger.L, version string, rpcCount *counter.Counter, engine Engine, principals bonds.Principals) (*rpc.Server, error) {

	start := time.Now().UTC()

	server := rpc.NewServer()

	if err := server.Register(bonds.New(log, engine, principals)); nil != err {
		return nil, err
	}
	if err := server.Register(query.New(log, engine)); nil != err {
		return nil, err
	}
	if err := server.Register(node.New(log, start, version, engine.MaximumBatch(), rpcCount)); nil != err {
		return nil, err
	}

	return server, nil
}
