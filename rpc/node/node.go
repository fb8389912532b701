// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - daemon status over RPC
package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/leonimella/bondd/counter"
	"github.com/leonimella/bondd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Start        time.Time
	Version      string
	MaximumBatch int
	counter      *counter.Counter
}

// New - create the service
func New(log *logger.L, start time.Time, version string, maximumBatch int, counter *counter.Counter) *Node {
	return &Node{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:        start,
		Version:      version,
		MaximumBatch: maximumBatch,
		counter:      counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version      string `json:"version"`
	Uptime       string `json:"uptime"`
	RPCs         uint64 `json:"rpcs"`
	MaximumBatch int    `json:"maximumBatch"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.MaximumBatch = node.MaximumBatch
	return nil
}
