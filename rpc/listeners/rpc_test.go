// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/leonimella/bondd/counter"
	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/fixtures"
	"github.com/leonimella/bondd/metrics"
	"github.com/leonimella/bondd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestRpcListenerServe(t *testing.T) {
	port, listen := randomListen()
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)
	collector := metrics.NewCollector(nil)

	s := rpc.NewServer()
	err := s.Register(Add{})
	if nil != err {
		t.Fatalf("register with error: %s", err)
	}

	tlsCertificate, fin := serverTLS(t)

	l, err := listeners.NewRPC(
		&con,
		logger.New(fixtures.LogCategory),
		&count,
		s,
		tlsCertificate,
		fin,
		collector,
	)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Close()

	c, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")

	expected := `
# HELP bondd_rpc_connections Open RPC client connections.
# TYPE bondd_rpc_connections gauge
bondd_rpc_connections 1
`
	err = testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "bondd_rpc_connections")
	assert.Nil(t, err, "wrong gauge")

	_ = client.Close()
	assert.Eventually(t, func() bool { return count.IsZero() }, time.Second, 10*time.Millisecond, "connection not released")
}

func TestRpcListenerConnectionLimit(t *testing.T) {
	port, listen := randomListen()
	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)
	s := rpc.NewServer()
	_ = s.Register(Add{})

	tlsCertificate, fin := serverTLS(t)
	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, tlsCertificate, fin, nil)
	assert.Nil(t, err, "wrong NewRPC")
	assert.Nil(t, l.Serve(), "wrong Serve")
	defer l.Close()

	address := fmt.Sprintf("127.0.0.1:%d", port)
	first, err := tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}
	client := jsonrpc.NewClient(first)
	defer client.Close()

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply)
	assert.Nil(t, err, "first connection refused")

	second, err := tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
	if nil == err {
		rejected := jsonrpc.NewClient(second)
		err = rejected.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply)
		_ = rejected.Close()
	}
	assert.NotNil(t, err, "second connection served")
}

func TestRpcListenerWhenMaxConnectionCountTooSmall(t *testing.T) {
	_, listen := randomListen()
	con := listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{listen},
	}

	count := counter.Counter(0)
	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{}, nil)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestRpcListenerWhenEmptyListen(t *testing.T) {
	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{},
	}

	count := counter.Counter(0)
	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{}, nil)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestRpcListenerWhenInvalidListen(t *testing.T) {
	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"localhost:2130"},
	}

	count := counter.Counter(0)
	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, [32]byte{}, nil)
	assert.Equal(t, fault.ErrInvalidIpAddress, err, "wrong error")
}
