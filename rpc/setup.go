// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/http"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/leonimella/bondd/counter"
	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/metrics"
	"github.com/leonimella/bondd/rpc/bonds"
	"github.com/leonimella/bondd/rpc/certificate"
	"github.com/leonimella/bondd/rpc/handler"
	"github.com/leonimella/bondd/rpc/listeners"
	"github.com/leonimella/bondd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// counts all RPC connections, both TLS and HTTPS
var connectionCountRPC counter.Counter

// Initialise - start the JSON-RPC and HTTPS listeners
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	version string,
	engine server.Engine,
	principals bonds.Principals,
	collector *metrics.Collector,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	start := time.Now()

	tlsConfig, fingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	s, err := server.Create(log, version, &connectionCountRPC, engine, principals)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		s,
		tlsConfig,
		fingerprint,
		collector,
	)
	if nil != err {
		return err
	}

	var httpsListener listeners.Listener
	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, httpsFingerprint, err := certificate.Load(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, httpsFingerprint)

		httpsServer, err := server.Create(log, version, &connectionCountRPC, engine, principals)
		if nil != err {
			return err
		}

		var metricsHandler http.Handler
		if nil != collector {
			metricsHandler = collector.Handler()
		}
		hdlr := handler.New(log, httpsServer, metricsHandler, start, version, httpsConfiguration.MaximumConnections)
		httpsListener, err = listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, hdlr)
		if nil != err {
			return err
		}
	}

	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if nil != httpsListener {
		err = httpsListener.Serve()
		if nil != err {
			_ = rpcListener.Close()
			globalData.listeners = nil
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		if err := l.Close(); nil != err {
			globalData.log.Errorf("listener close error: %s", err)
		}
	}
	globalData.listeners = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
