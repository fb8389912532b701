// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/leonimella/bondd/counter"
	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/metrics"
	"github.com/leonimella/bondd/util"
)

const (
	logName = "client_rpc"
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex

	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	collector      *metrics.Collector
	networks       []string
	addresses      []string
	listeners      []net.Listener
}

// NewRPC - validate the configuration and create a JSON-RPC listener
//
// the collector may be nil
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
	collector *metrics.Collector,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	r := rpcListener{
		log:            log,
		maxConnections: configuration.MaximumConnections,
		server:         server,
		count:          count,
		tlsConfig:      tlsConfig,
		collector:      collector,
	}

	// validate all listen addresses
	for _, listen := range configuration.Listen {
		network, address, err := util.ListenAddress(listen)
		if nil != err {
			log.Errorf("rpc server listen: %q error: %s", listen, err)
			return nil, err
		}
		r.networks = append(r.networks, network)
		r.addresses = append(r.addresses, address)
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	return &r, nil
}

// Serve - start accepting on every address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, address := range r.addresses {
		r.log.Infof("starting RPC server: %s", address)
		listener, err := tls.Listen(r.networks[i], address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, listener)

		go r.accept(listener)
	}
	return nil
}

// Close - stop accepting, open connections run to completion
func (r *rpcListener) Close() error {
	r.Lock()
	defer r.Unlock()

	var first error
	for _, listener := range r.listeners {
		if err := listener.Close(); nil != err && nil == first {
			first = err
		}
	}
	r.listeners = nil
	return first
}

func (r *rpcListener) accept(listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			return
		}
		if !r.count.IncrementBelow(r.maxConnections) {
			r.log.Warnf("rpc connection limit reached: rejected: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		r.gauge()

		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			r.count.Decrement()
			r.gauge()
		}()
	}
}

func (r *rpcListener) gauge() {
	if nil != r.collector {
		r.collector.SetConnections(r.count.Uint64())
	}
}
