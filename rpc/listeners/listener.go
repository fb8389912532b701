// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS listeners for JSON-RPC and HTTPS clients
package listeners

// Listener - a started network service
type Listener interface {
	Serve() error
	Close() error
}

const minConnectionCount = 1
