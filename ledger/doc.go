// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - per holder active balances and per tranche supply
// counters
//
// the four mutators keep the sum of the balances of a tranche equal
// to its active supply; they must run inside a storage transaction so
// that a failure part way through a call leaves nothing behind
package ledger
