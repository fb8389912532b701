// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bond - the issue, transfer, redeem and burn engine and the
// read only query surface over the bond ledger
//
// every mutating call takes the authenticated caller as its first
// argument and runs as a single storage transaction: either all of
// its effects are committed or none are. Batches stage their entries
// in order, so entry k sees the effects of entries 0 to k-1, and the
// first failing entry aborts the whole batch with a *fault.BatchError
package bond
