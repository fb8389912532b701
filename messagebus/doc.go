// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queue of ledger events
//
// events are only sent after the storage transaction that produced
// them has been committed, so a reader never sees an event for a
// change that was rolled back
package messagebus
