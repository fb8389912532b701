// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk bond ledger
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. class     = class id as big endian uint64 (8 bytes)
// 4. nonce     = nonce id as big endian uint64 (8 bytes)
// 5. address   = holder, spender or operator address (20 bytes)
// 6. amount    = big endian uint64 (8 bytes)
// 7. timestamp = unix seconds as big endian uint64 (8 bytes)
// 8. key       = metadata key as UTF-8 bytes
// 9. value     = kind byte ++ payload (see metadata package)
//
// Classes:
//
//	K ++ class                     - class exists
//	                                 data: timestamp of first issue
//	N ++ class ++ nonce            - nonce exists within class
//	                                 data: timestamp of first issue
//
// Metadata:
//
//	C ++ class ++ key              - class metadata
//	                                 data: value
//	M ++ class ++ nonce ++ key     - nonce metadata
//	                                 data: value
//
// Accounting:
//
//	B ++ class ++ nonce ++ address - active balance of a holder
//	                                 data: amount
//	S ++ class ++ nonce            - supply counters
//	                                 data: active amount ++ burned amount ++ redeemed amount
//
// Permissions:
//
//	A ++ owner ++ spender ++ class ++ nonce  - allowance
//	                                           data: amount
//	O ++ owner ++ operator ++ class          - operator approval
//	                                           data: 0x00 or 0x01
//
// Records are never deleted, a zero amount is kept as a tombstone.
// All writes go through a Transaction, which is written to LevelDB as
// a single batch so a call is either completely applied or not at all.
package storage
