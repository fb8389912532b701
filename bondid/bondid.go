// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bondid - bond identifiers and the storage keys built from them
package bondid

import (
	"encoding/binary"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/leonimella/bondd/fault"
)

// ClassId - identifies a bond series
type ClassId uint64

// NonceId - identifies a tranche within a class
type NonceId uint64

// Tranche - a single (class, nonce) pair
type Tranche struct {
	Class ClassId `json:"classId"`
	Nonce NonceId `json:"nonceId"`
}

// Bytes - big endian encoding
func (c ClassId) Bytes() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(c))
	return buffer
}

// Bytes - big endian encoding
func (n NonceId) Bytes() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(n))
	return buffer
}

// ClassKey - class
func ClassKey(class ClassId) []byte {
	return class.Bytes()
}

// TrancheKey - class ++ nonce
func TrancheKey(class ClassId, nonce NonceId) []byte {
	key := make([]byte, 0, 16)
	key = append(key, class.Bytes()...)
	return append(key, nonce.Bytes()...)
}

// HolderKey - class ++ nonce ++ holder
func HolderKey(class ClassId, nonce NonceId, holder common.Address) []byte {
	return append(TrancheKey(class, nonce), holder.Bytes()...)
}

// AllowanceKey - owner ++ spender ++ class ++ nonce
func AllowanceKey(owner common.Address, spender common.Address, class ClassId, nonce NonceId) []byte {
	key := make([]byte, 0, 2*common.AddressLength+16)
	key = append(key, owner.Bytes()...)
	key = append(key, spender.Bytes()...)
	return append(key, TrancheKey(class, nonce)...)
}

// OperatorKey - owner ++ operator ++ class
func OperatorKey(owner common.Address, operator common.Address, class ClassId) []byte {
	key := make([]byte, 0, 2*common.AddressLength+8)
	key = append(key, owner.Bytes()...)
	key = append(key, operator.Bytes()...)
	return append(key, class.Bytes()...)
}

// SplitTrancheKey - recover class and nonce from the first 16 bytes of a key
func SplitTrancheKey(key []byte) (ClassId, NonceId, []byte, bool) {
	if len(key) < 16 {
		return 0, 0, nil, false
	}
	class := ClassId(binary.BigEndian.Uint64(key[:8]))
	nonce := NonceId(binary.BigEndian.Uint64(key[8:16]))
	return class, nonce, key[16:], true
}

// ParseAddress - a 0x prefixed hex address that is not all zero
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fault.ErrInvalidAddress
	}
	address := common.HexToAddress(s)
	if IsZero(address) {
		return common.Address{}, fault.ErrInvalidAddress
	}
	return address, nil
}

// IsZero - the all zero address is never a valid holder
func IsZero(address common.Address) bool {
	return address == (common.Address{})
}
