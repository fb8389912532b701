// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bondid_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/fault"
)

func TestHolderKeyLayout(t *testing.T) {
	holder := common.HexToAddress("0x00000000000000000000000000000000000000ff")

	key := bondid.HolderKey(1, 2, holder)
	assert.Equal(t, 8+8+20, len(key), "key length")
	assert.Equal(t, byte(1), key[7], "class byte")
	assert.Equal(t, byte(2), key[15], "nonce byte")
	assert.Equal(t, byte(0xff), key[35], "holder byte")

	class, nonce, rest, ok := bondid.SplitTrancheKey(key)
	assert.True(t, ok, "split failed")
	assert.Equal(t, bondid.ClassId(1), class, "class")
	assert.Equal(t, bondid.NonceId(2), nonce, "nonce")
	assert.Equal(t, holder, common.BytesToAddress(rest), "holder")

	_, _, _, ok = bondid.SplitTrancheKey([]byte{1, 2, 3})
	assert.False(t, ok, "short key split")
}

func TestKeysDoNotCollide(t *testing.T) {
	a := common.HexToAddress("0x000000000000000000000000000000000000000a")
	b := common.HexToAddress("0x000000000000000000000000000000000000000b")

	assert.NotEqual(t, bondid.AllowanceKey(a, b, 1, 1), bondid.AllowanceKey(b, a, 1, 1), "owner and spender swapped")
	assert.NotEqual(t, bondid.OperatorKey(a, b, 1), bondid.OperatorKey(a, b, 2), "class ignored")
	assert.Equal(t, 2*common.AddressLength+16, len(bondid.AllowanceKey(a, b, 1, 1)), "allowance key length")
	assert.Equal(t, 2*common.AddressLength+8, len(bondid.OperatorKey(a, b, 1)), "operator key length")
}

func TestParseAddress(t *testing.T) {
	address, err := bondid.ParseAddress(" 0x000000000000000000000000000000000000000A ")
	assert.Nil(t, err, "valid address")
	assert.Equal(t, common.HexToAddress("0x0a"), address, "wrong address")

	for _, s := range []string{
		"",
		"0x1234",
		"not an address",
		"0x0000000000000000000000000000000000000000",
	} {
		_, err := bondid.ParseAddress(s)
		assert.Equal(t, fault.ErrInvalidAddress, err, "accepted: %q", s)
	}
}
