// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/storage"
)

func populate(t *testing.T, db *storage.Database) {
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	for _, k := range [][]byte{
		{0x01, 0x00, 0x01},
		{0x01, 0x00, 0x02},
		{0x01, 0x01, 0x00},
		{0x02, 0x00, 0x00},
		{0x02, 0xff},
	} {
		trx.PutN(db.Pool.Balances, k, uint64(k[len(k)-1]))
	}
	trx.PutN(db.Pool.Supply, []byte{0x01}, 99)
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestFetchAll(t *testing.T) {
	db := setup(t)
	defer db.Close()
	populate(t, db)

	cursor := db.Pool.Balances.NewFetchCursor()

	items, err := cursor.Fetch(3)
	assert.Nil(t, err, "first fetch")
	assert.Equal(t, 3, len(items), "first fetch count")
	assert.Equal(t, []byte{0x01, 0x00, 0x01}, items[0].Key, "first key")
	assert.Equal(t, []byte{0x01, 0x01, 0x00}, items[2].Key, "third key")

	items, err = cursor.Fetch(3)
	assert.Nil(t, err, "second fetch")
	assert.Equal(t, 2, len(items), "second fetch count")
	assert.Equal(t, []byte{0x02, 0x00, 0x00}, items[0].Key, "fourth key")

	items, err = cursor.Fetch(3)
	assert.Nil(t, err, "third fetch")
	assert.Equal(t, 0, len(items), "pool exhausted")
}

func TestFetchInvalidCount(t *testing.T) {
	db := setup(t)
	defer db.Close()

	_, err := db.Pool.Balances.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count accepted")
}

func TestMapPrefix(t *testing.T) {
	db := setup(t)
	defer db.Close()
	populate(t, db)

	keys := [][]byte{}
	err := db.Pool.Balances.NewFetchCursor().Prefix([]byte{0x01, 0x00}).Map(func(key []byte, value []byte) error {
		keys = append(keys, key)
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, [][]byte{{0x01, 0x00, 0x01}, {0x01, 0x00, 0x02}}, keys, "prefix keys")
}

func TestMapStopsOnError(t *testing.T) {
	db := setup(t)
	defer db.Close()
	populate(t, db)

	n := 0
	err := db.Pool.Balances.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		return fault.ErrInvalidCount
	})
	assert.Equal(t, fault.ErrInvalidCount, err, "map error not returned")
	assert.Equal(t, 1, n, "map did not stop")
}
