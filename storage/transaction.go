// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/leonimella/bondd/fault"
)

// Transaction - staged writes over a snapshot of the database
//
// reads see the snapshot taken at Begin overlaid with anything Put
// since, nothing reaches the database until Commit
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse    bool
	db       *leveldb.DB
	snapshot *leveldb.Snapshot
	batch    *leveldb.Batch
	cache    Cache
}

func newTransaction(db *leveldb.DB) *transaction {
	return &transaction{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionInUse
	}

	snapshot, err := t.db.GetSnapshot()
	if nil != err {
		return err
	}

	t.snapshot = snapshot
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = true

	return nil
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	k := p.prefixKey(key)

	v := make([]byte, len(value))
	copy(v, value)

	t.cache.Set(string(k), v)
	t.batch.Put(k, v)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, encodeN(value))
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	k := p.prefixKey(key)
	if value, found := t.cache.Get(string(k)); found {
		return value
	}

	value, err := t.snapshot.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	return nil != t.Get(p, key)
}

// Commit - write all staged data as one atomic batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionNotInUse
	}

	err := t.db.Write(t.batch, nil)
	t.release()
	return err
}

// Abort - discard all staged data
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		t.release()
	}
}

func (t *transaction) release() {
	t.snapshot.Release()
	t.snapshot = nil
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
