// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/fixtures"
	"github.com/leonimella/bondd/permission"
	"github.com/leonimella/bondd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T) (*storage.Database, *permission.Permissions) {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db, permission.New(&db.Pool)
}

func TestApproveOverwrites(t *testing.T) {
	db, p := setup(t)
	defer db.Close()

	trx, _ := db.Begin()
	p.ApproveAllowance(trx, fixtures.Alice, fixtures.Carol, 1, 1, 30)
	p.ApproveAllowance(trx, fixtures.Alice, fixtures.Carol, 1, 1, 12)
	assert.Nil(t, trx.Commit(), "commit")

	rd := db.Committed()
	assert.Equal(t, uint64(12), p.Allowance(rd, fixtures.Alice, fixtures.Carol, 1, 1), "overwritten")
	assert.Equal(t, uint64(0), p.Allowance(rd, fixtures.Alice, fixtures.Carol, 1, 2), "other nonce")
	assert.Equal(t, uint64(0), p.Allowance(rd, fixtures.Carol, fixtures.Alice, 1, 1), "reversed")
}

func TestConsumeAllowance(t *testing.T) {
	db, p := setup(t)
	defer db.Close()

	trx, _ := db.Begin()
	p.ApproveAllowance(trx, fixtures.Alice, fixtures.Carol, 1, 1, 30)

	assert.Nil(t, p.ConsumeAllowance(trx, fixtures.Alice, fixtures.Carol, 1, 1, 10), "consume")
	assert.Equal(t, uint64(20), p.Allowance(trx, fixtures.Alice, fixtures.Carol, 1, 1), "decremented")

	err := p.ConsumeAllowance(trx, fixtures.Alice, fixtures.Carol, 1, 1, 21)
	assert.Equal(t, fault.ErrInsufficientAllowance, err, "overdrawn")
	assert.Equal(t, uint64(20), p.Allowance(trx, fixtures.Alice, fixtures.Carol, 1, 1), "unchanged on failure")

	assert.Nil(t, p.ConsumeAllowance(trx, fixtures.Alice, fixtures.Carol, 1, 1, 20), "consume rest")
	assert.Equal(t, uint64(0), p.Allowance(trx, fixtures.Alice, fixtures.Carol, 1, 1), "exhausted")
	trx.Abort()
}

func TestOperatorApproval(t *testing.T) {
	db, p := setup(t)
	defer db.Close()

	trx, _ := db.Begin()
	p.SetOperatorApproval(trx, fixtures.Alice, fixtures.Operator, 1, true)
	p.SetOperatorApproval(trx, fixtures.Alice, fixtures.Operator, 2, true)
	p.SetOperatorApproval(trx, fixtures.Alice, fixtures.Operator, 2, false)
	assert.Nil(t, trx.Commit(), "commit")

	rd := db.Committed()
	assert.True(t, p.IsApprovedFor(rd, fixtures.Alice, fixtures.Operator, 1), "class 1")
	assert.False(t, p.IsApprovedFor(rd, fixtures.Alice, fixtures.Operator, 2), "revoked")
	assert.False(t, p.IsApprovedFor(rd, fixtures.Alice, fixtures.Operator, 3), "never set")
	assert.False(t, p.IsApprovedFor(rd, fixtures.Bob, fixtures.Operator, 1), "other owner")
}

func TestAuthorise(t *testing.T) {
	db, p := setup(t)
	defer db.Close()

	trx, _ := db.Begin()
	defer trx.Abort()

	p.SetOperatorApproval(trx, fixtures.Alice, fixtures.Operator, 1, true)
	p.ApproveAllowance(trx, fixtures.Alice, fixtures.Carol, 1, 1, 30)

	assert.Nil(t, p.Authorise(trx, fixtures.Alice, fixtures.Alice, 1, 1, 1000), "owner")
	assert.Nil(t, p.Authorise(trx, fixtures.Operator, fixtures.Alice, 1, 1, 1000), "operator")
	assert.Equal(t, fault.ErrUnauthorised, p.Authorise(trx, fixtures.Operator, fixtures.Alice, 2, 1, 1), "operator other class")

	// operators do not consume allowances
	assert.Equal(t, uint64(30), p.Allowance(trx, fixtures.Alice, fixtures.Carol, 1, 1), "untouched")

	assert.Equal(t, fault.ErrInsufficientAllowance, p.Authorise(trx, fixtures.Carol, fixtures.Alice, 1, 1, 31), "short allowance")
	assert.Nil(t, p.Authorise(trx, fixtures.Carol, fixtures.Alice, 1, 1, 30), "allowance")
	assert.Equal(t, uint64(0), p.Allowance(trx, fixtures.Alice, fixtures.Carol, 1, 1), "consumed")
	assert.Equal(t, fault.ErrInsufficientAllowance, p.Authorise(trx, fixtures.Carol, fixtures.Alice, 1, 1, 30), "exhausted allowance")
	assert.Equal(t, fault.ErrUnauthorised, p.Authorise(trx, fixtures.Carol, fixtures.Alice, 1, 2, 1), "no allowance for nonce")

	assert.Equal(t, fault.ErrUnauthorised, p.Authorise(trx, fixtures.Dave, fixtures.Alice, 1, 1, 1), "stranger")
}
