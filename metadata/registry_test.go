// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadata_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/fixtures"
	"github.com/leonimella/bondd/metadata"
	"github.com/leonimella/bondd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T) (*storage.Database, *metadata.Registry) {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db, metadata.New(&db.Pool)
}

func TestEnsureTranche(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	trx, _ := db.Begin()
	classCreated, nonceCreated := r.EnsureTranche(trx, 1, 0, fixtures.Epoch)
	assert.True(t, classCreated, "class not created")
	assert.True(t, nonceCreated, "nonce not created")

	classCreated, nonceCreated = r.EnsureTranche(trx, 1, 1, fixtures.Epoch)
	assert.False(t, classCreated, "class created twice")
	assert.True(t, nonceCreated, "second nonce not created")

	_, nonceCreated = r.EnsureTranche(trx, 1, 1, fixtures.Epoch)
	assert.False(t, nonceCreated, "nonce created twice")
	assert.Nil(t, trx.Commit(), "commit")

	rd := db.Committed()
	assert.True(t, r.ClassExists(rd, 1), "class")
	assert.False(t, r.ClassExists(rd, 2), "unknown class")
	assert.True(t, r.NonceExists(rd, 1, 1), "nonce")
	assert.False(t, r.NonceExists(rd, 1, 2), "unknown nonce")

	issued := r.NonceValue(rd, 1, 0, metadata.KeyIssuanceDate)
	assert.Equal(t, metadata.UintValue(uint64(fixtures.Epoch.Unix())), issued, "issuance date")

	nonces, err := r.Nonces(1)
	assert.Nil(t, err, "nonces")
	assert.Equal(t, []bondid.NonceId{0, 1}, nonces, "nonces")
}

func TestEnsureTrancheKeepsDescribedIssuanceDate(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	trx, _ := db.Begin()
	assert.Nil(t, r.SetNonceValue(trx, 3, 1, metadata.KeyIssuanceDate, metadata.UintValue(777)), "describe")
	_, nonceCreated := r.EnsureTranche(trx, 3, 1, fixtures.Epoch)
	assert.True(t, nonceCreated, "nonce not created")
	assert.Nil(t, trx.Commit(), "commit")

	issued := r.NonceValue(db.Committed(), 3, 1, metadata.KeyIssuanceDate)
	assert.Equal(t, metadata.UintValue(777), issued, "issuance date replaced")
}

func TestAbsentValues(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	rd := db.Committed()
	assert.True(t, r.ClassValue(rd, 9, metadata.KeySymbol).IsAbsent(), "class value")
	assert.True(t, r.NonceValue(rd, 9, 9, metadata.KeyMaturityDate).IsAbsent(), "nonce value")
	assert.False(t, r.IsRedeemable(rd, 9, 9, fixtures.Epoch), "unknown tranche redeemable")
}

func TestSetValues(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	trx, _ := db.Begin()
	assert.Nil(t, r.SetClassValue(trx, 3, metadata.KeySymbol, metadata.StringValue("T-BOND")), "class value")
	assert.Nil(t, r.SetClassValue(trx, 3, metadata.KeyName, metadata.StringValue("Treasury")), "class value")
	assert.Nil(t, r.SetNonceValue(trx, 3, 7, metadata.KeyRedeemable, metadata.BoolValue(false)), "nonce value")

	assert.Equal(t, fault.ErrInvalidMetadataKey, r.SetClassValue(trx, 3, "", metadata.UintValue(1)), "empty key")
	assert.Equal(t, fault.ErrInvalidMetadataKey, r.SetNonceValue(trx, 3, 7, strings.Repeat("k", metadata.MaximumKeyLength+1), metadata.UintValue(1)), "long key")
	assert.Equal(t, fault.ErrInvalidMetadataValue, r.SetClassValue(trx, 3, "other", metadata.Value{}), "absent value")

	// staged values are visible inside the transaction only
	assert.Equal(t, metadata.StringValue("T-BOND"), r.ClassValue(trx, 3, metadata.KeySymbol), "staged")
	assert.True(t, r.ClassValue(db.Committed(), 3, metadata.KeySymbol).IsAbsent(), "visible before commit")
	assert.Nil(t, trx.Commit(), "commit")

	entries, err := r.ClassEntries(3)
	assert.Nil(t, err, "class entries")
	assert.Equal(t, []metadata.Entry{
		{Key: metadata.KeyName, Value: metadata.StringValue("Treasury")},
		{Key: metadata.KeySymbol, Value: metadata.StringValue("T-BOND")},
	}, entries, "class entries")

	entries, err = r.NonceEntries(3, 7)
	assert.Nil(t, err, "nonce entries")
	assert.Equal(t, 1, len(entries), "nonce entries")
	assert.Equal(t, metadata.KeyRedeemable, entries[0].Key, "nonce entry key")
}

func TestRedeemableByMaturityDate(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	maturity := fixtures.Epoch.Add(30 * 24 * time.Hour)

	trx, _ := db.Begin()
	r.EnsureTranche(trx, 1, 1, fixtures.Epoch)
	r.SetNonceValue(trx, 1, 1, metadata.KeyMaturityDate, metadata.UintValue(uint64(maturity.Unix())))
	// maturity date takes precedence over the flag
	r.SetNonceValue(trx, 1, 1, metadata.KeyRedeemable, metadata.BoolValue(true))
	assert.Nil(t, trx.Commit(), "commit")

	rd := db.Committed()
	assert.False(t, r.IsRedeemable(rd, 1, 1, maturity.Add(-time.Second)), "before maturity")
	assert.True(t, r.IsRedeemable(rd, 1, 1, maturity), "at maturity")
	assert.True(t, r.IsRedeemable(rd, 1, 1, maturity.Add(time.Hour)), "after maturity")
}

func TestRedeemableByMaturityPeriod(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	trx, _ := db.Begin()
	r.EnsureTranche(trx, 2, 1, fixtures.Epoch)
	r.SetClassValue(trx, 2, metadata.KeyMaturityPeriod, metadata.UintValue(3600))
	assert.Nil(t, trx.Commit(), "commit")

	rd := db.Committed()
	assert.False(t, r.IsRedeemable(rd, 2, 1, fixtures.Epoch.Add(59*time.Minute)), "before period")
	assert.True(t, r.IsRedeemable(rd, 2, 1, fixtures.Epoch.Add(time.Hour)), "after period")
}

func TestRedeemableOverflowingPeriod(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	trx, _ := db.Begin()
	r.EnsureTranche(trx, 2, 1, fixtures.Epoch)
	r.SetClassValue(trx, 2, metadata.KeyMaturityPeriod, metadata.UintValue(1<<64-1))
	assert.Nil(t, trx.Commit(), "commit")

	assert.False(t, r.IsRedeemable(db.Committed(), 2, 1, fixtures.Epoch.Add(100*365*24*time.Hour)), "overflowed period")
}

func TestRedeemableByFlag(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	trx, _ := db.Begin()
	r.EnsureTranche(trx, 4, 1, fixtures.Epoch)
	r.EnsureTranche(trx, 4, 2, fixtures.Epoch)
	r.SetNonceValue(trx, 4, 2, metadata.KeyRedeemable, metadata.BoolValue(true))
	assert.Nil(t, trx.Commit(), "commit")

	rd := db.Committed()
	assert.False(t, r.IsRedeemable(rd, 4, 1, fixtures.Epoch), "no rule means not redeemable")
	assert.True(t, r.IsRedeemable(rd, 4, 2, fixtures.Epoch), "flag")
}
