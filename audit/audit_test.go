// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package audit_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/leonimella/bondd/audit"
	"github.com/leonimella/bondd/background"
	"github.com/leonimella/bondd/bond"
	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/fixtures"
	"github.com/leonimella/bondd/ledger"
	"github.com/leonimella/bondd/metrics"
	"github.com/leonimella/bondd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// a ledger whose records can be made to disagree
type fakeLedger struct {
	supply  map[bondid.Tranche]ledger.Supply
	holders map[bondid.Tranche][]ledger.Holding
	err     error
}

func (f *fakeLedger) Quiesce(g func() error) error {
	return g()
}

func (f *fakeLedger) Tranches(g func(bondid.Tranche, ledger.Supply) error) error {
	for tranche, supply := range f.supply {
		if err := g(tranche, supply); nil != err {
			return err
		}
	}
	return nil
}

func (f *fakeLedger) Holders(class bondid.ClassId, nonce bondid.NonceId) ([]ledger.Holding, error) {
	return f.holders[bondid.Tranche{Class: class, Nonce: nonce}], f.err
}

func TestCheckEngine(t *testing.T) {
	db, err := storage.OpenMemory()
	assert.Nil(t, err, "open")
	defer db.Close()

	e, err := bond.New(db, bond.Configuration{Issuers: []common.Address{fixtures.Issuer}})
	assert.Nil(t, err, "engine")

	assert.Nil(t, e.Issue(fixtures.Issuer, bond.IssueRequest{Class: 1, Nonce: 1, Holder: fixtures.Alice, Amount: 100}), "issue")
	assert.Nil(t, e.Issue(fixtures.Issuer, bond.IssueRequest{Class: 1, Nonce: 2, Holder: fixtures.Bob, Amount: 7}), "issue")
	assert.Nil(t, e.TransferFrom(fixtures.Alice, bond.TransferRequest{From: fixtures.Alice, To: fixtures.Carol, Class: 1, Nonce: 1, Amount: 40}), "transfer")
	assert.Nil(t, e.Burn(fixtures.Carol, bond.BurnRequest{Holder: fixtures.Carol, Class: 1, Nonce: 1, Amount: 40}), "burn")

	mismatches, tranches, err := audit.Check(e)
	assert.Nil(t, err, "check")
	assert.Equal(t, 2, tranches, "tranches")
	assert.Equal(t, 0, len(mismatches), "mismatches")
}

func TestCheckMismatch(t *testing.T) {
	tranche := bondid.Tranche{Class: 3, Nonce: 4}
	f := &fakeLedger{
		supply: map[bondid.Tranche]ledger.Supply{
			tranche: {Active: 10},
		},
		holders: map[bondid.Tranche][]ledger.Holding{
			tranche: {
				{Holder: fixtures.Alice, Amount: 6},
				{Holder: fixtures.Bob, Amount: 5},
			},
		},
	}

	mismatches, tranches, err := audit.Check(f)
	assert.Nil(t, err, "check")
	assert.Equal(t, 1, tranches, "tranches")
	assert.Equal(t, []audit.Mismatch{{Tranche: tranche, Active: 10, Balances: 11}}, mismatches, "mismatches")
}

func TestCheckOverflow(t *testing.T) {
	tranche := bondid.Tranche{Class: 1, Nonce: 1}
	f := &fakeLedger{
		supply: map[bondid.Tranche]ledger.Supply{
			tranche: {Active: 1},
		},
		holders: map[bondid.Tranche][]ledger.Holding{
			tranche: {
				{Holder: fixtures.Alice, Amount: 1<<64 - 1},
				{Holder: fixtures.Bob, Amount: 2},
			},
		},
	}

	mismatches, _, err := audit.Check(f)
	assert.Nil(t, err, "check")
	assert.Equal(t, 1, len(mismatches), "wrapped sum accepted")
}

func TestCheckError(t *testing.T) {
	f := &fakeLedger{
		supply: map[bondid.Tranche]ledger.Supply{
			{Class: 1, Nonce: 1}: {Active: 1},
		},
		err: errors.New("cursor"),
	}

	_, _, err := audit.Check(f)
	assert.Equal(t, f.err, err, "error")
}

func TestAuditorRecords(t *testing.T) {
	collector := metrics.NewCollector(nil)
	f := &fakeLedger{}

	a := audit.New(f, time.Hour, collector)
	p := background.Start(background.Processes{a}, nil)

	// the first pass runs as soon as the process starts
	assert.Eventually(t, func() bool {
		n, err := testutil.GatherAndCount(collector.Registry(), "bondd_audit_runs_total")
		return nil == err && 1 == n
	}, time.Second, 5*time.Millisecond, "audit did not run")

	p.Stop()
}
