// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package audit - periodic check that the balances of every tranche
// add up to its active supply
package audit

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/ledger"
	"github.com/leonimella/bondd/metrics"
)

// Ledger - the reads needed for an audit
type Ledger interface {
	Quiesce(func() error) error
	Tranches(func(bondid.Tranche, ledger.Supply) error) error
	Holders(bondid.ClassId, bondid.NonceId) ([]ledger.Holding, error)
}

// Mismatch - a tranche whose balances disagree with its supply
type Mismatch struct {
	Tranche  bondid.Tranche `json:"tranche"`
	Active   uint64         `json:"active"`
	Balances uint64         `json:"balances"`
}

// Check - compare every tranche, with no call committing meanwhile
func Check(l Ledger) ([]Mismatch, int, error) {
	mismatches := []Mismatch{}
	tranches := 0

	err := l.Quiesce(func() error {
		return l.Tranches(func(tranche bondid.Tranche, supply ledger.Supply) error {
			tranches += 1

			holders, err := l.Holders(tranche.Class, tranche.Nonce)
			if nil != err {
				return err
			}

			sum := uint64(0)
			overflow := false
			for _, h := range holders {
				if sum+h.Amount < sum {
					overflow = true
				}
				sum += h.Amount
			}
			if overflow || sum != supply.Active {
				mismatches = append(mismatches, Mismatch{
					Tranche:  tranche,
					Active:   supply.Active,
					Balances: sum,
				})
			}
			return nil
		})
	})
	return mismatches, tranches, err
}

// Auditor - background process running Check
type Auditor struct {
	log      *logger.L
	ledger   Ledger
	interval time.Duration
	metrics  *metrics.Collector
}

// New - create an auditor, collector may be nil
func New(l Ledger, interval time.Duration, collector *metrics.Collector) *Auditor {
	return &Auditor{
		log:      logger.New("audit"),
		ledger:   l,
		interval: interval,
		metrics:  collector,
	}
}

// Run - audit once at start then on every interval
func (a *Auditor) Run(args interface{}, shutdown <-chan struct{}) {
	a.log.Infof("starting: interval: %s", a.interval)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.once()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			a.once()
		}
	}
	a.log.Info("stopped")
}

func (a *Auditor) once() {
	mismatches, tranches, err := Check(a.ledger)
	if nil != a.metrics {
		a.metrics.RecordAudit(len(mismatches), err)
	}
	if nil != err {
		a.log.Errorf("audit error: %s", err)
		return
	}
	for _, m := range mismatches {
		a.log.Criticalf("class: %d  nonce: %d  active supply: %d  Σ balances: %d", m.Tranche.Class, m.Tranche.Nonce, m.Active, m.Balances)
	}
	a.log.Debugf("audited tranches: %d  mismatches: %d", tranches, len(mismatches))
}
