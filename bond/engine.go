// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bond

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/ledger"
	"github.com/leonimella/bondd/messagebus"
	"github.com/leonimella/bondd/metadata"
	"github.com/leonimella/bondd/metrics"
	"github.com/leonimella/bondd/permission"
	"github.com/leonimella/bondd/storage"
)

// MaximumBatchSize - default limit on entries in a batch call
const MaximumBatchSize = 256

// Configuration - engine settings
type Configuration struct {
	Issuers          []common.Address
	MaximumBatchSize int
}

// Option - optional engine collaborators
type Option func(*Engine)

// WithClock - time source for issuance dates and redeemability
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithEvents - queue receiving events of committed calls
func WithEvents(queue *messagebus.Queue) Option {
	return func(e *Engine) {
		e.events = queue
	}
}

// WithMetrics - collectors for call counts and durations
func WithMetrics(collector *metrics.Collector) Option {
	return func(e *Engine) {
		e.metrics = collector
	}
}

// Engine - owner of the registry, ledger and permission layer
type Engine struct {
	sync.Mutex // serialises mutating calls

	log         *logger.L
	database    *storage.Database
	registry    *metadata.Registry
	ledger      *ledger.Ledger
	permissions *permission.Permissions

	issuers          map[common.Address]struct{}
	maximumBatchSize int

	clock   func() time.Time
	events  *messagebus.Queue
	metrics *metrics.Collector
}

// New - create an engine over an open database
func New(database *storage.Database, configuration Configuration, options ...Option) (*Engine, error) {
	if nil == database {
		return nil, fault.ErrMissingParameters
	}

	log := logger.New("bond")

	issuers := make(map[common.Address]struct{}, len(configuration.Issuers))
	for _, issuer := range configuration.Issuers {
		if bondid.IsZero(issuer) {
			log.Errorf("zero issuer address")
			return nil, fault.ErrInvalidAddress
		}
		issuers[issuer] = struct{}{}
	}
	if 0 == len(issuers) {
		log.Warn("no issuers configured: issue and metadata calls will be refused")
	}

	maximumBatchSize := configuration.MaximumBatchSize
	if maximumBatchSize <= 0 {
		maximumBatchSize = MaximumBatchSize
	}

	e := &Engine{
		log:              log,
		database:         database,
		registry:         metadata.New(&database.Pool),
		ledger:           ledger.New(&database.Pool),
		permissions:      permission.New(&database.Pool),
		issuers:          issuers,
		maximumBatchSize: maximumBatchSize,
		clock:            time.Now,
	}
	for _, option := range options {
		option(e)
	}

	log.Infof("issuers: %d  maximum batch: %d", len(issuers), maximumBatchSize)
	return e, nil
}

// IsIssuer - caller may issue and write metadata
func (e *Engine) IsIssuer(caller common.Address) bool {
	_, ok := e.issuers[caller]
	return ok
}

// collected while a call runs, published only after commit
type outcome struct {
	events []messagebus.Event
	amount uint64
}

func (o *outcome) add(event messagebus.Event, amount uint64) {
	o.events = append(o.events, event)
	o.amount += amount
}

// run apply as one transaction, committing only if it succeeds
func (e *Engine) execute(operation string, entries int, apply func(trx storage.Transaction, now time.Time, o *outcome) error) error {
	start := time.Now()

	o := &outcome{}
	err := e.transact(func(trx storage.Transaction) error {
		return apply(trx, e.clock(), o)
	})

	if nil != e.metrics {
		e.metrics.RecordCall(operation, entries, time.Since(start), err)
	}

	if nil != err {
		e.log.Debugf("%s: entries: %d  error: %s", operation, entries, err)
		return err
	}

	e.log.Debugf("%s: entries: %d  committed", operation, entries)

	if nil != e.metrics && o.amount > 0 {
		e.metrics.RecordAmount(operation, o.amount)
	}
	if nil != e.events {
		e.events.Send(o.events...)
		if nil != e.metrics {
			e.metrics.SetEventsDropped(e.events.Dropped())
		}
	}
	return nil
}

func (e *Engine) transact(apply func(trx storage.Transaction) error) error {
	e.Lock()
	defer e.Unlock()

	trx, err := e.database.Begin()
	if nil != err {
		e.log.Errorf("begin transaction error: %s", err)
		return err
	}

	// no-op once committed, releases the transaction if apply panics
	defer trx.Abort()

	if err := apply(trx); nil != err {
		return err
	}

	if err := trx.Commit(); nil != err {
		e.log.Criticalf("commit error: %s", err)
		return err
	}
	return nil
}

// check the size of a batch before anything is staged
func (e *Engine) checkBatch(n int) error {
	if 0 == n {
		return fault.ErrMalformedBatch
	}
	if n > e.maximumBatchSize {
		return fault.ErrBatchTooLarge
	}
	return nil
}

func (e *Engine) checkIssuer(caller common.Address) error {
	if !e.IsIssuer(caller) {
		return fault.ErrUnauthorised
	}
	return nil
}

// Quiesce - run f with no mutating call in progress, so that several
// queries made by f see the same committed state
func (e *Engine) Quiesce(f func() error) error {
	e.Lock()
	defer e.Unlock()
	return f()
}

// MaximumBatch - the largest batch accepted by the batch calls
func (e *Engine) MaximumBatch() int {
	return e.maximumBatchSize
}
