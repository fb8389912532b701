// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus collectors for ledger calls
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leonimella/bondd/fault"
)

const namespace = "bondd"

// Collector - the collectors of one ledger instance
type Collector struct {
	registry *prometheus.Registry

	calls         *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	batchEntries  *prometheus.HistogramVec
	amounts       *prometheus.CounterVec
	eventsDropped prometheus.Gauge
	auditRuns     *prometheus.CounterVec
	connections   prometheus.Gauge
}

// NewCollector - create and register all collectors
//
// a nil registry gets a private one
func NewCollector(registry *prometheus.Registry) *Collector {
	if nil == registry {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "engine",
				Name:      "calls_total",
				Help:      "Ledger calls by operation and result.",
			},
			[]string{"operation", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "engine",
				Name:      "call_duration_seconds",
				Help:      "Duration of ledger calls including commit.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 100µs to ~1.6s
			},
			[]string{"operation"},
		),
		batchEntries: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "engine",
				Name:      "batch_entries",
				Help:      "Entries per batch call.",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 9), // 1 to 256
			},
			[]string{"operation"},
		),
		amounts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ledger",
				Name:      "amount_total",
				Help:      "Committed bond units by operation.",
			},
			[]string{"operation"},
		),
		eventsDropped: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "events",
				Name:      "dropped",
				Help:      "Events discarded because the queue was full.",
			},
		),
		auditRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "audit",
				Name:      "runs_total",
				Help:      "Supply audits by result.",
			},
			[]string{"result"},
		),
		connections: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "rpc",
				Name:      "connections",
				Help:      "Open RPC client connections.",
			},
		),
	}

	registry.MustRegister(
		c.calls,
		c.duration,
		c.batchEntries,
		c.amounts,
		c.eventsDropped,
		c.auditRuns,
		c.connections,
	)
	return c
}

// Registry - for registering process collectors and for tests
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler - HTTP handler exposing the registered collectors
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordCall - one engine call and its outcome
func (c *Collector) RecordCall(operation string, entries int, duration time.Duration, err error) {
	c.calls.WithLabelValues(operation, Result(err)).Inc()
	c.duration.WithLabelValues(operation).Observe(duration.Seconds())
	if entries > 1 {
		c.batchEntries.WithLabelValues(operation).Observe(float64(entries))
	}
}

// RecordAmount - units moved by a committed call
func (c *Collector) RecordAmount(operation string, amount uint64) {
	c.amounts.WithLabelValues(operation).Add(float64(amount))
}

// SetEventsDropped - the running total kept by the event queue
func (c *Collector) SetEventsDropped(n uint64) {
	c.eventsDropped.Set(float64(n))
}

// RecordAudit - one supply audit pass
func (c *Collector) RecordAudit(mismatches int, err error) {
	switch {
	case nil != err:
		c.auditRuns.WithLabelValues("error").Inc()
	case mismatches > 0:
		c.auditRuns.WithLabelValues("mismatch").Inc()
	default:
		c.auditRuns.WithLabelValues("ok").Inc()
	}
}

// SetConnections - open RPC connections
func (c *Collector) SetConnections(n uint64) {
	c.connections.Set(float64(n))
}

// Result - label for an error class
func Result(err error) string {
	switch {
	case nil == err:
		return "ok"
	case fault.IsErrAuthorisation(err):
		return "unauthorised"
	case fault.IsErrAllowance(err):
		return "allowance"
	case fault.IsErrBalance(err):
		return "balance"
	case fault.IsErrAmount(err):
		return "amount"
	case fault.IsErrRedemption(err):
		return "redemption"
	case fault.IsErrBatchFormat(err):
		return "batch"
	case fault.IsErrInvalid(err):
		return "invalid"
	}
	return "error"
}
