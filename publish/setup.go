// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - drain the ledger event queue into the log and an
// optional JSON lines journal
package publish

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/leonimella/bondd/messagebus"
)

// Configuration - a block of configuration data read from the
// configuration file
type Configuration struct {
	Journal   string `gluamapper:"journal" json:"journal"`
	QueueSize int    `gluamapper:"queue_size" json:"queue_size"`
}

// Publisher - background process reading the event queue
type Publisher struct {
	sync.Mutex

	log     *logger.L
	queue   *messagebus.Queue
	journal io.Writer
	encoder *json.Encoder
}

// New - create a publisher, journal may be nil
func New(queue *messagebus.Queue, journal io.Writer) *Publisher {
	p := &Publisher{
		log:     logger.New("publish"),
		queue:   queue,
		journal: journal,
	}
	if nil != journal {
		p.encoder = json.NewEncoder(journal)
	}
	return p
}

// Run - publish events until shutdown, then flush what is queued
func (p *Publisher) Run(args interface{}, shutdown <-chan struct{}) {
	p.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case event := <-p.queue.Chan():
			p.publish(event)
		}
	}

	for {
		select {
		case event := <-p.queue.Chan():
			p.publish(event)
		default:
			p.log.Infof("stopped: dropped events: %d", p.queue.Dropped())
			return
		}
	}
}

func (p *Publisher) publish(event messagebus.Event) {
	p.log.Infof("%s: id: %s  class: %d  nonce: %d  from: %s  to: %s  amount: %d", event.Kind, event.Id, event.Class, event.Nonce, event.From.Hex(), event.To.Hex(), event.Amount)

	if nil == p.encoder {
		return
	}

	p.Lock()
	defer p.Unlock()

	if err := p.encoder.Encode(event); nil != err {
		p.log.Errorf("journal write error: %s", err)
	}
}
