// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/leonimella/bondd/counter"
)

// DefaultQueueSize - capacity when none is given
const DefaultQueueSize = 1000

// Queue - buffered events for a single reader
type Queue struct {
	queue   chan Event
	dropped counter.Counter
}

// New - create a queue
func New(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		queue: make(chan Event, size),
	}
}

// Send - queue events without blocking, events that do not fit are
// counted and discarded
func (q *Queue) Send(events ...Event) {
	for _, e := range events {
		select {
		case q.queue <- e:
		default:
			q.dropped.Increment()
		}
	}
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Event {
	return q.queue
}

// Dropped - number of events discarded on a full queue
func (q *Queue) Dropped() uint64 {
	return q.dropped.Uint64()
}
