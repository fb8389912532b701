// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// background process logging memory use
type memoryStats struct {
	log   *logger.L
	delay time.Duration
}

func newMemoryStats() *memoryStats {
	return &memoryStats{
		log:   logger.New("memory"),
		delay: statsDelay,
	}
}

func (s *memoryStats) Run(args interface{}, shutdown <-chan struct{}) {
	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for {
		s.once()
		select {
		case <-shutdown:
			return
		case <-ticker.C:
		}
	}
}

func (s *memoryStats) once() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	text, err := json.Marshal(m)
	if nil != err {
		s.log.Errorf("marshal error: %s", err)
	} else {
		s.log.Debugf("stats: %s", text)
	}
	a := m.Alloc / mega
	t := m.TotalAlloc / mega
	sys := m.Sys / mega
	s.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, sys)
}
