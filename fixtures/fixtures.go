// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known accounts used throughout the tests
var (
	Issuer   = common.HexToAddress("0x00000000000000000000000000000000000001ee")
	Alice    = common.HexToAddress("0x000000000000000000000000000000000000000a")
	Bob      = common.HexToAddress("0x000000000000000000000000000000000000000b")
	Carol    = common.HexToAddress("0x000000000000000000000000000000000000000c")
	Dave     = common.HexToAddress("0x000000000000000000000000000000000000000d")
	Operator = common.HexToAddress("0x0000000000000000000000000000000000000abc")
)

// Epoch - fixed time for a test clock
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Clock - settable time source for tests
type Clock struct {
	Now time.Time
}

// NewClock - a clock stopped at Epoch
func NewClock() *Clock {
	return &Clock{Now: Epoch}
}

// Time - the current test time
func (c *Clock) Time() time.Time {
	return c.Now
}

// Advance - move the clock forwards
func (c *Clock) Advance(d time.Duration) {
	c.Now = c.Now.Add(d)
}

// SetupTestLogger - log to a temporary directory at critical level only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
