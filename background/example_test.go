// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/leonimella/bondd/background"
)

type printer struct{}

func (printer) Run(args interface{}, shutdown <-chan struct{}) {
	fmt.Printf("start: %v\n", args)
	<-shutdown
	fmt.Printf("stop\n")
}

func Example() {
	p := background.Start(background.Processes{printer{}}, "audit")
	p.Stop()

	// Output:
	// start: audit
	// stop
}
