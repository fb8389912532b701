// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/leonimella/bondd/fixtures"
	"github.com/leonimella/bondd/rpc/certificate"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// a self-signed server configuration for 127.0.0.1
func serverTLS(t *testing.T) (*tls.Config, [32]byte) {
	cer, key, err := certgen.NewTLSCertPair("listeners test", time.Now().Add(time.Hour), true, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("certgen error: %s", err)
	}
	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", string(cer), string(key))
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	return tlsConfig, fingerprint
}

// 30,000 - 60,000
func randomListen() (int, string) {
	port := rand.Intn(30000) + 30000
	return port, fmt.Sprintf("127.0.0.1:%d", port)
}
