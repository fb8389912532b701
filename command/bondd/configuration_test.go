// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leonimella/bondd/bond"
	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "bondd.conf")
	if err := os.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.pidfile = "bondd.pid"
M.issuers = { "`+fixtures.Issuer.Hex()+`" }
M.maximum_batch = 32
M.principals = {
    { name = "issuer", address = "`+fixtures.Issuer.Hex()+`", token = "0x00" },
}
M.client_rpc = {
    maximum_connections = 7,
    listen = { "127.0.0.1:2130" },
}
M.publishing = { journal = "events.json" }
M.audit = { interval = 60 }
return M
`)

	options, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("getConfiguration error: %s", err)
	}

	assert.Equal(t, dir+"/", options.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "bondd.pid"), options.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(dir, "events.json"), options.Publishing.Journal, "wrong journal")
	assert.Equal(t, filepath.Join(dir, "data"), options.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, "data", "bondd.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), options.HttpsRPC.PrivateKey, "wrong https key")
	assert.Equal(t, uint64(7), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, uint64(defaultRPCClients), options.HttpsRPC.MaximumConnections, "wrong https default")
	assert.Equal(t, 32, options.MaximumBatch, "wrong batch")
	assert.Equal(t, time.Minute, options.auditInterval(), "wrong interval")
	assert.Equal(t, 1, len(options.Principals), "wrong principals")
	assert.Equal(t, "issuer", options.Principals[0].Name, "wrong principal name")

	issuers, err := options.issuers()
	assert.Nil(t, err, "wrong issuers error")
	assert.Equal(t, fixtures.Issuer, issuers[0], "wrong issuer")

	for _, d := range []string{options.Database.Directory, options.Logging.Directory} {
		info, err := os.Stat(d)
		assert.Nil(t, err, "directory not created: %s", d)
		assert.True(t, info.IsDir(), "not a directory: %s", d)
	}
}

func TestGetConfigurationDefaults(t *testing.T) {
	_, fileName := writeConfiguration(t, `return { data_directory = "." }`)

	options, err := getConfiguration(fileName)
	if nil != err {
		t.Fatalf("getConfiguration error: %s", err)
	}
	assert.Equal(t, bond.MaximumBatchSize, options.MaximumBatch, "wrong batch")
	assert.Equal(t, "", options.PidFile, "pid file set")
	assert.Equal(t, "", options.Publishing.Journal, "journal set")
	assert.Equal(t, defaultAuditInterval*time.Second, options.auditInterval(), "wrong interval")
	assert.Equal(t, "critical", options.Logging.Levels["DEFAULT"], "wrong log level")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		content string
		err     error
	}{
		{`return {}`, fault.ErrInvalidDirectory},
		{`return { data_directory = "~" }`, fault.ErrInvalidDirectory},
		{`return { data_directory = ".", maximum_batch = -1 }`, fault.ErrInvalidCount},
		{`return { data_directory = ".", audit = { interval = -5 } }`, fault.ErrInvalidCount},
		{`return { data_directory = ".", database = { name = "sub/bondd.leveldb" } }`, fault.ErrNotPlainFileName},
		{`return { data_directory = ".", logging = { file = "" } }`, fault.ErrNotPlainFileName},
		{`return 42`, fault.ErrConfigurationNotTable},
	}

	for i, item := range items {
		_, fileName := writeConfiguration(t, item.content)
		_, err := getConfiguration(fileName)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}

func TestGetConfigurationMissingDataDirectory(t *testing.T) {
	_, fileName := writeConfiguration(t, `return { data_directory = "/no/such/directory/for/bondd" }`)
	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "missing directory accepted")
}

func TestConfigurationBadIssuer(t *testing.T) {
	options := Configuration{
		Issuers: []string{"0x1234"},
	}
	_, err := options.issuers()
	assert.Equal(t, fault.ErrInvalidAddress, err, "wrong error")
}
