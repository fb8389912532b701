// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonimella/bondd/fixtures"
)

func run(arguments ...string) (string, error) {
	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"bond-cli"}, arguments...))
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run("version")
	assert.Nil(t, err, "wrong version error")
	assert.Equal(t, version+"\n", out, "wrong version")
}

func TestArgumentErrors(t *testing.T) {
	items := []struct {
		arguments []string
		message   string
	}{
		{[]string{"issue", "--class", "1", "--amount", "5"}, "holder is required"},
		{[]string{"issue", "--holder", "0x12", "--amount", "5"}, "holder: \"0x12\""},
		{[]string{"issue", "--holder", fixtures.Alice.Hex()}, "amount must be greater than zero"},
		{[]string{"transfer", "--from", fixtures.Alice.Hex(), "--amount", "1"}, "to is required"},
		{[]string{"redeem", "--holder", fixtures.Alice.Hex()}, "amount must be greater than zero"},
		{[]string{"approve-for", "--class", "1"}, "operator is required"},
		{[]string{"set-class-meta", "--class", "1", "--value", "x"}, "key is required"},
		{[]string{"set-nonce-meta", "--key", "maturityDate", "--kind", "uint", "--value", "soon"}, "of kind: \"uint\""},
		{[]string{"value", "--class", "1"}, "key is required"},
		{[]string{"batch", "--kind", "mint"}, "can only be issue/transfer/redeem/burn/approve"},
		{[]string{"--connect", "", "info"}, "missing connect address"},
	}

	for i, item := range items {
		_, err := run(item.arguments...)
		if assert.NotNil(t, err, "%d: no error", i) {
			assert.Contains(t, err.Error(), item.message, "%d: wrong error", i)
		}
	}
}

func TestDecodeBatch(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "batch.json")
	content := `[
  {"from": "` + fixtures.Alice.Hex() + `", "to": "` + fixtures.Bob.Hex() + `", "classId": 1, "nonceId": 2, "amount": 3},
  {"from": "` + fixtures.Alice.Hex() + `", "to": "` + fixtures.Carol.Hex() + `", "classId": 1, "nonceId": 2, "amount": 4}
]`
	if err := os.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}

	send, count, err := decodeBatch("transfer", fileName)
	assert.Nil(t, err, "wrong decode")
	assert.NotNil(t, send, "no sender")
	assert.Equal(t, 2, count, "wrong count")

	_, _, err = decodeBatch("issue", filepath.Join(t.TempDir(), "missing.json"))
	assert.NotNil(t, err, "missing file accepted")
}

func TestReadJSON(t *testing.T) {
	var values []int
	err := readJSON("-", strings.NewReader("[1, 2, 3]"), &values)
	assert.Nil(t, err, "wrong stdin read")
	assert.Equal(t, []int{1, 2, 3}, values, "wrong values")

	var requests []struct {
		Amount uint64 `json:"amount"`
	}
	err = readJSON("-", strings.NewReader(`[{"amount": 1, "colour": "red"}]`), &requests)
	assert.NotNil(t, err, "unknown field accepted")
}
