// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonimella/bondd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/bondd/data", util.EnsureAbsolute("/var/bondd", "data"), "relative")
	assert.Equal(t, "/srv/data", util.EnsureAbsolute("/var/bondd", "/srv/data"), "absolute")
	assert.Equal(t, "/var/data", util.EnsureAbsolute("/var/bondd", "../data"), "cleaned")
}

func TestEnsureFileExists(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "present")
	assert.False(t, util.EnsureFileExists(name), "file exists before creation")

	err := os.WriteFile(name, []byte("x"), 0600)
	assert.Nil(t, err, "write error")
	assert.True(t, util.EnsureFileExists(name), "file missing after creation")
}

func TestIsPlainFileName(t *testing.T) {
	assert.True(t, util.IsPlainFileName("bondd.log"), "plain name")
	assert.True(t, util.IsPlainFileName("./bondd.log"), "dot prefix")
	assert.False(t, util.IsPlainFileName("log/bondd.log"), "directory")
	assert.False(t, util.IsPlainFileName("/bondd.log"), "root")
	assert.False(t, util.IsPlainFileName(""), "empty")
}
