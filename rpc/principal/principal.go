// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package principal - map RPC bearer tokens to ledger addresses
//
// only the SHA3-256 digest of each token is held, so the configuration
// file does not contain usable credentials
package principal

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/fault"
)

// bytes of entropy in a generated token
const tokenBytes = 32

// Configuration - one principal from the configuration file
type Configuration struct {
	Name    string `gluamapper:"name" json:"name"`
	Address string `gluamapper:"address" json:"address"`
	Token   string `gluamapper:"token" json:"token"` // hex SHA3-256 of the bearer token
}

// Principal - an authenticated caller
type Principal struct {
	Name    string
	Address common.Address
}

// Table - the known principals keyed by token digest
type Table struct {
	log     *logger.L
	entries map[[32]byte]Principal
}

// New - build the table, rejecting malformed or duplicate entries
func New(log *logger.L, configuration []Configuration) (*Table, error) {
	t := &Table{
		log:     log,
		entries: make(map[[32]byte]Principal, len(configuration)),
	}

	for i, c := range configuration {
		address, err := bondid.ParseAddress(c.Address)
		if nil != err {
			log.Errorf("principal[%d]: %q address: %q error: %s", i, c.Name, c.Address, err)
			return nil, err
		}

		b, err := hex.DecodeString(strings.TrimPrefix(c.Token, "0x"))
		if nil != err || 32 != len(b) {
			log.Errorf("principal[%d]: %q invalid token digest", i, c.Name)
			return nil, fault.ErrInvalidTokenDigest
		}
		var digest [32]byte
		copy(digest[:], b)

		if _, ok := t.entries[digest]; ok {
			log.Errorf("principal[%d]: %q duplicate token", i, c.Name)
			return nil, fault.ErrDuplicatePrincipal
		}
		t.entries[digest] = Principal{
			Name:    c.Name,
			Address: address,
		}
		log.Infof("principal: %q  address: %s", c.Name, address.Hex())
	}

	return t, nil
}

// Resolve - the address authenticated by a token
func (t *Table) Resolve(token string) (common.Address, error) {
	if "" == token {
		return common.Address{}, fault.ErrUnknownPrincipal
	}
	p, ok := t.entries[Digest(token)]
	if !ok {
		t.log.Warn("rejected unknown token")
		return common.Address{}, fault.ErrUnknownPrincipal
	}
	t.log.Debugf("resolved principal: %q", p.Name)
	return p.Address, nil
}

// Count - number of configured principals
func (t *Table) Count() int {
	return len(t.entries)
}

// Digest - SHA3-256 of a bearer token
func Digest(token string) [32]byte {
	return sha3.Sum256([]byte(token))
}

// NewToken - a random bearer token and the hex digest to configure for it
func NewToken() (string, string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); nil != err {
		return "", "", err
	}
	token := hex.EncodeToString(b)
	digest := Digest(token)
	return token, hex.EncodeToString(digest[:]), nil
}
