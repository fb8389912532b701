// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadata

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/leonimella/bondd/bondid"
	"github.com/leonimella/bondd/fault"
	"github.com/leonimella/bondd/storage"
)

// well known keys
const (
	KeySymbol         = "symbol"         // class: string
	KeyName           = "name"           // class: string
	KeyMaturityPeriod = "maturityPeriod" // class: uint, seconds
	KeyCouponRate     = "couponRate"     // class: decimal

	KeyIssuanceDate = "issuanceDate" // nonce: uint, unix seconds
	KeyMaturityDate = "maturityDate" // nonce: uint, unix seconds
	KeyRedeemable   = "redeemable"   // nonce: bool
)

// MaximumKeyLength - bytes allowed in a metadata key
const MaximumKeyLength = 64

// Registry - class and nonce existence plus their metadata
type Registry struct {
	classes       *storage.PoolHandle
	classNonces   *storage.PoolHandle
	classMetadata *storage.PoolHandle
	nonceMetadata *storage.PoolHandle
}

// New - create a registry over the database pools
func New(pools *storage.Pools) *Registry {
	return &Registry{
		classes:       pools.Classes,
		classNonces:   pools.ClassNonces,
		classMetadata: pools.ClassMetadata,
		nonceMetadata: pools.NonceMetadata,
	}
}

// ValidKey - check a metadata key can be stored
func ValidKey(key string) error {
	if 0 == len(key) || len(key) > MaximumKeyLength {
		return fault.ErrInvalidMetadataKey
	}
	return nil
}

// ClassExists - true once any nonce of the class was issued
func (r *Registry) ClassExists(rd storage.Reader, class bondid.ClassId) bool {
	return rd.Has(r.classes, bondid.ClassKey(class))
}

// NonceExists - true once the tranche was issued
func (r *Registry) NonceExists(rd storage.Reader, class bondid.ClassId, nonce bondid.NonceId) bool {
	return rd.Has(r.classNonces, bondid.TrancheKey(class, nonce))
}

// EnsureTranche - record the class and nonce, returning which of them are new
//
// a new nonce gets an issuance date of now unless one was already
// described
func (r *Registry) EnsureTranche(trx storage.Transaction, class bondid.ClassId, nonce bondid.NonceId, now time.Time) (bool, bool) {
	timestamp := unixSeconds(now)

	classCreated := false
	if !r.ClassExists(trx, class) {
		trx.PutN(r.classes, bondid.ClassKey(class), timestamp)
		classCreated = true
	}

	nonceCreated := false
	if !r.NonceExists(trx, class, nonce) {
		trx.PutN(r.classNonces, bondid.TrancheKey(class, nonce), timestamp)
		if KindNone == r.NonceValue(trx, class, nonce, KeyIssuanceDate).Kind {
			r.put(trx, r.nonceMetadata, nonceKey(class, nonce, KeyIssuanceDate), UintValue(timestamp))
		}
		nonceCreated = true
	}
	return classCreated, nonceCreated
}

// ClassValue - metadata of a class, absent value if not set
func (r *Registry) ClassValue(rd storage.Reader, class bondid.ClassId, key string) Value {
	return r.get(rd, r.classMetadata, classKey(class, key))
}

// NonceValue - metadata of a nonce, absent value if not set
func (r *Registry) NonceValue(rd storage.Reader, class bondid.ClassId, nonce bondid.NonceId, key string) Value {
	return r.get(rd, r.nonceMetadata, nonceKey(class, nonce, key))
}

// SetClassValue - store a class metadata entry
func (r *Registry) SetClassValue(trx storage.Transaction, class bondid.ClassId, key string, value Value) error {
	if err := ValidKey(key); nil != err {
		return err
	}
	return r.put(trx, r.classMetadata, classKey(class, key), value)
}

// SetNonceValue - store a nonce metadata entry
func (r *Registry) SetNonceValue(trx storage.Transaction, class bondid.ClassId, nonce bondid.NonceId, key string, value Value) error {
	if err := ValidKey(key); nil != err {
		return err
	}
	return r.put(trx, r.nonceMetadata, nonceKey(class, nonce, key), value)
}

// IsRedeemable - whether holders may redeem the tranche at the given time
//
// checked in order: the nonce maturity date, the nonce issuance date
// plus the class maturity period and finally the nonce redeemable flag
func (r *Registry) IsRedeemable(rd storage.Reader, class bondid.ClassId, nonce bondid.NonceId, now time.Time) bool {
	if !r.NonceExists(rd, class, nonce) {
		return false
	}
	timestamp := unixSeconds(now)

	maturity := r.NonceValue(rd, class, nonce, KeyMaturityDate)
	if KindUint == maturity.Kind {
		return timestamp >= maturity.Uint
	}

	period := r.ClassValue(rd, class, KeyMaturityPeriod)
	issued := r.NonceValue(rd, class, nonce, KeyIssuanceDate)
	if KindUint == period.Kind && KindUint == issued.Kind {
		due := issued.Uint + period.Uint
		if due < issued.Uint {
			return false // never within uint64 seconds
		}
		return timestamp >= due
	}

	flag := r.NonceValue(rd, class, nonce, KeyRedeemable)
	if KindBool == flag.Kind {
		return flag.Bool
	}
	return false
}

// Entry - a single metadata key and its value
type Entry struct {
	Key   string `json:"key"`
	Value Value  `json:"value"`
}

// ClassEntries - all committed metadata of a class in key order
func (r *Registry) ClassEntries(class bondid.ClassId) ([]Entry, error) {
	return entries(r.classMetadata, bondid.ClassKey(class))
}

// NonceEntries - all committed metadata of a nonce in key order
func (r *Registry) NonceEntries(class bondid.ClassId, nonce bondid.NonceId) ([]Entry, error) {
	return entries(r.nonceMetadata, bondid.TrancheKey(class, nonce))
}

// Nonces - committed nonces of a class in ascending order
func (r *Registry) Nonces(class bondid.ClassId) ([]bondid.NonceId, error) {
	nonces := make([]bondid.NonceId, 0, 16)
	err := r.classNonces.NewFetchCursor().Prefix(bondid.ClassKey(class)).Map(func(key []byte, value []byte) error {
		_, nonce, _, ok := bondid.SplitTrancheKey(key)
		if !ok {
			return fault.ErrInvalidCursor
		}
		nonces = append(nonces, nonce)
		return nil
	})
	return nonces, err
}

func entries(pool *storage.PoolHandle, prefix []byte) ([]Entry, error) {
	result := make([]Entry, 0, 8)
	err := pool.NewFetchCursor().Prefix(prefix).Map(func(key []byte, value []byte) error {
		v, err := Unpack(value)
		if nil != err {
			return err
		}
		result = append(result, Entry{
			Key:   string(key[len(prefix):]),
			Value: v,
		})
		return nil
	})
	return result, err
}

func (r *Registry) get(rd storage.Reader, pool *storage.PoolHandle, key []byte) Value {
	packed := rd.Get(pool, key)
	if nil == packed {
		return Value{}
	}
	v, err := Unpack(packed)
	if nil != err {
		logger.Panicf("metadata: corrupt record for: %x  error: %s", key, err)
	}
	return v
}

func (r *Registry) put(trx storage.Transaction, pool *storage.PoolHandle, key []byte, value Value) error {
	packed, err := value.Pack()
	if nil != err {
		return err
	}
	trx.Put(pool, key, packed)
	return nil
}

func classKey(class bondid.ClassId, key string) []byte {
	return append(bondid.ClassKey(class), key...)
}

func nonceKey(class bondid.ClassId, nonce bondid.NonceId, key string) []byte {
	return append(bondid.TrancheKey(class, nonce), key...)
}

func unixSeconds(t time.Time) uint64 {
	s := t.Unix()
	if s < 0 {
		return 0
	}
	return uint64(s)
}
