// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AllowanceError GenericError
type AmountError GenericError
type AuthorisationError GenericError
type BalanceError GenericError
type BatchFormatError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RedemptionError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrAmountOverflow               = AmountError("amount overflow")
	ErrBatchTooLarge                = BatchFormatError("batch too large")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrConfigurationNotTable        = InvalidError("configuration did not return a table")
	ErrDatabaseVersion              = InvalidError("database version is newer than this program")
	ErrDuplicatePrincipal           = ExistsError("duplicate principal token")
	ErrInsufficientAllowance        = AllowanceError("insufficient allowance")
	ErrInsufficientBalance          = BalanceError("insufficient balance")
	ErrInvalidAddress               = InvalidError("invalid address")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidDirectory             = InvalidError("invalid directory")
	ErrInvalidIpAddress             = InvalidError("invalid IP address")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidMetadataKey           = InvalidError("invalid metadata key")
	ErrInvalidMetadataValue         = InvalidError("invalid metadata value")
	ErrInvalidPoolPrefix            = InvalidError("invalid pool prefix")
	ErrInvalidPortNumber            = InvalidError("invalid port number")
	ErrInvalidTokenDigest           = InvalidError("invalid token digest")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrInvalidAmount                = AmountError("invalid amount")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMalformedBatch               = BatchFormatError("malformed batch")
	ErrMetadataFrozen               = InvalidError("nonce metadata is frozen after redemption opens")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrNotPlainFileName             = InvalidError("not a plain file name")
	ErrNotRedeemable                = RedemptionError("bond is not redeemable")
	ErrRateLimiting                 = InvalidError("rate limit exceeded")
	ErrReadOnlyDatabase             = ProcessError("database is read only")
	ErrTransactionInUse             = ProcessError("transaction already in use")
	ErrTransactionNotInUse          = ProcessError("transaction not in use")
	ErrUnauthorised                 = AuthorisationError("unauthorised")
	ErrUnknownPrincipal             = AuthorisationError("unknown principal token")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AllowanceError) Error() string     { return string(e) }
func (e AmountError) Error() string        { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e BalanceError) Error() string       { return string(e) }
func (e BatchFormatError) Error() string   { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RedemptionError) Error() string    { return string(e) }

// BatchError - the entry of a batch that caused it to be rejected
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch entry: %d  error: %s", e.Index, e.Err)
}

// Unwrap - the error of the failing entry
func (e *BatchError) Unwrap() error { return e.Err }

// determine the class of an error, looking through any BatchError
func IsErrAllowance(e error) bool     { var x AllowanceError; return errors.As(e, &x) }
func IsErrAmount(e error) bool        { var x AmountError; return errors.As(e, &x) }
func IsErrAuthorisation(e error) bool { var x AuthorisationError; return errors.As(e, &x) }
func IsErrBalance(e error) bool       { var x BalanceError; return errors.As(e, &x) }
func IsErrBatchFormat(e error) bool   { var x BatchFormatError; return errors.As(e, &x) }
func IsErrExists(e error) bool        { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool       { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool      { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool       { var x ProcessError; return errors.As(e, &x) }
func IsErrRedemption(e error) bool    { var x RedemptionError; return errors.As(e, &x) }

// BatchIndex - index of the failing batch entry, -1 if not a batch error
func BatchIndex(e error) int {
	var b *BatchError
	if errors.As(e, &b) {
		return b.Index
	}
	return -1
}
