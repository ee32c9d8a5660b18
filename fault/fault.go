// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse       = ExistsError("account already in use")
	ErrAccountDataTooSmall       = LengthError("account data too small for value")
	ErrAccountNotWritable        = InvalidError("account is not writable")
	ErrAddressDerivationMismatch = InvalidError("incorrect account address derivation")
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrConfigurationNotTable     = InvalidError("configuration did not return a table")
	ErrDatabaseVersion           = RecordError("incompatible database version")
	ErrDecode                    = RecordError("cannot decode data")
	ErrDerivationExhausted       = ProcessError("no viable bump seed for derived address")
	ErrDocumentsCounterOverflow  = ProcessError("documents counter overflow")
	ErrInsufficientFunds         = InvalidError("insufficient funds")
	ErrInvalidAccountDataLength  = LengthError("invalid account data length")
	ErrInvalidAddressLength      = LengthError("invalid address length")
	ErrInvalidLoggerChannel      = ProcessError("invalid logger channel")
	ErrInvalidRent               = InvalidError("rent parameters out of range")
	ErrInvalidSeeds              = InvalidError("seeds derive an address on the curve")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidSystemFact         = InvalidError("invalid system account")
	ErrLamportsOverflow          = ProcessError("lamports overflow")
	ErrMaxSeedLengthExceeded     = LengthError("maximum seed length exceeded")
	ErrMissingAuthorization      = InvalidError("missing required signature")
	ErrNotEnoughAccountKeys      = NotFoundError("not enough account keys")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrNotRentExempt             = InvalidError("account is not rent exempt")
	ErrPanicLogAlreadyOpen       = ExistsError("panic log already open")
	ErrStorageAlreadyInitialised = ExistsError("storage already initialised")
	ErrStorageNotInitialised     = NotFoundError("storage not initialised")
	ErrTransactionFinished       = ProcessError("transaction already finished")
	ErrWrongOwner                = InvalidError("account not owned by program")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
