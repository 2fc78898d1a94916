// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors per failure class to allow easy
// comparison without having to resort to partial string matches. Every
// setter and getter in the umi package surfaces one of these directly:
// there is no wrapping and no cross-component propagation.
package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidLengthError GenericError
type InvalidTypeError GenericError
type InvalidRangeError GenericError
type InvalidFieldError GenericError
type FieldNotSetError GenericError
type FieldAlreadySetError GenericError
type InvalidPrefixError GenericError
type InvalidBech32Error GenericError

// common errors - grouped by class
var (
	ErrInvalidAddressLength    = InvalidLengthError("address length is invalid")
	ErrInvalidNameLength       = InvalidLengthError("structure name length is invalid")
	ErrInvalidSeedLength       = InvalidLengthError("seed length is invalid")
	ErrInvalidSecretKeyLength  = InvalidLengthError("secret key length is invalid")
	ErrInvalidPublicKeyLength  = InvalidLengthError("public key length is invalid")
	ErrInvalidSignatureLength  = InvalidLengthError("signature length is invalid")
	ErrInvalidTransactionLength = InvalidLengthError("transaction length is invalid")

	ErrInvalidPublicKeyType  = InvalidTypeError("argument is not a public key")
	ErrInvalidUTF8Sequence   = InvalidTypeError("byte sequence is not valid UTF-8")

	ErrInvalidFeePercent      = InvalidRangeError("fee percent is out of range")
	ErrInvalidProfitPercent   = InvalidRangeError("profit percent is out of range")
	ErrInvalidNonce           = InvalidRangeError("nonce is out of range")
	ErrInvalidValue           = InvalidRangeError("value is out of range")
	ErrInvalidSenderAddress   = InvalidRangeError("sender address version does not match transaction version")
	ErrInvalidRecipientAddress = InvalidRangeError("recipient address version does not match transaction version")

	ErrFieldNotAvailable = InvalidFieldError("field is not available for this transaction version")

	ErrFieldNotSet = FieldNotSetError("field has not been set")

	ErrVersionAlreadySet = FieldAlreadySetError("version has already been set")

	ErrInvalidPrefixCharacter = InvalidPrefixError("prefix character is out of range")
	ErrInvalidPrefixLength    = InvalidPrefixError("prefix length is invalid")
	ErrReservedPrefixBit      = InvalidPrefixError("prefix version high bit must be zero")

	ErrInvalidBech32Checksum   = InvalidBech32Error("bech32 checksum is invalid")
	ErrInvalidBech32Character  = InvalidBech32Error("bech32 data character is invalid")
	ErrInvalidBech32Case       = InvalidBech32Error("bech32 string has mixed case")
	ErrInvalidBech32DataLength = InvalidBech32Error("bech32 data part length is invalid")
	ErrInvalidBech32Padding    = InvalidBech32Error("bech32 padding is invalid")
	ErrInvalidBech32Prefix     = InvalidBech32Error("bech32 human-readable prefix is empty or invalid")
	ErrInvalidBech32Separator  = InvalidBech32Error("bech32 separator '1' is missing")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidLengthError) Error() string     { return string(e) }
func (e InvalidTypeError) Error() string       { return string(e) }
func (e InvalidRangeError) Error() string      { return string(e) }
func (e InvalidFieldError) Error() string      { return string(e) }
func (e FieldNotSetError) Error() string       { return string(e) }
func (e FieldAlreadySetError) Error() string   { return string(e) }
func (e InvalidPrefixError) Error() string     { return string(e) }
func (e InvalidBech32Error) Error() string     { return string(e) }

// determine the class of an error
func IsErrInvalidLength(e error) bool   { _, ok := e.(InvalidLengthError); return ok }
func IsErrInvalidType(e error) bool     { _, ok := e.(InvalidTypeError); return ok }
func IsErrInvalidRange(e error) bool    { _, ok := e.(InvalidRangeError); return ok }
func IsErrInvalidField(e error) bool    { _, ok := e.(InvalidFieldError); return ok }
func IsErrFieldNotSet(e error) bool     { _, ok := e.(FieldNotSetError); return ok }
func IsErrFieldAlreadySet(e error) bool { _, ok := e.(FieldAlreadySetError); return ok }
func IsErrInvalidPrefix(e error) bool   { _, ok := e.(InvalidPrefixError); return ok }
func IsErrInvalidBech32(e error) bool   { _, ok := e.(InvalidBech32Error); return ok }
