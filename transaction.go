// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package umi

import (
	"github.com/umi-top/umi-core-go/fault"
	"github.com/umi-top/umi-core-go/internal/ed25519core"
	"github.com/umi-top/umi-core-go/internal/prefixcodec"
	"github.com/umi-top/umi-core-go/internal/sha256core"
	"github.com/umi-top/umi-core-go/internal/utf8codec"
)

// TransactionLength is the length in bytes of a Transaction buffer.
const TransactionLength = 150

// signedLength is the length of the portion of the buffer that is hashed
// for signing: everything before the signature.
const signedLength = 85

// TransactionVersion identifies one of the eight transaction record
// shapes that share the 150-byte buffer.
type TransactionVersion uint8

// Transaction versions, per the wire layout table.
const (
	Genesis               TransactionVersion = 0
	Basic                 TransactionVersion = 1
	CreateStructure       TransactionVersion = 2
	UpdateStructure       TransactionVersion = 3
	UpdateProfitAddress   TransactionVersion = 4
	UpdateFeeAddress      TransactionVersion = 5
	CreateTransitAddress  TransactionVersion = 6
	DeleteTransitAddress  TransactionVersion = 7
)

// offsets into the 150-byte buffer
const (
	offsetVersion       = 0
	offsetSender        = 1
	offsetRecipient     = 35
	offsetStructTag     = 35
	offsetProfitPercent = 37
	offsetFeePercent    = 39
	offsetNameLength    = 41
	offsetName          = 42
	offsetValue         = 69
	offsetNonce         = 77
	offsetSignature     = 85
)

const maxNameBytes = 35

// field-set bitmap flags
type transactionField uint16

const (
	fieldVersion transactionField = 1 << iota
	fieldSender
	fieldRecipient
	fieldValue
	fieldPrefix
	fieldName
	fieldProfitPercent
	fieldFeePercent
	fieldNonce
	fieldSignature

	allTransactionFields = fieldVersion | fieldSender | fieldRecipient | fieldValue |
		fieldPrefix | fieldName | fieldProfitPercent | fieldFeePercent | fieldNonce | fieldSignature
)

// Transaction is a thin layer over a 150-byte buffer plus a bitmap
// tracking which logical fields have been written, since several fields
// share the same backing bytes depending on the transaction's version.
type Transaction struct {
	bytes     [TransactionLength]byte
	fieldsSet transactionField
}

// NewTransaction returns an empty transaction with no fields set.
func NewTransaction() *Transaction {
	return &Transaction{}
}

// TransactionFromBytes copies a raw 150-byte buffer and marks every field
// as set, regardless of version. An illegal field/version combination is
// only rejected when that field is actually accessed.
func TransactionFromBytes(b []byte) (*Transaction, error) {
	if len(b) != TransactionLength {
		return nil, fault.ErrInvalidTransactionLength
	}
	tx := &Transaction{fieldsSet: allTransactionFields}
	copy(tx.bytes[:], b)
	return tx, nil
}

func (tx *Transaction) has(f transactionField) bool {
	return tx.fieldsSet&f != 0
}

func (tx *Transaction) requireSet(f transactionField, err error) error {
	if !tx.has(f) {
		return err
	}
	return nil
}

func recipientAvailable(v TransactionVersion) bool {
	return v != CreateStructure && v != UpdateStructure
}

func structureFieldsAvailable(v TransactionVersion) bool {
	return v == CreateStructure || v == UpdateStructure
}

func valueAvailable(v TransactionVersion) bool {
	return v == Genesis || v == Basic
}

// Version returns the transaction's version tag.
func (tx *Transaction) Version() (TransactionVersion, error) {
	if err := tx.requireSet(fieldVersion, fault.ErrFieldNotSet); err != nil {
		return 0, err
	}
	return TransactionVersion(tx.bytes[offsetVersion]), nil
}

// SetVersion writes the transaction's version. The version may only be
// set once; a second call fails with FieldAlreadySet.
func (tx *Transaction) SetVersion(v TransactionVersion) error {
	if tx.has(fieldVersion) {
		return fault.ErrVersionAlreadySet
	}
	tx.bytes[offsetVersion] = byte(v)
	tx.fieldsSet |= fieldVersion
	return nil
}

// Sender returns the transaction's sender address.
func (tx *Transaction) Sender() (Address, error) {
	if err := tx.requireSet(fieldVersion, fault.ErrFieldNotSet); err != nil {
		return Address{}, err
	}
	if err := tx.requireSet(fieldSender, fault.ErrFieldNotSet); err != nil {
		return Address{}, err
	}
	var a Address
	copy(a.bytes[:], tx.bytes[offsetSender:offsetSender+AddressLength])
	return a, nil
}

// SetSender writes the transaction's sender address. The sender must be a
// Genesis-version address if and only if the transaction is a Genesis
// transaction.
func (tx *Transaction) SetSender(a Address) error {
	version, err := tx.Version()
	if err != nil {
		return err
	}
	if (version == Genesis) != a.IsGenesis() {
		return fault.ErrInvalidSenderAddress
	}
	copy(tx.bytes[offsetSender:offsetSender+AddressLength], a.bytes[:])
	tx.fieldsSet |= fieldSender
	return nil
}

// Recipient returns the transaction's recipient address. Not available on
// CreateStructure/UpdateStructure transactions.
func (tx *Transaction) Recipient() (Address, error) {
	version, err := tx.Version()
	if err != nil {
		return Address{}, err
	}
	if !recipientAvailable(version) {
		return Address{}, fault.ErrFieldNotAvailable
	}
	if err := tx.requireSet(fieldRecipient, fault.ErrFieldNotSet); err != nil {
		return Address{}, err
	}
	var a Address
	copy(a.bytes[:], tx.bytes[offsetRecipient:offsetRecipient+AddressLength])
	return a, nil
}

// SetRecipient writes the transaction's recipient address, enforcing the
// per-version Genesis/Umi rules of the data model: a Genesis transaction's
// recipient must itself be a Genesis address; a Basic transaction's
// recipient may be the Umi address; every other available version's
// recipient must not be the Umi address.
func (tx *Transaction) SetRecipient(a Address) error {
	version, err := tx.Version()
	if err != nil {
		return err
	}
	if !recipientAvailable(version) {
		return fault.ErrFieldNotAvailable
	}

	switch {
	case version == Genesis:
		if !a.IsGenesis() {
			return fault.ErrInvalidRecipientAddress
		}
	default:
		if a.IsGenesis() {
			return fault.ErrInvalidRecipientAddress
		}
		if version != Basic && a.IsUmi() {
			return fault.ErrInvalidRecipientAddress
		}
	}

	copy(tx.bytes[offsetRecipient:offsetRecipient+AddressLength], a.bytes[:])
	tx.fieldsSet |= fieldRecipient
	return nil
}

// Value returns the transaction's value field. Only available on Genesis
// and Basic transactions.
func (tx *Transaction) Value() (uint64, error) {
	version, err := tx.Version()
	if err != nil {
		return 0, err
	}
	if !valueAvailable(version) {
		return 0, fault.ErrFieldNotAvailable
	}
	if err := tx.requireSet(fieldValue, fault.ErrFieldNotSet); err != nil {
		return 0, err
	}
	v := readUint64(tx.bytes[offsetValue : offsetValue+8])
	if !within53Bits(tx.bytes[offsetValue : offsetValue+2]) {
		return 0, fault.ErrInvalidValue
	}
	return v, nil
}

// SetValue writes the transaction's value field. value must be in
// [1, 2^53-1].
func (tx *Transaction) SetValue(value uint64) error {
	version, err := tx.Version()
	if err != nil {
		return err
	}
	if !valueAvailable(version) {
		return fault.ErrFieldNotAvailable
	}
	if value < 1 || value > maxSafeInteger {
		return fault.ErrInvalidValue
	}
	writeUint64(tx.bytes[offsetValue:offsetValue+8], value)
	tx.fieldsSet |= fieldValue
	return nil
}

// Nonce returns the transaction's nonce field.
func (tx *Transaction) Nonce() (uint64, error) {
	if err := tx.requireSet(fieldVersion, fault.ErrFieldNotSet); err != nil {
		return 0, err
	}
	if err := tx.requireSet(fieldNonce, fault.ErrFieldNotSet); err != nil {
		return 0, err
	}
	if !within53Bits(tx.bytes[offsetNonce : offsetNonce+2]) {
		return 0, fault.ErrInvalidNonce
	}
	return readUint64(tx.bytes[offsetNonce : offsetNonce+8]), nil
}

// SetNonce writes the transaction's nonce field. nonce must be in
// [0, 2^53-1].
func (tx *Transaction) SetNonce(nonce uint64) error {
	if err := tx.requireSet(fieldVersion, fault.ErrFieldNotSet); err != nil {
		return err
	}
	if nonce > maxSafeInteger {
		return fault.ErrInvalidNonce
	}
	writeUint64(tx.bytes[offsetNonce:offsetNonce+8], nonce)
	tx.fieldsSet |= fieldNonce
	return nil
}

// Prefix returns the structure namespace prefix. Only available on
// CreateStructure/UpdateStructure transactions.
func (tx *Transaction) Prefix() (string, error) {
	version, err := tx.Version()
	if err != nil {
		return "", err
	}
	if !structureFieldsAvailable(version) {
		return "", fault.ErrFieldNotAvailable
	}
	if err := tx.requireSet(fieldPrefix, fault.ErrFieldNotSet); err != nil {
		return "", err
	}
	v := uint16(tx.bytes[offsetStructTag])<<8 | uint16(tx.bytes[offsetStructTag+1])
	return prefixcodec.FromVersion(v)
}

// SetPrefix writes the structure namespace prefix.
func (tx *Transaction) SetPrefix(prefix string) error {
	version, err := tx.Version()
	if err != nil {
		return err
	}
	if !structureFieldsAvailable(version) {
		return fault.ErrFieldNotAvailable
	}
	v, err := prefixcodec.ToVersion(prefix)
	if err != nil {
		return err
	}
	tx.bytes[offsetStructTag] = byte(v >> 8)
	tx.bytes[offsetStructTag+1] = byte(v)
	tx.fieldsSet |= fieldPrefix
	return nil
}

// ProfitPercent returns the structure's profit percentage.
func (tx *Transaction) ProfitPercent() (uint16, error) {
	version, err := tx.Version()
	if err != nil {
		return 0, err
	}
	if !structureFieldsAvailable(version) {
		return 0, fault.ErrFieldNotAvailable
	}
	if err := tx.requireSet(fieldProfitPercent, fault.ErrFieldNotSet); err != nil {
		return 0, err
	}
	v := uint16(tx.bytes[offsetProfitPercent])<<8 | uint16(tx.bytes[offsetProfitPercent+1])
	if v < 100 || v > 500 {
		return 0, fault.ErrInvalidProfitPercent
	}
	return v, nil
}

// SetProfitPercent writes the structure's profit percentage, which must
// be in [100, 500].
func (tx *Transaction) SetProfitPercent(percent uint16) error {
	version, err := tx.Version()
	if err != nil {
		return err
	}
	if !structureFieldsAvailable(version) {
		return fault.ErrFieldNotAvailable
	}
	if percent < 100 || percent > 500 {
		return fault.ErrInvalidProfitPercent
	}
	tx.bytes[offsetProfitPercent] = byte(percent >> 8)
	tx.bytes[offsetProfitPercent+1] = byte(percent)
	tx.fieldsSet |= fieldProfitPercent
	return nil
}

// FeePercent returns the structure's fee percentage.
func (tx *Transaction) FeePercent() (uint16, error) {
	version, err := tx.Version()
	if err != nil {
		return 0, err
	}
	if !structureFieldsAvailable(version) {
		return 0, fault.ErrFieldNotAvailable
	}
	if err := tx.requireSet(fieldFeePercent, fault.ErrFieldNotSet); err != nil {
		return 0, err
	}
	v := uint16(tx.bytes[offsetFeePercent])<<8 | uint16(tx.bytes[offsetFeePercent+1])
	if v > 2000 {
		return 0, fault.ErrInvalidFeePercent
	}
	return v, nil
}

// SetFeePercent writes the structure's fee percentage, which must be in
// [0, 2000].
func (tx *Transaction) SetFeePercent(percent uint16) error {
	version, err := tx.Version()
	if err != nil {
		return err
	}
	if !structureFieldsAvailable(version) {
		return fault.ErrFieldNotAvailable
	}
	if percent > 2000 {
		return fault.ErrInvalidFeePercent
	}
	tx.bytes[offsetFeePercent] = byte(percent >> 8)
	tx.bytes[offsetFeePercent+1] = byte(percent)
	tx.fieldsSet |= fieldFeePercent
	return nil
}

// Name returns the structure's display name.
func (tx *Transaction) Name() (string, error) {
	version, err := tx.Version()
	if err != nil {
		return "", err
	}
	if !structureFieldsAvailable(version) {
		return "", fault.ErrFieldNotAvailable
	}
	if err := tx.requireSet(fieldName, fault.ErrFieldNotSet); err != nil {
		return "", err
	}
	length := int(tx.bytes[offsetNameLength])
	if length > maxNameBytes {
		return "", fault.ErrInvalidNameLength
	}
	return utf8codec.DecodeString(tx.bytes[offsetName : offsetName+length])
}

// SetName UTF-8 encodes name and writes it; the encoded form must be at
// most 35 bytes.
func (tx *Transaction) SetName(name string) error {
	version, err := tx.Version()
	if err != nil {
		return err
	}
	if !structureFieldsAvailable(version) {
		return fault.ErrFieldNotAvailable
	}
	encoded := utf8codec.EncodeString(name)
	if len(encoded) > maxNameBytes {
		return fault.ErrInvalidNameLength
	}

	for i := offsetName; i < offsetName+maxNameBytes; i++ {
		tx.bytes[i] = 0
	}
	tx.bytes[offsetNameLength] = byte(len(encoded))
	copy(tx.bytes[offsetName:], encoded)
	tx.fieldsSet |= fieldName
	return nil
}

// Signature returns the transaction's 64-byte signature.
func (tx *Transaction) Signature() ([]byte, error) {
	if err := tx.requireSet(fieldVersion, fault.ErrFieldNotSet); err != nil {
		return nil, err
	}
	if err := tx.requireSet(fieldSender, fault.ErrFieldNotSet); err != nil {
		return nil, err
	}
	if err := tx.requireSet(fieldSignature, fault.ErrFieldNotSet); err != nil {
		return nil, err
	}
	out := make([]byte, SignatureSize)
	copy(out, tx.bytes[offsetSignature:offsetSignature+SignatureSize])
	return out, nil
}

// SetSignature writes the transaction's 64-byte signature directly.
func (tx *Transaction) SetSignature(signature []byte) error {
	if err := tx.requireSet(fieldVersion, fault.ErrFieldNotSet); err != nil {
		return err
	}
	if err := tx.requireSet(fieldSender, fault.ErrFieldNotSet); err != nil {
		return err
	}
	if len(signature) != SignatureSize {
		return fault.ErrInvalidSignatureLength
	}
	copy(tx.bytes[offsetSignature:offsetSignature+SignatureSize], signature)
	tx.fieldsSet |= fieldSignature
	return nil
}

// Sign computes the Ed25519 signature over bytes [0, 85) of the buffer
// using sk and writes it at offset 85. It returns tx so that callers can
// chain further calls once the error has been checked.
func (tx *Transaction) Sign(sk SecretKey) (*Transaction, error) {
	if err := tx.requireSet(fieldVersion, fault.ErrFieldNotSet); err != nil {
		return tx, err
	}
	if err := tx.requireSet(fieldSender, fault.ErrFieldNotSet); err != nil {
		return tx, err
	}

	var secret [SecretKeySize]byte
	copy(secret[:], sk.bytes[:])
	signature := ed25519core.Sign(tx.bytes[:signedLength], secret)
	copy(tx.bytes[offsetSignature:offsetSignature+SignatureSize], signature[:])
	tx.fieldsSet |= fieldSignature
	return tx, nil
}

// Verify checks the transaction's signature against its sender's public
// key. It returns an error if version, sender, or signature have not been
// set yet, and otherwise returns whether the signature is valid.
func (tx *Transaction) Verify() (bool, error) {
	if err := tx.requireSet(fieldVersion, fault.ErrFieldNotSet); err != nil {
		return false, err
	}
	sender, err := tx.Sender()
	if err != nil {
		return false, err
	}
	if err := tx.requireSet(fieldSignature, fault.ErrFieldNotSet); err != nil {
		return false, err
	}

	var signature [SignatureSize]byte
	copy(signature[:], tx.bytes[offsetSignature:offsetSignature+SignatureSize])
	return ed25519core.Verify(signature, tx.bytes[:signedLength], sender.PublicKey().bytes), nil
}

// Hash returns the SHA-256 digest of the transaction's entire 150-byte
// buffer.
func (tx *Transaction) Hash() [sha256core.Size]byte {
	return sha256core.Sum(tx.bytes[:])
}

// Bytes returns a defensive copy of the transaction's 150-byte buffer.
func (tx *Transaction) Bytes() []byte {
	out := make([]byte, TransactionLength)
	copy(out, tx.bytes[:])
	return out
}

const maxSafeInteger = 1<<53 - 1

func within53Bits(topTwoBytes []byte) bool {
	v := uint16(topTwoBytes[0])<<8 | uint16(topTwoBytes[1])
	return v <= 0x001f
}

func readUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

func writeUint64(b []byte, v uint64) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

