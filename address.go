// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package umi

import (
	"github.com/umi-top/umi-core-go/fault"
	"github.com/umi-top/umi-core-go/internal/bech32"
	"github.com/umi-top/umi-core-go/internal/prefixcodec"
)

// AddressLength is the length in bytes of an Address buffer.
const AddressLength = 34

// GenesisVersion is the reserved version for the genesis namespace.
const GenesisVersion uint16 = 0

// UmiVersion is the canonical mainnet namespace version, 'u'*1024 +
// 'm'*32 + 'i' in the prefix codec's base-27 letter scheme.
const UmiVersion uint16 = 21929

// Address is a 34-byte record: a 2-byte big-endian version (high bit
// always zero) followed by a 32-byte Ed25519 public key.
type Address struct {
	bytes [AddressLength]byte
}

// NewAddress returns an empty address pre-initialized with UmiVersion.
func NewAddress() Address {
	var a Address
	a.bytes[0] = byte(UmiVersion >> 8)
	a.bytes[1] = byte(UmiVersion & 0xFF)
	return a
}

// AddressFromBytes copies a raw 34-byte buffer with no validation beyond
// its length.
func AddressFromBytes(b []byte) (Address, error) {
	if len(b) != AddressLength {
		return Address{}, fault.ErrInvalidAddressLength
	}
	var a Address
	copy(a.bytes[:], b)
	return a, nil
}

// AddressFromBech32 parses and validates a Bech32 string into an Address.
func AddressFromBech32(s string) (Address, error) {
	decoded, err := bech32.Decode(s)
	if err != nil {
		return Address{}, err
	}
	return Address{bytes: decoded}, nil
}

// AddressFromPublicKey builds an Address with the default UmiVersion and
// the given public key.
func AddressFromPublicKey(pk PublicKey) Address {
	a := NewAddress()
	copy(a.bytes[2:], pk.bytes[:])
	return a
}

// AddressFromSecretKey builds an Address with the default UmiVersion and
// the public key derived from sk.
func AddressFromSecretKey(sk SecretKey) Address {
	return AddressFromPublicKey(sk.PublicKey())
}

// Version returns the address's 16-bit version tag.
func (a Address) Version() uint16 {
	return uint16(a.bytes[0])<<8 | uint16(a.bytes[1])
}

// SetVersion validates version through the prefix codec and writes it,
// masking the high bit to zero.
func (a *Address) SetVersion(version uint16) error {
	if _, err := prefixcodec.FromVersion(version); err != nil {
		return err
	}
	masked := version &^ 0x8000
	a.bytes[0] = byte(masked >> 8)
	a.bytes[1] = byte(masked)
	return nil
}

// Prefix returns the address's namespace prefix.
func (a Address) Prefix() (string, error) {
	return prefixcodec.FromVersion(a.Version())
}

// SetPrefix sets the address's version from a namespace prefix.
func (a *Address) SetPrefix(prefix string) error {
	version, err := prefixcodec.ToVersion(prefix)
	if err != nil {
		return err
	}
	return a.SetVersion(version)
}

// PublicKey returns the address's 32-byte public key.
func (a Address) PublicKey() PublicKey {
	var pk PublicKey
	copy(pk.bytes[:], a.bytes[2:])
	return pk
}

// SetPublicKey writes pk's bytes into the address.
func (a *Address) SetPublicKey(pk PublicKey) {
	copy(a.bytes[2:], pk.bytes[:])
}

// Bech32 renders the address in its Bech32 string form.
func (a Address) Bech32() (string, error) {
	return bech32.Encode(a.bytes)
}

// SetBech32 replaces the address with the address decoded from s.
func (a *Address) SetBech32(s string) error {
	decoded, err := bech32.Decode(s)
	if err != nil {
		return err
	}
	a.bytes = decoded
	return nil
}

// Bytes returns a defensive copy of the address's 34 bytes.
func (a Address) Bytes() []byte {
	out := make([]byte, AddressLength)
	copy(out, a.bytes[:])
	return out
}

// IsGenesis reports whether the address uses the reserved genesis version.
func (a Address) IsGenesis() bool {
	return a.Version() == GenesisVersion
}

// IsUmi reports whether the address uses the canonical mainnet version.
func (a Address) IsUmi() bool {
	return a.Version() == UmiVersion
}
