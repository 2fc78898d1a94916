// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bech32 implements the BIP-173 Bech32 encoding (not Bech32m) used
// for the human-readable form of a UMI address. The human-readable part is
// itself the three-letter namespace prefix (or the literal "genesis")
// produced by internal/prefixcodec, and the data payload is the address's
// 32-byte public key; the 2-byte version prefix of the wire format is
// carried entirely in the human-readable part rather than in the data.
package bech32

import (
	"strings"

	"github.com/umi-top/umi-core-go/fault"
	"github.com/umi-top/umi-core-go/internal/prefixcodec"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

const separator = '1'

const checksumConstant = 1

var generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// AddressLength is the length in bytes of a decoded address buffer: a
// 2-byte version followed by a 32-byte public key.
const AddressLength = 34

func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generator[i]
			}
		}
	}
	return chk
}

func hrpExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

func createChecksum(hrp string, data []byte) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := polymod(values) ^ checksumConstant

	checksum := make([]byte, 6)
	for i := 0; i < 6; i++ {
		checksum[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return checksum
}

func verifyChecksum(hrp string, data []byte) bool {
	values := append(hrpExpand(hrp), data...)
	return polymod(values) == checksumConstant
}

// convertBits regroups a slice of fromBits-wide values into a slice of
// toBits-wide values, optionally pad-appending a final short group.
func convertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	var acc uint32
	var bits uint
	out := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	maxVal := uint32(1)<<toBits - 1

	for _, value := range data {
		if uint32(value)>>fromBits != 0 {
			return nil, fault.ErrInvalidBech32Padding
		}
		acc = acc<<fromBits | uint32(value)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte(acc>>bits)&byte(maxVal))
		}
	}

	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(toBits-bits))&byte(maxVal))
		}
	} else if bits >= fromBits || (acc<<(toBits-bits))&maxVal != 0 {
		return nil, fault.ErrInvalidBech32Padding
	}

	return out, nil
}

// Encode renders a 34-byte address buffer as its Bech32 string form.
func Encode(address [AddressLength]byte) (string, error) {
	version := uint16(address[0])<<8 | uint16(address[1])
	hrp, err := prefixcodec.FromVersion(version)
	if err != nil {
		return "", err
	}

	data, err := convertBits(address[2:], 8, 5, true)
	if err != nil {
		return "", err
	}

	checksum := createChecksum(hrp, data)
	combined := append(data, checksum...)

	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte(separator)
	for _, v := range combined {
		sb.WriteByte(charset[v])
	}
	return sb.String(), nil
}

// Decode parses a Bech32 string back into its 34-byte address buffer.
func Decode(s string) ([AddressLength]byte, error) {
	var out [AddressLength]byte

	hasLower := strings.ToLower(s) == s
	hasUpper := strings.ToUpper(s) == s
	if !hasLower && !hasUpper {
		return out, fault.ErrInvalidBech32Case
	}
	s = strings.ToLower(s)

	sep := strings.LastIndexByte(s, separator)
	if sep < 0 {
		return out, fault.ErrInvalidBech32Separator
	}
	if sep == 0 {
		return out, fault.ErrInvalidBech32Prefix
	}

	hrp := s[:sep]
	dataPart := s[sep+1:]
	if len(dataPart) < 6 {
		return out, fault.ErrInvalidBech32DataLength
	}

	values := make([]byte, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		idx := strings.IndexByte(charset, dataPart[i])
		if idx < 0 {
			return out, fault.ErrInvalidBech32Character
		}
		values[i] = byte(idx)
	}

	if !verifyChecksum(hrp, values) {
		return out, fault.ErrInvalidBech32Checksum
	}

	data := values[:len(values)-6]
	decoded, err := convertBits(data, 5, 8, false)
	if err != nil {
		return out, err
	}
	if len(decoded) != 32 {
		return out, fault.ErrInvalidBech32DataLength
	}

	version, err := prefixcodec.ToVersion(hrp)
	if err != nil {
		return out, fault.ErrInvalidBech32Prefix
	}

	out[0] = byte(version >> 8)
	out[1] = byte(version)
	copy(out[2:], decoded)
	return out, nil
}
