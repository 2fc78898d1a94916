// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prefixcodec converts between the three-letter namespace prefix
// carried in an address's human-readable form and the 16-bit version
// integer stored in the wire format. A version is a base-27 packing of
// three letters, 'a'=1..'z'=26, into the low 15 bits: a*1024 + b*32 + c.
// Version 0 is the reserved literal prefix "genesis".
package prefixcodec

import "github.com/umi-top/umi-core-go/fault"

// Genesis is the reserved version for the literal prefix "genesis".
const Genesis uint16 = 0

// ToVersion maps a prefix string to its packed version integer.
func ToVersion(prefix string) (uint16, error) {
	if prefix == "genesis" {
		return Genesis, nil
	}
	if len(prefix) != 3 {
		return 0, fault.ErrInvalidPrefixLength
	}

	var letters [3]uint16
	for i := 0; i < 3; i++ {
		c := prefix[i]
		if c < 'a' || c > 'z' {
			return 0, fault.ErrInvalidPrefixCharacter
		}
		letters[i] = uint16(c-'a') + 1
	}
	return letters[0]*1024 + letters[1]*32 + letters[2], nil
}

// FromVersion maps a packed version integer back to its prefix string.
func FromVersion(version uint16) (string, error) {
	if version == Genesis {
		return "genesis", nil
	}
	if version&0x8000 != 0 {
		return "", fault.ErrReservedPrefixBit
	}

	a := (version >> 10) & 31
	b := (version >> 5) & 31
	c := version & 31

	letters := [3]uint16{a, b, c}
	out := make([]byte, 3)
	for i, v := range letters {
		if v < 1 || v > 26 {
			return "", fault.ErrInvalidPrefixCharacter
		}
		out[i] = byte(v-1) + 'a'
	}
	return string(out), nil
}
