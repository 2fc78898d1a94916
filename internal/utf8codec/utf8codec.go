// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package utf8codec is a self-contained UTF-8 encoder/decoder operating on
// Unicode scalar values, including surrogate-pair reconstruction for
// supplementary-plane code points. It does not use encoding/utf8 or any
// platform transcoder, matching the byte-exact, dependency-free posture
// the rest of this library's wire-format primitives take.
package utf8codec

import "github.com/umi-top/umi-core-go/fault"

const (
	surrogateHighStart = 0xd800
	surrogateHighEnd   = 0xdbff
	surrogateLowStart  = 0xdc00
	surrogateLowEnd    = 0xdfff
)

// Encode renders a sequence of UTF-16 code units (as produced by most host
// string representations, surrogate pairs included) as canonical UTF-8
// bytes.
func Encode(units []uint16) ([]byte, error) {
	out := make([]byte, 0, len(units))
	for i := 0; i < len(units); i++ {
		unit := units[i]

		var scalar uint32
		switch {
		case unit >= surrogateHighStart && unit <= surrogateHighEnd:
			if i+1 >= len(units) {
				return nil, fault.ErrInvalidUTF8Sequence
			}
			low := units[i+1]
			if low < surrogateLowStart || low > surrogateLowEnd {
				return nil, fault.ErrInvalidUTF8Sequence
			}
			scalar = 0x10000 + (uint32(unit)-surrogateHighStart)<<10 + (uint32(low) - surrogateLowStart)
			i++
		case unit >= surrogateLowStart && unit <= surrogateLowEnd:
			return nil, fault.ErrInvalidUTF8Sequence
		default:
			scalar = uint32(unit)
		}

		out = appendScalar(out, scalar)
	}
	return out, nil
}

func appendScalar(out []byte, scalar uint32) []byte {
	switch {
	case scalar < 0x80:
		return append(out, byte(scalar))
	case scalar < 0x800:
		return append(out,
			byte(0xc0|scalar>>6),
			byte(0x80|scalar&0x3f))
	case scalar < 0x10000:
		return append(out,
			byte(0xe0|scalar>>12),
			byte(0x80|(scalar>>6)&0x3f),
			byte(0x80|scalar&0x3f))
	default:
		return append(out,
			byte(0xf0|scalar>>18),
			byte(0x80|(scalar>>12)&0x3f),
			byte(0x80|(scalar>>6)&0x3f),
			byte(0x80|scalar&0x3f))
	}
}

// Decode parses canonical UTF-8 bytes into their Unicode scalar values,
// reconstructed as UTF-16 code units with supplementary-plane code points
// split into surrogate pairs.
func Decode(data []byte) ([]uint16, error) {
	out := make([]uint16, 0, len(data))
	i := 0
	for i < len(data) {
		b0 := data[i]

		var scalar uint32
		var size int
		switch {
		case b0&0x80 == 0:
			scalar = uint32(b0)
			size = 1
		case b0&0xe0 == 0xc0:
			scalar = uint32(b0 & 0x1f)
			size = 2
		case b0&0xf0 == 0xe0:
			scalar = uint32(b0 & 0x0f)
			size = 3
		case b0&0xf8 == 0xf0:
			scalar = uint32(b0 & 0x07)
			size = 4
		default:
			return nil, fault.ErrInvalidUTF8Sequence
		}

		if i+size > len(data) {
			return nil, fault.ErrInvalidUTF8Sequence
		}
		for j := 1; j < size; j++ {
			cont := data[i+j]
			if cont&0xc0 != 0x80 {
				return nil, fault.ErrInvalidUTF8Sequence
			}
			scalar = scalar<<6 | uint32(cont&0x3f)
		}
		i += size

		if scalar >= 0x10000 {
			scalar -= 0x10000
			out = append(out,
				uint16(surrogateHighStart+(scalar>>10)),
				uint16(surrogateLowStart+(scalar&0x3ff)))
		} else {
			out = append(out, uint16(scalar))
		}
	}
	return out, nil
}

// EncodeString encodes a Go string directly from its runes, bypassing the
// UTF-16 surrogate-pair step Encode needs for inputs already split into
// 16-bit code units.
func EncodeString(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = appendScalar(out, uint32(r))
	}
	return out
}

// DecodeString is a convenience wrapper over Decode that returns a Go
// string built from the decoded scalar values.
func DecodeString(data []byte) (string, error) {
	units, err := Decode(data)
	if err != nil {
		return "", err
	}
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		unit := units[i]
		if unit >= surrogateHighStart && unit <= surrogateHighEnd && i+1 < len(units) {
			low := units[i+1]
			if low >= surrogateLowStart && low <= surrogateLowEnd {
				scalar := 0x10000 + (uint32(unit)-surrogateHighStart)<<10 + (uint32(low) - surrogateLowStart)
				runes = append(runes, rune(scalar))
				i++
				continue
			}
		}
		runes = append(runes, rune(unit))
	}
	return string(runes), nil
}
