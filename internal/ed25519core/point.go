// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519core

import "math/big"

// point is an affine coordinate pair on edwards25519: -x^2+y^2 = 1+d*x^2*y^2
// over 𝔽_p. The unified addition law used by pointAdd is complete for this
// curve (d is a non-square mod p, a=-1 is a square mod p), so the identity
// and doubling need no special-casing.
type point struct {
	x, y *big.Int
}

var pointIdentity = point{x: big.NewInt(0), y: big.NewInt(1)}

func pointAdd(p1, p2 point) point {
	x1y2 := feMul(p1.x, p2.y)
	y1x2 := feMul(p1.y, p2.x)
	y1y2 := feMul(p1.y, p2.y)
	x1x2 := feMul(p1.x, p2.x)
	dxxyy := feMul(curveD, feMul(x1x2, y1y2))

	x3 := feMul(feAdd(x1y2, y1x2), feInvert(feAdd(big.NewInt(1), dxxyy)))
	y3 := feMul(feAdd(y1y2, x1x2), feInvert(feSub(big.NewInt(1), dxxyy)))
	return point{x: x3, y: y3}
}

func pointEqual(p1, p2 point) bool {
	return p1.x.Cmp(p2.x) == 0 && p1.y.Cmp(p2.y) == 0
}

// pointSelect returns a if bit != 0, otherwise b. spec.md §4.2/§9 calls for
// a constant-time conditional swap inside the scalar multiplication ladder;
// big.Int values carry no fixed-width representation to mask branchlessly,
// so this is a documented best-effort stand-in rather than a true
// constant-time select. See DESIGN.md.
func pointSelect(bit uint, a, b point) point {
	if bit != 0 {
		return a
	}
	return b
}

// scalarMult computes [k]P with a fixed 256-iteration double-and-add-always
// ladder so that the number of point operations does not depend on k's
// value, even though the underlying big.Int arithmetic is not itself
// constant-time.
func scalarMult(k *big.Int, base point) point {
	result := pointIdentity
	addend := base
	for i := 255; i >= 0; i-- {
		result = pointAdd(result, result)
		sum := pointAdd(result, addend)
		result = pointSelect(k.Bit(i), sum, result)
	}
	return result
}

// encodePoint packs a point into the 32-byte little-endian form of
// RFC 8032: the y-coordinate in little-endian order with the top bit of
// the last byte holding the parity of x.
func encodePoint(p point) [32]byte {
	var out [32]byte
	yBytes := intToLittleEndian(p.y, 32)
	copy(out[:], yBytes)
	if p.x.Bit(0) == 1 {
		out[31] |= 0x80
	}
	return out
}

// decodePoint inverts encodePoint, returning ok=false for any 32 bytes
// that do not identify a point on the curve (spec.md §4.2 edge cases:
// malformed encodings must be rejected, not panic).
func decodePoint(b [32]byte) (point, bool) {
	sign := uint(b[31] >> 7)
	yBytes := make([]byte, 32)
	copy(yBytes, b[:])
	yBytes[31] &= 0x7f

	y := littleEndianToInt(yBytes)
	if y.Cmp(fieldPrime) >= 0 {
		return point{}, false
	}

	x, ok := recoverX(y, sign)
	if !ok {
		return point{}, false
	}
	return point{x: x, y: y}, true
}

func littleEndianToInt(b []byte) *big.Int {
	reversed := make([]byte, len(b))
	for i, v := range b {
		reversed[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(reversed)
}

// intToLittleEndian renders x as size little-endian bytes. x must fit in
// size bytes; callers only ever pass reduced field elements or scalars.
func intToLittleEndian(x *big.Int, size int) []byte {
	be := x.Bytes()
	out := make([]byte, size)
	for i, v := range be {
		out[len(be)-1-i] = v
	}
	return out
}
