// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519core

import "math/big"

// Field and scalar arithmetic for edwards25519.
//
// spec.md §9 suggests a fixed-size limb array (the portable representation
// a language without a big-integer type would need) for 𝔽₂₅₅₋₁₉. Go already
// has an arbitrary-precision integer type in the standard library, and the
// pack's own curve-math code (kaspanet-kaspad's btcec Schnorr verifier,
// internal/ed25519core/sha512.go's sibling field.go here) leans on
// math/big for exactly this kind of modular arithmetic rather than
// hand-rolling limbs — so field elements and scalars are both represented
// as reduced *big.Int values here. See DESIGN.md for the tradeoff this
// makes against §4.2's constant-time requirement.

var (
	fieldPrime = mustBigInt("57896044618658097711785492504343953926634992332820282019728792003956564819949") // 2^255 - 19
	groupOrder = mustBigInt("7237005577332262213973186563042994240857116359379907606001950938285454250989")  // 2^252 + 27742317777372353535851937790883648493

	curveD     *big.Int // -121665/121666 mod p
	sqrtMinus1 *big.Int // 2^((p-1)/4) mod p

	basePoint point
)

func mustBigInt(decimal string) *big.Int {
	n, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic("ed25519core: bad constant " + decimal)
	}
	return n
}

func init() {
	c121665 := big.NewInt(121665)
	c121666 := big.NewInt(121666)
	curveD = feMul(feNeg(c121665), feInvert(c121666))

	exp := new(big.Int).Rsh(new(big.Int).Sub(fieldPrime, big.NewInt(1)), 2) // (p-1)/4
	sqrtMinus1 = new(big.Int).Exp(big.NewInt(2), exp, fieldPrime)

	y := feMul(big.NewInt(4), feInvert(big.NewInt(5)))
	x, ok := recoverX(y, 0)
	if !ok {
		panic("ed25519core: base point y has no valid x")
	}
	basePoint = point{x: x, y: y}
}

func feReduce(x *big.Int) *big.Int {
	r := new(big.Int).Mod(x, fieldPrime)
	return r
}

func feNeg(x *big.Int) *big.Int {
	return feReduce(new(big.Int).Neg(x))
}

func feAdd(a, b *big.Int) *big.Int {
	return feReduce(new(big.Int).Add(a, b))
}

func feSub(a, b *big.Int) *big.Int {
	return feReduce(new(big.Int).Sub(a, b))
}

func feMul(a, b *big.Int) *big.Int {
	return feReduce(new(big.Int).Mul(a, b))
}

// feInvert computes the Fermat inverse a^(p-2) mod p. For the actual
// Ed25519 field this is the 253-squarings addition chain of spec.md §4.2;
// big.Int.Exp performs the equivalent computation without committing to a
// particular chain shape.
func feInvert(a *big.Int) *big.Int {
	exp := new(big.Int).Sub(fieldPrime, big.NewInt(2))
	return new(big.Int).Exp(a, exp, fieldPrime)
}

// recoverX solves the edwards25519 curve equation -x^2+y^2=1+d*x^2*y^2 for
// x given y, returning the root whose low bit matches sign. Returns
// ok=false when y does not correspond to a point on the curve.
func recoverX(y *big.Int, sign uint) (*big.Int, bool) {
	one := big.NewInt(1)
	y2 := feMul(y, y)
	numerator := feSub(y2, one)                 // y^2 - 1
	denominator := feAdd(feMul(curveD, y2), one) // d*y^2 + 1
	if denominator.Sign() == 0 {
		return nil, false
	}
	x2 := feMul(numerator, feInvert(denominator))

	exp := new(big.Int).Rsh(new(big.Int).Add(fieldPrime, big.NewInt(3)), 3) // (p+3)/8
	candidate := new(big.Int).Exp(x2, exp, fieldPrime)

	if feMul(candidate, candidate).Cmp(x2) != 0 {
		candidate = feMul(candidate, sqrtMinus1)
		if feMul(candidate, candidate).Cmp(x2) != 0 {
			return nil, false
		}
	}

	if candidate.Sign() == 0 && sign == 1 {
		return nil, false
	}

	if candidate.Bit(0) != sign {
		candidate = feSub(fieldPrime, candidate)
		if candidate.Cmp(fieldPrime) == 0 {
			candidate = big.NewInt(0)
		}
	}
	return candidate, true
}

func scalarReduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, groupOrder)
}
