// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519core

import (
	"math/big"
	"testing"
)

func TestScalarMultByZeroIsIdentity(t *testing.T) {
	result := scalarMult(big.NewInt(0), basePoint)
	if !pointEqual(result, pointIdentity) {
		t.Errorf("scalarMult(0, B) != identity")
	}
}

func TestScalarMultByOneIsBasePoint(t *testing.T) {
	result := scalarMult(big.NewInt(1), basePoint)
	if !pointEqual(result, basePoint) {
		t.Errorf("scalarMult(1, B) != B")
	}
}

func TestScalarMultDistributesOverAddition(t *testing.T) {
	two := scalarMult(big.NewInt(2), basePoint)
	doubled := pointAdd(basePoint, basePoint)
	if !pointEqual(two, doubled) {
		t.Errorf("scalarMult(2, B) != B+B")
	}

	five := scalarMult(big.NewInt(5), basePoint)
	twoPlusThree := pointAdd(scalarMult(big.NewInt(2), basePoint), scalarMult(big.NewInt(3), basePoint))
	if !pointEqual(five, twoPlusThree) {
		t.Errorf("scalarMult(5, B) != scalarMult(2,B)+scalarMult(3,B)")
	}
}

func TestPointAddWithIdentityIsNoop(t *testing.T) {
	sum := pointAdd(basePoint, pointIdentity)
	if !pointEqual(sum, basePoint) {
		t.Errorf("B + identity != B")
	}
}

func TestScalarMultByGroupOrderIsIdentity(t *testing.T) {
	result := scalarMult(groupOrder, basePoint)
	if !pointEqual(result, pointIdentity) {
		t.Errorf("scalarMult(L, B) != identity, got x=%s y=%s", result.x.String(), result.y.String())
	}
}

func TestEncodeDecodeRoundTripsForMultiples(t *testing.T) {
	for k := int64(0); k < 8; k++ {
		p := scalarMult(big.NewInt(k), basePoint)
		encoded := encodePoint(p)
		decoded, ok := decodePoint(encoded)
		if k == 0 {
			// encodePoint of the identity (x=0) still round-trips: x's
			// parity bit is 0, and recoverX(y=1, sign=0) must yield x=0.
			if !ok {
				t.Fatalf("decodePoint rejected the identity encoding")
			}
		}
		if !ok {
			t.Fatalf("decodePoint rejected encodePoint(%d*B)", k)
		}
		if !pointEqual(decoded, p) {
			t.Errorf("round trip mismatch for %d*B", k)
		}
	}
}
