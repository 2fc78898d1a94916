// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ed25519core is a from-scratch implementation of Ed25519 signing
// and verification as specified by RFC 8032's SHA-512 variant. Field and
// scalar arithmetic live in field.go/point.go; this file wires them into
// the key derivation, signing, and verification operations.
package ed25519core

import "math/big"

// SeedSize is the length in bytes of an Ed25519 seed.
const SeedSize = 32

// PublicKeySize is the length in bytes of an Ed25519 public key.
const PublicKeySize = 32

// SecretKeySize is the length in bytes of a secret key: the 32-byte seed
// followed by the 32-byte public key it derives, matching the convention
// used throughout the rest of this library.
const SecretKeySize = 64

// SignatureSize is the length in bytes of an Ed25519 signature.
const SignatureSize = 64

// clamp applies the RFC 8032 bit-twiddle to the first half of a SHA-512
// digest to derive the secret scalar: clear the low 3 bits (cofactor), clear
// the top bit, and set the second-highest bit.
func clamp(h []byte) *big.Int {
	b := make([]byte, 32)
	copy(b, h[:32])
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
	return littleEndianToInt(b)
}

// PublicFromSeed derives the 32-byte public key for a 32-byte seed.
func PublicFromSeed(seed [SeedSize]byte) [PublicKeySize]byte {
	h := sha512Sum(seed[:])
	a := clamp(h[:32])
	publicPoint := scalarMult(a, basePoint)
	return encodePoint(publicPoint)
}

// KeypairFromSeed deterministically derives a secret/public key pair from
// a 32-byte seed. The secret key is the seed concatenated with the public
// key it derives.
func KeypairFromSeed(seed [SeedSize]byte) (secret [SecretKeySize]byte, public [PublicKeySize]byte) {
	public = PublicFromSeed(seed)
	copy(secret[:32], seed[:])
	copy(secret[32:], public[:])
	return secret, public
}

// PublicFromSecret extracts the public key half of a secret key.
func PublicFromSecret(secret [SecretKeySize]byte) [PublicKeySize]byte {
	var public [PublicKeySize]byte
	copy(public[:], secret[32:])
	return public
}

// Sign produces a detached Ed25519 signature over message using secret.
func Sign(message []byte, secret [SecretKeySize]byte) [SignatureSize]byte {
	var seed [SeedSize]byte
	copy(seed[:], secret[:32])
	public := secret[32:]

	h := sha512Sum(seed[:])
	a := clamp(h[:32])
	prefix := h[32:64]

	rHash := sha512Sum(append(append([]byte{}, prefix...), message...))
	r := scalarReduce(littleEndianToInt(rHash[:]))

	rPoint := scalarMult(r, basePoint)
	rEncoded := encodePoint(rPoint)

	kInput := append(append([]byte{}, rEncoded[:]...), public...)
	kInput = append(kInput, message...)
	kHash := sha512Sum(kInput)
	k := scalarReduce(littleEndianToInt(kHash[:]))

	s := scalarReduce(new(big.Int).Add(r, new(big.Int).Mul(k, a)))

	var signature [SignatureSize]byte
	copy(signature[:32], rEncoded[:])
	copy(signature[32:], intToLittleEndian(s, 32))
	return signature
}

// Verify reports whether signature is a valid Ed25519 signature over
// message for public. It returns false (never an error) for any malformed
// input, matching spec.md's surfacing of signature validity as a boolean.
func Verify(signature [SignatureSize]byte, message []byte, public [PublicKeySize]byte) bool {
	var rEncoded [32]byte
	copy(rEncoded[:], signature[:32])
	rPoint, ok := decodePoint(rEncoded)
	if !ok {
		return false
	}

	aPoint, ok := decodePoint(public)
	if !ok {
		return false
	}

	s := littleEndianToInt(signature[32:])
	if s.Cmp(groupOrder) >= 0 {
		return false
	}

	kInput := append(append([]byte{}, rEncoded[:]...), public[:]...)
	kInput = append(kInput, message...)
	kHash := sha512Sum(kInput)
	k := scalarReduce(littleEndianToInt(kHash[:]))

	left := scalarMult(s, basePoint)
	right := pointAdd(rPoint, scalarMult(k, aPoint))

	leftEncoded := encodePoint(left)
	rightEncoded := encodePoint(right)
	return constantTimeEqual(leftEncoded[:], rightEncoded[:])
}

// constantTimeEqual compares two equal-length byte slices without
// branching on the comparison result, per spec.md's requirement that the
// final acceptance check in Verify not leak timing information about where
// a mismatch occurs.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
