// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package umi implements the client-side address and transaction core of
// the UMI network: fixed-layout binary records, their Bech32 string form,
// and Ed25519 signing/verification, all built from scratch on top of the
// internal/ primitives rather than platform crypto libraries.
package umi

import (
	"github.com/umi-top/umi-core-go/fault"
	"github.com/umi-top/umi-core-go/internal/ed25519core"
	"github.com/umi-top/umi-core-go/internal/sha256core"
)

// PublicKeySize is the length in bytes of a PublicKey.
const PublicKeySize = ed25519core.PublicKeySize

// SecretKeySize is the length in bytes of a SecretKey.
const SecretKeySize = ed25519core.SecretKeySize

// SignatureSize is the length in bytes of an Ed25519 signature.
const SignatureSize = ed25519core.SignatureSize

// maxSeedLength bounds the arbitrary-length seed accepted by
// SecretKeyFromSeed before it is normalized through SHA-256.
const maxSeedLength = 128

// PublicKey is a 32-byte Ed25519 public key.
type PublicKey struct {
	bytes [PublicKeySize]byte
}

// PublicKeyFromBytes builds a PublicKey from a 32-byte buffer.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return PublicKey{}, fault.ErrInvalidPublicKeyLength
	}
	var pk PublicKey
	copy(pk.bytes[:], b)
	return pk, nil
}

// Bytes returns a defensive copy of the public key's 32 bytes.
func (pk PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, pk.bytes[:])
	return out
}

// VerifySignature reports whether signature is a valid Ed25519 signature
// over message under this public key.
func (pk PublicKey) VerifySignature(signature []byte, message []byte) (bool, error) {
	if len(signature) != SignatureSize {
		return false, fault.ErrInvalidSignatureLength
	}
	var sig [SignatureSize]byte
	copy(sig[:], signature)
	return ed25519core.Verify(sig, message, pk.bytes), nil
}

// SecretKey is the 64-byte combined Ed25519 secret key: a 32-byte seed
// followed by the 32-byte public key it derives.
type SecretKey struct {
	bytes [SecretKeySize]byte
}

// SecretKeyFromBytes builds a SecretKey from its 64-byte combined form.
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	if len(b) != SecretKeySize {
		return SecretKey{}, fault.ErrInvalidSecretKeyLength
	}
	var sk SecretKey
	copy(sk.bytes[:], b)
	return sk, nil
}

// SecretKeyFromSeed derives a SecretKey from a caller-supplied seed. A
// 32-byte seed is used directly; any other length up to 128 bytes is
// normalized to 32 bytes via SHA-256 first.
func SecretKeyFromSeed(seed []byte) (SecretKey, error) {
	if len(seed) > maxSeedLength {
		return SecretKey{}, fault.ErrInvalidSeedLength
	}

	var normalized [32]byte
	if len(seed) == 32 {
		copy(normalized[:], seed)
	} else {
		normalized = sha256core.Sum(seed)
	}

	secret, _ := ed25519core.KeypairFromSeed(normalized)
	return SecretKey{bytes: secret}, nil
}

// Bytes returns a defensive copy of the secret key's 64 bytes.
func (sk SecretKey) Bytes() []byte {
	out := make([]byte, SecretKeySize)
	copy(out, sk.bytes[:])
	return out
}

// PublicKey returns the public key half of this secret key.
func (sk SecretKey) PublicKey() PublicKey {
	var pk PublicKey
	pk.bytes = ed25519core.PublicFromSecret(sk.bytes)
	return pk
}

// Sign produces a detached 64-byte Ed25519 signature over message.
func (sk SecretKey) Sign(message []byte) []byte {
	signature := ed25519core.Sign(message, sk.bytes)
	return signature[:]
}
