// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ed25519core

// sha512Sum is a from-scratch FIPS 180-4 SHA-512. RFC 8032 defines Ed25519
// in terms of SHA-512, which is a distinct primitive from the public
// SHA-256 hash component (internal/sha256core) used for the transaction
// fingerprint and seed normalization — it exists only as scratch plumbing
// inside signing/verification and is not exported.

const sha512BlockSize = 128

var sha512Initial = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var sha512RoundConstants = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

func rotr64(x uint64, n uint) uint64 {
	return x>>n | x<<(64-n)
}

func sha512Pad(message []byte) []byte {
	bitLength := uint64(len(message)) * 8

	padded := make([]byte, len(message), len(message)+sha512BlockSize+16)
	copy(padded, message)
	padded = append(padded, 0x80)
	for len(padded)%sha512BlockSize != sha512BlockSize-16 {
		padded = append(padded, 0x00)
	}
	// 128-bit big-endian length; the high 64 bits are always zero for any
	// message this library can construct (150-byte transactions, 64-byte
	// signing inputs).
	for i := 0; i < 8; i++ {
		padded = append(padded, 0x00)
	}
	for i := 56; i >= 0; i -= 8 {
		padded = append(padded, byte(bitLength>>uint(i)))
	}
	return padded
}

// sha512Sum computes the SHA-512 digest of an arbitrary-length byte sequence.
func sha512Sum(message []byte) [64]byte {
	padded := sha512Pad(message)

	h := sha512Initial

	var w [80]uint64
	for block := 0; block < len(padded); block += sha512BlockSize {
		chunk := padded[block : block+sha512BlockSize]

		for i := 0; i < 16; i++ {
			j := i * 8
			w[i] = uint64(chunk[j])<<56 | uint64(chunk[j+1])<<48 | uint64(chunk[j+2])<<40 | uint64(chunk[j+3])<<32 |
				uint64(chunk[j+4])<<24 | uint64(chunk[j+5])<<16 | uint64(chunk[j+6])<<8 | uint64(chunk[j+7])
		}
		for i := 16; i < 80; i++ {
			s0 := rotr64(w[i-15], 1) ^ rotr64(w[i-15], 8) ^ w[i-15]>>7
			s1 := rotr64(w[i-2], 19) ^ rotr64(w[i-2], 61) ^ w[i-2]>>6
			w[i] = w[i-16] + s0 + w[i-7] + s1
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

		for i := 0; i < 80; i++ {
			s1 := rotr64(e, 14) ^ rotr64(e, 18) ^ rotr64(e, 41)
			ch := (e & f) ^ (^e & g)
			temp1 := hh + s1 + ch + sha512RoundConstants[i] + w[i]
			s0 := rotr64(a, 28) ^ rotr64(a, 34) ^ rotr64(a, 39)
			maj := (a & b) ^ (a & c) ^ (b & c)
			temp2 := s0 + maj

			hh = g
			g = f
			f = e
			e = d + temp1
			d = c
			c = b
			b = a
			a = temp1 + temp2
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh
	}

	var digest [64]byte
	for i, word := range h {
		digest[i*8] = byte(word >> 56)
		digest[i*8+1] = byte(word >> 48)
		digest[i*8+2] = byte(word >> 40)
		digest[i*8+3] = byte(word >> 32)
		digest[i*8+4] = byte(word >> 24)
		digest[i*8+5] = byte(word >> 16)
		digest[i*8+6] = byte(word >> 8)
		digest[i*8+7] = byte(word)
	}
	return digest
}
