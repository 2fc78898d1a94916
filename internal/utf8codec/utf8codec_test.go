// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utf8codec_test

import (
	"bytes"
	"testing"

	"github.com/umi-top/umi-core-go/internal/utf8codec"
)

func TestEncodeASCII(t *testing.T) {
	got, err := utf8codec.Encode([]uint16{'h', 'i'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte("hi")) {
		t.Errorf("Encode(hi) = %x", got)
	}
}

func TestEncodeDecodeTwoByteSequence(t *testing.T) {
	// U+00E9 'é' encodes as 0xc3 0xa9 in UTF-8.
	got, err := utf8codec.Encode([]uint16{0x00e9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0xc3, 0xa9}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode(U+00E9) = %x, expected %x", got, want)
	}

	back, err := utf8codec.Decode(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(back) != 1 || back[0] != 0x00e9 {
		t.Errorf("Decode round trip = %v, expected [0x00e9]", back)
	}
}

func TestEncodeDecodeThreeByteSequence(t *testing.T) {
	// U+4E2D '中' encodes as 0xe4 0xb8 0xad in UTF-8.
	got, err := utf8codec.Encode([]uint16{0x4e2d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0xe4, 0xb8, 0xad}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode(U+4E2D) = %x, expected %x", got, want)
	}

	back, err := utf8codec.Decode(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(back) != 1 || back[0] != 0x4e2d {
		t.Errorf("Decode round trip = %v, expected [0x4e2d]", back)
	}
}

func TestEncodeDecodeSurrogatePair(t *testing.T) {
	// U+1F600 (grinning face emoji) is a supplementary-plane code point,
	// encoded as the surrogate pair 0xd83d 0xde00 and as the 4-byte UTF-8
	// sequence 0xf0 0x9f 0x98 0x80.
	units := []uint16{0xd83d, 0xde00}
	got, err := utf8codec.Encode(units)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0xf0, 0x9f, 0x98, 0x80}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode(surrogate pair) = %x, expected %x", got, want)
	}

	back, err := utf8codec.Decode(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(back) != 2 || back[0] != units[0] || back[1] != units[1] {
		t.Errorf("Decode round trip = %x, expected %x", back, units)
	}
}

func TestEncodeRejectsUnpairedHighSurrogate(t *testing.T) {
	if _, err := utf8codec.Encode([]uint16{0xd83d}); err == nil {
		t.Errorf("expected error for unpaired high surrogate")
	}
}

func TestEncodeRejectsLoneLowSurrogate(t *testing.T) {
	if _, err := utf8codec.Encode([]uint16{0xde00}); err == nil {
		t.Errorf("expected error for lone low surrogate")
	}
}

func TestDecodeRejectsTruncatedSequence(t *testing.T) {
	if _, err := utf8codec.Decode([]byte{0xe4, 0xb8}); err == nil {
		t.Errorf("expected error for truncated multi-byte sequence")
	}
}

func TestDecodeRejectsBadContinuationByte(t *testing.T) {
	if _, err := utf8codec.Decode([]byte{0xc3, 0x00}); err == nil {
		t.Errorf("expected error for invalid continuation byte")
	}
}

func TestEncodeStringDecodeStringRoundTrip(t *testing.T) {
	const original = "hello, 世界 \U0001F600"

	encoded := utf8codec.EncodeString(original)
	decoded, err := utf8codec.DecodeString(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != original {
		t.Errorf("round trip = %q, expected %q", decoded, original)
	}
}
