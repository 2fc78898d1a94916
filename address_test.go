// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package umi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umi-top/umi-core-go/fault"
	umi "github.com/umi-top/umi-core-go"
)

func TestNewAddressDefaultsToUmiVersion(t *testing.T) {
	a := umi.NewAddress()
	require.Equal(t, umi.UmiVersion, a.Version())
	require.True(t, a.IsUmi())
}

func TestAddressFromBytesRejectsWrongLength(t *testing.T) {
	_, err := umi.AddressFromBytes(make([]byte, 33))
	require.True(t, fault.IsErrInvalidLength(err))
}

func TestAddressFromPublicKeyZeroKey(t *testing.T) {
	pk, err := umi.PublicKeyFromBytes(make([]byte, umi.PublicKeySize))
	require.NoError(t, err)

	a := umi.AddressFromPublicKey(pk)
	got, err := a.Bech32()
	require.NoError(t, err)
	require.Equal(t, "umi1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqr5zcpj", got)
}

func TestAddressFromBytesGenesisZero(t *testing.T) {
	a, err := umi.AddressFromBytes(make([]byte, umi.AddressLength))
	require.NoError(t, err)
	require.True(t, a.IsGenesis())

	got, err := a.Bech32()
	require.NoError(t, err)
	require.Equal(t, "genesis1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqkxaddc", got)
}

func TestAddressBech32RoundTrip(t *testing.T) {
	input := "aaa1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq48c9jj"

	a, err := umi.AddressFromBech32(input)
	require.NoError(t, err)

	got, err := a.Bech32()
	require.NoError(t, err)
	require.Equal(t, input, got)
}

func TestAddressSetVersionMasksHighBit(t *testing.T) {
	a := umi.NewAddress()
	err := a.SetVersion(umi.UmiVersion | 0x8000)
	require.NoError(t, err)
	require.Equal(t, umi.UmiVersion, a.Version())
}

func TestAddressSetPrefixRoundTripsWithVersion(t *testing.T) {
	a := umi.NewAddress()
	require.NoError(t, a.SetPrefix("umi"))

	prefix, err := a.Prefix()
	require.NoError(t, err)
	require.Equal(t, "umi", prefix)
}

func TestAddressSetPublicKeyReadBack(t *testing.T) {
	a := umi.NewAddress()
	var raw [umi.PublicKeySize]byte
	for i := range raw {
		raw[i] = byte(i)
	}
	pk, err := umi.PublicKeyFromBytes(raw[:])
	require.NoError(t, err)

	a.SetPublicKey(pk)
	require.Equal(t, raw[:], a.PublicKey().Bytes())
}

func TestAddressBytesIsDefensiveCopy(t *testing.T) {
	a := umi.NewAddress()
	b := a.Bytes()
	b[0] = 0xff
	require.NotEqual(t, b[0], a.Bytes()[0])
}
