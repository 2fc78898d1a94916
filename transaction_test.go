// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package umi_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	umi "github.com/umi-top/umi-core-go"
	"github.com/umi-top/umi-core-go/fault"
)

func TestAllZeroTransactionHash(t *testing.T) {
	tx, err := umi.TransactionFromBytes(make([]byte, umi.TransactionLength))
	require.NoError(t, err)

	hash := tx.Hash()
	require.Equal(t, "1d83518b897b14e2943990eff655838246cc0207a7c95a5f3dfccc2e395f8bbf", hexString(hash[:]))
}

func hexString(b []byte) string {
	const digits = "0123456789abcdef"
	var sb strings.Builder
	for _, v := range b {
		sb.WriteByte(digits[v>>4])
		sb.WriteByte(digits[v&0xf])
	}
	return sb.String()
}

func TestTransactionSignAndVerify(t *testing.T) {
	sk, err := umi.SecretKeyFromSeed(make([]byte, 32))
	require.NoError(t, err)
	sender := umi.AddressFromSecretKey(sk)

	tx := umi.NewTransaction()
	require.NoError(t, tx.SetVersion(umi.Basic))
	require.NoError(t, tx.SetSender(sender))

	recipient := umi.NewAddress()
	require.NoError(t, tx.SetRecipient(recipient))
	require.NoError(t, tx.SetValue(100))
	require.NoError(t, tx.SetNonce(1))

	_, err = tx.Sign(sk)
	require.NoError(t, err)

	ok, err := tx.Verify()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTransactionVerifyFailsOnTamperedByte(t *testing.T) {
	sk, err := umi.SecretKeyFromSeed(make([]byte, 32))
	require.NoError(t, err)
	sender := umi.AddressFromSecretKey(sk)

	tx := umi.NewTransaction()
	require.NoError(t, tx.SetVersion(umi.Basic))
	require.NoError(t, tx.SetSender(sender))
	require.NoError(t, tx.SetRecipient(umi.NewAddress()))
	require.NoError(t, tx.SetValue(1))
	require.NoError(t, tx.SetNonce(0))
	_, err = tx.Sign(sk)
	require.NoError(t, err)

	raw := tx.Bytes()
	raw[10] ^= 0xff
	tampered, err := umi.TransactionFromBytes(raw)
	require.NoError(t, err)

	ok, err := tampered.Verify()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTransactionVersionCanOnlyBeSetOnce(t *testing.T) {
	tx := umi.NewTransaction()
	require.NoError(t, tx.SetVersion(umi.Basic))
	err := tx.SetVersion(umi.Basic)
	require.True(t, fault.IsErrFieldAlreadySet(err))
}

func TestTransactionFieldsRequireVersionFirst(t *testing.T) {
	tx := umi.NewTransaction()
	_, err := tx.Sender()
	require.True(t, fault.IsErrFieldNotSet(err))
}

func TestTransactionFromBytesMarksAllFieldsSet(t *testing.T) {
	tx, err := umi.TransactionFromBytes(make([]byte, umi.TransactionLength))
	require.NoError(t, err)

	_, err = tx.Version()
	require.NoError(t, err)
	_, err = tx.Sender()
	require.NoError(t, err)
}

func TestTransactionFromBytesRejectsIllegalFieldOnAccess(t *testing.T) {
	raw := make([]byte, umi.TransactionLength)
	raw[0] = byte(umi.CreateStructure)
	tx, err := umi.TransactionFromBytes(raw)
	require.NoError(t, err)

	_, err = tx.Recipient()
	require.True(t, fault.IsErrInvalidField(err))

	_, err = tx.Value()
	require.True(t, fault.IsErrInvalidField(err))
}

func TestTransactionRecipientGenesisRules(t *testing.T) {
	tx := umi.NewTransaction()
	require.NoError(t, tx.SetVersion(umi.Genesis))

	genesisAddress, err := umi.AddressFromBytes(make([]byte, umi.AddressLength))
	require.NoError(t, err)

	require.NoError(t, tx.SetRecipient(genesisAddress))

	nonGenesis := umi.NewAddress()
	tx2 := umi.NewTransaction()
	require.NoError(t, tx2.SetVersion(umi.Genesis))
	err = tx2.SetRecipient(nonGenesis)
	require.True(t, fault.IsErrInvalidRange(err))
}

func TestTransactionRecipientBasicAllowsUmi(t *testing.T) {
	tx := umi.NewTransaction()
	require.NoError(t, tx.SetVersion(umi.Basic))
	require.NoError(t, tx.SetRecipient(umi.NewAddress()))
}

func TestTransactionRecipientStructureAdminRejectsUmi(t *testing.T) {
	tx := umi.NewTransaction()
	require.NoError(t, tx.SetVersion(umi.UpdateProfitAddress))
	err := tx.SetRecipient(umi.NewAddress())
	require.True(t, fault.IsErrInvalidRange(err))
}

func TestTransactionNameBoundaries(t *testing.T) {
	tx := umi.NewTransaction()
	require.NoError(t, tx.SetVersion(umi.CreateStructure))

	require.NoError(t, tx.SetName(""))
	require.NoError(t, tx.SetName(strings.Repeat("a", 35)))
	err := tx.SetName(strings.Repeat("a", 36))
	require.True(t, fault.IsErrInvalidLength(err))
}

func TestTransactionProfitPercentBoundaries(t *testing.T) {
	tx := umi.NewTransaction()
	require.NoError(t, tx.SetVersion(umi.CreateStructure))

	require.True(t, fault.IsErrInvalidRange(tx.SetProfitPercent(99)))
	require.NoError(t, tx.SetProfitPercent(100))
	require.NoError(t, tx.SetProfitPercent(500))
	require.True(t, fault.IsErrInvalidRange(tx.SetProfitPercent(501)))
}

func TestTransactionFeePercentBoundaries(t *testing.T) {
	tx := umi.NewTransaction()
	require.NoError(t, tx.SetVersion(umi.CreateStructure))

	require.NoError(t, tx.SetFeePercent(0))
	require.NoError(t, tx.SetFeePercent(2000))
	require.True(t, fault.IsErrInvalidRange(tx.SetFeePercent(2001)))
}

func TestTransactionValueBoundaries(t *testing.T) {
	tx := umi.NewTransaction()
	require.NoError(t, tx.SetVersion(umi.Basic))

	require.True(t, fault.IsErrInvalidRange(tx.SetValue(0)))
	require.NoError(t, tx.SetValue(1))

	const maxSafe = 1<<53 - 1
	require.NoError(t, tx.SetValue(maxSafe))

	tx2 := umi.NewTransaction()
	require.NoError(t, tx2.SetVersion(umi.Basic))
	require.True(t, fault.IsErrInvalidRange(tx2.SetValue(maxSafe+1)))
}

func TestTransactionPrefixRoundTrip(t *testing.T) {
	tx := umi.NewTransaction()
	require.NoError(t, tx.SetVersion(umi.CreateStructure))
	require.NoError(t, tx.SetPrefix("abc"))

	prefix, err := tx.Prefix()
	require.NoError(t, err)
	require.Equal(t, "abc", prefix)
}

func TestTransactionBytesLength(t *testing.T) {
	tx := umi.NewTransaction()
	require.Len(t, tx.Bytes(), umi.TransactionLength)
}
