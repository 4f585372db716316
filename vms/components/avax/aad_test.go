// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

func newTestUTXO(txID ids.ID, index uint32, assetID ids.ID, amt uint64, addr ids.Address) *UTXO {
	return &UTXO{
		UTXOID: UTXOID{TxID: txID, OutputIndex: index},
		Asset:  Asset{ID: assetID},
		Out: &secp256k1fx.TransferOutput{
			Amt:          amt,
			OutputOwners: *secp256k1fx.NewOutputOwners([]ids.Address{addr}, 0, 1),
		},
	}
}

// A UTXO worth more than both the amount and burn targets must return
// the excess as change rather than over-burning it — this is the
// change-vs-burn accounting GetMinimumSpendable's SpendAmount applies.
func TestGetMinimumSpendableReturnsChange(t *testing.T) {
	require := require.New(t)

	assetID := ids.ID{1}
	addr := ids.Address{2}
	utxoSet := NewUTXOSet()
	utxoSet.Add(newTestUTXO(ids.ID{3}, 0, assetID, 1_000, addr), true)

	aad := NewAssetAmountDestination([]ids.Address{addr}, []ids.Address{addr}, []ids.Address{addr})
	aad.AddAssetAmount(assetID, 600, 100)

	err := GetMinimumSpendable(aad, utxoSet, 1, 0, 1)
	require.NoError(err)

	require.Len(aad.Inputs, 1)
	require.Equal(uint64(1_000), aad.Inputs[0].Amount())

	require.Len(aad.Outputs, 1)
	require.Equal(uint64(300), aad.Outputs[0].Amount())
	require.Equal(assetID, aad.Outputs[0].AssetID())
}

// When the targets are met exactly, no change output is produced.
func TestGetMinimumSpendableNoChangeWhenExact(t *testing.T) {
	require := require.New(t)

	assetID := ids.ID{1}
	addr := ids.Address{2}
	utxoSet := NewUTXOSet()
	utxoSet.Add(newTestUTXO(ids.ID{3}, 0, assetID, 700, addr), true)

	aad := NewAssetAmountDestination([]ids.Address{addr}, []ids.Address{addr}, []ids.Address{addr})
	aad.AddAssetAmount(assetID, 600, 100)

	err := GetMinimumSpendable(aad, utxoSet, 1, 0, 1)
	require.NoError(err)
	require.Empty(aad.Outputs)
}

// Exhausting every UTXO without meeting a target reports
// ErrInsufficientFunds.
func TestGetMinimumSpendableInsufficientFunds(t *testing.T) {
	require := require.New(t)

	assetID := ids.ID{1}
	addr := ids.Address{2}
	utxoSet := NewUTXOSet()
	utxoSet.Add(newTestUTXO(ids.ID{3}, 0, assetID, 100, addr), true)

	aad := NewAssetAmountDestination([]ids.Address{addr}, []ids.Address{addr}, []ids.Address{addr})
	aad.AddAssetAmount(assetID, 600, 100)

	err := GetMinimumSpendable(aad, utxoSet, 1, 0, 1)
	require.ErrorIs(err, ErrInsufficientFunds)
}

// A UTXO locked until after asOf cannot be spent.
func TestGetMinimumSpendableSkipsLockedUTXO(t *testing.T) {
	require := require.New(t)

	assetID := ids.ID{1}
	addr := ids.Address{2}
	utxoSet := NewUTXOSet()
	locked := newTestUTXO(ids.ID{3}, 0, assetID, 1_000, addr)
	locked.Out.(*secp256k1fx.TransferOutput).Locktime = 100
	utxoSet.Add(locked, true)

	aad := NewAssetAmountDestination([]ids.Address{addr}, []ids.Address{addr}, []ids.Address{addr})
	aad.AddAssetAmount(assetID, 600, 100)

	err := GetMinimumSpendable(aad, utxoSet, 0, 0, 1)
	require.ErrorIs(err, ErrInsufficientFunds)
}

// S2 boundary: a UTXO with no locktime (0) is still locked when asOf
// is exactly 0, not just when asOf < locktime — spending requires asOf
// to strictly exceed locktime, even at the zero/zero boundary
// (spec.md §4.2 "meetsThreshold([Y], asOf=0) = false (locked when
// asOf ≤ locktime)", scenario S2).
func TestGetMinimumSpendableLockedWhenAsOfEqualsLocktime(t *testing.T) {
	require := require.New(t)

	assetID := ids.ID{1}
	addr := ids.Address{2}
	utxoSet := NewUTXOSet()
	utxoSet.Add(newTestUTXO(ids.ID{3}, 0, assetID, 1_000, addr), true)

	aad := NewAssetAmountDestination([]ids.Address{addr}, []ids.Address{addr}, []ids.Address{addr})
	aad.AddAssetAmount(assetID, 600, 100)

	err := GetMinimumSpendable(aad, utxoSet, 0, 0, 1)
	require.ErrorIs(err, ErrInsufficientFunds)
}
