// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

func testBaseTx() *BaseTx {
	addr := ids.Address{1}
	return &BaseTx{
		NetworkID:    5,
		BlockchainID: ids.ID{2},
		Outs: []*avax.TransferableOutput{
			{
				Asset: avax.Asset{ID: ids.ID{3}},
				Out: &secp256k1fx.TransferOutput{
					Amt:          1_000,
					OutputOwners: *secp256k1fx.NewOutputOwners([]ids.Address{addr}, 0, 1),
				},
			},
		},
		Ins: []*avax.TransferableInput{
			{
				UTXOID: avax.UTXOID{TxID: ids.ID{4}, OutputIndex: 0},
				Asset:  avax.Asset{ID: ids.ID{3}},
				In: &secp256k1fx.TransferInput{
					Amt:   1_000,
					Input: secp256k1fx.Input{SigIndices: []uint32{0}},
				},
			},
		},
		Memo: []byte("hi"),
	}
}

func TestMarshalUnmarshalBaseTx(t *testing.T) {
	require := require.New(t)

	tx := testBaseTx()
	b, err := Marshal(tx)
	require.NoError(err)

	parsed, err := Unmarshal(b)
	require.NoError(err)

	got, ok := parsed.(*BaseTx)
	require.True(ok)
	require.Equal(tx.NetworkID, got.NetworkID)
	require.Equal(tx.BlockchainID, got.BlockchainID)
	require.Equal(tx.Memo, got.Memo)
	require.Len(got.Outs, 1)
	require.Equal(uint64(1_000), got.Outs[0].Amount())
	require.Len(got.Ins, 1)
	require.Equal(uint64(1_000), got.Ins[0].Amount())
}

func TestMarshalUnmarshalExportTx(t *testing.T) {
	require := require.New(t)

	addr := ids.Address{7}
	tx := &ExportTx{
		BaseTx:           *testBaseTx(),
		DestinationChain: ids.ID{6},
		ExportedOuts: []*avax.TransferableOutput{
			{
				Asset: avax.Asset{ID: ids.ID{3}},
				Out: &secp256k1fx.TransferOutput{
					Amt:          500,
					OutputOwners: *secp256k1fx.NewOutputOwners([]ids.Address{addr}, 0, 1),
				},
			},
		},
	}

	b, err := Marshal(tx)
	require.NoError(err)

	parsed, err := Unmarshal(b)
	require.NoError(err)

	got, ok := parsed.(*ExportTx)
	require.True(ok)
	require.Equal(tx.DestinationChain, got.DestinationChain)
	require.Len(got.ExportedOuts, 1)
	require.Equal(uint64(500), got.ExportedOuts[0].Amount())
}

func TestMarshalUnmarshalAddValidatorTx(t *testing.T) {
	require := require.New(t)

	addr := ids.Address{7}
	tx := &AddValidatorTx{
		BaseTx: *testBaseTx(),
		Validator: Validator{
			NodeID: ids.NodeIDFromAddress(addr),
			Start:  100,
			End:    200,
			Wght:   2_000,
		},
		StakeOuts: []*avax.TransferableOutput{
			{
				Asset: avax.Asset{ID: ids.ID{3}},
				Out: &secp256k1fx.TransferOutput{
					Amt:          2_000,
					OutputOwners: *secp256k1fx.NewOutputOwners([]ids.Address{addr}, 0, 1),
				},
			},
		},
		RewardsOwner:     secp256k1fx.NewOutputOwners([]ids.Address{addr}, 0, 1),
		DelegationShares: 20_000,
	}

	b, err := Marshal(tx)
	require.NoError(err)

	parsed, err := Unmarshal(b)
	require.NoError(err)

	got, ok := parsed.(*AddValidatorTx)
	require.True(ok)
	require.Equal(tx.Validator, got.Validator)
	require.Equal(tx.DelegationShares, got.DelegationShares)
	require.Len(got.StakeOuts, 1)
	require.Equal(uint64(2_000), got.StakeOuts[0].Amount())
}

func TestUnmarshalUnknownTypeID(t *testing.T) {
	_, err := Unmarshal([]byte{0, 0, 0, 0, 0xff, 0xff, 0xff, 0xff})
	require.ErrorIs(t, err, ErrUnknownTypeID)
}
