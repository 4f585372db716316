// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainkit/utxowallet/config"
	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/units"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
	"github.com/chainkit/utxowallet/wallet/common"
)

type fakeBackend struct {
	sets map[ids.ID]*avax.UTXOSet
}

func (b *fakeBackend) UTXOs(_ context.Context, chainID ids.ID) (*avax.UTXOSet, error) {
	if s, ok := b.sets[chainID]; ok {
		return s, nil
	}
	return avax.NewUTXOSet(), nil
}

func testOwners(addr ids.Address) *secp256k1fx.OutputOwners {
	return secp256k1fx.NewOutputOwners([]ids.Address{addr}, 0, 1)
}

func testUTXO(txIDSeed byte, assetID ids.ID, amt uint64, addr ids.Address) *avax.UTXO {
	return &avax.UTXO{
		UTXOID: avax.UTXOID{TxID: ids.ID{txIDSeed}, OutputIndex: 0},
		Asset:  avax.Asset{ID: assetID},
		Out:    &secp256k1fx.TransferOutput{Amt: amt, OutputOwners: *testOwners(addr)},
	}
}

func newTestContext() (*Context, ids.ID) {
	netCtx := config.NewNetworkContext(1, ids.ID{9})
	blockchainID := ids.ID{3}
	return NewContext(netCtx, blockchainID), blockchainID
}

func TestNewBaseTxStampsLocalBlockchainID(t *testing.T) {
	require := require.New(t)

	ctx, blockchainID := newTestContext()
	avaxAssetID := ctx.AVAXAssetID
	addr := ids.Address{1}

	set := avax.NewUTXOSet()
	set.Add(testUTXO(2, avaxAssetID, 5_000_000, addr), true)
	backend := &fakeBackend{sets: map[ids.ID]*avax.UTXOSet{blockchainID: set}}
	b := New([]ids.Address{addr}, ctx, backend)

	out := &avax.TransferableOutput{
		Asset: avax.Asset{ID: avaxAssetID},
		Out:   &secp256k1fx.TransferOutput{Amt: 1_000_000, OutputOwners: *testOwners(addr)},
	}

	tx, err := b.NewBaseTx([]*avax.TransferableOutput{out}, common.WithMinIssuanceTime(1))
	require.NoError(err)
	require.Equal(blockchainID, tx.BlockchainID)
	require.Len(tx.Ins, 1)
}

func TestNewBaseTxInsufficientFunds(t *testing.T) {
	require := require.New(t)

	ctx, _ := newTestContext()
	avaxAssetID := ctx.AVAXAssetID
	addr := ids.Address{1}

	set := avax.NewUTXOSet()
	set.Add(testUTXO(2, avaxAssetID, 10, addr), true)
	backend := &fakeBackend{sets: map[ids.ID]*avax.UTXOSet{ctx.BlockchainID: set}}
	b := New([]ids.Address{addr}, ctx, backend)

	out := &avax.TransferableOutput{
		Asset: avax.Asset{ID: avaxAssetID},
		Out:   &secp256k1fx.TransferOutput{Amt: units.Avax, OutputOwners: *testOwners(addr)},
	}

	_, err := b.NewBaseTx([]*avax.TransferableOutput{out}, common.WithMinIssuanceTime(1))
	require.ErrorIs(err, avax.ErrInsufficientFunds)
}

// NewImportTx draws from sourceChainID's UTXO set, which for an X-chain
// builder may be the P-chain's zero ID, not the builder's own
// BlockchainID.
func TestNewImportTxSpendsSourceChainUTXOs(t *testing.T) {
	require := require.New(t)

	ctx, _ := newTestContext()
	avaxAssetID := ctx.AVAXAssetID
	addr := ids.Address{1}
	sourceChainID := ids.ID{}

	sourceSet := avax.NewUTXOSet()
	sourceSet.Add(testUTXO(7, avaxAssetID, 3_000_000, addr), true)
	backend := &fakeBackend{sets: map[ids.ID]*avax.UTXOSet{sourceChainID: sourceSet}}
	b := New([]ids.Address{addr}, ctx, backend)

	tx, err := b.NewImportTx(sourceChainID, testOwners(addr), common.WithMinIssuanceTime(1))
	require.NoError(err)
	require.Equal(sourceChainID, tx.SourceChain)
	require.Len(tx.ImportedIns, 1)
}

func TestNewExportTxCarriesDestinationChain(t *testing.T) {
	require := require.New(t)

	ctx, _ := newTestContext()
	avaxAssetID := ctx.AVAXAssetID
	addr := ids.Address{1}
	destChainID := ids.ID{}

	set := avax.NewUTXOSet()
	set.Add(testUTXO(2, avaxAssetID, 2_000_000, addr), true)
	backend := &fakeBackend{sets: map[ids.ID]*avax.UTXOSet{ctx.BlockchainID: set}}
	b := New([]ids.Address{addr}, ctx, backend)

	out := &avax.TransferableOutput{
		Asset: avax.Asset{ID: avaxAssetID},
		Out:   &secp256k1fx.TransferOutput{Amt: 500_000, OutputOwners: *testOwners(addr)},
	}

	tx, err := b.NewExportTx(destChainID, []*avax.TransferableOutput{out}, common.WithMinIssuanceTime(1))
	require.NoError(err)
	require.Equal(destChainID, tx.DestinationChain)
	require.Len(tx.ExportedOuts, 1)
}

func TestNewBaseTxNoChangeAddress(t *testing.T) {
	require := require.New(t)

	ctx, _ := newTestContext()
	backend := &fakeBackend{sets: map[ids.ID]*avax.UTXOSet{}}
	b := New(nil, ctx, backend)

	_, err := b.NewBaseTx(nil, common.WithMinIssuanceTime(1))
	require.ErrorIs(err, ErrNoChangeAddress)
}
