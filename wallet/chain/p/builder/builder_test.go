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
	"github.com/chainkit/utxowallet/vms/platformvm/txs"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
	"github.com/chainkit/utxowallet/wallet/common"
)

// fakeBackend serves a fixed UTXO set regardless of which chain ID is
// asked for, letting a single test wire up both the local and a
// "foreign" source-chain view without a real UTXO store.
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

func newTestBuilder(t *testing.T, utxos ...*avax.UTXO) (*Builder, *fakeBackend, ids.Address) {
	addr := ids.Address{1}
	netCtx := config.NewNetworkContext(1, ids.ID{9})

	set := avax.NewUTXOSet()
	set.AddArray(utxos)
	backend := &fakeBackend{sets: map[ids.ID]*avax.UTXOSet{ids.ID{}: set}}

	b := New([]ids.Address{addr}, netCtx, backend)
	return b, backend, addr
}

// NewBaseTx burns exactly BaseTxFee plus the requested output amount,
// returning the remainder as a single change output back to the sender.
func TestNewBaseTxProducesChange(t *testing.T) {
	require := require.New(t)

	avaxAssetID := ids.ID{9}
	addr := ids.Address{1}
	b, _, _ := newTestBuilder(t, testUTXO(2, avaxAssetID, 10_000_000, addr))

	out := &avax.TransferableOutput{
		Asset: avax.Asset{ID: avaxAssetID},
		Out:   &secp256k1fx.TransferOutput{Amt: 1_000_000, OutputOwners: *testOwners(addr)},
	}

	tx, err := b.NewBaseTx([]*avax.TransferableOutput{out}, common.WithMinIssuanceTime(1))
	require.NoError(err)
	require.Len(tx.Ins, 1)

	var total uint64
	for _, o := range tx.Outs {
		total += o.Out.Amount()
	}
	require.Equal(uint64(10_000_000-units.MilliAvax), total)
}

func TestNewBaseTxInsufficientFunds(t *testing.T) {
	require := require.New(t)

	avaxAssetID := ids.ID{9}
	addr := ids.Address{1}
	b, _, _ := newTestBuilder(t, testUTXO(2, avaxAssetID, 100, addr))

	out := &avax.TransferableOutput{
		Asset: avax.Asset{ID: avaxAssetID},
		Out:   &secp256k1fx.TransferOutput{Amt: 1_000_000, OutputOwners: *testOwners(addr)},
	}

	_, err := b.NewBaseTx([]*avax.TransferableOutput{out}, common.WithMinIssuanceTime(1))
	require.ErrorIs(err, avax.ErrInsufficientFunds)
}

// S5: a validator whose Start is not strictly after the options'
// issuance time is rejected before any coin selection happens.
func TestNewAddValidatorTxRejectsStartNotInFuture(t *testing.T) {
	require := require.New(t)

	avaxAssetID := ids.ID{9}
	addr := ids.Address{1}
	b, _, _ := newTestBuilder(t, testUTXO(2, avaxAssetID, 3_000*units.Avax, addr))

	now := uint64(1_000)
	vdr := &txs.Validator{
		NodeID: ids.NodeID{5},
		Start:  now - 1,
		End:    now + 1_209_600,
		Wght:   config.MinStake,
	}

	_, err := b.NewAddValidatorTx(vdr, testOwners(addr), 0, common.WithMinIssuanceTime(now))
	require.ErrorIs(err, ErrValidatorNotYetStarted)
}

func TestNewAddValidatorTxAcceptsStartStrictlyAfterNow(t *testing.T) {
	require := require.New(t)

	avaxAssetID := ids.ID{9}
	addr := ids.Address{1}
	b, _, _ := newTestBuilder(t, testUTXO(2, avaxAssetID, 3_000*units.Avax, addr))

	now := uint64(1_000)
	vdr := &txs.Validator{
		NodeID: ids.NodeID{5},
		Start:  now + 60,
		End:    now + 60 + 1_209_600,
		Wght:   config.MinStake,
	}

	tx, err := b.NewAddValidatorTx(vdr, testOwners(addr), 20_000, common.WithMinIssuanceTime(now))
	require.NoError(err)
	require.Len(tx.StakeOuts, 1)

	var staked uint64
	for _, o := range tx.StakeOuts {
		staked += o.Out.Amount()
	}
	require.Equal(config.MinStake, staked)
}

// The same start-time gate applies to AddDelegatorTx.
func TestNewAddDelegatorTxRejectsStartNotInFuture(t *testing.T) {
	require := require.New(t)

	avaxAssetID := ids.ID{9}
	addr := ids.Address{1}
	b, _, _ := newTestBuilder(t, testUTXO(2, avaxAssetID, 3_000*units.Avax, addr))

	now := uint64(500)
	vdr := &txs.Validator{NodeID: ids.NodeID{5}, Start: now, End: now + 100, Wght: config.MinStake}

	_, err := b.NewAddDelegatorTx(vdr, testOwners(addr), common.WithMinIssuanceTime(now))
	require.ErrorIs(err, ErrValidatorNotYetStarted)
}

// AddSubnetValidatorTx's embedded Validator.Start is governed by the
// same rule, since SubnetValidator carries a real start/end schedule
// too.
func TestNewAddSubnetValidatorTxRejectsStartNotInFuture(t *testing.T) {
	require := require.New(t)

	avaxAssetID := ids.ID{9}
	addr := ids.Address{1}
	b, _, _ := newTestBuilder(t, testUTXO(2, avaxAssetID, units.Avax, addr))

	now := uint64(200)
	sv := &txs.SubnetValidator{
		Validator: txs.Validator{NodeID: ids.NodeID{5}, Start: now - 1, End: now + 100, Wght: 1},
		Subnet:    ids.ID{6},
	}

	_, err := b.NewAddSubnetValidatorTx(sv, &secp256k1fx.Input{}, common.WithMinIssuanceTime(now))
	require.ErrorIs(err, ErrValidatorNotYetStarted)
}

// NewImportTx pulls funds from the source chain's UTXO set (named by the
// call's sourceChainID argument), not the local chain's.
func TestNewImportTxSpendsSourceChainUTXOs(t *testing.T) {
	require := require.New(t)

	avaxAssetID := ids.ID{9}
	addr := ids.Address{1}
	sourceChainID := ids.ID{3}

	netCtx := config.NewNetworkContext(1, avaxAssetID)
	sourceSet := avax.NewUTXOSet()
	sourceSet.Add(testUTXO(7, avaxAssetID, 5_000_000, addr), true)
	backend := &fakeBackend{sets: map[ids.ID]*avax.UTXOSet{sourceChainID: sourceSet}}

	b := New([]ids.Address{addr}, netCtx, backend)

	tx, err := b.NewImportTx(sourceChainID, testOwners(addr), common.WithMinIssuanceTime(1))
	require.NoError(err)
	require.Equal(sourceChainID, tx.SourceChain)
	require.Len(tx.ImportedIns, 1)
}

func TestNewImportTxNoSpendableSourceUTXOs(t *testing.T) {
	require := require.New(t)

	addr := ids.Address{1}
	netCtx := config.NewNetworkContext(1, ids.ID{9})
	backend := &fakeBackend{sets: map[ids.ID]*avax.UTXOSet{}}
	b := New([]ids.Address{addr}, netCtx, backend)

	_, err := b.NewImportTx(ids.ID{3}, testOwners(addr), common.WithMinIssuanceTime(1))
	require.ErrorIs(err, avax.ErrInsufficientFunds)
}

func TestNewExportTxBurnsFeeFromLocalUTXOs(t *testing.T) {
	require := require.New(t)

	avaxAssetID := ids.ID{9}
	addr := ids.Address{1}
	b, _, _ := newTestBuilder(t, testUTXO(2, avaxAssetID, 2_000_000, addr))

	out := &avax.TransferableOutput{
		Asset: avax.Asset{ID: avaxAssetID},
		Out:   &secp256k1fx.TransferOutput{Amt: 500_000, OutputOwners: *testOwners(addr)},
	}

	tx, err := b.NewExportTx(ids.ID{4}, []*avax.TransferableOutput{out}, common.WithMinIssuanceTime(1))
	require.NoError(err)
	require.Equal(ids.ID{4}, tx.DestinationChain)
	require.Len(tx.ExportedOuts, 1)
	require.Len(tx.Ins, 1)
}

func TestNewBaseTxNoChangeAddress(t *testing.T) {
	require := require.New(t)

	netCtx := config.NewNetworkContext(1, ids.ID{9})
	backend := &fakeBackend{sets: map[ids.ID]*avax.UTXOSet{}}
	b := New(nil, netCtx, backend)

	_, err := b.NewBaseTx(nil, common.WithMinIssuanceTime(1))
	require.ErrorIs(err, ErrNoChangeAddress)
}
