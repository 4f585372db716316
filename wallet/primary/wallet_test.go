// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package primary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainkit/utxowallet/config"
	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/keychain"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
	xbuilder "github.com/chainkit/utxowallet/wallet/chain/x/builder"
	"github.com/chainkit/utxowallet/wallet/common"
)

func testKey(t *testing.T, seed byte) *keychain.PrivateKey {
	raw := make([]byte, 32)
	raw[31] = seed
	key, err := keychain.NewPrivateKey(raw)
	require.NoError(t, err)
	return key
}

// A UTXO recorded under a chain's own (sourceChainID, destinationChainID)
// pair in the shared store is visible to that chain's ChainUTXOs view
// and not to the other chain's.
func TestChainUTXOsIsolatesByDestination(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	store := NewUTXOs()
	pChainID := ids.ID{}
	xChainID := ids.ID{7}

	addr := ids.Address{1}
	utxo := &avax.UTXO{
		UTXOID: avax.UTXOID{TxID: ids.ID{2}, OutputIndex: 0},
		Asset:  avax.Asset{ID: ids.ID{9}},
		Out: &secp256k1fx.TransferOutput{
			Amt:          1_000,
			OutputOwners: *secp256k1fx.NewOutputOwners([]ids.Address{addr}, 0, 1),
		},
	}
	require.NoError(store.AddUTXO(ctx, pChainID, pChainID, utxo))

	pView := NewChainUTXOs(pChainID, store)
	xView := NewChainUTXOs(xChainID, store)

	pSet, err := pView.UTXOs(ctx, pChainID)
	require.NoError(err)
	require.Len(pSet.GetAllUTXOs(), 1)

	xSet, err := xView.UTXOs(ctx, pChainID)
	require.NoError(err)
	require.Empty(xSet.GetAllUTXOs())
}

// NewWalletWithState wires one shared UTXOs store into both chain
// wallets, so a UTXO recorded for the P-chain is immediately spendable
// by a P-chain IssueBaseTx without any extra plumbing.
func TestNewWalletWithStateIssuesBaseTx(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	key := testKey(t, 1)
	kc := keychain.NewKeychain(key)
	addr := key.Address()

	avaxAssetID := ids.ID{9}
	netCtx := config.NewNetworkContext(1, avaxAssetID)
	pCtx := netCtx
	xCtx := xbuilder.NewContext(netCtx, ids.ID{3})

	store := NewUTXOs()
	utxo := &avax.UTXO{
		UTXOID: avax.UTXOID{TxID: ids.ID{4}, OutputIndex: 0},
		Asset:  avax.Asset{ID: avaxAssetID},
		Out: &secp256k1fx.TransferOutput{
			Amt:          10_000_000,
			OutputOwners: *secp256k1fx.NewOutputOwners([]ids.Address{addr}, 0, 1),
		},
	}
	require.NoError(store.AddUTXO(ctx, ids.ID{}, ids.ID{}, utxo))

	w := NewWalletWithState([]ids.Address{addr}, pCtx, xCtx, ids.ID{}, store, kc)

	out := &avax.TransferableOutput{
		Asset: avax.Asset{ID: avaxAssetID},
		Out: &secp256k1fx.TransferOutput{
			Amt:          1_000_000,
			OutputOwners: *secp256k1fx.NewOutputOwners([]ids.Address{addr}, 0, 1),
		},
	}

	tx, err := w.P().IssueBaseTx([]*avax.TransferableOutput{out}, common.WithMinIssuanceTime(1))
	require.NoError(err)
	require.NotNil(tx)
	require.Len(tx.Creds, 1)
}
