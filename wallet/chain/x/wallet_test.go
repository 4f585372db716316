// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package x

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainkit/utxowallet/config"
	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/keychain"
	"github.com/chainkit/utxowallet/vms/avm/txs"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
	"github.com/chainkit/utxowallet/wallet/chain/x/builder"
	"github.com/chainkit/utxowallet/wallet/common"
)

func testKey(t *testing.T, seed byte) *keychain.PrivateKey {
	raw := make([]byte, 32)
	raw[31] = seed
	key, err := keychain.NewPrivateKey(raw)
	require.NoError(t, err)
	return key
}

func TestBackendUTXOsEmptyForUnknownChain(t *testing.T) {
	require := require.New(t)
	b := NewBackend()

	set, err := b.UTXOs(context.Background(), ids.ID{7})
	require.NoError(err)
	require.Empty(set.GetAllUTXOs())
}

func TestBackendAddAndRemoveUTXO(t *testing.T) {
	require := require.New(t)
	b := NewBackend()
	chainID := ids.ID{3}

	utxo := &avax.UTXO{
		UTXOID: avax.UTXOID{TxID: ids.ID{1}, OutputIndex: 0},
		Asset:  avax.Asset{ID: ids.ID{9}},
		Out:    &secp256k1fx.TransferOutput{Amt: 1_000, OutputOwners: secp256k1fx.OutputOwners{Threshold: 1, Addrs: []ids.Address{{1}}}},
	}
	b.AddUTXO(chainID, utxo)

	set, err := b.UTXOs(context.Background(), chainID)
	require.NoError(err)
	require.Len(set.GetAllUTXOs(), 1)

	b.RemoveUTXO(chainID, utxo.InputID())
	set, err = b.UTXOs(context.Background(), chainID)
	require.NoError(err)
	require.Empty(set.GetAllUTXOs())
}

// Mirrors the P-chain regression test: the X-chain wallet's local set is
// keyed by its own BlockchainID, a third chain ID distinct from both the
// P-chain's zero ID and the import's sourceChainID, so this also proves
// finish doesn't special-case the zero ID.
func TestIssueImportTxSignsAgainstSourceChainUTXOs(t *testing.T) {
	require := require.New(t)

	key := testKey(t, 1)
	kc := keychain.NewKeychain(key)
	addr := key.Address()
	owners := *secp256k1fx.NewOutputOwners([]ids.Address{addr}, 0, 1)

	avaxAssetID := ids.ID{9}
	netCtx := config.NewNetworkContext(1, avaxAssetID)
	localChainID := ids.ID{5}
	sourceChainID := ids.ID{3}

	backend := NewBackend()
	backend.AddUTXO(localChainID, &avax.UTXO{
		UTXOID: avax.UTXOID{TxID: ids.ID{1}, OutputIndex: 0},
		Asset:  avax.Asset{ID: avaxAssetID},
		Out:    &secp256k1fx.TransferOutput{Amt: 1_000_000, OutputOwners: owners},
	})
	backend.AddUTXO(sourceChainID, &avax.UTXO{
		UTXOID: avax.UTXOID{TxID: ids.ID{2}, OutputIndex: 0},
		Asset:  avax.Asset{ID: avaxAssetID},
		Out:    &secp256k1fx.TransferOutput{Amt: 5_000_000, OutputOwners: owners},
	})

	ctx := builder.NewContext(netCtx, localChainID)
	b := builder.New([]ids.Address{addr}, ctx, backend)
	w := NewWallet(b, backend, kc)

	tx, err := w.IssueImportTx(sourceChainID, &owners, common.WithMinIssuanceTime(1))
	require.NoError(err)
	require.NotNil(tx)

	imp, ok := tx.Unsigned.(*txs.ImportTx)
	require.True(ok)
	require.NotEmpty(imp.ImportedIns)
	require.Len(tx.Creds, len(imp.Ins)+len(imp.ImportedIns))
}
