// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/keychain"
	"github.com/chainkit/utxowallet/utils/hashing"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

func testPrivateKey(t *testing.T, seed byte) *keychain.PrivateKey {
	raw := make([]byte, 32)
	raw[31] = seed
	key, err := keychain.NewPrivateKey(raw)
	require.NoError(t, err)
	return key
}

// Sign assembles one credential per signable input (BaseTx.Ins here;
// ImportTx additionally covers ImportedIns), each recoverable back to
// the signing key's address over the unsigned tx's digest.
func TestSign(t *testing.T) {
	require := require.New(t)

	key := testPrivateKey(t, 1)
	kc := keychain.NewKeychain(key)

	assetID := ids.ID{3}
	utxoID := avax.UTXOID{TxID: ids.ID{4}, OutputIndex: 0}
	utxo := &avax.UTXO{
		UTXOID: utxoID,
		Asset:  avax.Asset{ID: assetID},
		Out: &secp256k1fx.TransferOutput{
			Amt:          1_000,
			OutputOwners: *secp256k1fx.NewOutputOwners([]ids.Address{key.Address()}, 0, 1),
		},
	}
	utxoSet := avax.NewUTXOSet()
	utxoSet.Add(utxo, true)

	utx := &BaseTx{
		NetworkID:    1,
		BlockchainID: ids.ID{2},
		Ins: []*avax.TransferableInput{
			{
				UTXOID: utxoID,
				Asset:  avax.Asset{ID: assetID},
				In: &secp256k1fx.TransferInput{
					Amt:   1_000,
					Input: secp256k1fx.Input{SigIndices: []uint32{0}},
				},
			},
		},
	}

	tx, err := Sign(utx, utxoSet, kc)
	require.NoError(err)
	require.Len(tx.Creds, 1)

	unsignedBytes, err := tx.UnsignedBytes()
	require.NoError(err)
	digest := hashing.ComputeHash256(unsignedBytes)

	cred, ok := tx.Creds[0].(*secp256k1fx.Credential)
	require.True(ok)
	require.Len(cred.Sigs, 1)

	pub, err := keychain.RecoverPublicKey(digest, cred.Sigs[0][:])
	require.NoError(err)
	require.Equal(key.PublicKeyBytes(), pub)
}
