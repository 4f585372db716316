// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/hashing"
)

func newTestPrivateKey(t *testing.T, last byte) *PrivateKey {
	raw := make([]byte, 32)
	raw[31] = last
	key, err := NewPrivateKey(raw)
	require.NoError(t, err)
	return key
}

// A message's Sign output, when hashed and handed to RecoverPublicKey,
// yields exactly the signer's own public key bytes.
func TestPrivateKeySignRecoversOwnPublicKey(t *testing.T) {
	key := newTestPrivateKey(t, 5)
	msg := []byte("transfer 10 AVAX to alice")

	sig, err := key.Sign(msg)
	require.NoError(t, err)
	require.Len(t, sig, SignatureLen)

	recovered, err := RecoverPublicKey(hashing.ComputeHash256(msg), sig)
	require.NoError(t, err)
	require.Equal(t, key.PublicKeyBytes(), recovered)
}

// SignHash over a caller-supplied digest (bypassing Sign's own hashing
// step) recovers the same way, and a different key's signature recovers
// to a different public key.
func TestPrivateKeySignHashDistinctKeysRecoverDistinctly(t *testing.T) {
	hash := hashing.ComputeHash256([]byte("a fixed 32-byte payload to hash"))

	keyA := newTestPrivateKey(t, 1)
	keyB := newTestPrivateKey(t, 2)

	sigA, err := keyA.SignHash(hash)
	require.NoError(t, err)
	sigB, err := keyB.SignHash(hash)
	require.NoError(t, err)
	require.NotEqual(t, sigA, sigB)

	recoveredA, err := RecoverPublicKey(hash, sigA)
	require.NoError(t, err)
	require.Equal(t, keyA.PublicKeyBytes(), recoveredA)
	require.NotEqual(t, keyB.PublicKeyBytes(), recoveredA)
}

func TestRecoverPublicKeyRejectsShortSignature(t *testing.T) {
	hash := hashing.ComputeHash256([]byte("x"))
	_, err := RecoverPublicKey(hash, make([]byte, SignatureLen-1))
	require.ErrorIs(t, err, ErrInvalidSignatureLen)
}

// Address is derived once at construction and never changes across
// repeated calls, independent of any signing activity.
func TestPrivateKeyAddressIsStable(t *testing.T) {
	key := newTestPrivateKey(t, 9)
	addr := key.Address()

	_, err := key.Sign([]byte("unrelated"))
	require.NoError(t, err)

	require.Equal(t, addr, key.Address())
}

func TestNewKeychainGetAndAddresses(t *testing.T) {
	keyA := newTestPrivateKey(t, 1)
	keyB := newTestPrivateKey(t, 2)
	kc := NewKeychain(keyA, keyB)

	signer, ok := kc.Get(keyA.Address())
	require.True(t, ok)
	require.Equal(t, keyA.Address(), signer.Address())

	stranger := newTestPrivateKey(t, 3)
	_, ok = kc.Get(stranger.Address())
	require.False(t, ok)

	addrs := kc.Addresses()
	require.ElementsMatch(t, []ids.Address{keyA.Address(), keyB.Address()}, addrs)
}
