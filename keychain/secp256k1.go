// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/hashing"
)

// SignatureLen is the length, in bytes, of a recoverable secp256k1
// signature: 64 bytes of (r,s) plus a 1-byte recovery ID.
const SignatureLen = 65

var ErrInvalidSignatureLen = errors.New("invalid signature length")

// PrivateKey wraps a decred secp256k1 private key as a keychain.Signer,
// grounded on the teacher's utils/crypto/secp256k1.PrivateKey as consumed
// by wallet/chain/p/signer/visitor.go's sign().
type PrivateKey struct {
	key  *secp256k1.PrivateKey
	pub  []byte
	addr ids.Address
}

// NewPrivateKey wraps raw secp256k1 private-key bytes.
func NewPrivateKey(b []byte) (*PrivateKey, error) {
	key := secp256k1.PrivKeyFromBytes(b)
	pub := key.PubKey().SerializeCompressed()
	addr, err := ids.ToAddress(hashing.PubkeyBytesToAddress(pub))
	if err != nil {
		return nil, err
	}
	return &PrivateKey{key: key, pub: pub, addr: addr}, nil
}

// Bytes returns the raw private-key scalar.
func (k *PrivateKey) Bytes() []byte {
	return k.key.Serialize()
}

// PublicKeyBytes returns the compressed public key.
func (k *PrivateKey) PublicKeyBytes() []byte {
	return k.pub
}

func (k *PrivateKey) Address() ids.Address {
	return k.addr
}

func (k *PrivateKey) SignHash(hash []byte) ([]byte, error) {
	sig := ecdsa.SignCompact(k.key, hash, false)
	// decred's compact format is [recoveryID || r || s]; avalanchego's
	// wire format is [r || s || recoveryID]. Rotate it.
	recoveryID := sig[0]
	out := make([]byte, SignatureLen)
	copy(out, sig[1:])
	out[SignatureLen-1] = recoveryID - 27
	return out, nil
}

func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	return k.SignHash(hashing.ComputeHash256(msg))
}

// RecoverPublicKey recovers the compressed public key that produced sig
// over hash, used by callers validating a signature without the signer's
// key on hand.
func RecoverPublicKey(hash, sig []byte) ([]byte, error) {
	if len(sig) != SignatureLen {
		return nil, ErrInvalidSignatureLen
	}
	compact := make([]byte, SignatureLen)
	compact[0] = sig[SignatureLen-1] + 27
	copy(compact[1:], sig[:SignatureLen-1])

	pub, _, err := ecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, err
	}
	return pub.SerializeCompressed(), nil
}

// simpleKeychain is the in-memory Keychain implementation: a flat map of
// address to signer, the shape wallet/primary's combined wallet expects
// (spec.md §4.7 "KeyChain").
type simpleKeychain struct {
	keys map[ids.Address]*PrivateKey
}

// NewKeychain builds a Keychain holding exactly the given keys.
func NewKeychain(keys ...*PrivateKey) Keychain {
	kc := &simpleKeychain{keys: make(map[ids.Address]*PrivateKey, len(keys))}
	for _, k := range keys {
		kc.keys[k.Address()] = k
	}
	return kc
}

func (kc *simpleKeychain) Get(addr ids.Address) (Signer, bool) {
	k, ok := kc.keys[addr]
	return k, ok
}

func (kc *simpleKeychain) Addresses() []ids.Address {
	addrs := make([]ids.Address, 0, len(kc.keys))
	for addr := range kc.keys {
		addrs = append(addrs, addr)
	}
	return addrs
}
