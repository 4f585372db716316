// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keychain is the signing-capability boundary the wallet builders
// consult: it never exposes raw private keys, only Signer handles capable
// of producing a signature over caller-supplied bytes or hashes (spec.md
// §4.7 "KeyChain"). Grounded on the teacher's
// utils/crypto/keychain.Keychain/Signer interfaces, as consumed by
// wallet/chain/p/signer/visitor.go.
package keychain

import "github.com/chainkit/utxowallet/ids"

// Signer can produce a secp256k1 signature under a single key, without
// exposing that key's bytes to the caller.
type Signer interface {
	// Address is the short address derived from this signer's public key.
	Address() ids.Address
	// SignHash signs the given, already-hashed, message.
	SignHash(hash []byte) ([]byte, error)
	// Sign hashes and signs the given message.
	Sign(msg []byte) ([]byte, error)
}

// Keychain holds zero or more Signers, addressable by the short address
// they sign for. It backs the "owns its keys" shared resource of spec.md
// §5.
type Keychain interface {
	// Get returns the signer for addr, if this keychain holds it.
	Get(addr ids.Address) (Signer, bool)
	// Addresses lists every address this keychain can sign for.
	Addresses() []ids.Address
}
