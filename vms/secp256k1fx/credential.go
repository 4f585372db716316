// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"github.com/chainkit/utxowallet/keychain"
)

// SignatureLen is the length, in bytes, of one recoverable secp256k1
// signature, re-exported here so credential code doesn't need to import
// keychain just for this constant.
const SignatureLen = keychain.SignatureLen

// Credential carries one recoverable signature per Input.SigIndices
// entry, in the same order, produced by the signing pipeline of spec.md
// §4.8.
type Credential struct {
	Sigs [][SignatureLen]byte `serialize:"true"`
}
