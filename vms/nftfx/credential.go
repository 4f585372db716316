// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import "github.com/chainkit/utxowallet/vms/secp256k1fx"

// Credential is identical in shape to secp256k1fx.Credential; nftfx
// keeps its own type so the codec can dispatch on TypeID.
type Credential struct {
	Sigs [][secp256k1fx.SignatureLen]byte `serialize:"true"`
}
