// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

// Fx indices tag which feature extension a CreateAssetTx.InitialState's
// outputs are typed under (spec.md §4.7 "InitialStates"). This module
// only carries secp256k1fx and nftfx, so PropertyFx is out of scope and
// has no index here.
const (
	SECP256K1FxIndex = 0
	NFTFxIndex       = 1
)
