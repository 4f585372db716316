// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"github.com/chainkit/utxowallet/config"
	"github.com/chainkit/utxowallet/ids"
)

const Alias = "X"

// Context pairs the network-wide fee table with the X-chain's own
// BlockchainID, which every X-chain tx body carries (unlike the
// P-chain, which has no separate chain identity of its own in this
// module's scope).
type Context struct {
	*config.NetworkContext
	BlockchainID ids.ID
}

// NewContext pairs networkCtx with the X-chain's own blockchainID.
func NewContext(networkCtx *config.NetworkContext, blockchainID ids.ID) *Context {
	return &Context{NetworkContext: networkCtx, BlockchainID: blockchainID}
}
