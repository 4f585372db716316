// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import "github.com/chainkit/utxowallet/config"

// Alias is the chain alias this builder stamps into formatted
// addresses ("P-avax1...").
const Alias = "P"

// Context is the fee table and AVAX asset ID this builder consults; the
// PlatformVM chain has no asset registry of its own beyond AVAX, so it
// reuses config.NetworkContext directly rather than wrapping it.
type Context = config.NetworkContext
