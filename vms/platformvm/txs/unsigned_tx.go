// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txs implements the P-chain's typed transaction bodies: BaseTx,
// AddValidatorTx, AddDelegatorTx, AddSubnetValidatorTx, ImportTx,
// ExportTx (spec.md §4.3's PlatformVM tx set).
package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/set"
	"github.com/chainkit/utxowallet/vms/components/avax"
)

var ErrNilTx = errors.New("tx is nil")

// UnsignedTx is the common surface every typed P-chain tx body
// implements: the signer's digest source plus the fields its callers
// (builders, the AAD fee calculator) read generically.
type UnsignedTx interface {
	// InputIDs is the set of UTXO IDs this tx consumes.
	InputIDs() set.Set[ids.ID]
	// Outputs returns this tx's non-staked transferable outputs.
	Outputs() []*avax.TransferableOutput
	// SyntacticVerify checks this tx is well-formed for networkID.
	SyntacticVerify(networkID uint32) error
	// Visit dispatches to the concrete tx type on visitor.
	Visit(visitor Visitor) error
}
