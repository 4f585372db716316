// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txs implements the AVM's (X-chain's) typed transaction bodies:
// BaseTx, CreateAssetTx, OperationTx, ImportTx, ExportTx (spec.md §4.7's
// X-chain tx set).
package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/set"
	"github.com/chainkit/utxowallet/vms/components/avax"
)

var ErrNilTx = errors.New("tx is nil")

// UnsignedTx is the common surface every typed X-chain tx body
// implements, mirroring vms/platformvm/txs.UnsignedTx under this chain's
// own type-ID numbering.
type UnsignedTx interface {
	InputIDs() set.Set[ids.ID]
	Outputs() []*avax.TransferableOutput
	SyntacticVerify(networkID uint32) error
	Visit(visitor Visitor) error
}
