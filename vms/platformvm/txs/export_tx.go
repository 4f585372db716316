// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/vms/components/avax"
)

var ErrNoExportOutputs = errors.New("no exported outputs")

// ExportTx locks funds for DestinationChain to import via shared memory,
// keeping exported outputs separate from BaseTx's local-change outputs
// (spec.md §4.3 "ExportTx").
type ExportTx struct {
	BaseTx           `serialize:"true"`
	DestinationChain ids.ID                      `serialize:"true" json:"destinationChain"`
	ExportedOuts     []*avax.TransferableOutput `serialize:"true" json:"exportedOutputs"`
}

func (tx *ExportTx) SyntacticVerify(networkID uint32) error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.SyntacticallyVerified:
		return nil
	case len(tx.ExportedOuts) == 0:
		return ErrNoExportOutputs
	}
	if err := tx.BaseTx.SyntacticVerify(networkID); err != nil {
		return err
	}
	if !avax.IsSortedTransferableOutputs(tx.ExportedOuts) {
		return ErrStakeOutsNotSorted
	}
	tx.SyntacticallyVerified = true
	return nil
}

func (tx *ExportTx) Visit(visitor Visitor) error {
	return visitor.ExportTx(tx)
}
