// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/set"
	"github.com/chainkit/utxowallet/vms/components/avax"
)

var ErrNoImportInputs = errors.New("no imported inputs")

// ImportTx moves funds from SourceChain's shared-memory atomic UTXOs
// onto the X-chain, spending ImportedIns in addition to (or instead of)
// BaseTx.Ins; fees may be paid from either (spec.md §4.7 "ImportTx").
type ImportTx struct {
	BaseTx      `serialize:"true"`
	SourceChain ids.ID                    `serialize:"true" json:"sourceChain"`
	ImportedIns []*avax.TransferableInput `serialize:"true" json:"importedInputs"`
}

func (tx *ImportTx) InputIDs() set.Set[ids.ID] {
	inputIDs := tx.BaseTx.InputIDs()
	for _, in := range tx.ImportedIns {
		inputIDs.Add(in.InputID())
	}
	return inputIDs
}

func (tx *ImportTx) SyntacticVerify(networkID uint32) error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.SyntacticallyVerified:
		return nil
	case len(tx.ImportedIns) == 0:
		return ErrNoImportInputs
	}
	if err := tx.BaseTx.SyntacticVerify(networkID); err != nil {
		return err
	}
	for _, in := range tx.ImportedIns {
		if in.In == nil {
			return ErrNilTx
		}
	}
	tx.SyntacticallyVerified = true
	return nil
}

func (tx *ImportTx) Visit(visitor Visitor) error {
	return visitor.ImportTx(tx)
}
