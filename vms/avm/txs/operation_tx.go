// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/set"
)

var (
	ErrNoOperations        = errors.New("no operations")
	ErrOperationsNotSorted = errors.New("operations not sorted")
)

// OperationTx applies a batch of TransferableOperations (NFT mint or
// transfer) alongside an ordinary BaseTx body (spec.md §4.7
// "OperationTx").
type OperationTx struct {
	BaseTx `serialize:"true"`
	Ops    []*TransferableOperation `serialize:"true" json:"operations"`
}

func (tx *OperationTx) InputIDs() set.Set[ids.ID] {
	inputIDs := tx.BaseTx.InputIDs()
	for _, op := range tx.Ops {
		for _, u := range op.UTXOIDs {
			inputIDs.Add(u.InputID())
		}
	}
	return inputIDs
}

func (tx *OperationTx) SyntacticVerify(networkID uint32) error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.SyntacticallyVerified:
		return nil
	case len(tx.Ops) == 0:
		return ErrNoOperations
	}
	if err := tx.BaseTx.SyntacticVerify(networkID); err != nil {
		return err
	}
	if !IsSortedOperations(tx.Ops) {
		return ErrOperationsNotSorted
	}
	for _, o := range tx.Ops {
		if err := o.Verify(); err != nil {
			return err
		}
	}
	tx.SyntacticallyVerified = true
	return nil
}

func (tx *OperationTx) Visit(visitor Visitor) error {
	return visitor.OperationTx(tx)
}
