// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/set"
	"github.com/chainkit/utxowallet/vms/components/avax"
)

var (
	ErrOutputsNotSorted         = errors.New("outputs not sorted")
	ErrInputsNotSortedUnique    = errors.New("inputs not sorted and unique")
	ErrInputOverlapsWithMemoLen = errors.New("memo too large")
)

const MaxMemoSize = 256

// BaseTx is the metadata, inputs and outputs every P-chain tx embeds
// (spec.md §4.3 "BaseTx").
type BaseTx struct {
	NetworkID    uint32                 `serialize:"true" json:"networkID"`
	BlockchainID ids.ID                 `serialize:"true" json:"blockchainID"`
	Outs         []*avax.TransferableOutput `serialize:"true" json:"outputs"`
	Ins          []*avax.TransferableInput  `serialize:"true" json:"inputs"`
	Memo         []byte                 `serialize:"true" json:"memo"`

	SyntacticallyVerified bool
}

func (tx *BaseTx) InputIDs() set.Set[ids.ID] {
	inputIDs := make(set.Set[ids.ID], len(tx.Ins))
	for _, in := range tx.Ins {
		inputIDs.Add(in.InputID())
	}
	return inputIDs
}

func (tx *BaseTx) Outputs() []*avax.TransferableOutput {
	return tx.Outs
}

func (tx *BaseTx) SyntacticVerify(networkID uint32) error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.SyntacticallyVerified:
		return nil
	case tx.NetworkID != networkID:
		return errWrongNetworkID
	case len(tx.Memo) > MaxMemoSize:
		return ErrInputOverlapsWithMemoLen
	}
	for _, in := range tx.Ins {
		if in.In == nil {
			return ErrNilTx
		}
	}
	tx.SyntacticallyVerified = true
	return nil
}

func (tx *BaseTx) Visit(visitor Visitor) error {
	return visitor.BaseTx(tx)
}

var errWrongNetworkID = errors.New("wrong network ID")
