// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/config"
	"github.com/chainkit/utxowallet/vms/components/avax"
)

var (
	ErrNameTooLong          = errors.New("asset name too long")
	ErrSymbolTooLong        = errors.New("asset symbol too long")
	ErrSymbolNotASCII       = errors.New("asset symbol contains non-ASCII characters")
	ErrDenominationTooLarge = errors.New("denomination exceeds 32")
	ErrNoInitialStates      = errors.New("no initial states")
)

const MaxDenomination = 32

// InitialState is one feature-extension's initial set of outputs for a
// newly created asset: FxIndex names which fx (0 = secp256k1fx, 1 =
// nftfx in this module's scope) Outs are typed under (spec.md §4.7
// "InitialStates (tagged list of feature-type -> outputs)").
type InitialState struct {
	FxIndex uint32
	Outs    []avax.TransferableOut
}

// CreateAssetTx issues a new fungible or non-fungible asset: BaseTx body
// plus the asset's display metadata and its InitialStates (spec.md §4.7
// "CreateAssetTx").
type CreateAssetTx struct {
	BaseTx        `serialize:"true"`
	Name          string          `serialize:"true" json:"name"`
	Symbol        string          `serialize:"true" json:"symbol"`
	Denomination  byte            `serialize:"true" json:"denomination"`
	States        []*InitialState `serialize:"true" json:"initialStates"`
}

func (tx *CreateAssetTx) SyntacticVerify(networkID uint32) error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.SyntacticallyVerified:
		return nil
	case len(tx.Name) > config.AssetNameLen:
		return ErrNameTooLong
	case len(tx.Symbol) > config.SymbolMaxLen:
		return ErrSymbolTooLong
	case tx.Denomination > MaxDenomination:
		return ErrDenominationTooLarge
	case len(tx.States) == 0:
		return ErrNoInitialStates
	}
	for _, r := range tx.Symbol {
		if r > 0x7F {
			return ErrSymbolNotASCII
		}
	}
	if err := tx.BaseTx.SyntacticVerify(networkID); err != nil {
		return err
	}
	tx.SyntacticallyVerified = true
	return nil
}

func (tx *CreateAssetTx) Visit(visitor Visitor) error {
	return visitor.CreateAssetTx(tx)
}
