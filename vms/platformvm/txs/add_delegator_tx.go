// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/chainkit/utxowallet/config"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

// AddDelegatorTx delegates stake to an existing validator: same shape as
// AddValidatorTx minus the DelegationShares field (spec.md §4.3
// "AddValidatorTx / AddDelegatorTx").
type AddDelegatorTx struct {
	BaseTx                 `serialize:"true"`
	Validator               `serialize:"true" json:"validator"`
	StakeOuts              []*avax.TransferableOutput `serialize:"true" json:"stake"`
	DelegationRewardsOwner *secp256k1fx.OutputOwners  `serialize:"true" json:"rewardsOwner"`
}

func (tx *AddDelegatorTx) StakeAmount() uint64 {
	var total uint64
	for _, out := range tx.StakeOuts {
		total += out.Out.Amount()
	}
	return total
}

func (tx *AddDelegatorTx) SyntacticVerify(networkID uint32) error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.SyntacticallyVerified:
		return nil
	case len(tx.StakeOuts) == 0:
		return ErrStakeOutsEmpty
	case tx.StakeAmount() < config.MinStake:
		return ErrStakeTooSmall
	}
	if err := tx.BaseTx.SyntacticVerify(networkID); err != nil {
		return err
	}
	if err := tx.Validator.Verify(); err != nil {
		return err
	}
	if err := tx.DelegationRewardsOwner.Verify(); err != nil {
		return err
	}
	if !avax.IsSortedTransferableOutputs(tx.StakeOuts) {
		return ErrStakeOutsNotSorted
	}
	tx.SyntacticallyVerified = true
	return nil
}

func (tx *AddDelegatorTx) Visit(visitor Visitor) error {
	return visitor.AddDelegatorTx(tx)
}
