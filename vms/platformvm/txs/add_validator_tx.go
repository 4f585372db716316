// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/config"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

var (
	ErrStakeTooSmall      = errors.New("stake amount too small")
	ErrStakeOutsNotSorted = errors.New("stake outputs not sorted")
	ErrTooManyShares      = errors.New("delegation shares exceed maximum")
	ErrStakeOutsEmpty     = errors.New("no stake outputs")
)

// AddValidatorTx adds a validator to the primary network, staking
// StakeOuts' total amount for [Start, End) and offering delegators
// DelegationShares/1_000_000 of the rewards it earns (spec.md §4.3
// "AddValidatorTx / AddDelegatorTx").
type AddValidatorTx struct {
	BaseTx           `serialize:"true"`
	Validator        `serialize:"true" json:"validator"`
	StakeOuts        []*avax.TransferableOutput `serialize:"true" json:"stake"`
	RewardsOwner     *secp256k1fx.OutputOwners  `serialize:"true" json:"rewardsOwner"`
	DelegationShares uint32                     `serialize:"true" json:"shares"`
}

func (tx *AddValidatorTx) StakeAmount() uint64 {
	var total uint64
	for _, out := range tx.StakeOuts {
		total += out.Out.Amount()
	}
	return total
}

func (tx *AddValidatorTx) SyntacticVerify(networkID uint32) error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.SyntacticallyVerified:
		return nil
	case len(tx.StakeOuts) == 0:
		return ErrStakeOutsEmpty
	case tx.DelegationShares > config.MaxDelegationFee:
		return ErrTooManyShares
	case tx.StakeAmount() < config.MinStake:
		return ErrStakeTooSmall
	}
	if err := tx.BaseTx.SyntacticVerify(networkID); err != nil {
		return err
	}
	if err := tx.Validator.Verify(); err != nil {
		return err
	}
	if err := tx.RewardsOwner.Verify(); err != nil {
		return err
	}
	if !avax.IsSortedTransferableOutputs(tx.StakeOuts) {
		return ErrStakeOutsNotSorted
	}
	tx.SyntacticallyVerified = true
	return nil
}

func (tx *AddValidatorTx) Visit(visitor Visitor) error {
	return visitor.AddValidatorTx(tx)
}
