// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/config"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

var errAddPrimaryNetworkValidator = errors.New("can't add primary network validator with AddSubnetValidatorTx")

// AddSubnetValidatorTx adds a validator to a Subnet rather than the
// primary network: same Validator schedule, weight(u64) in place of a
// staked amount, plus a SubnetAuth proving control of the Subnet's owner
// set (spec.md §4.3 "AddSubnetValidatorTx").
type AddSubnetValidatorTx struct {
	BaseTx          `serialize:"true"`
	SubnetValidator `serialize:"true" json:"validator"`
	SubnetAuth      secp256k1fx.Input `serialize:"true" json:"subnetAuthorization"`
}

func (tx *AddSubnetValidatorTx) SyntacticVerify(networkID uint32) error {
	switch {
	case tx == nil:
		return ErrNilTx
	case tx.SyntacticallyVerified:
		return nil
	case tx.Subnet == config.PrimaryNetworkID:
		return errAddPrimaryNetworkValidator
	}
	if err := tx.BaseTx.SyntacticVerify(networkID); err != nil {
		return err
	}
	if err := tx.Validator.Verify(); err != nil {
		return err
	}
	if err := tx.SubnetAuth.Verify(); err != nil {
		return err
	}
	tx.SyntacticallyVerified = true
	return nil
}

func (tx *AddSubnetValidatorTx) Visit(visitor Visitor) error {
	return visitor.AddSubnetValidatorTx(tx)
}
