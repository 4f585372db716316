// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
)

var ErrEndTimeNotAfterStartTime = errors.New("end time not after start time")

// Validator is the staking schedule and weight shared by AddValidatorTx
// and AddDelegatorTx (spec.md §4.3 "AddValidatorTx / AddDelegatorTx").
type Validator struct {
	NodeID ids.NodeID `serialize:"true" json:"nodeID"`
	Start  uint64     `serialize:"true" json:"start"`
	End    uint64     `serialize:"true" json:"end"`
	Wght   uint64     `serialize:"true" json:"weight"`
}

func (v *Validator) StartTime() uint64 { return v.Start }
func (v *Validator) EndTime() uint64   { return v.End }
func (v *Validator) Weight() uint64    { return v.Wght }

func (v *Validator) Verify() error {
	if v.End <= v.Start {
		return ErrEndTimeNotAfterStartTime
	}
	return nil
}

// SubnetValidator validates a subnet rather than the primary network
// (spec.md glossary "Subnet").
type SubnetValidator struct {
	Validator `serialize:"true"`
	Subnet    ids.ID `serialize:"true" json:"subnetID"`
}

func (v *SubnetValidator) SubnetID() ids.ID {
	return v.Subnet
}
