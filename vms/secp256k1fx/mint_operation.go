// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import "errors"

var ErrWrongNumberOfCredentials = errors.New("wrong number of credentials")

// MintOperation consumes a MintOutput and produces a new MintOutput
// (retaining the minting right) plus a TransferOutput for the freshly
// minted amount — spec.md §4.3's operation-tx mint variant.
type MintOperation struct {
	MintInput  Input      `serialize:"true"`
	MintOutput MintOutput `serialize:"true"`
	TransferOutput TransferOutput `serialize:"true"`
}

func (op *MintOperation) Outs() []Output {
	return []Output{&op.MintOutput, &op.TransferOutput}
}

// Output is the minimal interface both MintOutput and TransferOutput
// satisfy, used by operations that produce a mix of the two.
type Output interface {
	Verify() error
}

func (op *MintOperation) Verify() error {
	if err := op.MintInput.Verify(); err != nil {
		return err
	}
	if err := op.MintOutput.Verify(); err != nil {
		return err
	}
	return op.TransferOutput.Verify()
}
