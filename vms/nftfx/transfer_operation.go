// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import (
	"errors"

	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

var errNilTransferOperation = errors.New("nil transfer operation")

// TransferOperation consumes a TransferOutput's spending right and
// reissues the NFT to a (possibly different) owner set.
type TransferOperation struct {
	Input  secp256k1fx.Input `serialize:"true"`
	Output TransferOutput    `serialize:"true"`
}

func (op *TransferOperation) Outs() []secp256k1fx.Output {
	return []secp256k1fx.Output{&op.Output}
}

func (op *TransferOperation) Verify() error {
	if op == nil {
		return errNilTransferOperation
	}
	if err := op.Input.Verify(); err != nil {
		return err
	}
	return op.Output.Verify()
}
