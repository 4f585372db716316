// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import "github.com/chainkit/utxowallet/vms/secp256k1fx"

// MintOperation consumes a MintOutput and produces one TransferOutput per
// entry in Outputs, each carrying GroupID and Payload. Outs does not
// include a replacement MintOutput.
type MintOperation struct {
	MintInput  secp256k1fx.Input `serialize:"true"`
	GroupID    uint32            `serialize:"true"`
	Payload    []byte            `serialize:"true"`
	Outputs    []*secp256k1fx.OutputOwners `serialize:"true"`
}

func (op *MintOperation) Outs() []secp256k1fx.Output {
	outs := make([]secp256k1fx.Output, len(op.Outputs))
	for i, owners := range op.Outputs {
		outs[i] = &TransferOutput{
			GroupID:      op.GroupID,
			Payload:      op.Payload,
			OutputOwners: *owners,
		}
	}
	return outs
}

func (op *MintOperation) Verify() error {
	if len(op.Payload) > MaxPayloadSize {
		return errPayloadTooLarge
	}
	return op.MintInput.Verify()
}
