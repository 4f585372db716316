// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

// TransferInput consumes a TransferOutput for Amt units (spec.md §4.2
// "TransferableInput").
type TransferInput struct {
	Amt uint64 `serialize:"true"`
	Input
}

func (in *TransferInput) Amount() uint64 {
	return in.Amt
}

func (in *TransferInput) Verify() error {
	if in.Amt == 0 {
		return ErrOutputUnspendable
	}
	return in.Input.Verify()
}
