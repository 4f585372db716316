// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import "github.com/chainkit/utxowallet/utils/wrappers"

// TypeID tags for this fx's outputs/inputs/ops/credential, consulted by
// the AVM/PlatformVM codecs to pick a concrete type when unmarshaling a
// tagged union (spec.md §3 "typed union (tag + variant)").
const (
	TransferOutputTypeID uint32 = 7
	MintOutputTypeID     uint32 = 6
	TransferInputTypeID  uint32 = 5
	MintOperationTypeID  uint32 = 8
	CredentialTypeID     uint32 = 9
)

// TransferOutput locks Amt units of an asset to OutputOwners (spec.md
// §4.2 "TransferOutput").
type TransferOutput struct {
	Amt uint64 `serialize:"true"`
	OutputOwners
}

func (out *TransferOutput) Amount() uint64 {
	return out.Amt
}

// TypeID identifies this output's wire type, used both by the codec and
// by avax.SortTransferableOutputs' outputTypeID‖bytes sort key.
func (*TransferOutput) TypeID() uint32 {
	return TransferOutputTypeID
}

// MarshalOutput produces the canonical byte form of this output, used as
// the tie-breaker half of the outputTypeID‖bytes sort key.
func (out *TransferOutput) MarshalOutput() ([]byte, error) {
	p := wrappers.NewPacker(8 + 8 + 4 + 4 + 20*len(out.Addrs))
	p.PackLong(out.Amt)
	p.PackLong(out.Locktime)
	p.PackInt(out.Threshold)
	p.PackInt(uint32(len(out.Addrs)))
	for _, addr := range out.Addrs {
		p.PackFixedBytes(addr.Bytes())
	}
	return p.Bytes, p.Err
}

// Verify checks Amt is non-zero in addition to the embedded owners check.
func (out *TransferOutput) Verify() error {
	if out.Amt == 0 {
		return ErrOutputUnspendable
	}
	return out.OutputOwners.Verify()
}
