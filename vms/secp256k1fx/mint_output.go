// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import "github.com/chainkit/utxowallet/utils/wrappers"

// MintOutput grants the right to mint more of an asset, rather than
// locking a spendable amount (spec.md §4.2 "MintOutput", consumed by
// CreateAssetTx's InitialStates and OperationTx's mint operations).
type MintOutput struct {
	OutputOwners
}

func (*MintOutput) TypeID() uint32 {
	return MintOutputTypeID
}

// Amount reports zero: a MintOutput grants a minting right rather than
// locking a spendable amount, so it never participates in coin
// selection's amount-bearing walk (spec.md §4.6 edge case "asset present
// but no amount-bearing variant"). The zero-value method only exists so
// MintOutput satisfies avax.TransferableOut and can live in a UTXOSet.
func (*MintOutput) Amount() uint64 {
	return 0
}

func (out *MintOutput) MarshalOutput() ([]byte, error) {
	p := wrappers.NewPacker(8 + 4 + 4 + 20*len(out.Addrs))
	p.PackLong(out.Locktime)
	p.PackInt(out.Threshold)
	p.PackInt(uint32(len(out.Addrs)))
	for _, addr := range out.Addrs {
		p.PackFixedBytes(addr.Bytes())
	}
	return p.Bytes, p.Err
}
