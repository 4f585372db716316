// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import (
	"github.com/chainkit/utxowallet/utils/wrappers"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

// MintOutput grants the right to mint NFTs within GroupID of its asset.
type MintOutput struct {
	GroupID uint32 `serialize:"true"`
	secp256k1fx.OutputOwners
}

func (*MintOutput) TypeID() uint32 {
	return MintOutputTypeID
}

// Amount is always zero: minting rights aren't spendable-for-amount, only
// via an explicit MintOperation (spec.md §4.6 edge case).
func (*MintOutput) Amount() uint64 {
	return 0
}

func (out *MintOutput) MarshalOutput() ([]byte, error) {
	p := wrappers.NewPacker(4 + 8 + 4 + 4 + 20*len(out.Addrs))
	p.PackInt(out.GroupID)
	p.PackLong(out.Locktime)
	p.PackInt(out.Threshold)
	p.PackInt(uint32(len(out.Addrs)))
	for _, addr := range out.Addrs {
		p.PackFixedBytes(addr.Bytes())
	}
	return p.Bytes, p.Err
}
