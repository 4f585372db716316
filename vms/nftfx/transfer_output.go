// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package nftfx implements the NFT feature extension: outputs/operations
// that carry a groupID and opaque payload alongside the usual
// secp256k1fx owner set (spec.md §4.3 "NFT mint/transfer").
package nftfx

import (
	"errors"

	"github.com/chainkit/utxowallet/utils/wrappers"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

// MaxPayloadSize bounds an NFT output's opaque payload.
const MaxPayloadSize = 1 << 10

var (
	errNilTransferOutput = errors.New("nil transfer output")
	errPayloadTooLarge   = errors.New("payload too large")
)

const (
	MintOutputTypeID     uint32 = 10
	TransferOutputTypeID uint32 = 11
	MintOperationTypeID  uint32 = 12
	TransferOperationTypeID uint32 = 13
	CredentialTypeID     uint32 = 14
)

// TransferOutput locks an NFT (identified by GroupID within its asset)
// plus an arbitrary Payload to an owner set.
type TransferOutput struct {
	GroupID uint32 `serialize:"true"`
	Payload []byte `serialize:"true"`
	secp256k1fx.OutputOwners
}

func (out *TransferOutput) Verify() error {
	switch {
	case out == nil:
		return errNilTransferOutput
	case len(out.Payload) > MaxPayloadSize:
		return errPayloadTooLarge
	default:
		return out.OutputOwners.Verify()
	}
}

// Amount lets an nftfx TransferOutput satisfy avax.TransferableOut: NFTs
// aren't fungible, so it always reports a unit amount of 1.
func (*TransferOutput) Amount() uint64 {
	return 1
}

func (*TransferOutput) TypeID() uint32 {
	return TransferOutputTypeID
}

func (out *TransferOutput) MarshalOutput() ([]byte, error) {
	p := wrappers.NewPacker(4 + 4 + len(out.Payload) + 8 + 4 + 4 + 20*len(out.Addrs))
	p.PackInt(out.GroupID)
	p.PackBytes(out.Payload)
	p.PackLong(out.Locktime)
	p.PackInt(out.Threshold)
	p.PackInt(uint32(len(out.Addrs)))
	for _, addr := range out.Addrs {
		p.PackFixedBytes(addr.Bytes())
	}
	return p.Bytes, p.Err
}
