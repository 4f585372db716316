// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nftfx

import (
	"github.com/chainkit/utxowallet/utils/wrappers"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

// UnmarshalTransferOutput parses an nftfx TransferOutput body.
func UnmarshalTransferOutput(p *wrappers.Packer) (*TransferOutput, error) {
	groupID := p.UnpackInt()
	payload := p.UnpackBytes()
	owners := secp256k1fx.UnmarshalOutputOwners(p)
	return &TransferOutput{GroupID: groupID, Payload: payload, OutputOwners: owners}, p.Err
}

// UnmarshalMintOutput parses an nftfx MintOutput body.
func UnmarshalMintOutput(p *wrappers.Packer) (*MintOutput, error) {
	groupID := p.UnpackInt()
	owners := secp256k1fx.UnmarshalOutputOwners(p)
	return &MintOutput{GroupID: groupID, OutputOwners: owners}, p.Err
}

// MarshalCredential produces typeID(4) ‖ numSigs(4) ‖ sigs, mirroring
// secp256k1fx.Credential's wire form under nftfx's own type tag.
func (c *Credential) MarshalCredential() ([]byte, error) {
	p := wrappers.NewPacker(4 + 4 + secp256k1fx.SignatureLen*len(c.Sigs))
	p.PackInt(CredentialTypeID)
	p.PackCount(len(c.Sigs))
	for _, sig := range c.Sigs {
		p.PackFixedBytes(sig[:])
	}
	return p.Bytes, p.Err
}

// UnmarshalCredential parses an nftfx Credential body.
func UnmarshalCredential(p *wrappers.Packer) (*Credential, error) {
	n := p.UnpackCount()
	sigs := make([][secp256k1fx.SignatureLen]byte, n)
	for i := range sigs {
		copy(sigs[i][:], p.UnpackFixedBytes(secp256k1fx.SignatureLen))
	}
	return &Credential{Sigs: sigs}, p.Err
}
