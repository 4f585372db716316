// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/wrappers"
)

// UnmarshalOutputOwners reads the locktime‖threshold‖numAddrs‖addrs form
// every owner-bearing output shares (spec.md §4.2 "OutputOwners"
// serialization).
func UnmarshalOutputOwners(p *wrappers.Packer) OutputOwners {
	locktime := p.UnpackLong()
	threshold := p.UnpackInt()
	n := p.UnpackCount()
	addrs := make([]ids.Address, n)
	for i := range addrs {
		addrs[i], _ = ids.ToAddress(p.UnpackFixedBytes(ids.AddressLen))
	}
	return OutputOwners{Locktime: locktime, Threshold: threshold, Addrs: addrs}
}

// MarshalOutputOwners produces the locktime‖threshold‖numAddrs‖addrs form
// directly, for callers (reward owners) that carry an OutputOwners with
// no surrounding typeID tag (spec.md §4.3 "rewardOwner(OutputOwners)").
func MarshalOutputOwners(p *wrappers.Packer, out *OutputOwners) {
	p.PackLong(out.Locktime)
	p.PackInt(out.Threshold)
	p.PackCount(len(out.Addrs))
	for _, addr := range out.Addrs {
		p.PackFixedBytes(addr.Bytes())
	}
}

// UnmarshalTransferOutput parses a TransferOutput body (without its
// leading typeID, already consumed by the caller's dispatch).
func UnmarshalTransferOutput(p *wrappers.Packer) (*TransferOutput, error) {
	amt := p.UnpackLong()
	owners := UnmarshalOutputOwners(p)
	return &TransferOutput{Amt: amt, OutputOwners: owners}, p.Err
}

// UnmarshalMintOutput parses a MintOutput body.
func UnmarshalMintOutput(p *wrappers.Packer) (*MintOutput, error) {
	owners := UnmarshalOutputOwners(p)
	return &MintOutput{OutputOwners: owners}, p.Err
}

// MarshalInput produces the canonical sigIndices-count‖sigIndices form
// shared by every input kind (spec.md §4.2 "sigIdxs").
func (in *Input) MarshalInput(p *wrappers.Packer) {
	p.PackCount(len(in.SigIndices))
	for _, idx := range in.SigIndices {
		p.PackInt(idx)
	}
}

// UnmarshalInput parses an Input's sigIndices list.
func UnmarshalInput(p *wrappers.Packer) Input {
	n := p.UnpackCount()
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = p.UnpackInt()
	}
	return Input{SigIndices: idx}
}

// MarshalTransferInput produces typeID(4) ‖ amt(8) ‖ sigIndices, the
// canonical form a TransferableInput.In wraps (spec.md §4.2 "Typed
// Input").
func (in *TransferInput) MarshalTransferInput() ([]byte, error) {
	p := wrappers.NewPacker(4 + 8 + 4 + 4*len(in.SigIndices))
	p.PackInt(TransferInputTypeID)
	p.PackLong(in.Amt)
	in.Input.MarshalInput(p)
	return p.Bytes, p.Err
}

// UnmarshalTransferInput parses a TransferInput body.
func UnmarshalTransferInput(p *wrappers.Packer) (*TransferInput, error) {
	amt := p.UnpackLong()
	in := UnmarshalInput(p)
	return &TransferInput{Amt: amt, Input: in}, p.Err
}

// MarshalCredential produces typeID(4) ‖ numSigs(4) ‖ sigs, the wire form
// of a signed input's credential (spec.md §4.8 "Serialization of Tx").
func (c *Credential) MarshalCredential() ([]byte, error) {
	p := wrappers.NewPacker(4 + 4 + SignatureLen*len(c.Sigs))
	p.PackInt(CredentialTypeID)
	p.PackCount(len(c.Sigs))
	for _, sig := range c.Sigs {
		p.PackFixedBytes(sig[:])
	}
	return p.Bytes, p.Err
}

// UnmarshalCredential parses a Credential body.
func UnmarshalCredential(p *wrappers.Packer) (*Credential, error) {
	n := p.UnpackCount()
	sigs := make([][SignatureLen]byte, n)
	for i := range sigs {
		copy(sigs[i][:], p.UnpackFixedBytes(SignatureLen))
	}
	return &Credential{Sigs: sigs}, p.Err
}
