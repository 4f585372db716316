// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/wrappers"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

var ErrUnknownTypeID = errors.New("unknown type ID")

// Type IDs tag every PlatformVM tx body's canonical byte form (spec.md
// §3 "typeID"); distinct from the AVM tags in vms/avm/txs/codec.go
// (spec.md §4.3 "Type IDs are fixed per chain" — resolved here as two
// separate per-package numberings, both starting at 0 and so
// overlapping, sharing one codec version, see DESIGN.md).
const (
	BaseTxTypeID              uint32 = 0
	AddValidatorTxTypeID      uint32 = 1
	AddSubnetValidatorTxTypeID uint32 = 2
	AddDelegatorTxTypeID      uint32 = 3
	ImportTxTypeID            uint32 = 4
	ExportTxTypeID            uint32 = 5
)

// CodecVersion is the codec tag prefixed to every marshaled UnsignedTx
// (spec.md §6 "LATESTCODEC").
const CodecVersion uint16 = 0

func packBaseTx(p *wrappers.Packer, tx *BaseTx) {
	p.PackInt(tx.NetworkID)
	p.PackFixedBytes(tx.BlockchainID.Bytes())
	p.PackCount(len(tx.Outs))
	for _, out := range tx.Outs {
		b, err := out.Bytes()
		if err != nil {
			p.Err = err
			return
		}
		p.PackFixedBytes(b)
	}
	p.PackCount(len(tx.Ins))
	for _, in := range tx.Ins {
		b, err := in.Bytes()
		if err != nil {
			p.Err = err
			return
		}
		p.PackFixedBytes(b)
	}
	p.PackBytes(tx.Memo)
}

func unpackBaseTx(p *wrappers.Packer) (*BaseTx, error) {
	networkID := p.UnpackInt()
	blockchainID, _ := ids.ToID(p.UnpackFixedBytes(ids.IDLen))

	nOuts := p.UnpackCount()
	outs := make([]*avax.TransferableOutput, nOuts)
	for i := range outs {
		out, err := avax.UnmarshalTransferableOutput(p)
		if err != nil {
			return nil, err
		}
		outs[i] = out
	}

	nIns := p.UnpackCount()
	ins := make([]*avax.TransferableInput, nIns)
	for i := range ins {
		in, err := avax.UnmarshalTransferableInput(p)
		if err != nil {
			return nil, err
		}
		ins[i] = in
	}

	memo := p.UnpackBytes()
	if p.Err != nil {
		return nil, p.Err
	}
	return &BaseTx{
		NetworkID:    networkID,
		BlockchainID: blockchainID,
		Outs:         outs,
		Ins:          ins,
		Memo:         memo,
	}, nil
}

func packValidator(p *wrappers.Packer, v *Validator) {
	p.PackFixedBytes(v.NodeID.Bytes())
	p.PackLong(v.Start)
	p.PackLong(v.End)
	p.PackLong(v.Wght)
}

func unpackValidator(p *wrappers.Packer) Validator {
	addr, _ := ids.ToAddress(p.UnpackFixedBytes(ids.AddressLen))
	start := p.UnpackLong()
	end := p.UnpackLong()
	wght := p.UnpackLong()
	return Validator{NodeID: ids.NodeIDFromAddress(addr), Start: start, End: end, Wght: wght}
}

func packStakeOuts(p *wrappers.Packer, outs []*avax.TransferableOutput) {
	p.PackCount(len(outs))
	for _, out := range outs {
		b, err := out.Bytes()
		if err != nil {
			p.Err = err
			return
		}
		p.PackFixedBytes(b)
	}
}

func unpackStakeOuts(p *wrappers.Packer) ([]*avax.TransferableOutput, error) {
	n := p.UnpackCount()
	outs := make([]*avax.TransferableOutput, n)
	for i := range outs {
		out, err := avax.UnmarshalTransferableOutput(p)
		if err != nil {
			return nil, err
		}
		outs[i] = out
	}
	return outs, p.Err
}

// Marshal produces the canonical byte form of tx: codecVersion(2) ‖
// typeID(4) ‖ body (spec.md §3 "UnsignedTx").
func Marshal(tx UnsignedTx) ([]byte, error) {
	m := &marshalVisitor{}
	if err := tx.Visit(m); err != nil {
		return nil, err
	}
	return m.bytes, m.err
}

type marshalVisitor struct {
	bytes []byte
	err   error
}

func (m *marshalVisitor) pack(typeID uint32, fn func(p *wrappers.Packer)) error {
	p := wrappers.NewPacker(256)
	p.PackShort(CodecVersion)
	p.PackInt(typeID)
	fn(p)
	if p.Err != nil {
		m.err = p.Err
		return p.Err
	}
	m.bytes = p.Bytes
	return nil
}

func (m *marshalVisitor) BaseTx(tx *BaseTx) error {
	return m.pack(BaseTxTypeID, func(p *wrappers.Packer) { packBaseTx(p, tx) })
}

func (m *marshalVisitor) AddValidatorTx(tx *AddValidatorTx) error {
	return m.pack(AddValidatorTxTypeID, func(p *wrappers.Packer) {
		packBaseTx(p, &tx.BaseTx)
		packValidator(p, &tx.Validator)
		packStakeOuts(p, tx.StakeOuts)
		secp256k1fx.MarshalOutputOwners(p, tx.RewardsOwner)
		p.PackInt(tx.DelegationShares)
	})
}

func (m *marshalVisitor) AddDelegatorTx(tx *AddDelegatorTx) error {
	return m.pack(AddDelegatorTxTypeID, func(p *wrappers.Packer) {
		packBaseTx(p, &tx.BaseTx)
		packValidator(p, &tx.Validator)
		packStakeOuts(p, tx.StakeOuts)
		secp256k1fx.MarshalOutputOwners(p, tx.DelegationRewardsOwner)
	})
}

func (m *marshalVisitor) AddSubnetValidatorTx(tx *AddSubnetValidatorTx) error {
	return m.pack(AddSubnetValidatorTxTypeID, func(p *wrappers.Packer) {
		packBaseTx(p, &tx.BaseTx)
		packValidator(p, &tx.SubnetValidator.Validator)
		p.PackFixedBytes(tx.SubnetValidator.Subnet.Bytes())
		tx.SubnetAuth.MarshalInput(p)
	})
}

func (m *marshalVisitor) ImportTx(tx *ImportTx) error {
	return m.pack(ImportTxTypeID, func(p *wrappers.Packer) {
		packBaseTx(p, &tx.BaseTx)
		p.PackFixedBytes(tx.SourceChain.Bytes())
		p.PackCount(len(tx.ImportedIns))
		for _, in := range tx.ImportedIns {
			b, err := in.Bytes()
			if err != nil {
				p.Err = err
				return
			}
			p.PackFixedBytes(b)
		}
	})
}

func (m *marshalVisitor) ExportTx(tx *ExportTx) error {
	return m.pack(ExportTxTypeID, func(p *wrappers.Packer) {
		packBaseTx(p, &tx.BaseTx)
		p.PackFixedBytes(tx.DestinationChain.Bytes())
		packStakeOuts(p, tx.ExportedOuts)
	})
}

// Unmarshal parses the canonical byte form of an UnsignedTx, dispatching
// on its typeID.
func Unmarshal(b []byte) (UnsignedTx, error) {
	p := wrappers.NewReader(b)
	_ = p.UnpackShort()
	typeID := p.UnpackInt()

	switch typeID {
	case BaseTxTypeID:
		base, err := unpackBaseTx(p)
		if err != nil {
			return nil, err
		}
		return &BaseTx{
			NetworkID: base.NetworkID, BlockchainID: base.BlockchainID,
			Outs: base.Outs, Ins: base.Ins, Memo: base.Memo,
		}, p.Err
	case AddValidatorTxTypeID:
		base, err := unpackBaseTx(p)
		if err != nil {
			return nil, err
		}
		vdr := unpackValidator(p)
		stakeOuts, err := unpackStakeOuts(p)
		if err != nil {
			return nil, err
		}
		owners := secp256k1fx.UnmarshalOutputOwners(p)
		shares := p.UnpackInt()
		if p.Err != nil {
			return nil, p.Err
		}
		return &AddValidatorTx{
			BaseTx: *base, Validator: vdr, StakeOuts: stakeOuts,
			RewardsOwner: &owners, DelegationShares: shares,
		}, nil
	case AddDelegatorTxTypeID:
		base, err := unpackBaseTx(p)
		if err != nil {
			return nil, err
		}
		vdr := unpackValidator(p)
		stakeOuts, err := unpackStakeOuts(p)
		if err != nil {
			return nil, err
		}
		owners := secp256k1fx.UnmarshalOutputOwners(p)
		if p.Err != nil {
			return nil, p.Err
		}
		return &AddDelegatorTx{BaseTx: *base, Validator: vdr, StakeOuts: stakeOuts, DelegationRewardsOwner: &owners}, nil
	case AddSubnetValidatorTxTypeID:
		base, err := unpackBaseTx(p)
		if err != nil {
			return nil, err
		}
		sv := SubnetValidator{Validator: unpackValidator(p)}
		subnetID, _ := ids.ToID(p.UnpackFixedBytes(ids.IDLen))
		sv.Subnet = subnetID
		auth := secp256k1fx.UnmarshalInput(p)
		if p.Err != nil {
			return nil, p.Err
		}
		return &AddSubnetValidatorTx{BaseTx: *base, SubnetValidator: sv, SubnetAuth: auth}, nil
	case ImportTxTypeID:
		base, err := unpackBaseTx(p)
		if err != nil {
			return nil, err
		}
		sourceChain, _ := ids.ToID(p.UnpackFixedBytes(ids.IDLen))
		n := p.UnpackCount()
		ins := make([]*avax.TransferableInput, n)
		for i := range ins {
			in, err := avax.UnmarshalTransferableInput(p)
			if err != nil {
				return nil, err
			}
			ins[i] = in
		}
		if p.Err != nil {
			return nil, p.Err
		}
		return &ImportTx{BaseTx: *base, SourceChain: sourceChain, ImportedIns: ins}, nil
	case ExportTxTypeID:
		base, err := unpackBaseTx(p)
		if err != nil {
			return nil, err
		}
		destChain, _ := ids.ToID(p.UnpackFixedBytes(ids.IDLen))
		outs, err := unpackStakeOuts(p)
		if err != nil {
			return nil, err
		}
		if p.Err != nil {
			return nil, p.Err
		}
		return &ExportTx{BaseTx: *base, DestinationChain: destChain, ExportedOuts: outs}, nil
	default:
		return nil, ErrUnknownTypeID
	}
}
