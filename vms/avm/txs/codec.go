// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/wrappers"
	"github.com/chainkit/utxowallet/vms/components/avax"
)

var ErrUnknownTypeID = errors.New("unknown type ID")

// Type IDs tag every AVM tx body's canonical byte form; numbered
// separately from vms/platformvm/txs/codec.go's, and the two ranges
// overlap since both start at 0 (spec.md §4.3 "Type IDs are fixed per
// chain").
const (
	BaseTxTypeID       uint32 = 0
	CreateAssetTxTypeID uint32 = 1
	OperationTxTypeID  uint32 = 2
	ImportTxTypeID     uint32 = 3
	ExportTxTypeID     uint32 = 4
)

// CodecVersion is the codec tag prefixed to every marshaled UnsignedTx.
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
	return &BaseTx{NetworkID: networkID, BlockchainID: blockchainID, Outs: outs, Ins: ins, Memo: memo}, nil
}

func packInitialState(p *wrappers.Packer, s *InitialState) {
	p.PackInt(s.FxIndex)
	p.PackCount(len(s.Outs))
	for _, out := range s.Outs {
		b, err := avax.MarshalOutput(out)
		if err != nil {
			p.Err = err
			return
		}
		p.PackFixedBytes(b)
	}
}

func unpackInitialState(p *wrappers.Packer) (*InitialState, error) {
	fxIndex := p.UnpackInt()
	n := p.UnpackCount()
	outs := make([]avax.TransferableOut, n)
	for i := range outs {
		out, err := avax.UnmarshalOutput(p)
		if err != nil {
			return nil, err
		}
		outs[i] = out
	}
	return &InitialState{FxIndex: fxIndex, Outs: outs}, p.Err
}

// Marshal produces the canonical byte form of tx: codecVersion(2) ‖
// typeID(4) ‖ body (spec.md §3 "UnsignedTx").
func Marshal(tx UnsignedTx) ([]byte, error) {
	m := &marshalVisitor{}
	if err := tx.Visit(m); err != nil {
		return nil, err
	}
	return m.bytes, nil
}

type marshalVisitor struct {
	bytes []byte
}

func (m *marshalVisitor) pack(typeID uint32, fn func(p *wrappers.Packer)) error {
	p := wrappers.NewPacker(256)
	p.PackShort(CodecVersion)
	p.PackInt(typeID)
	fn(p)
	if p.Err != nil {
		return p.Err
	}
	m.bytes = p.Bytes
	return nil
}

func (m *marshalVisitor) BaseTx(tx *BaseTx) error {
	return m.pack(BaseTxTypeID, func(p *wrappers.Packer) { packBaseTx(p, tx) })
}

func (m *marshalVisitor) CreateAssetTx(tx *CreateAssetTx) error {
	return m.pack(CreateAssetTxTypeID, func(p *wrappers.Packer) {
		packBaseTx(p, &tx.BaseTx)
		p.PackBytes([]byte(tx.Name))
		p.PackBytes([]byte(tx.Symbol))
		p.PackByte(tx.Denomination)
		p.PackCount(len(tx.States))
		for _, s := range tx.States {
			packInitialState(p, s)
		}
	})
}

func (m *marshalVisitor) OperationTx(tx *OperationTx) error {
	return m.pack(OperationTxTypeID, func(p *wrappers.Packer) {
		packBaseTx(p, &tx.BaseTx)
		p.PackCount(len(tx.Ops))
		for _, o := range tx.Ops {
			b, err := o.Bytes()
			if err != nil {
				p.Err = err
				return
			}
			p.PackFixedBytes(b)
		}
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
		p.PackCount(len(tx.ExportedOuts))
		for _, out := range tx.ExportedOuts {
			b, err := out.Bytes()
			if err != nil {
				p.Err = err
				return
			}
			p.PackFixedBytes(b)
		}
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
		if p.Err != nil {
			return nil, p.Err
		}
		return base, nil
	case CreateAssetTxTypeID:
		base, err := unpackBaseTx(p)
		if err != nil {
			return nil, err
		}
		name := string(p.UnpackBytes())
		symbol := string(p.UnpackBytes())
		denomination := p.UnpackByte()
		n := p.UnpackCount()
		states := make([]*InitialState, n)
		for i := range states {
			s, err := unpackInitialState(p)
			if err != nil {
				return nil, err
			}
			states[i] = s
		}
		if p.Err != nil {
			return nil, p.Err
		}
		return &CreateAssetTx{
			BaseTx: *base, Name: name, Symbol: symbol,
			Denomination: denomination, States: states,
		}, nil
	case OperationTxTypeID:
		base, err := unpackBaseTx(p)
		if err != nil {
			return nil, err
		}
		n := p.UnpackCount()
		ops := make([]*TransferableOperation, n)
		for i := range ops {
			o, err := UnmarshalTransferableOperation(p)
			if err != nil {
				return nil, err
			}
			ops[i] = o
		}
		if p.Err != nil {
			return nil, p.Err
		}
		return &OperationTx{BaseTx: *base, Ops: ops}, nil
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
		n := p.UnpackCount()
		outs := make([]*avax.TransferableOutput, n)
		for i := range outs {
			out, err := avax.UnmarshalTransferableOutput(p)
			if err != nil {
				return nil, err
			}
			outs[i] = out
		}
		if p.Err != nil {
			return nil, p.Err
		}
		return &ExportTx{BaseTx: *base, DestinationChain: destChain, ExportedOuts: outs}, nil
	default:
		return nil, ErrUnknownTypeID
	}
}
