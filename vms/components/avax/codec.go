// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/wrappers"
	"github.com/chainkit/utxowallet/vms/nftfx"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

var ErrUnknownTypeID = errors.New("unknown type ID")

// MarshalAsset/MarshalUTXOID are the fixed-width halves of every
// TransferableInput/TransferableOutput/UTXO's canonical form (spec.md §3
// "Tx ID / UTXO ID").
func (a *Asset) MarshalAsset(p *wrappers.Packer) {
	p.PackFixedBytes(a.ID.Bytes())
}

func unmarshalAsset(p *wrappers.Packer) Asset {
	id, _ := ids.ToID(p.UnpackFixedBytes(ids.IDLen))
	return Asset{ID: id}
}

func (u *UTXOID) MarshalUTXOID(p *wrappers.Packer) {
	p.PackFixedBytes(u.TxID.Bytes())
	p.PackInt(u.OutputIndex)
}

func unmarshalUTXOID(p *wrappers.Packer) UTXOID {
	txID, _ := ids.ToID(p.UnpackFixedBytes(ids.IDLen))
	outIdx := p.UnpackInt()
	return UTXOID{TxID: txID, OutputIndex: outIdx}
}

// MarshalOutput produces typeID(4) ‖ body, the canonical form every
// TransferableOutput.Out is wrapped in (spec.md §3 "Typed Output").
func MarshalOutput(out TransferableOut) ([]byte, error) {
	typer, ok := out.(outputTypeIDer)
	if !ok {
		return nil, ErrUnknownTypeID
	}
	marshaler, ok := out.(outputMarshaler)
	if !ok {
		return nil, ErrUnknownTypeID
	}
	body, err := marshaler.MarshalOutput()
	if err != nil {
		return nil, err
	}
	p := wrappers.NewPacker(4 + len(body))
	p.PackInt(typer.TypeID())
	p.PackFixedBytes(body)
	return p.Bytes, p.Err
}

// UnmarshalOutput reads a typeID(4) ‖ body pair and constructs the
// concrete typed output it names (spec.md §4.1 "UnknownTypeID").
func UnmarshalOutput(p *wrappers.Packer) (TransferableOut, error) {
	typeID := p.UnpackInt()
	switch typeID {
	case secp256k1fx.TransferOutputTypeID:
		return secp256k1fx.UnmarshalTransferOutput(p)
	case secp256k1fx.MintOutputTypeID:
		return secp256k1fx.UnmarshalMintOutput(p)
	case nftfx.TransferOutputTypeID:
		return nftfx.UnmarshalTransferOutput(p)
	case nftfx.MintOutputTypeID:
		return nftfx.UnmarshalMintOutput(p)
	default:
		return nil, ErrUnknownTypeID
	}
}

// MarshalInput produces typeID(4) ‖ body for the one amount-bearing input
// kind GetMinimumSpendable constructs; ImportTx/ExportTx and OperationTx
// never reference an input kind outside this set in this module's scope.
func MarshalInput(in TransferableIn) ([]byte, error) {
	ti, ok := in.(*secp256k1fx.TransferInput)
	if !ok {
		return nil, ErrUnknownTypeID
	}
	return ti.MarshalTransferInput()
}

// UnmarshalInput reads a typeID(4) ‖ body pair and constructs the
// concrete typed input it names.
func UnmarshalInput(p *wrappers.Packer) (TransferableIn, error) {
	typeID := p.UnpackInt()
	switch typeID {
	case secp256k1fx.TransferInputTypeID:
		return secp256k1fx.UnmarshalTransferInput(p)
	default:
		return nil, ErrUnknownTypeID
	}
}

// Bytes produces the canonical byte form of a TransferableOutput: asset
// ID ‖ typed output (spec.md §3 "TransferableOutput").
func (out *TransferableOutput) Bytes() ([]byte, error) {
	outBytes, err := MarshalOutput(out.Out)
	if err != nil {
		return nil, err
	}
	p := wrappers.NewPacker(ids.IDLen + len(outBytes))
	out.MarshalAsset(p)
	p.PackFixedBytes(outBytes)
	return p.Bytes, p.Err
}

// UnmarshalTransferableOutput parses a TransferableOutput.
func UnmarshalTransferableOutput(p *wrappers.Packer) (*TransferableOutput, error) {
	asset := unmarshalAsset(p)
	out, err := UnmarshalOutput(p)
	if err != nil {
		return nil, err
	}
	return &TransferableOutput{Asset: asset, Out: out}, p.Err
}

// Bytes produces the canonical byte form of a TransferableInput: UTXOID
// ‖ asset ID ‖ typed input (spec.md §3 "TransferableInput").
func (in *TransferableInput) Bytes() ([]byte, error) {
	inBytes, err := MarshalInput(in.In)
	if err != nil {
		return nil, err
	}
	p := wrappers.NewPacker(ids.IDLen + 4 + ids.IDLen + len(inBytes))
	in.MarshalUTXOID(p)
	in.MarshalAsset(p)
	p.PackFixedBytes(inBytes)
	return p.Bytes, p.Err
}

// UnmarshalTransferableInput parses a TransferableInput.
func UnmarshalTransferableInput(p *wrappers.Packer) (*TransferableInput, error) {
	utxoID := unmarshalUTXOID(p)
	asset := unmarshalAsset(p)
	in, err := UnmarshalInput(p)
	if err != nil {
		return nil, err
	}
	return &TransferableInput{UTXOID: utxoID, Asset: asset, In: in}, p.Err
}
