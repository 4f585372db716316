// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"bytes"
	"errors"
	"sort"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/wrappers"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/nftfx"
	"github.com/chainkit/utxowallet/vms/secp256k1fx"
)

var (
	ErrUnknownOperation = errors.New("unknown operation type")
	ErrNoUTXOIDs        = errors.New("operation references no UTXOs")
)

// op is the minimal surface every fx operation this module supports
// implements: secp256k1fx.MintOperation, nftfx.MintOperation,
// nftfx.TransferOperation.
type op interface {
	Verify() error
}

// TransferableOperation consumes the UTXOs named by UTXOIDs and applies
// Op to them — the NFT transfer/mint building block of OperationTx
// (spec.md §4.7 "a list of TransferableOperations referencing source
// UTXOs and producing new outputs").
type TransferableOperation struct {
	Asset   avax.Asset
	UTXOIDs []avax.UTXOID
	Op      op
}

func (to *TransferableOperation) Verify() error {
	if len(to.UTXOIDs) == 0 {
		return ErrNoUTXOIDs
	}
	return to.Op.Verify()
}

// sortKey orders by the first (smallest) UTXO ID, matching spec.md
// §4.7's "operations are sorted by their source UTXO-ID pair".
func (to *TransferableOperation) sortKey() []byte {
	first := to.UTXOIDs[0]
	for _, u := range to.UTXOIDs[1:] {
		if bytes.Compare(u.TxID[:], first.TxID[:]) < 0 ||
			(u.TxID == first.TxID && u.OutputIndex < first.OutputIndex) {
			first = u
		}
	}
	key := make([]byte, 0, 36)
	key = append(key, first.TxID[:]...)
	key = append(key,
		byte(first.OutputIndex>>24), byte(first.OutputIndex>>16),
		byte(first.OutputIndex>>8), byte(first.OutputIndex))
	return key
}

// SortOperations sorts ops by their source UTXO-ID pair ascending.
func SortOperations(ops []*TransferableOperation) {
	sort.Slice(ops, func(i, j int) bool {
		return bytes.Compare(ops[i].sortKey(), ops[j].sortKey()) < 0
	})
}

// IsSortedOperations reports whether ops is already in SortOperations
// order.
func IsSortedOperations(ops []*TransferableOperation) bool {
	for i := 1; i < len(ops); i++ {
		if bytes.Compare(ops[i-1].sortKey(), ops[i].sortKey()) > 0 {
			return false
		}
	}
	return true
}

const (
	opSECPMintTypeID    uint32 = secp256k1fx.MintOperationTypeID
	opNFTMintTypeID     uint32 = nftfx.MintOperationTypeID
	opNFTTransferTypeID uint32 = nftfx.TransferOperationTypeID
)

func unmarshalAsset(p *wrappers.Packer) avax.Asset {
	id, _ := ids.ToID(p.UnpackFixedBytes(ids.IDLen))
	return avax.Asset{ID: id}
}

func unmarshalUTXOID(p *wrappers.Packer) avax.UTXOID {
	txID, _ := ids.ToID(p.UnpackFixedBytes(ids.IDLen))
	outIdx := p.UnpackInt()
	return avax.UTXOID{TxID: txID, OutputIndex: outIdx}
}

func marshalSECPMintOperation(p *wrappers.Packer, o *secp256k1fx.MintOperation) {
	o.MintInput.MarshalInput(p)
	marshalMintOutput(p, &o.MintOutput)
	marshalTransferOutput(p, &o.TransferOutput)
}

func marshalMintOutput(p *wrappers.Packer, o *secp256k1fx.MintOutput) {
	b, err := o.MarshalOutput()
	if err != nil {
		p.Err = err
		return
	}
	p.PackFixedBytes(b)
}

func marshalTransferOutput(p *wrappers.Packer, o *secp256k1fx.TransferOutput) {
	b, err := o.MarshalOutput()
	if err != nil {
		p.Err = err
		return
	}
	p.PackFixedBytes(b)
}

func unmarshalSECPMintOperation(p *wrappers.Packer) (*secp256k1fx.MintOperation, error) {
	in := secp256k1fx.UnmarshalInput(p)
	mintOutOwners := secp256k1fx.UnmarshalOutputOwners(p)
	transferOut, err := secp256k1fx.UnmarshalTransferOutput(p)
	if err != nil {
		return nil, err
	}
	return &secp256k1fx.MintOperation{
		MintInput:      in,
		MintOutput:     secp256k1fx.MintOutput{OutputOwners: mintOutOwners},
		TransferOutput: *transferOut,
	}, p.Err
}

func marshalNFTMintOperation(p *wrappers.Packer, o *nftfx.MintOperation) {
	o.MintInput.MarshalInput(p)
	p.PackInt(o.GroupID)
	p.PackBytes(o.Payload)
	p.PackCount(len(o.Outputs))
	for _, owners := range o.Outputs {
		secp256k1fx.MarshalOutputOwners(p, owners)
	}
}

func unmarshalNFTMintOperation(p *wrappers.Packer) (*nftfx.MintOperation, error) {
	in := secp256k1fx.UnmarshalInput(p)
	groupID := p.UnpackInt()
	payload := p.UnpackBytes()
	n := p.UnpackCount()
	outs := make([]*secp256k1fx.OutputOwners, n)
	for i := range outs {
		owners := secp256k1fx.UnmarshalOutputOwners(p)
		outs[i] = &owners
	}
	return &nftfx.MintOperation{MintInput: in, GroupID: groupID, Payload: payload, Outputs: outs}, p.Err
}

func marshalNFTTransferOperation(p *wrappers.Packer, o *nftfx.TransferOperation) {
	o.Input.MarshalInput(p)
	p.PackInt(o.Output.GroupID)
	p.PackBytes(o.Output.Payload)
	secp256k1fx.MarshalOutputOwners(p, &o.Output.OutputOwners)
}

func unmarshalNFTTransferOperation(p *wrappers.Packer) (*nftfx.TransferOperation, error) {
	in := secp256k1fx.UnmarshalInput(p)
	groupID := p.UnpackInt()
	payload := p.UnpackBytes()
	owners := secp256k1fx.UnmarshalOutputOwners(p)
	return &nftfx.TransferOperation{
		Input:  in,
		Output: nftfx.TransferOutput{GroupID: groupID, Payload: payload, OutputOwners: owners},
	}, p.Err
}

// marshalOperation produces typeID(4) ‖ body for the one of three op
// kinds this module supports.
func marshalOperation(p *wrappers.Packer, o op) {
	switch t := o.(type) {
	case *secp256k1fx.MintOperation:
		p.PackInt(opSECPMintTypeID)
		marshalSECPMintOperation(p, t)
	case *nftfx.MintOperation:
		p.PackInt(opNFTMintTypeID)
		marshalNFTMintOperation(p, t)
	case *nftfx.TransferOperation:
		p.PackInt(opNFTTransferTypeID)
		marshalNFTTransferOperation(p, t)
	default:
		p.Err = ErrUnknownOperation
	}
}

func unmarshalOperation(p *wrappers.Packer) (op, error) {
	typeID := p.UnpackInt()
	switch typeID {
	case opSECPMintTypeID:
		return unmarshalSECPMintOperation(p)
	case opNFTMintTypeID:
		return unmarshalNFTMintOperation(p)
	case opNFTTransferTypeID:
		return unmarshalNFTTransferOperation(p)
	default:
		return nil, ErrUnknownOperation
	}
}

// Bytes produces the canonical byte form of a TransferableOperation:
// asset ID ‖ numUTXOIDs(4) ‖ UTXOIDs ‖ typed operation.
func (to *TransferableOperation) Bytes() ([]byte, error) {
	p := wrappers.NewPacker(ids.IDLen + 4 + 36*len(to.UTXOIDs))
	to.Asset.MarshalAsset(p)
	p.PackCount(len(to.UTXOIDs))
	for i := range to.UTXOIDs {
		to.UTXOIDs[i].MarshalUTXOID(p)
	}
	marshalOperation(p, to.Op)
	return p.Bytes, p.Err
}

// UnmarshalTransferableOperation parses a TransferableOperation.
func UnmarshalTransferableOperation(p *wrappers.Packer) (*TransferableOperation, error) {
	asset := unmarshalAsset(p)
	n := p.UnpackCount()
	utxoIDs := make([]avax.UTXOID, n)
	for i := range utxoIDs {
		utxoIDs[i] = unmarshalUTXOID(p)
	}
	o, err := unmarshalOperation(p)
	if err != nil {
		return nil, err
	}
	return &TransferableOperation{Asset: asset, UTXOIDs: utxoIDs, Op: o}, p.Err
}
