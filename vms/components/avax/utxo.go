// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"github.com/chainkit/utxowallet/utils/cb58"
	"github.com/chainkit/utxowallet/utils/wrappers"
)

// TransferableOut is any output type an asset amount can be locked in:
// e.g. secp256k1fx.TransferOutput or nftfx.TransferOutput.
type TransferableOut interface {
	Amount() uint64
}

// CodecVersion is the two-byte codec tag every UTXO and UnsignedTx is
// prefixed with (spec.md §6 "LATESTCODEC").
const CodecVersion uint16 = 0

// UTXO is one unspent transaction output: the transaction/index that
// created it, which asset it's denominated in, and the locking output
// itself (spec.md §3 "UTXO").
type UTXO struct {
	UTXOID `serialize:"true"`
	Asset  `serialize:"true"`
	Out    TransferableOut `serialize:"true"`
}

// Bytes produces the canonical byte form of a UTXO: codecID(2) ‖ txID(32)
// ‖ outputIndex(4) ‖ assetID(32) ‖ typed output (spec.md §3 "UTXO").
func (u *UTXO) Bytes() ([]byte, error) {
	outBytes, err := MarshalOutput(u.Out)
	if err != nil {
		return nil, err
	}
	p := wrappers.NewPacker(2 + 32 + 4 + 32 + len(outBytes))
	p.PackShort(CodecVersion)
	u.MarshalUTXOID(p)
	u.MarshalAsset(p)
	p.PackFixedBytes(outBytes)
	return p.Bytes, p.Err
}

// UTXOIDString is the cb58(txID ‖ outputIndex) identifier spec.md §3's
// "UTXO ID" row names, distinct from UTXOID.InputID()'s sha256 digest
// (which is the *spend* identifier consensus keys inputs by).
func (u *UTXO) UTXOIDString() string {
	buf := make([]byte, 0, 36)
	buf = append(buf, u.TxID[:]...)
	buf = append(buf,
		byte(u.OutputIndex>>24), byte(u.OutputIndex>>16),
		byte(u.OutputIndex>>8), byte(u.OutputIndex))
	return cb58.Encode(buf)
}

// ParseUTXO parses a UTXO from its canonical byte form, always returning
// a fresh copy (spec.md §4.4 "parseUTXO ... always returns a copy").
func ParseUTXO(b []byte) (*UTXO, error) {
	p := wrappers.NewReader(b)
	_ = p.UnpackShort() // codec version
	utxoID := unmarshalUTXOID(p)
	asset := unmarshalAsset(p)
	out, err := UnmarshalOutput(p)
	if err != nil {
		return nil, err
	}
	if p.Err != nil {
		return nil, p.Err
	}
	return &UTXO{UTXOID: utxoID, Asset: asset, Out: out}, nil
}
