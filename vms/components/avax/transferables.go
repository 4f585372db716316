// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"bytes"
	"sort"
)

// TransferableIn is any input type that spends a TransferableOut, such
// as secp256k1fx.TransferInput.
type TransferableIn interface {
	Amount() uint64
}

// TransferableInput references the UTXO it spends and the typed input
// that spends it (spec.md §4.2 "TransferableInput"). Sorted by
// txid‖outputIdx ascending wherever a tx lists several.
type TransferableInput struct {
	UTXOID `serialize:"true"`
	Asset  `serialize:"true"`
	In     TransferableIn `serialize:"true"`
}

func (in *TransferableInput) Amount() uint64 {
	return in.In.Amount()
}

// Bytes-level comparison key for sorting: txID then output index.
func (in *TransferableInput) sortKey() []byte {
	key := make([]byte, 0, 36)
	key = append(key, in.TxID[:]...)
	key = append(key,
		byte(in.OutputIndex>>24), byte(in.OutputIndex>>16),
		byte(in.OutputIndex>>8), byte(in.OutputIndex))
	return key
}

// SortTransferableInputs sorts ins by (txID, outputIndex) ascending,
// per spec.md §4.2's TransferableInput ordering rule. The sort is in
// place and returns nothing.
func SortTransferableInputs(ins []*TransferableInput) {
	sort.Slice(ins, func(i, j int) bool {
		return bytes.Compare(ins[i].sortKey(), ins[j].sortKey()) < 0
	})
}

// TransferableOutput references the typed output locking an asset
// amount (spec.md §4.2 "TransferableOutput"). Sorted by
// outputTypeID‖bytes.
type TransferableOutput struct {
	Asset `serialize:"true"`
	Out   TransferableOut `serialize:"true"`
}

func (out *TransferableOutput) Amount() uint64 {
	return out.Out.Amount()
}

// outputTypeIDer is implemented by typed outputs that expose their wire
// type tag, needed to compute the outputTypeID‖bytes sort key.
type outputTypeIDer interface {
	TypeID() uint32
}

// outputMarshaler is implemented by typed outputs that can serialize
// themselves for the sort key's byte comparison.
type outputMarshaler interface {
	MarshalOutput() ([]byte, error)
}

// SortTransferableOutputs sorts outs by outputTypeID ascending, then by
// the output's own marshaled bytes ascending, matching the order a
// canonical codec would assign deterministically (spec.md §4.2
// "TransferableOutput" sort rule, §3 "Sort orders").
func SortTransferableOutputs(outs []*TransferableOutput) error {
	var outerErr error
	sort.SliceStable(outs, func(i, j int) bool {
		a, aok := outs[i].Out.(outputTypeIDer)
		b, bok := outs[j].Out.(outputTypeIDer)
		if !aok || !bok {
			return false
		}
		if a.TypeID() != b.TypeID() {
			return a.TypeID() < b.TypeID()
		}
		am, aok := outs[i].Out.(outputMarshaler)
		bm, bok := outs[j].Out.(outputMarshaler)
		if !aok || !bok {
			return false
		}
		ab, err := am.MarshalOutput()
		if err != nil {
			outerErr = err
			return false
		}
		bb, err := bm.MarshalOutput()
		if err != nil {
			outerErr = err
			return false
		}
		return bytes.Compare(ab, bb) < 0
	})
	return outerErr
}

// IsSortedTransferableOutputs reports whether outs is already in the
// order SortTransferableOutputs would produce, used by tx syntactic
// verification to reject an unsorted outs/stake list without mutating it.
func IsSortedTransferableOutputs(outs []*TransferableOutput) bool {
	for i := 1; i < len(outs); i++ {
		a, aok := outs[i-1].Out.(outputTypeIDer)
		b, bok := outs[i].Out.(outputTypeIDer)
		if !aok || !bok {
			return false
		}
		if a.TypeID() != b.TypeID() {
			if a.TypeID() > b.TypeID() {
				return false
			}
			continue
		}
		am, aok := outs[i-1].Out.(outputMarshaler)
		bm, bok := outs[i].Out.(outputMarshaler)
		if !aok || !bok {
			return false
		}
		ab, err := am.MarshalOutput()
		if err != nil {
			return false
		}
		bb, err := bm.MarshalOutput()
		if err != nil {
			return false
		}
		if bytes.Compare(ab, bb) > 0 {
			return false
		}
	}
	return true
}
