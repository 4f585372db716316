// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1fx

import (
	"errors"
	"sort"
)

var ErrInputIndicesNotSortedUnique = errors.New("input signature indices not sorted and unique")

// Input names, by index into the referenced OutputOwners' Addrs, which
// addresses will supply a signature — the "recorded sig-indices" spec.md
// §4.2/§4.8 refer to.
type Input struct {
	SigIndices []uint32 `serialize:"true"`
}

// Verify checks SigIndices is strictly ascending with no duplicates,
// matching the order credentials must be assembled in.
func (in *Input) Verify() error {
	for i := 1; i < len(in.SigIndices); i++ {
		if in.SigIndices[i-1] >= in.SigIndices[i] {
			return ErrInputIndicesNotSortedUnique
		}
	}
	return nil
}

// AddressIndices returns the input's SigIndices as stored, without
// filling or sorting them.
func (in *Input) AddressIndices() []uint32 {
	return in.SigIndices
}

func NewInput(sigIndices []uint32) Input {
	idx := make([]uint32, len(sigIndices))
	copy(idx, sigIndices)
	sort.Slice(idx, func(i, j int) bool { return idx[i] < idx[j] })
	return Input{SigIndices: idx}
}
