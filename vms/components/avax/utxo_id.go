// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"fmt"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/hashing"
)

// UTXOID names one output of one transaction (spec.md §4.2 "UTXOID").
type UTXOID struct {
	TxID        ids.ID `serialize:"true"`
	OutputIndex uint32 `serialize:"true"`

	id *ids.ID
}

// InputID derives, and caches, this UTXOID's unique identifier:
// hash256(txID ‖ outputIndex).
func (u *UTXOID) InputID() ids.ID {
	if u.id == nil {
		packed := make([]byte, ids.IDLen+4)
		copy(packed, u.TxID[:])
		packed[ids.IDLen] = byte(u.OutputIndex >> 24)
		packed[ids.IDLen+1] = byte(u.OutputIndex >> 16)
		packed[ids.IDLen+2] = byte(u.OutputIndex >> 8)
		packed[ids.IDLen+3] = byte(u.OutputIndex)
		id := ids.ID(hashing.ComputeHash256Array(packed))
		u.id = &id
	}
	return *u.id
}

// Symbol marks this as a "symbolic" UTXOID used for an imported input
// whose UTXO doesn't exist on this chain (kept for parity with callers
// that type-switch on it; this module has no such callers today, but the
// method is part of the canonical shape).
func (u *UTXOID) Symbol() bool {
	return false
}

// String formats the ID as txID:outputIndex, mostly for tests/log lines.
func (u UTXOID) String() string {
	return fmt.Sprintf("%s:%d", u.TxID, u.OutputIndex)
}
