// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import "github.com/chainkit/utxowallet/utils/cb58"

// NodeID identifies a validator. It shares Address's 20-byte shape (a
// validator's node ID is derived the same way a wallet address is) but is
// kept as a distinct type so a NodeID can never be silently passed where an
// Address is expected, matching the teacher's own ids.NodeID/ids.ShortID
// split.
type NodeID Address

func NodeIDFromAddress(addr Address) NodeID {
	return NodeID(addr)
}

func (n NodeID) String() string {
	return "NodeID-" + cb58.Encode(n[:])
}

func (n NodeID) Bytes() []byte {
	return n[:]
}

func (n NodeID) Compare(other NodeID) int {
	return Address(n).Compare(Address(other))
}
