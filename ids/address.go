// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"errors"
	"sort"

	"github.com/chainkit/utxowallet/utils/cb58"
)

// AddressLen is the length in bytes of an address (spec.md §6
// ADDRESSLENGTH).
const AddressLen = 20

var (
	ShortEmpty = Address{}

	errInvalidAddressLen = errors.New("invalid address length")
)

// Address is a 20 byte identifier for the owner of a UTXO. It is renamed
// from the teacher's "ShortID" to match this domain's vocabulary.
type Address [AddressLen]byte

func ToAddress(b []byte) (Address, error) {
	if len(b) != AddressLen {
		return Address{}, errInvalidAddressLen
	}
	var addr Address
	copy(addr[:], b)
	return addr, nil
}

func AddressFromString(addrStr string) (Address, error) {
	b, err := cb58.Decode(addrStr)
	if err != nil {
		return Address{}, err
	}
	return ToAddress(b)
}

func (a Address) String() string {
	return cb58.Encode(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

// Compare is byte-wise comparison of the raw 20 bytes, per spec.md §3.
func (a Address) Compare(other Address) int {
	return bytes.Compare(a[:], other[:])
}

func (a Address) Less(other Address) bool {
	return a.Compare(other) == -1
}

// SortAddresses sorts a slice of addresses in strictly ascending raw-byte
// order, as required of every OutputOwners' address list (spec.md §4.2).
func SortAddresses(addrs []Address) {
	sort.Slice(addrs, func(i, j int) bool {
		return addrs[i].Less(addrs[j])
	})
}

// IsSortedAndUniqueAddresses reports whether [addrs] is already in strictly
// ascending order with no duplicates.
func IsSortedAndUniqueAddresses(addrs []Address) bool {
	for i := 1; i < len(addrs); i++ {
		if addrs[i-1].Compare(addrs[i]) >= 0 {
			return false
		}
	}
	return true
}
