// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package secp256k1fx implements the "feature extension" this module's
// transactions spend from: secp256k1-locked outputs/inputs, their
// credentials, and the owner-set/threshold-signature algorithm that
// decides who may spend them (spec.md §4.2 "OutputOwners").
package secp256k1fx

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
)

var (
	ErrOutputUnspendable  = errors.New("output is unspendable")
	ErrOutputUnoptimized  = errors.New("output could be optimized")
	ErrZeroThreshold      = errors.New("output threshold is zero with no addresses")
	ErrThresholdExceedsAddresses = errors.New("output threshold exceeds number of addresses")
	ErrAddrsNotSortedUnique = errors.New("addresses not sorted and unique")
	ErrWrongSig           = errors.New("wrong signature")
)

// OutputOwners is the address set and signature threshold an output is
// locked to, plus an optional locktime before which it cannot be spent
// regardless of signatures (spec.md §4.2 "OutputOwners").
type OutputOwners struct {
	Locktime  uint64        `serialize:"true"`
	Threshold uint32        `serialize:"true"`
	Addrs     []ids.Address `serialize:"true"`
}

// NewOutputOwners returns a well-formed OutputOwners with its address
// list sorted, as every constructed owner set must be (spec.md §4.2).
func NewOutputOwners(addrs []ids.Address, locktime uint64, threshold uint32) *OutputOwners {
	addrsCopy := make([]ids.Address, len(addrs))
	copy(addrsCopy, addrs)
	ids.SortAddresses(addrsCopy)
	return &OutputOwners{
		Locktime:  locktime,
		Threshold: threshold,
		Addrs:     addrsCopy,
	}
}

// Verify checks this OutputOwners is well-formed: non-zero threshold
// unless there are no addresses, threshold not exceeding the address
// count, and a strictly sorted, duplicate-free address list.
func (out *OutputOwners) Verify() error {
	switch {
	case out.Threshold == 0 && len(out.Addrs) > 0:
		return ErrOutputUnoptimized
	case int(out.Threshold) > len(out.Addrs):
		return ErrThresholdExceedsAddresses
	case !ids.IsSortedAndUniqueAddresses(out.Addrs):
		return ErrAddrsNotSortedUnique
	default:
		return nil
	}
}

// Addresses returns the raw address set.
func (out *OutputOwners) Addresses() []ids.Address {
	return out.Addrs
}

// Equals reports whether out and other describe the same owner set.
func (out *OutputOwners) Equals(other *OutputOwners) bool {
	if out.Locktime != other.Locktime || out.Threshold != other.Threshold || len(out.Addrs) != len(other.Addrs) {
		return false
	}
	for i, addr := range out.Addrs {
		if addr != other.Addrs[i] {
			return false
		}
	}
	return true
}

// Locked reports whether this owner set cannot yet be spent at time t:
// locked whenever t <= Locktime, so spending requires t to strictly
// exceed Locktime (spec.md §4.2 getSpenders step 1, scenario S2).
func (out *OutputOwners) Locked(t uint64) bool {
	return t <= out.Locktime
}

// Owners returns out itself, letting any type that embeds OutputOwners
// (secp256k1fx/nftfx's TransferOutput and MintOutput) satisfy a common
// "has an owner set" interface via method promotion.
func (out *OutputOwners) Owners() *OutputOwners {
	return out
}

// GetSpenders returns the owner addresses that are in [have], in Addrs
// order, stopping once Threshold of them are found — an incomplete
// result (len < Threshold) if too few are present (spec.md §4.2's
// getSpenders/meetsThreshold algorithm).
func (out *OutputOwners) GetSpenders(have map[ids.Address]struct{}) []ids.Address {
	spenders := make([]ids.Address, 0, out.Threshold)
	for _, addr := range out.Addrs {
		if _, ok := have[addr]; ok {
			spenders = append(spenders, addr)
			if uint32(len(spenders)) == out.Threshold {
				break
			}
		}
	}
	return spenders
}

// MeetsThreshold reports whether [have] contains at least Threshold
// distinct addresses drawn from this owner set.
func (out *OutputOwners) MeetsThreshold(have map[ids.Address]struct{}) bool {
	if out.Threshold == 0 {
		return true
	}
	var count uint32
	for _, addr := range out.Addrs {
		if _, ok := have[addr]; ok {
			count++
			if count >= out.Threshold {
				return true
			}
		}
	}
	return false
}
