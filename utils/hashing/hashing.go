// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // address format is protocol-fixed, not our choice
)

// ComputeHash256 returns the SHA-256 digest of buf. It is the digest
// signatures are computed over (spec.md §4.8 step 2).
func ComputeHash256(buf []byte) []byte {
	hash := sha256.Sum256(buf)
	return hash[:]
}

// ComputeHash256Array is the array-returning twin of ComputeHash256, used
// where callers need a fixed-size, comparable value (e.g. a map key).
func ComputeHash256Array(buf []byte) [32]byte {
	return sha256.Sum256(buf)
}

// PubkeyBytesToAddress derives a short address from a compressed
// secp256k1 public key: ripemd160(sha256(pubkeyBytes)), the construction
// spec.md's "bech32 address" is computed over.
func PubkeyBytesToAddress(pubBytes []byte) []byte {
	sha := sha256.Sum256(pubBytes)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}
