// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cb58 implements the checksummed base-58 encoding used pervasively
// for asset IDs, tx IDs, UTXO IDs, and private keys (spec.md §4.1). It wraps
// github.com/mr-tron/base58, the corpus's own choice for the BTC alphabet
// (teacher go.mod: mr-tron/base58, used by avalanchego's utils/cb58).
package cb58

import (
	"crypto/sha256"
	"errors"

	"github.com/mr-tron/base58"
)

const checksumLen = 4

var (
	ErrMissingChecksum  = errors.New("input is smaller than the checksum size")
	ErrBadChecksum      = errors.New("invalid input checksum")
	ErrInvalidBase58Str = errors.New("invalid base58 string")
)

// Encode returns base58(payload || sha256(payload)[28:32]).
func Encode(payload []byte) string {
	checked := make([]byte, len(payload)+checksumLen)
	copy(checked, payload)

	hash := sha256.Sum256(payload)
	copy(checked[len(payload):], hash[len(hash)-checksumLen:])

	return base58.Encode(checked)
}

// Decode reverses Encode, verifying the trailing 4-byte checksum.
func Decode(str string) ([]byte, error) {
	checked, err := base58.Decode(str)
	if err != nil {
		return nil, ErrInvalidBase58Str
	}
	if len(checked) < checksumLen {
		return nil, ErrMissingChecksum
	}

	payload := checked[:len(checked)-checksumLen]
	checksum := checked[len(checked)-checksumLen:]

	hash := sha256.Sum256(payload)
	expectedChecksum := hash[len(hash)-checksumLen:]

	for i := range checksum {
		if checksum[i] != expectedChecksum[i] {
			return nil, ErrBadChecksum
		}
	}
	return payload, nil
}
