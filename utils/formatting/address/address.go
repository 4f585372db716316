// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package address assembles and parses the wallet's full bech32 address
// strings: "<chain-alias-or-chainID>-<hrp>1<bech32 data>" per spec.md §4.1
// "bech32 address" / §6 "Address formats".
package address

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/bech32"
)

var (
	ErrMalformedAddress  = errors.New("malformed address")
	ErrMissingChainIDSeparator = errors.New("no chain ID found in address")
)

// FormatBech32 encodes the raw address bytes with the given HRP, without a
// chain alias prefix; Format uses it for the part after the alias.
func FormatBech32(hrp string, addrBytes []byte) (string, error) {
	fiveBits, err := bech32.ConvertBits(addrBytes, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, fiveBits)
}

// ParseBech32 is the inverse of FormatBech32.
func ParseBech32(addrStr string) (hrp string, addrBytes []byte, err error) {
	hrp, fiveBits, err := bech32.Decode(addrStr)
	if err != nil {
		return "", nil, err
	}
	addrBytes, err = bech32.ConvertBits(fiveBits, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, addrBytes, nil
}

// Format produces "<chainIDAlias>-<bech32(hrp, addr)>", the form used when
// displaying an address to a user (spec.md §4.2 Address row).
func Format(chainIDAlias, hrp string, addr []byte) (string, error) {
	bech32Addr, err := FormatBech32(hrp, addr)
	if err != nil {
		return "", fmt.Errorf("unable to format address: %w", err)
	}
	return fmt.Sprintf("%s-%s", chainIDAlias, bech32Addr), nil
}

// Parse splits "<chainIDAlias>-<bech32Addr>" and decodes the address.
func Parse(addrStr string) (chainIDAlias, hrp string, addr []byte, err error) {
	parts := strings.SplitN(addrStr, "-", 2)
	if len(parts) < 2 {
		return "", "", nil, ErrMissingChainIDSeparator
	}
	chainIDAlias = parts[0]
	hrp, addr, err = ParseBech32(parts[1])
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: %w", ErrMalformedAddress, err)
	}
	return chainIDAlias, hrp, addr, nil
}

// FormatAddress formats an ids.Address for [chainIDAlias] on the network
// identified by [hrp].
func FormatAddress(chainIDAlias, hrp string, addr ids.Address) (string, error) {
	return Format(chainIDAlias, hrp, addr.Bytes())
}

// ParseToAddress parses a formatted address string into an ids.Address.
func ParseToAddress(addrStr string) (ids.Address, error) {
	_, _, addrBytes, err := Parse(addrStr)
	if err != nil {
		return ids.Address{}, err
	}
	return ids.ToAddress(addrBytes)
}
