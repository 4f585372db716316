// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Network IDs and their human-readable names/HRPs, grounded on the
// teacher's utils/constants/network_ids.go table, with the Juneo fork's
// SOCOTRA/JUNE renames reverted to spec.md's mainnet/AVAX vocabulary.
const (
	MainnetID uint32 = 1
	TestnetID uint32 = 5
	LocalID   uint32 = 12345

	MainnetName = "mainnet"
	TestnetName = "testnet"
	LocalName   = "local"

	MainnetHRP  = "avax"
	TestnetHRP  = "fuji"
	LocalHRP    = "local"
	FallbackHRP = "custom"

	ValidNetworkPrefix = "network-"
)

var (
	NetworkIDToNetworkName = map[uint32]string{
		MainnetID: MainnetName,
		TestnetID: TestnetName,
		LocalID:   LocalName,
	}
	NetworkNameToNetworkID = map[string]uint32{
		MainnetName: MainnetID,
		TestnetName: TestnetID,
		LocalName:   LocalID,
	}

	NetworkIDToHRP = map[uint32]string{
		MainnetID: MainnetHRP,
		TestnetID: TestnetHRP,
		LocalID:   LocalHRP,
	}
	NetworkHRPToNetworkID = map[string]uint32{
		MainnetHRP: MainnetID,
		TestnetHRP: TestnetID,
		LocalHRP:   LocalID,
	}

	ErrParseNetworkName = errors.New("failed to parse network name")
)

// GetHRP returns the bech32 human-readable-part for networkID, or a
// fallback for unknown/custom networks.
func GetHRP(networkID uint32) string {
	if hrp, ok := NetworkIDToHRP[networkID]; ok {
		return hrp
	}
	return FallbackHRP
}

func NetworkName(networkID uint32) string {
	if name, ok := NetworkIDToNetworkName[networkID]; ok {
		return name
	}
	return fmt.Sprintf("network-%d", networkID)
}

func NetworkID(networkName string) (uint32, error) {
	networkName = strings.ToLower(networkName)
	if id, ok := NetworkNameToNetworkID[networkName]; ok {
		return id, nil
	}

	idStr := networkName
	if strings.HasPrefix(networkName, ValidNetworkPrefix) {
		idStr = networkName[len(ValidNetworkPrefix):]
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParseNetworkName, networkName)
	}
	return uint32(id), nil
}
