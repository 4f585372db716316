// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the static, network-keyed configuration this module
// needs to build and validate transactions: per-network chain aliases and
// fees, plus the wire-format size limits every tx builder validates
// against. Grounded on wallet/chain/p/builder/context.go's Context struct
// and utils/constants/network_ids.go's networkID-keyed tables.
package config

import (
	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/constants"
	"github.com/chainkit/utxowallet/utils/units"
)

const (
	// AssetNameLen bounds CreateAssetTx's name field.
	AssetNameLen = 128
	// SymbolMaxLen bounds CreateAssetTx's symbol field.
	SymbolMaxLen = 4
	// AddressLength is the length, in bytes, of a short (non-node) address.
	AddressLength = 20
	// AssetIDLen is the length, in bytes, of an asset/tx/UTXO ID.
	AssetIDLen = 32
	// LatestCodec is the codec version tag prefixed to every wire message.
	LatestCodec uint16 = 0

	// MinStake is the minimum stake amount accepted by AddValidatorTx, in
	// nAVAX, on the networks this module targets by default.
	MinStake = 2_000 * units.Avax
	// OneAVAX is re-exported from utils/units for callers that only import
	// config.
	OneAVAX = units.OneAVAX

	// MaxDelegationFee is the upper bound, in 4-decimal-percent units, of
	// AddValidatorTx's delegationShare field (100.0000%).
	MaxDelegationFee = 1_000_000
)

// PrimaryNetworkID is the zero ID reserved for the primary network, never
// a valid Subnet ID (spec.md glossary "Subnet").
var PrimaryNetworkID = ids.ID{}

// ChainContext describes one chain within a network: its alias (used in
// formatted addresses, e.g. "X-avax1...") and the asset ID it's
// denominated in.
type ChainContext struct {
	Alias   string
	ChainID ids.ID
	AssetID ids.ID
}

// NetworkContext is the per-network fee table and chain registry consulted
// by the wallet builders (spec.md §6 "Configuration").
type NetworkContext struct {
	NetworkID uint32
	HRP       string

	AVAXAssetID ids.ID

	BaseTxFee            uint64
	CreateAssetTxFee     uint64
	CreateSubnetTxFee    uint64
	TransformSubnetTxFee uint64
	CreateChainTxFee     uint64
	TxFee                uint64

	AddPrimaryNetworkValidatorFee uint64
	AddPrimaryNetworkDelegatorFee uint64
	AddSubnetValidatorFee         uint64

	Chains map[ids.ID]ChainContext
}

// defaultFees mirrors avalanchego's mainnet/testnet fee schedule as
// observed in wallet/chain/p/builder/context.go's NewContextFromClients.
var defaultFees = struct {
	BaseTxFee            uint64
	CreateAssetTxFee     uint64
	CreateSubnetTxFee    uint64
	TransformSubnetTxFee uint64
	CreateChainTxFee     uint64
}{
	BaseTxFee:            units.MilliAvax,
	CreateAssetTxFee:     10 * units.MilliAvax,
	CreateSubnetTxFee:    1 * units.Avax,
	TransformSubnetTxFee: 10 * units.Avax,
	CreateChainTxFee:     1 * units.Avax,
}

// NewNetworkContext builds the default NetworkContext for networkID, given
// the network's AVAX asset ID (discovered once via RPC and cached by the
// caller, per spec.md §5's "cache is write-once per façade").
func NewNetworkContext(networkID uint32, avaxAssetID ids.ID) *NetworkContext {
	return &NetworkContext{
		NetworkID:            networkID,
		HRP:                  constants.GetHRP(networkID),
		AVAXAssetID:          avaxAssetID,
		BaseTxFee:            defaultFees.BaseTxFee,
		CreateAssetTxFee:     defaultFees.CreateAssetTxFee,
		CreateSubnetTxFee:    defaultFees.CreateSubnetTxFee,
		TransformSubnetTxFee: defaultFees.TransformSubnetTxFee,
		CreateChainTxFee:     defaultFees.CreateChainTxFee,
		TxFee:                defaultFees.BaseTxFee,

		// Staking txs on the primary network burn the stake, not a flat
		// fee; only AddSubnetValidatorTx pays the ordinary tx fee.
		AddPrimaryNetworkValidatorFee: 0,
		AddPrimaryNetworkDelegatorFee: 0,
		AddSubnetValidatorFee:         defaultFees.BaseTxFee,

		Chains: make(map[ids.ID]ChainContext),
	}
}

// RegisterChain adds or replaces a chain's alias/asset binding.
func (c *NetworkContext) RegisterChain(chainID ids.ID, alias string, assetID ids.ID) {
	c.Chains[chainID] = ChainContext{Alias: alias, ChainID: chainID, AssetID: assetID}
}
