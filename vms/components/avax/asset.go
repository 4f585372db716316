// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package avax holds the chain-agnostic UTXO data model every tx builder
// consumes and produces: assets, UTXOs, transferable inputs/outputs, a
// UTXO set with secondary indices, and the coin-selection accumulator
// (spec.md §4.2 "Core value types", §4.6 "UTXOSet", §4.5 "AAD").
package avax

import (
	"errors"

	"github.com/chainkit/utxowallet/ids"
)

var ErrWrongAssetID = errors.New("wrong asset ID")

// Asset identifies which fungible asset a UTXO/input/output is
// denominated in.
type Asset struct {
	ID ids.ID `serialize:"true"`
}

// AssetID satisfies the common "has an asset ID" convention used by
// UTXO/TransferableInput/TransferableOutput.
func (a *Asset) AssetID() ids.ID {
	return a.ID
}

// Verify checks a holds the expected asset, used wherever a tx's
// constituent parts must all agree on one asset ID.
func (a *Asset) Verify(expectedAssetID ids.ID) error {
	if a.ID != expectedAssetID {
		return ErrWrongAssetID
	}
	return nil
}
