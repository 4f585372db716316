// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"errors"

	"github.com/chainkit/utxowallet/config"
	"github.com/chainkit/utxowallet/ids"
	"github.com/chainkit/utxowallet/utils/safemath"
	"github.com/chainkit/utxowallet/vms/components/avax"
)

// ErrGooseEgg is returned when a built transaction's fee is absurdly
// large relative to its value (spec.md §4.9 "Goose-egg check").
var ErrGooseEgg = errors.New("tx fee is unreasonably high")

// VerifyGooseEgg accepts a transaction's AVAX fee iff fee <= 10*OneAVAX,
// or fee <= outputTotal, the sum of the AVAX-denominated amounts the tx
// actually sends (spec.md §4.9, property 8).
func VerifyGooseEgg(fee, outputTotal uint64) error {
	if fee <= 10*config.OneAVAX {
		return nil
	}
	if fee <= outputTotal {
		return nil
	}
	return ErrGooseEgg
}

// AVAXFlow sums ins' and outs' avaxAssetID-denominated amounts, reading
// each input's amount off the typed input itself rather than resolving
// it against a UTXO set: ImportTx's ImportedIns reference UTXOs on the
// source chain, which a local backend never holds, so a set lookup
// would silently undercount them. The difference between the two sums
// is what the façade treats as the tx's fee for the goose-egg check.
func AVAXFlow(
	ins []*avax.TransferableInput,
	outs []*avax.TransferableOutput,
	avaxAssetID ids.ID,
) (fee, outputTotal uint64, err error) {
	var inTotal uint64
	for _, in := range ins {
		if in.AssetID() != avaxAssetID {
			continue
		}
		inTotal, err = safemath.Add64(inTotal, in.Amount())
		if err != nil {
			return 0, 0, err
		}
	}
	for _, out := range outs {
		if out.AssetID() != avaxAssetID {
			continue
		}
		outputTotal, err = safemath.Add64(outputTotal, out.Amount())
		if err != nil {
			return 0, 0, err
		}
	}
	fee, err = safemath.Sub64(inTotal, outputTotal)
	if err != nil {
		return 0, 0, err
	}
	return fee, outputTotal, nil
}
