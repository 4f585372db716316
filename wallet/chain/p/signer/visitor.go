// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package signer is the P-chain signing step: it hands an UnsignedTx and
// the UTXO set it was built against to vms/platformvm/txs.Sign, which
// already implements the full per-tx-kind signable-input walk (spec.md
// §4.8 "Signing & Credentials"). This package used to carry its own
// txs.Visitor implementation duplicating that walk per tx kind; now that
// vms/platformvm/txs.Sign does it once, this is a thin adapter over it.
// The façade (wallet/chain/p) calls txs.Sign itself and does not use
// this package.
package signer

import (
	"github.com/chainkit/utxowallet/keychain"
	"github.com/chainkit/utxowallet/vms/components/avax"
	"github.com/chainkit/utxowallet/vms/platformvm/txs"
)

// Signer signs unsigned P-chain transactions against a UTXO set and a
// keychain of the signer's choosing.
type Signer struct {
	kc      keychain.Keychain
	utxoSet *avax.UTXOSet
}

func New(kc keychain.Keychain, utxoSet *avax.UTXOSet) *Signer {
	return &Signer{kc: kc, utxoSet: utxoSet}
}

// SignUnsigned produces a signed Tx over utx.
func (s *Signer) SignUnsigned(utx txs.UnsignedTx) (*txs.Tx, error) {
	return txs.Sign(utx, s.utxoSet, s.kc)
}
